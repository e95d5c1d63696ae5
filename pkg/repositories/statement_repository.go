package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/database"
	"github.com/dealscope/dealscope-engine/pkg/models"
)

// StatementRepository persists the reconciled extraction payload: identity
// rows plus the statement-type-specific rows, all tagged with the source
// document.
type StatementRepository interface {
	InsertCompanies(ctx context.Context, documentID uuid.UUID, companies []models.Company) error
	InsertPeriods(ctx context.Context, documentID uuid.UUID, periods []models.Period) error

	// InsertStatements writes records into the table mapped from t. The
	// full record is stored as JSONB alongside the typed identity columns.
	InsertStatements(ctx context.Context, documentID uuid.UUID, t models.StatementType, records []models.StatementRecord) error
}

type statementRepository struct {
	db *database.DB
}

func NewStatementRepository(db *database.DB) StatementRepository {
	return &statementRepository{db: db}
}

func (r *statementRepository) InsertCompanies(ctx context.Context, documentID uuid.UUID, companies []models.Company) error {
	query := `INSERT INTO companies (id, document_id, company_name, ticker_symbol, industry, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	for _, c := range companies {
		if _, err := r.db.Exec(ctx, query,
			c.CompanyID, documentID, c.CompanyName, c.TickerSymbol, c.Industry, c.Country); err != nil {
			return fmt.Errorf("%w: insert into companies: %v", apperrors.ErrPersist, err)
		}
	}
	return nil
}

func (r *statementRepository) InsertPeriods(ctx context.Context, documentID uuid.UUID, periods []models.Period) error {
	query := `INSERT INTO periods (id, document_id, period_start_date, period_end_date,
			fiscal_year, fiscal_quarter, period_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	for _, p := range periods {
		if _, err := r.db.Exec(ctx, query,
			p.PeriodID, documentID, p.PeriodStartDate, p.PeriodEndDate,
			p.FiscalYear, p.FiscalQuarter, p.PeriodType); err != nil {
			return fmt.Errorf("%w: insert into periods: %v", apperrors.ErrPersist, err)
		}
	}
	return nil
}

func (r *statementRepository) InsertStatements(ctx context.Context, documentID uuid.UUID, t models.StatementType, records []models.StatementRecord) error {
	table := t.Table()
	// Table names come from the closed StatementType enum, never from input.
	query := fmt.Sprintf(`INSERT INTO %s (id, document_id, company_id, reporting_period,
			fiscal_year, fiscal_quarter, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, table)

	for _, rec := range records {
		h := rec.Header()
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%w: marshal %s record: %v", apperrors.ErrPersist, table, err)
		}
		if _, err := r.db.Exec(ctx, query,
			h.ID, documentID, h.CompanyID, h.ReportingPeriod,
			h.FiscalYear, h.FiscalQuarter, data); err != nil {
			return fmt.Errorf("%w: insert into %s: %v", apperrors.ErrPersist, table, err)
		}
	}
	return nil
}
