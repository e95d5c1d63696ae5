package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/database"
	"github.com/dealscope/dealscope-engine/pkg/models"
)

// AnalysisUpdate carries the fields written to a document row when an
// analysis completes.
type AnalysisUpdate struct {
	JSONID       uuid.UUID
	JSONURL      string
	DocumentType models.StatementType
	Confidence   float64
}

// DocumentRepository defines the interface for document row access.
type DocumentRepository interface {
	// Create inserts a new document row.
	Create(ctx context.Context, doc *models.Document) error

	// GetByID retrieves a document. Returns apperrors.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)

	// GetByName retrieves a document by its original filename.
	// Returns apperrors.ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*models.Document, error)

	// ClaimAnalysis writes the analysis result onto the document row.
	// The update only succeeds while json_id is still NULL; a concurrent
	// analysis that lost the race gets apperrors.ErrDuplicateAnalysis.
	ClaimAnalysis(ctx context.Context, id uuid.UUID, update AnalysisUpdate) error
}

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `id, name, storage_path, url, file_type, file_extension,
	confidence_score, document_type, json_id, json_url, uploaded_at, analyzed_at`

func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		doc.ID, doc.Name, doc.StoragePath, doc.URL, doc.FileType, doc.FileExtension,
		doc.ConfidenceScore, doc.DocumentType, doc.JSONID, doc.JSONURL,
		doc.UploadedAt, doc.AnalyzedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return r.scanDocument(r.db.QueryRow(ctx, query, id))
}

func (r *documentRepository) GetByName(ctx context.Context, name string) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE name = $1`
	return r.scanDocument(r.db.QueryRow(ctx, query, name))
}

func (r *documentRepository) scanDocument(row pgx.Row) (*models.Document, error) {
	var doc models.Document
	err := row.Scan(
		&doc.ID, &doc.Name, &doc.StoragePath, &doc.URL, &doc.FileType,
		&doc.FileExtension, &doc.ConfidenceScore, &doc.DocumentType,
		&doc.JSONID, &doc.JSONURL, &doc.UploadedAt, &doc.AnalyzedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &doc, nil
}

// analysisFieldSets are the column sets ClaimAnalysis attempts, in order.
// The reduced set exists for databases whose documents table predates the
// document_type column. Each set carries its own argument list so every
// placeholder in a query is referenced; Postgres rejects prepared statements
// with gaps in the parameter numbering.
var analysisFieldSets = []struct {
	name  string
	query string
	args  func(id uuid.UUID, update AnalysisUpdate) []any
}{
	{
		name: "full",
		query: `UPDATE documents
			SET json_id = $2, json_url = $3, document_type = $4,
			    confidence_score = $5, analyzed_at = now()
			WHERE id = $1 AND json_id IS NULL`,
		args: func(id uuid.UUID, update AnalysisUpdate) []any {
			return []any{id, update.JSONID, update.JSONURL, string(update.DocumentType), update.Confidence}
		},
	},
	{
		name: "without document_type",
		query: `UPDATE documents
			SET json_id = $2, json_url = $3, confidence_score = $4, analyzed_at = now()
			WHERE id = $1 AND json_id IS NULL`,
		args: func(id uuid.UUID, update AnalysisUpdate) []any {
			return []any{id, update.JSONID, update.JSONURL, update.Confidence}
		},
	},
}

func (r *documentRepository) ClaimAnalysis(ctx context.Context, id uuid.UUID, update AnalysisUpdate) error {
	var lastErr error
	for _, fs := range analysisFieldSets {
		tag, err := r.db.Exec(ctx, fs.query, fs.args(id, update)...)
		if err != nil {
			lastErr = fmt.Errorf("%w: update documents (%s): %v", apperrors.ErrPersist, fs.name, err)
			continue
		}
		if tag.RowsAffected() == 0 {
			// Row exists with json_id set, or does not exist at all.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return apperrors.ErrDuplicateAnalysis
		}
		return nil
	}
	return lastErr
}
