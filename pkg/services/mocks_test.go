package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/models"
	"github.com/dealscope/dealscope-engine/pkg/repositories"
)

// mockDocumentRepository is an in-memory DocumentRepository for tests.
type mockDocumentRepository struct {
	docs map[uuid.UUID]*models.Document

	CreateCalls int
	ClaimCalls  int
	ClaimErr    error
}

func newMockDocumentRepository() *mockDocumentRepository {
	return &mockDocumentRepository{docs: make(map[uuid.UUID]*models.Document)}
}

func (m *mockDocumentRepository) Create(_ context.Context, doc *models.Document) error {
	m.CreateCalls++
	copied := *doc
	m.docs[doc.ID] = &copied
	return nil
}

func (m *mockDocumentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (m *mockDocumentRepository) GetByName(_ context.Context, name string) (*models.Document, error) {
	for _, doc := range m.docs {
		if doc.Name == name {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockDocumentRepository) ClaimAnalysis(_ context.Context, id uuid.UUID, update repositories.AnalysisUpdate) error {
	m.ClaimCalls++
	if m.ClaimErr != nil {
		return m.ClaimErr
	}
	doc, ok := m.docs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if doc.JSONID != nil {
		return apperrors.ErrDuplicateAnalysis
	}
	jsonID := update.JSONID
	jsonURL := update.JSONURL
	docType := string(update.DocumentType)
	doc.JSONID = &jsonID
	doc.JSONURL = &jsonURL
	doc.DocumentType = &docType
	doc.ConfidenceScore = update.Confidence
	return nil
}

// mockStatementRepository records inserts per table.
type mockStatementRepository struct {
	Companies  []models.Company
	Periods    []models.Period
	Statements map[models.StatementType][]models.StatementRecord
	InsertErr  error
}

func newMockStatementRepository() *mockStatementRepository {
	return &mockStatementRepository{Statements: make(map[models.StatementType][]models.StatementRecord)}
}

func (m *mockStatementRepository) InsertCompanies(_ context.Context, _ uuid.UUID, companies []models.Company) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Companies = append(m.Companies, companies...)
	return nil
}

func (m *mockStatementRepository) InsertPeriods(_ context.Context, _ uuid.UUID, periods []models.Period) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Periods = append(m.Periods, periods...)
	return nil
}

func (m *mockStatementRepository) InsertStatements(_ context.Context, _ uuid.UUID, t models.StatementType, records []models.StatementRecord) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Statements[t] = append(m.Statements[t], records...)
	return nil
}
