package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/classify"
	"github.com/dealscope/dealscope-engine/pkg/config"
	"github.com/dealscope/dealscope-engine/pkg/llm"
	"github.com/dealscope/dealscope-engine/pkg/models"
	"github.com/dealscope/dealscope-engine/pkg/repositories"
	"github.com/dealscope/dealscope-engine/pkg/services"
	"github.com/dealscope/dealscope-engine/pkg/storage"
)

const extractionOutput = "```json\n" + `{
  "companies": [{"company_id": "x", "company_name": "ACME"}],
  "income_statements": [{"id": "x", "company_id": "x", "reporting_period": "x", "revenue": 10}]
}` + "\n```"

// memoryDocumentRepository backs handler tests without a database.
type memoryDocumentRepository struct {
	docs map[uuid.UUID]*models.Document
}

func newMemoryDocumentRepository() *memoryDocumentRepository {
	return &memoryDocumentRepository{docs: make(map[uuid.UUID]*models.Document)}
}

func (m *memoryDocumentRepository) Create(_ context.Context, doc *models.Document) error {
	copied := *doc
	m.docs[doc.ID] = &copied
	return nil
}

func (m *memoryDocumentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (m *memoryDocumentRepository) GetByName(_ context.Context, name string) (*models.Document, error) {
	for _, doc := range m.docs {
		if doc.Name == name {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memoryDocumentRepository) ClaimAnalysis(_ context.Context, id uuid.UUID, update repositories.AnalysisUpdate) error {
	doc, ok := m.docs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if doc.JSONID != nil {
		return apperrors.ErrDuplicateAnalysis
	}
	jsonID, jsonURL, docType := update.JSONID, update.JSONURL, string(update.DocumentType)
	doc.JSONID = &jsonID
	doc.JSONURL = &jsonURL
	doc.DocumentType = &docType
	return nil
}

type memoryStatementRepository struct{}

func (memoryStatementRepository) InsertCompanies(context.Context, uuid.UUID, []models.Company) error {
	return nil
}
func (memoryStatementRepository) InsertPeriods(context.Context, uuid.UUID, []models.Period) error {
	return nil
}
func (memoryStatementRepository) InsertStatements(context.Context, uuid.UUID, models.StatementType, []models.StatementRecord) error {
	return nil
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := zap.NewNop()
	docs := newMemoryDocumentRepository()
	store := storage.NewMemoryStore()
	completion := &llm.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return extractionOutput, nil
		},
	}
	classifier := classify.NewClassifier(nil, logger)
	documentService := services.NewDocumentService(docs, store, "initial_fin_doc", logger)
	analysisService := services.NewAnalysisService(
		docs, memoryStatementRepository{}, store, completion, classifier,
		"initial_fin_doc", 4096, logger)

	mux := http.NewServeMux()
	cfg := &config.Config{Env: "test", Version: "test"}
	NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	NewDocumentsHandler(documentService, analysisService, logger).RegisterRoutes(mux)
	NewClassifyHandler(classifier, analysisService, logger).RegisterRoutes(mux)
	return mux
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &decoded))
	return decoded
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestUploadAnalyzeGetFlow(t *testing.T) {
	mux := newTestMux(t)

	body, contentType := multipartBody(t, "acme_income_statement.csv", "Revenue\n10\n")
	req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	uploaded := decodeEnvelope(t, rec.Body)
	assert.Equal(t, true, uploaded["success"])
	data := uploaded["data"].(map[string]interface{})
	docID := data["document"].(map[string]interface{})["id"].(string)

	// Analyze it.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/documents/"+docID+"/analyze", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	analyzed := decodeEnvelope(t, rec.Body)
	result := analyzed["data"].(map[string]interface{})
	assert.Equal(t, "INCOME_STATEMENT", result["document_type"])
	assert.NotEmpty(t, result["json_url"])

	// Status flips to completed.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents/"+docID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeEnvelope(t, rec.Body)
	assert.Equal(t, "completed", fetched["data"].(map[string]interface{})["status"])
}

func TestUploadDuplicateReturnsExisting(t *testing.T) {
	mux := newTestMux(t)

	for i, wantStatus := range []int{http.StatusCreated, http.StatusOK} {
		body, contentType := multipartBody(t, "report.csv", "Revenue\n1\n")
		req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, wantStatus, rec.Code, "attempt %d", i)
	}
}

func TestGetUnknownDocument(t *testing.T) {
	mux := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	decoded := decodeEnvelope(t, rec.Body)
	assert.Equal(t, false, decoded["success"])
}

func TestGetInvalidDocumentID(t *testing.T) {
	mux := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyEndpoint(t *testing.T) {
	mux := newTestMux(t)
	payload := `{"content": "Assets,Liabilities,Equity\n100,60,40\n", "fileType": "csv"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)
	decoded := decodeEnvelope(t, rec.Body)
	assert.Equal(t, "BALANCE_SHEET", decoded["data"].(map[string]interface{})["documentType"])
}

func TestClassifyMissingContent(t *testing.T) {
	mux := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeContentEndpoint(t *testing.T) {
	mux := newTestMux(t)
	payload := `{"content": "Revenue\n10\n", "documentType": "INCOME_STATEMENT"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze-content", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decoded := decodeEnvelope(t, rec.Body)
	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, "INCOME_STATEMENT", data["documentType"])
	extraction := data["extraction"].(map[string]interface{})
	assert.Len(t, extraction["income_statements"], 1)
}
