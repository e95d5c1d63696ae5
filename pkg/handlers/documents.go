package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/services"
)

// maxUploadBytes bounds multipart uploads; financial statements are small.
const maxUploadBytes = 32 << 20

// DocumentsHandler exposes document upload, retrieval and analysis.
type DocumentsHandler struct {
	documents *services.DocumentService
	analysis  *services.AnalysisService
	logger    *zap.Logger
}

func NewDocumentsHandler(documents *services.DocumentService, analysis *services.AnalysisService, logger *zap.Logger) *DocumentsHandler {
	return &DocumentsHandler{
		documents: documents,
		analysis:  analysis,
		logger:    logger.Named("documents_handler"),
	}
}

func (h *DocumentsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/documents", h.Upload)
	mux.HandleFunc("GET /api/documents/{id}", h.Get)
	mux.HandleFunc("POST /api/documents/{id}/analyze", h.Analyze)
}

// Upload handles POST /api/documents: a multipart form with a "file" part.
// Re-uploading an existing filename returns the stored document unchanged.
func (h *DocumentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_form", "expected multipart form upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing_file", "form field \"file\" is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "unreadable_file", "could not read uploaded file")
		return
	}

	result, err := h.documents.Upload(r.Context(), header.Filename, data)
	if err != nil {
		h.logger.Error("upload failed", zap.String("name", header.Filename), zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "upload_failed", err.Error())
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	_ = WriteJSON(w, status, result)
}

// Get handles GET /api/documents/{id}.
func (h *DocumentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDocumentID(w, r)
	if !ok {
		return
	}

	doc, err := h.documents.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "not_found", "document not found")
			return
		}
		h.logger.Error("document lookup failed", zap.String("id", id.String()), zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "lookup_failed", err.Error())
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]interface{}{
		"document": doc,
		"status":   doc.Status(),
	})
}

// Analyze handles POST /api/documents/{id}/analyze.
func (h *DocumentsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDocumentID(w, r)
	if !ok {
		return
	}

	result, err := h.analysis.Analyze(r.Context(), id)
	if err != nil {
		h.writeAnalyzeError(w, id, err)
		return
	}
	_ = WriteJSON(w, http.StatusOK, result)
}

func (h *DocumentsHandler) writeAnalyzeError(w http.ResponseWriter, id uuid.UUID, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		_ = ErrorResponse(w, http.StatusNotFound, "not_found", "document not found")
	case errors.Is(err, apperrors.ErrDuplicateAnalysis):
		_ = ErrorResponse(w, http.StatusConflict, "duplicate_analysis", "document was analyzed concurrently")
	case errors.Is(err, apperrors.ErrTimeout):
		_ = ErrorResponse(w, http.StatusGatewayTimeout, "model_timeout", "completion model timed out")
	case errors.Is(err, apperrors.ErrNoJSONFound), errors.Is(err, apperrors.ErrMalformedJSON):
		_ = ErrorResponse(w, http.StatusBadGateway, "bad_model_output", err.Error())
	case errors.Is(err, apperrors.ErrExtraction):
		_ = ErrorResponse(w, http.StatusUnprocessableEntity, "extraction_failed", err.Error())
	default:
		h.logger.Error("analysis failed", zap.String("id", id.String()), zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "analysis_failed", err.Error())
	}
}

func parseDocumentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_id", "document id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
