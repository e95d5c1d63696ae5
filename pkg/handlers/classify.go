package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/classify"
	"github.com/dealscope/dealscope-engine/pkg/models"
	"github.com/dealscope/dealscope-engine/pkg/services"
)

// ClassifyHandler exposes stateless classification and extraction over raw
// document content.
type ClassifyHandler struct {
	classifier *classify.Classifier
	analysis   *services.AnalysisService
	logger     *zap.Logger
}

func NewClassifyHandler(classifier *classify.Classifier, analysis *services.AnalysisService, logger *zap.Logger) *ClassifyHandler {
	return &ClassifyHandler{
		classifier: classifier,
		analysis:   analysis,
		logger:     logger.Named("classify_handler"),
	}
}

func (h *ClassifyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/classify", h.Classify)
	mux.HandleFunc("POST /api/analyze-content", h.AnalyzeContent)
}

type classifyRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
}

// Classify handles POST /api/classify.
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body must be JSON")
		return
	}
	if req.Content == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing_content", "content is required")
		return
	}

	docType := h.classifier.Classify(r.Context(), classify.Input{
		Content:       req.Content,
		Filename:      req.Filename,
		FileExtension: req.FileType,
	})
	_ = WriteJSON(w, http.StatusOK, map[string]string{"documentType": string(docType)})
}

type analyzeContentRequest struct {
	Content      string `json:"content"`
	DocumentType string `json:"documentType"`
	Filename     string `json:"filename"`
	FileType     string `json:"fileType"`
}

// AnalyzeContent handles POST /api/analyze-content: extraction without
// persistence. When documentType is absent it is detected first.
func (h *ClassifyHandler) AnalyzeContent(w http.ResponseWriter, r *http.Request) {
	var req analyzeContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body must be JSON")
		return
	}
	if req.Content == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing_content", "content is required")
		return
	}

	var docType models.StatementType
	if req.DocumentType != "" {
		parsed, err := models.ParseStatementType(req.DocumentType)
		if err != nil {
			_ = ErrorResponse(w, http.StatusBadRequest, "invalid_document_type", err.Error())
			return
		}
		docType = parsed
	} else {
		docType = h.classifier.Classify(r.Context(), classify.Input{
			Content:       req.Content,
			Filename:      req.Filename,
			FileExtension: req.FileType,
		})
	}

	payload, err := h.analysis.AnalyzeContent(r.Context(), docType, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTimeout):
			_ = ErrorResponse(w, http.StatusGatewayTimeout, "model_timeout", "completion model timed out")
		case errors.Is(err, apperrors.ErrNoJSONFound), errors.Is(err, apperrors.ErrMalformedJSON):
			_ = ErrorResponse(w, http.StatusBadGateway, "bad_model_output", err.Error())
		default:
			h.logger.Error("content analysis failed", zap.Error(err))
			_ = ErrorResponse(w, http.StatusInternalServerError, "analysis_failed", err.Error())
		}
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]interface{}{
		"documentType": docType,
		"extraction":   payload,
	})
}
