package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/classify"
	"github.com/dealscope/dealscope-engine/pkg/extract"
	"github.com/dealscope/dealscope-engine/pkg/llm"
	"github.com/dealscope/dealscope-engine/pkg/models"
	"github.com/dealscope/dealscope-engine/pkg/prompts"
	"github.com/dealscope/dealscope-engine/pkg/repositories"
	"github.com/dealscope/dealscope-engine/pkg/retry"
	"github.com/dealscope/dealscope-engine/pkg/storage"
)

// AnalysisResult is what an analysis run produced, or what a previous run
// already produced when the document was analyzed before.
type AnalysisResult struct {
	DocumentID      uuid.UUID            `json:"document_id"`
	DocumentType    models.StatementType `json:"document_type"`
	JSONID          uuid.UUID            `json:"json_id"`
	JSONURL         string               `json:"json_url"`
	AlreadyAnalyzed bool                 `json:"already_analyzed"`
}

// AnalysisService runs the extraction pipeline: download, text extraction,
// classification, completion, reconciliation, persistence.
type AnalysisService struct {
	docs       repositories.DocumentRepository
	statements repositories.StatementRepository
	store      storage.BlobStore
	completion llm.CompletionClient
	classifier *classify.Classifier
	prefix     string
	maxTokens  int
	logger     *zap.Logger
}

func NewAnalysisService(
	docs repositories.DocumentRepository,
	statements repositories.StatementRepository,
	store storage.BlobStore,
	completion llm.CompletionClient,
	classifier *classify.Classifier,
	prefix string,
	maxTokens int,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		docs:       docs,
		statements: statements,
		store:      store,
		completion: completion,
		classifier: classifier,
		prefix:     prefix,
		maxTokens:  maxTokens,
		logger:     logger.Named("analysis"),
	}
}

// Analyze runs the full pipeline for one document. Re-analyzing an already
// analyzed document returns the existing artifact without calling the model
// again. Two concurrent first analyses race on the document row; the loser
// gets apperrors.ErrDuplicateAnalysis.
func (s *AnalysisService) Analyze(ctx context.Context, documentID uuid.UUID) (*AnalysisResult, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if doc.Analyzed() {
		s.logger.Info("document already analyzed, returning existing artifact",
			zap.String("document_id", doc.ID.String()),
			zap.String("json_id", doc.JSONID.String()))
		result := &AnalysisResult{
			DocumentID:      doc.ID,
			JSONID:          *doc.JSONID,
			JSONURL:         *doc.JSONURL,
			AlreadyAnalyzed: true,
		}
		if doc.DocumentType != nil {
			result.DocumentType = models.StatementType(*doc.DocumentType)
		}
		return result, nil
	}

	start := time.Now()

	data, err := retry.DoWithResult(ctx, nil, func() ([]byte, error) {
		return s.store.Download(ctx, doc.StoragePath)
	})
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", doc.StoragePath, err)
	}

	content, err := extract.Extract(data, doc.FileExtension)
	if err != nil {
		return nil, err
	}

	docType := s.classifier.Classify(ctx, classify.Input{
		Content:       content,
		Filename:      doc.Name,
		FileExtension: doc.FileExtension,
	})

	prompt, err := prompts.BuildPrompt(docType, content)
	if err != nil {
		return nil, err
	}

	raw, err := s.completion.Complete(ctx, llm.CompletionRequest{
		System:      prompts.ExtractionSystemMessage,
		Prompt:      prompt,
		Temperature: llm.DefaultTemperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	payload, err := llm.ParseJSONResponse[models.ExtractionResult](raw)
	if err != nil {
		return nil, err
	}

	companyID, periodID := reconcile(&payload, doc.Name, time.Now())

	jsonID := uuid.New()
	pretty, err := json.MarshalIndent(&payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding extraction payload: %w", err)
	}

	objectName := path.Join(s.prefix, "json", jsonID.String()+".json")
	if err := s.store.Upload(ctx, objectName, pretty, "application/json"); err != nil {
		return nil, err
	}
	jsonURL := s.store.PublicURL(objectName)

	err = s.docs.ClaimAnalysis(ctx, doc.ID, repositories.AnalysisUpdate{
		JSONID:       jsonID,
		JSONURL:      jsonURL,
		DocumentType: docType,
		Confidence:   doc.ConfidenceScore,
	})
	if err != nil {
		return nil, err
	}

	// The claim is verified by re-reading the row rather than trusting the
	// update's row count alone.
	updated, err := s.docs.GetByID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	if updated.JSONID == nil || *updated.JSONID != jsonID {
		return nil, fmt.Errorf("%w: document %s json_id not persisted", apperrors.ErrPersist, doc.ID)
	}

	if err := s.persistRecords(ctx, doc.ID, &payload); err != nil {
		return nil, err
	}

	s.logger.Info("analysis complete",
		zap.String("document_id", doc.ID.String()),
		zap.String("document_type", string(docType)),
		zap.String("json_id", jsonID.String()),
		zap.String("company_id", companyID),
		zap.String("period_id", periodID),
		zap.Duration("elapsed", time.Since(start)))

	return &AnalysisResult{
		DocumentID:   doc.ID,
		DocumentType: docType,
		JSONID:       jsonID,
		JSONURL:      jsonURL,
	}, nil
}

func (s *AnalysisService) persistRecords(ctx context.Context, documentID uuid.UUID, payload *models.ExtractionResult) error {
	if err := s.statements.InsertCompanies(ctx, documentID, payload.Companies); err != nil {
		return err
	}
	if err := s.statements.InsertPeriods(ctx, documentID, payload.Periods); err != nil {
		return err
	}
	for _, t := range models.AllStatementTypes {
		records := payload.StatementRecords(t)
		if len(records) == 0 {
			continue
		}
		if err := s.statements.InsertStatements(ctx, documentID, t, records); err != nil {
			return err
		}
	}
	return nil
}

// AnalyzeContent runs extraction over raw content without touching storage
// or the database. Used by the stateless analyze endpoint.
func (s *AnalysisService) AnalyzeContent(ctx context.Context, docType models.StatementType, content string) (*models.ExtractionResult, error) {
	prompt, err := prompts.BuildPrompt(docType, content)
	if err != nil {
		return nil, err
	}

	raw, err := s.completion.Complete(ctx, llm.CompletionRequest{
		System:      prompts.ExtractionSystemMessage,
		Prompt:      prompt,
		Temperature: llm.DefaultTemperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	payload, err := llm.ParseJSONResponse[models.ExtractionResult](raw)
	if err != nil {
		return nil, err
	}
	payload.EnsureSections()
	return &payload, nil
}
