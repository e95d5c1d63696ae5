package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/models"
	"github.com/dealscope/dealscope-engine/pkg/repositories"
	"github.com/dealscope/dealscope-engine/pkg/storage"
)

// contentTypes maps supported file extensions to the content type the blob
// is stored with.
var contentTypes = map[string]string{
	"csv":  "text/csv",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":  "application/vnd.ms-excel",
	"pdf":  "application/pdf",
	"txt":  "text/plain",
}

// UploadResult is the stored document plus whether this call created it.
type UploadResult struct {
	Document *models.Document `json:"document"`
	Created  bool             `json:"created"`
}

// DocumentService stores uploaded documents and answers document lookups.
type DocumentService struct {
	docs   repositories.DocumentRepository
	store  storage.BlobStore
	prefix string
	logger *zap.Logger
}

func NewDocumentService(docs repositories.DocumentRepository, store storage.BlobStore, prefix string, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		docs:   docs,
		store:  store,
		prefix: prefix,
		logger: logger.Named("documents"),
	}
}

// Upload stores a document blob and its row. Uploading a filename that
// already exists returns the existing document untouched rather than
// overwriting its blob.
func (s *DocumentService) Upload(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	contentType, ok := contentTypes[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}

	existing, err := s.docs.GetByName(ctx, filename)
	if err == nil {
		s.logger.Info("document already uploaded",
			zap.String("name", filename),
			zap.String("document_id", existing.ID.String()))
		return &UploadResult{Document: existing}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	objectName := path.Join(s.prefix, filename)
	if err := s.store.Upload(ctx, objectName, data, contentType); err != nil {
		return nil, err
	}

	doc := &models.Document{
		ID:            uuid.New(),
		Name:          filename,
		StoragePath:   objectName,
		URL:           s.store.PublicURL(objectName),
		FileType:      contentType,
		FileExtension: ext,
		UploadedAt:    time.Now().UTC(),
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document uploaded",
		zap.String("name", filename),
		zap.String("document_id", doc.ID.String()),
		zap.Int("bytes", len(data)))
	return &UploadResult{Document: doc, Created: true}, nil
}

// Get returns a stored document by id.
func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.docs.GetByID(ctx, id)
}
