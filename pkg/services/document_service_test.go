package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/storage"
)

func newDocumentServiceFixture() (*DocumentService, *mockDocumentRepository, *storage.MemoryStore) {
	docs := newMockDocumentRepository()
	store := storage.NewMemoryStore()
	svc := NewDocumentService(docs, store, "initial_fin_doc", zap.NewNop())
	return svc, docs, store
}

func TestUploadStoresBlobAndRow(t *testing.T) {
	svc, docs, store := newDocumentServiceFixture()

	result, err := svc.Upload(context.Background(), "acme_balance_sheet.csv", []byte("Assets\n100\n"))
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "initial_fin_doc/acme_balance_sheet.csv", result.Document.StoragePath)
	assert.Equal(t, "csv", result.Document.FileExtension)
	assert.Equal(t, "text/csv", result.Document.FileType)
	assert.Equal(t, 1, docs.CreateCalls)

	blob, err := store.Download(context.Background(), result.Document.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, "Assets\n100\n", string(blob))
}

func TestUploadDedupesByName(t *testing.T) {
	svc, docs, store := newDocumentServiceFixture()

	first, err := svc.Upload(context.Background(), "report.pdf", []byte("%PDF-1.4 original"))
	require.NoError(t, err)

	second, err := svc.Upload(context.Background(), "report.pdf", []byte("%PDF-1.4 different bytes"))
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Document.ID, second.Document.ID)
	assert.Equal(t, 1, docs.CreateCalls, "no second row")
	assert.Equal(t, 1, store.Uploads, "the original blob is never overwritten")
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc, _, _ := newDocumentServiceFixture()

	_, err := svc.Upload(context.Background(), "malware.exe", []byte{0x4d, 0x5a})
	assert.Error(t, err)
}
