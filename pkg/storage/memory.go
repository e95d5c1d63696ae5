package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
)

// MemoryStore is an in-memory BlobStore for tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string

	// Uploads counts Upload calls, including overwrites.
	Uploads int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (s *MemoryStore) Upload(_ context.Context, objectName string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = append([]byte(nil), data...)
	s.types[objectName] = contentType
	s.Uploads++
	return nil
}

func (s *MemoryStore) Download(_ context.Context, objectName string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[objectName]
	if !ok {
		return nil, fmt.Errorf("%w: object %s", apperrors.ErrNotFound, objectName)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) PublicURL(objectName string) string {
	return "memory://" + objectName
}

// ContentType returns the content type recorded for an object, or "".
func (s *MemoryStore) ContentType(objectName string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.types[objectName]
}
