// Package storage abstracts the blob store that holds uploaded source
// documents and generated analysis artifacts.
package storage

import "context"

// BlobStore reads and writes document blobs. Object names are
// bucket-relative paths such as "initial_fin_doc/report.pdf".
type BlobStore interface {
	// Upload writes data under objectName, replacing any existing object.
	Upload(ctx context.Context, objectName string, data []byte, contentType string) error

	// Download returns the object's full contents. A missing object
	// surfaces apperrors.ErrNotFound.
	Download(ctx context.Context, objectName string) ([]byte, error)

	// PublicURL returns the stable URL the object is served from.
	PublicURL(objectName string) string
}
