package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus is the user-visible state of a document's pipeline run.
type AnalysisStatus string

const (
	StatusPending   AnalysisStatus = "pending"
	StatusCompleted AnalysisStatus = "completed"
	StatusError     AnalysisStatus = "error"
)

// Document is the anchor record for an uploaded financial file. It is created
// on upload and mutated exactly once when analysis completes (json_id,
// json_url and document_type are filled in together).
type Document struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	StoragePath     string     `json:"storage_path"`
	URL             string     `json:"url"`
	FileType        string     `json:"file_type"`
	FileExtension   string     `json:"file_extension"`
	ConfidenceScore float64    `json:"confidence_score"`
	DocumentType    *string    `json:"document_type,omitempty"`
	JSONID          *uuid.UUID `json:"json_id,omitempty"`
	JSONURL         *string    `json:"json_url,omitempty"`
	UploadedAt      time.Time  `json:"uploaded_at"`
	AnalyzedAt      *time.Time `json:"analyzed_at,omitempty"`
}

// Analyzed reports whether the document already carries a stored extraction
// artifact. A document with a json_id must have a reachable json_url.
func (d *Document) Analyzed() bool {
	return d.JSONID != nil && d.JSONURL != nil && *d.JSONURL != ""
}

// Status derives the user-visible analysis state.
func (d *Document) Status() AnalysisStatus {
	if d.Analyzed() {
		return StatusCompleted
	}
	return StatusPending
}
