// Package apperrors defines the sentinel errors shared across the analysis
// pipeline. Stages wrap these with fmt.Errorf("...: %w", ...) so callers can
// branch with errors.Is while keeping stage-specific context in the message.
package apperrors

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrExtraction marks an unreadable or corrupt source file. Fatal for
	// that document; the user has to re-upload, we never retry.
	ErrExtraction = errors.New("failed to extract text from document")

	// ErrUnknownTemplate is returned when a prompt is requested for a
	// statement type outside the known enumeration.
	ErrUnknownTemplate = errors.New("no prompt template for document type")

	// ErrTimeout marks a completion call that exceeded its wall-clock bound.
	ErrTimeout = errors.New("completion timed out")

	// ErrNoJSONFound means the completion text contained no brace-delimited
	// object at all.
	ErrNoJSONFound = errors.New("no JSON object found in completion")

	// ErrMalformedJSON means an object was located but did not parse, even
	// after a repair pass. The wrapped message carries the offending text.
	ErrMalformedJSON = errors.New("completion JSON did not parse")

	// ErrStorage marks a blob upload or URL retrieval failure. Uploads are
	// never retried automatically.
	ErrStorage = errors.New("object storage operation failed")

	// ErrPersist marks a relational write or verification failure. The
	// wrapped message names the table or column set that failed.
	ErrPersist = errors.New("relational persist failed")

	// ErrDuplicateAnalysis is reported to the loser when two analyses of the
	// same document race; the conditional document update admits one winner.
	ErrDuplicateAnalysis = errors.New("document already analyzed concurrently")
)
