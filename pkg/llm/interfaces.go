// Package llm provides completion clients for OpenAI-compatible and Anthropic
// endpoints, plus defensive parsing of their output.
package llm

import "context"

// DefaultTemperature biases completions toward deterministic structured
// output. Callers override it only for genuinely creative tasks.
const DefaultTemperature = 0.1

// CompletionRequest describes a single prompt-in/text-out call.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64 // 0 means DefaultTemperature
	MaxTokens   int     // 0 means the client's configured ceiling
}

// CompletionClient is the interface for generative text completion.
// Implementations own the hard wall-clock timeout; they never return partial
// text on timeout and never retry. Use this interface for dependency
// injection to enable mocking in tests.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Model returns the configured model identifier.
	Model() string
}
