package llm

import "context"

type Provider interface {
	// Generate performs a single synchronous completion. The returned
	// text is opaque to callers; no structure is guaranteed.
	Generate(ctx context.Context, systemInstruction, userMessage string) (string, error)
	Close() error
}
