package llm

import (
	"context"
	"os"
)

// Client is the transcript interpreter boundary. One blocking call, raw
// JSON text out. Implementations must not retry: two identical
// transcripts produce two independent record sets.
type Client interface {
	Interpret(ctx context.Context, transcript string) (string, error)
}

// NewClientFromEnv picks the provider from LLM_PROVIDER. Defaults to
// Gemini, which is what production runs.
func NewClientFromEnv() Client {
	if os.Getenv("LLM_PROVIDER") == "llama" {
		return NewLLaMAClient()
	}
	return NewGeminiClient()
}
