package llm

import "context"

// Sampling temperature and token limits are fixed per completion kind.
type Client interface {
	Summarize(ctx context.Context, digest, question string) (string, error)
	Blend(ctx context.Context, question, summary string) (string, error)
	Direct(ctx context.Context, question string) (string, error)
}
