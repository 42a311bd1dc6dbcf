// internal/providers/provider.go

// Package providers defines the contract between the pipeline and a text
// generation backend, plus the classified failures a backend may report.
package providers

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the service answered successfully but
// produced no usable text.
var ErrEmptyResponse = errors.New("LLMが応答を返しませんでした")

// ServiceError reports a non-success HTTP status from the generation service.
type ServiceError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("LLMエラー: %d", e.StatusCode)
}

// Generator turns one prompt into one complete, trimmed completion.
// Implementations do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type stageKey struct{}

// WithStage labels ctx with the pipeline stage issuing a request, for logging.
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, stageKey{}, stage)
}

// StageFromContext returns the stage label set by WithStage, or "".
func StageFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	stage, _ := ctx.Value(stageKey{}).(string)
	return stage
}
