// internal/metrics/provider.go
package metrics

import (
	"context"
	"time"

	"github.com/mwiater/localingo/internal/logging"
	"github.com/mwiater/localingo/internal/providers"
)

// Provider is a decorator that wraps a Generator to record metrics.
type Provider struct {
	wrapped    providers.Generator
	aggregator *Aggregator
	now        func() time.Time
}

// NewProvider creates a metrics-enabled Generator around wrapped.
func NewProvider(wrapped providers.Generator, aggregator *Aggregator) *Provider {
	logging.LogEvent("[METRICS] Wrapping generator with metrics provider")
	return &Provider{wrapped: wrapped, aggregator: aggregator, now: time.Now}
}

// Generate times the wrapped call and records the outcome under the stage label in ctx.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	start := p.now()
	out, err := p.wrapped.Generate(ctx, prompt)
	if p.aggregator != nil {
		p.aggregator.Record(providers.StageFromContext(ctx), p.now().Sub(start), err != nil)
	}
	return out, err
}
