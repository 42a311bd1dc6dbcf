package metrics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/localingo/internal/providers"
)

func TestProviderRecordsPerStage(t *testing.T) {
	agg := NewAggregator("gemma2:2b")
	failNext := false
	gen := providers.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		if failNext {
			return "", providers.ErrEmptyResponse
		}
		return "ok:" + prompt, nil
	})

	p := NewProvider(gen, agg)
	tick := time.Unix(0, 0)
	p.now = func() time.Time {
		tick = tick.Add(50 * time.Millisecond)
		return tick
	}

	out, err := p.Generate(providers.WithStage(context.Background(), "correction"), "a")
	if err != nil || out != "ok:a" {
		t.Fatalf("unexpected result %q, %v", out, err)
	}
	failNext = true
	if _, err := p.Generate(providers.WithStage(context.Background(), "translation"), "b"); !errors.Is(err, providers.ErrEmptyResponse) {
		t.Fatalf("expected wrapped error to pass through, got %v", err)
	}

	snap := agg.Snapshot()
	if snap.Calls != 2 || snap.Failures != 1 {
		t.Fatalf("unexpected totals %+v", snap)
	}
	if len(snap.Stages) != 2 || snap.Stages[0].Stage != "correction" || snap.Stages[1].Stage != "translation" {
		t.Fatalf("unexpected stages %+v", snap.Stages)
	}
	if snap.Stages[0].LastLatency != 50 {
		t.Fatalf("expected 50ms latency, got %d", snap.Stages[0].LastLatency)
	}
	if snap.Stages[1].Failures != 1 {
		t.Fatalf("expected failure recorded on translation")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	agg := NewAggregator("m")
	agg.Record("variants", 10*time.Millisecond, false)
	snap := agg.Snapshot()
	snap.Stages[0].Calls = 99
	if agg.Snapshot().Stages[0].Calls != 1 {
		t.Fatal("mutating a snapshot must not affect the aggregator")
	}
}

func TestRunningStat(t *testing.T) {
	var rs RunningStat
	for _, v := range []float64{10, 20, 30} {
		updateRunningStat(&rs, v)
	}
	if rs.Count != 3 || rs.Mean != 20 || rs.Min != 10 || rs.Max != 30 {
		t.Fatalf("unexpected stat %+v", rs)
	}
}

func TestSummary(t *testing.T) {
	agg := NewAggregator("gemma2:2b")
	if got := agg.Snapshot().Summary(); got != "gemma2:2b: no calls yet" {
		t.Fatalf("unexpected empty summary %q", got)
	}
	agg.Record("", 5*time.Millisecond, true)
	got := agg.Snapshot().Summary()
	if !strings.Contains(got, "1 calls, 1 failed") || !strings.Contains(got, "unlabeled 5ms") {
		t.Fatalf("unexpected summary %q", got)
	}

	agg.Record("translation", 40*time.Millisecond, false)
	agg.Record("translation", 10*time.Millisecond, false)
	agg.Record("translation", 70*time.Millisecond, false)
	got = agg.Snapshot().Summary()
	if !strings.Contains(got, "translation 70ms (avg 40ms, min 10ms, max 70ms)") {
		t.Fatalf("expected latency spread in summary, got %q", got)
	}
}
