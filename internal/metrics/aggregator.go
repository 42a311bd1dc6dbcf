// internal/metrics/aggregator.go
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mwiater/localingo/internal/logging"
)

// Aggregator collects generation metrics for the lifetime of the process.
// Nothing is written to disk.
type Aggregator struct {
	mutex  sync.Mutex
	model  string
	stages map[string]*StageMetrics
}

// NewAggregator creates an empty Aggregator for model.
func NewAggregator(model string) *Aggregator {
	return &Aggregator{
		model:  model,
		stages: make(map[string]*StageMetrics),
	}
}

// Record adds one generation outcome for stage.
func (a *Aggregator) Record(stage string, latency time.Duration, failed bool) {
	if stage == "" {
		stage = "unlabeled"
	}
	logging.LogEvent("[METRICS] Record stage=%s latency=%s failed=%t", stage, latency, failed)
	a.mutex.Lock()
	defer a.mutex.Unlock()

	stageMetrics, exists := a.stages[stage]
	if !exists {
		stageMetrics = &StageMetrics{Stage: stage}
		a.stages[stage] = stageMetrics
	}

	stageMetrics.Calls++
	if failed {
		stageMetrics.Failures++
	}
	ms := latency.Milliseconds()
	stageMetrics.LastLatency = ms
	updateRunningStat(&stageMetrics.LatencyMillis, float64(ms))
}

// Snapshot returns a copy of the recorded metrics with stages sorted by name.
func (a *Aggregator) Snapshot() Snapshot {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	snap := Snapshot{Model: a.model, Stages: make([]StageMetrics, 0, len(a.stages))}
	for _, m := range a.stages {
		snap.Calls += m.Calls
		snap.Failures += m.Failures
		snap.Stages = append(snap.Stages, *m)
	}
	sort.Slice(snap.Stages, func(i, j int) bool { return snap.Stages[i].Stage < snap.Stages[j].Stage })
	return snap
}

// Summary renders the snapshot as a single status line.
func (s Snapshot) Summary() string {
	if s.Calls == 0 {
		return fmt.Sprintf("%s: no calls yet", s.Model)
	}
	parts := make([]string, 0, len(s.Stages))
	for _, st := range s.Stages {
		parts = append(parts, fmt.Sprintf("%s %dms (avg %.0fms, min %.0fms, max %.0fms)",
			st.Stage, st.LastLatency, st.LatencyMillis.Mean, st.LatencyMillis.Min, st.LatencyMillis.Max))
	}
	return fmt.Sprintf("%s: %d calls, %d failed | %s", s.Model, s.Calls, s.Failures, strings.Join(parts, ", "))
}

// updateRunningStat folds value into rs using Welford's online mean.
func updateRunningStat(rs *RunningStat, value float64) {
	rs.Count++
	if rs.Count == 1 {
		rs.Min = value
		rs.Max = value
	} else {
		if value < rs.Min {
			rs.Min = value
		}
		if value > rs.Max {
			rs.Max = value
		}
	}

	rs.Mean += (value - rs.Mean) / float64(rs.Count)
}
