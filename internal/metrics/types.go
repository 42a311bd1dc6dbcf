// internal/metrics/types.go
package metrics

// StageMetrics aggregates every generation issued for one pipeline stage.
type StageMetrics struct {
	Stage         string      `json:"stage"`
	Calls         int64       `json:"calls"`
	Failures      int64       `json:"failures"`
	LastLatency   int64       `json:"last_latency_ms"`
	LatencyMillis RunningStat `json:"latency_ms"`
}

// RunningStat holds the values for online calculation of mean, min and max.
type RunningStat struct {
	Count int64   `json:"-"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Snapshot is a point-in-time copy of everything an Aggregator recorded.
type Snapshot struct {
	Model    string
	Calls    int64
	Failures int64
	Stages   []StageMetrics
}
