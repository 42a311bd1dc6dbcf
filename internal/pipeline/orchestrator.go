// internal/pipeline/orchestrator.go
// Package pipeline sequences the correction, translation and variants stages
// against a single Generator and reports every effect through a Sink.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/mwiater/localingo/internal/candidates"
	"github.com/mwiater/localingo/internal/logging"
	"github.com/mwiater/localingo/internal/prompts"
	"github.com/mwiater/localingo/internal/providers"
)

// Orchestrator runs at most one pipeline at a time. Invocations that arrive
// while a run is in flight collapse into a single trailing rerun that uses the
// latest input.
type Orchestrator struct {
	gen    providers.Generator
	sink   Sink
	source InputSource

	mu             sync.Mutex
	running        bool
	rerunRequested bool
	latest         Input
	state          State
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithInputSource makes reruns read their input from src instead of the
// input of the most recent Run call.
func WithInputSource(src InputSource) Option {
	return func(o *Orchestrator) {
		o.source = src
	}
}

// New returns an idle Orchestrator.
func New(gen providers.Generator, sink Sink, opts ...Option) *Orchestrator {
	o := &Orchestrator{gen: gen, sink: sink, state: StateIdle}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the phase of the current run, or StateIdle.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Running reports whether a run is in flight.
func (o *Orchestrator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

// Run validates in and either executes the pipeline on the calling goroutine
// or records a rerun for the run already in flight. It blocks until the
// pipeline and every rerun queued meanwhile have finished. ctx is passed to
// the Generator; a new invocation never cancels the active run.
func (o *Orchestrator) Run(ctx context.Context, in Input) Disposition {
	o.mu.Lock()
	o.latest = in
	if err := in.Validate(); err != nil {
		o.mu.Unlock()
		logging.LogEvent("[PIPELINE] invocation rejected: %v", err)
		o.sink.Status(err.Error(), ToneAlert)
		return Rejected
	}
	if o.running {
		if o.rerunRequested {
			o.mu.Unlock()
			logging.LogEvent("[PIPELINE] invocation dropped: rerun already queued")
			return Dropped
		}
		o.rerunRequested = true
		o.mu.Unlock()
		logging.LogEvent("[PIPELINE] invocation queued as rerun")
		return Queued
	}
	o.running = true
	o.mu.Unlock()

	for {
		o.execute(ctx, in)
		next, ok := o.takeRerun()
		if !ok {
			return Executed
		}
		in = next
	}
}

// takeRerun either consumes the queued rerun and returns its input, or
// releases the gate. running stays set across a handoff.
func (o *Orchestrator) takeRerun() (Input, bool) {
	o.mu.Lock()
	if !o.rerunRequested {
		o.running = false
		o.state = StateIdle
		o.mu.Unlock()
		o.sink.StateChanged(StateIdle)
		return Input{}, false
	}
	o.rerunRequested = false
	latest := o.latest
	o.mu.Unlock()

	if o.source != nil {
		latest = o.source()
	}
	logging.LogEvent("[PIPELINE] starting queued rerun")
	return latest, true
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	o.sink.StateChanged(s)
}

func (o *Orchestrator) execute(ctx context.Context, in Input) {
	runID := uuid.NewString()
	o.setState(StateValidating)
	if err := in.Validate(); err != nil {
		logging.LogEvent("[PIPELINE] run=%s rejected: %v", runID, err)
		o.sink.Status(err.Error(), ToneAlert)
		return
	}

	logging.LogEvent("[PIPELINE] run=%s start (context=%d runes, original=%d runes)", runID, len([]rune(in.Context)), len([]rune(in.Original)))
	o.sink.Status(StatusRunning, ToneNormal)
	for _, region := range Regions {
		o.sink.Generating(region)
	}

	published := make(map[Region]bool, len(Regions))

	corrected, err := o.stage(ctx, runID, StateCorrecting, StageCorrection, prompts.Correction(in.Context, in.Original))
	if err != nil {
		o.fail(runID, err, published)
		return
	}
	o.sink.Publish(RegionCorrected, corrected)
	published[RegionCorrected] = true

	japanese, err := o.stage(ctx, runID, StateTranslating, StageTranslation, prompts.Translation(in.Original))
	if err != nil {
		o.fail(runID, err, published)
		return
	}
	o.sink.Publish(RegionJapanese, japanese)
	published[RegionJapanese] = true

	raw, err := o.stage(ctx, runID, StateVariants, StageVariants, prompts.Variants(japanese))
	if err != nil {
		o.fail(runID, err, published)
		return
	}
	list := candidates.Parse(raw)
	o.sink.PublishCandidates(list)

	o.setState(StateDone)
	o.sink.Status(StatusDone, ToneNormal)
	logging.LogEvent("[PIPELINE] run=%s done (%d candidates)", runID, len(list))
}

func (o *Orchestrator) stage(ctx context.Context, runID string, state State, name, prompt string) (string, error) {
	o.setState(state)
	logging.LogEvent("[PIPELINE] run=%s stage=%s", runID, name)
	out, err := o.gen.Generate(providers.WithStage(ctx, name), prompt)
	if err != nil {
		return "", &StageError{Stage: name, Err: err}
	}
	return out, nil
}

// fail marks every region this run has not yet published as errored and
// surfaces the underlying message.
func (o *Orchestrator) fail(runID string, err error, published map[Region]bool) {
	logging.LogEvent("[PIPELINE] run=%s failed: %v", runID, err)
	o.setState(StateFailed)
	for _, region := range Regions {
		if !published[region] {
			o.sink.Errored(region)
		}
	}
	msg := err.Error()
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		msg = stageErr.Err.Error()
	}
	o.sink.Status(msg, ToneAlert)
}
