// internal/tui/sink.go
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/localingo/internal/pipeline"
)

type statusMsg struct {
	text string
	tone pipeline.Tone
}

type generatingMsg struct{ region pipeline.Region }

type publishMsg struct {
	region pipeline.Region
	text   string
}

type candidatesMsg struct{ candidates []string }

type erroredMsg struct{ region pipeline.Region }

type stateMsg struct{ state pipeline.State }

// sender is satisfied by *tea.Program.
type sender interface {
	Send(msg tea.Msg)
}

// programSink forwards orchestrator effects into the Bubble Tea event loop.
type programSink struct {
	mu      sync.Mutex
	program sender
}

func (s *programSink) attach(p sender) {
	s.mu.Lock()
	s.program = p
	s.mu.Unlock()
}

func (s *programSink) send(msg tea.Msg) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (s *programSink) Status(msg string, tone pipeline.Tone) {
	s.send(statusMsg{text: msg, tone: tone})
}

func (s *programSink) Generating(region pipeline.Region) {
	s.send(generatingMsg{region: region})
}

func (s *programSink) Publish(region pipeline.Region, text string) {
	s.send(publishMsg{region: region, text: text})
}

func (s *programSink) PublishCandidates(candidates []string) {
	s.send(candidatesMsg{candidates: append([]string(nil), candidates...)})
}

func (s *programSink) Errored(region pipeline.Region) {
	s.send(erroredMsg{region: region})
}

func (s *programSink) StateChanged(state pipeline.State) {
	s.send(stateMsg{state: state})
}

// liveInput mirrors the form fields for reruns started off the UI goroutine.
type liveInput struct {
	mu sync.Mutex
	in pipeline.Input
}

func (l *liveInput) set(context, original string) {
	in := pipeline.NewInput(context, original)
	l.mu.Lock()
	l.in = in
	l.mu.Unlock()
}

func (l *liveInput) get() pipeline.Input {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in
}
