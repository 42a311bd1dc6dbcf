// internal/commands/console_sink.go
package localingo

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/mwiater/localingo/internal/pipeline"
)

var regionTitles = map[pipeline.Region]string{
	pipeline.RegionCorrected: "Corrected",
	pipeline.RegionJapanese:  "日本語",
	pipeline.RegionVariants:  "Variants",
}

// consoleSink prints pipeline results to out and status lines to errOut.
type consoleSink struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	failed bool

	heading *color.Color
	alert   *color.Color
	muted   *color.Color
}

func newConsoleSink(out, errOut io.Writer) *consoleSink {
	return &consoleSink{
		out:     out,
		errOut:  errOut,
		heading: color.New(color.FgCyan, color.Bold),
		alert:   color.New(color.FgRed, color.Bold),
		muted:   color.New(color.FgHiBlack),
	}
}

func (s *consoleSink) Status(msg string, tone pipeline.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tone == pipeline.ToneAlert {
		s.alert.Fprintln(s.errOut, msg)
		return
	}
	s.muted.Fprintln(s.errOut, msg)
}

// Generating is a no-op: a one-shot run has nothing on screen to replace.
func (s *consoleSink) Generating(pipeline.Region) {}

func (s *consoleSink) Publish(region pipeline.Region, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heading.Fprintf(s.out, "== %s ==\n", regionTitles[region])
	fmt.Fprintf(s.out, "%s\n\n", text)
}

func (s *consoleSink) PublishCandidates(candidates []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heading.Fprintf(s.out, "== %s ==\n", regionTitles[pipeline.RegionVariants])
	if len(candidates) == 0 {
		s.muted.Fprintln(s.out, pipeline.PlaceholderNone)
		return
	}
	for i, c := range candidates {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, c)
	}
}

func (s *consoleSink) Errored(region pipeline.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heading.Fprintf(s.out, "== %s ==\n", regionTitles[region])
	s.alert.Fprintf(s.out, "%s\n\n", pipeline.PlaceholderErr)
}

func (s *consoleSink) StateChanged(state pipeline.State) {
	if state != pipeline.StateFailed {
		return
	}
	s.mu.Lock()
	s.failed = true
	s.mu.Unlock()
}

func (s *consoleSink) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}
