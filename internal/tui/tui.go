// internal/tui/tui.go
// Package tui provides the interactive terminal interface for localingo.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/localingo/internal/appconfig"
	"github.com/mwiater/localingo/internal/logging"
	"github.com/mwiater/localingo/internal/metrics"
	"github.com/mwiater/localingo/internal/pipeline"
	"github.com/mwiater/localingo/internal/providers/ollama"
)

// focusArea identifies the pane that receives keyboard input.
type focusArea int

const (
	focusContext focusArea = iota
	focusOriginal
	focusCorrected
	focusJapanese
	focusVariants
	focusCount
)

// regionKind is what an output region currently shows.
type regionKind int

const (
	regionEmpty regionKind = iota
	regionGenerating
	regionReady
	regionError
)

type region struct {
	kind regionKind
	text string
}

// modelLister is the part of the Ollama client used for the startup host check.
type modelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// model is the Bubble Tea model for the localingo screen.
type model struct {
	ctx     context.Context
	config  *appconfig.Config
	orch    *pipeline.Orchestrator
	lister  modelLister
	live    *liveInput
	metrics *metrics.Aggregator
	copyFn  func(string) error

	contextArea  textarea.Model
	originalArea textarea.Model
	spinner      spinner.Model
	focus        focusArea

	corrected  region
	japanese   region
	variants   region
	candidates []string
	selected   int

	status     string
	statusTone pipeline.Tone
	state      pipeline.State
	running    bool
	host       hostStatus

	width, height int
}

func newTextArea(placeholder, prompt string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = prompt
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(height)
	return ta
}

// initialModel creates the screen with the original field focused.
func initialModel(ctx context.Context, cfg *appconfig.Config, orch *pipeline.Orchestrator, lister modelLister, live *liveInput, agg *metrics.Aggregator) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &model{
		ctx:          ctx,
		config:       cfg,
		orch:         orch,
		lister:       lister,
		live:         live,
		metrics:      agg,
		copyFn:       clipboard.WriteAll,
		contextArea:  newTextArea("Optional: who is this for, what is it about…", "│ ", 2),
		originalArea: newTextArea("English text to proofread and translate", "│ ", 4),
		spinner:      s,
		focus:        focusOriginal,
		status:       pipeline.StatusDefault,
		statusTone:   pipeline.ToneNormal,
		state:        pipeline.StateIdle,
		host:         hostStatusChecking,
	}
	m.originalArea.Focus()
	return m
}

// hostCheckMsg reports the models installed on the configured host.
type hostCheckMsg struct {
	models []string
	err    error
}

// runFinishedMsg is sent when Run returns for an invocation.
type runFinishedMsg struct{ disposition pipeline.Disposition }

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct{ err error }

func hostCheckCmd(ctx context.Context, lister modelLister) tea.Cmd {
	return func() tea.Msg {
		models, err := lister.ListModels(ctx)
		return hostCheckMsg{models: models, err: err}
	}
}

// runPipelineCmd invokes the orchestrator off the UI goroutine. Effects
// arrive separately through the program sink.
func runPipelineCmd(ctx context.Context, orch *pipeline.Orchestrator, in pipeline.Input) tea.Cmd {
	return func() tea.Msg {
		return runFinishedMsg{disposition: orch.Run(ctx, in)}
	}
}

func copyCmd(copyFn func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: copyFn(text)}
	}
}

// Init starts the host check.
func (m *model) Init() tea.Cmd {
	if m.lister == nil {
		return nil
	}
	return hostCheckCmd(m.ctx, m.lister)
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "ctrl+s", "alt+enter":
			return m, m.trigger()
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "ctrl+y":
			text := m.focusedText()
			if text == "" {
				return m, nil
			}
			return m, copyCmd(m.copyFn, text)
		case "ctrl+x":
			m.clearFocused()
			return m, nil
		case "up", "down":
			if m.focus == focusVariants {
				m.moveSelection(msg.String())
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.contextArea.SetWidth(msg.Width - 4)
		m.originalArea.SetWidth(msg.Width - 4)
		return m, nil

	case hostCheckMsg:
		m.host = deriveHostStatus(m.config.ModelName(), msg.models, msg.err)
		if msg.err != nil {
			logging.LogEvent("[TUI] host check failed: %v", msg.err)
		}
		return m, nil

	case statusMsg:
		m.status, m.statusTone = msg.text, msg.tone
		return m, nil

	case generatingMsg:
		m.setRegion(msg.region, region{kind: regionGenerating})
		return m, nil

	case publishMsg:
		m.setRegion(msg.region, region{kind: regionReady, text: msg.text})
		return m, nil

	case candidatesMsg:
		m.candidates = msg.candidates
		m.selected = 0
		m.variants = region{kind: regionReady}
		return m, nil

	case erroredMsg:
		m.setRegion(msg.region, region{kind: regionError})
		return m, nil

	case stateMsg:
		wasRunning := m.running
		m.state = msg.state
		m.running = msg.state != pipeline.StateIdle
		if m.running && !wasRunning {
			return m, m.spinner.Tick
		}
		return m, nil

	case runFinishedMsg:
		logging.LogEvent("[TUI] invocation finished: %s", msg.disposition)
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			logging.LogEvent("[TUI] clipboard write failed: %v", msg.err)
			m.status, m.statusTone = pipeline.StatusNoCopy, pipeline.ToneAlert
		} else {
			m.status, m.statusTone = pipeline.StatusCopied, pipeline.ToneNormal
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusContext:
		m.contextArea, cmd = m.contextArea.Update(msg)
		cmds = append(cmds, cmd)
	case focusOriginal:
		m.originalArea, cmd = m.originalArea.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.syncLive()

	return m, tea.Batch(cmds...)
}

// syncLive mirrors the form into the snapshot that reruns read.
func (m *model) syncLive() {
	if m.live != nil {
		m.live.set(m.contextArea.Value(), m.originalArea.Value())
	}
}

func (m *model) trigger() tea.Cmd {
	m.syncLive()
	in := pipeline.NewInput(m.contextArea.Value(), m.originalArea.Value())
	return runPipelineCmd(m.ctx, m.orch, in)
}

func (m *model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.contextArea.Blur()
	m.originalArea.Blur()
	switch f {
	case focusContext:
		return m.contextArea.Focus()
	case focusOriginal:
		return m.originalArea.Focus()
	}
	return nil
}

func (m *model) setRegion(r pipeline.Region, value region) {
	switch r {
	case pipeline.RegionCorrected:
		m.corrected = value
	case pipeline.RegionJapanese:
		m.japanese = value
	case pipeline.RegionVariants:
		m.variants = value
		m.candidates = nil
		m.selected = 0
	}
}

func (m *model) moveSelection(key string) {
	if len(m.candidates) == 0 {
		return
	}
	if key == "up" {
		m.selected = (m.selected + len(m.candidates) - 1) % len(m.candidates)
		return
	}
	m.selected = (m.selected + 1) % len(m.candidates)
}

// focusedText returns what ctrl+y copies for the focused pane.
func (m *model) focusedText() string {
	switch m.focus {
	case focusContext:
		return strings.TrimSpace(m.contextArea.Value())
	case focusOriginal:
		return strings.TrimSpace(m.originalArea.Value())
	case focusCorrected:
		return strings.TrimSpace(regionText(m.corrected))
	case focusJapanese:
		return strings.TrimSpace(regionText(m.japanese))
	case focusVariants:
		if m.variants.kind == regionReady && len(m.candidates) > 0 {
			return strings.TrimSpace(m.candidates[m.selected])
		}
		return strings.TrimSpace(regionText(m.variants))
	}
	return ""
}

func (m *model) clearFocused() {
	switch m.focus {
	case focusContext:
		m.contextArea.Reset()
	case focusOriginal:
		m.originalArea.Reset()
		m.status, m.statusTone = pipeline.StatusDefault, pipeline.ToneNormal
	case focusCorrected:
		m.corrected = region{}
	case focusJapanese:
		m.japanese = region{}
	case focusVariants:
		m.setRegion(pipeline.RegionVariants, region{})
	}
	m.syncLive()
}

// regionText is the text a single-value region displays.
func regionText(r region) string {
	switch r.kind {
	case regionGenerating:
		return pipeline.PlaceholderGen
	case regionError:
		return pipeline.PlaceholderErr
	case regionReady:
		return r.text
	default:
		return ""
	}
}

// StartGUI initializes and runs the interactive TUI.
func StartGUI(ctx context.Context, cfg *appconfig.Config, cancel context.CancelFunc) error {
	defer func() {
		logging.LogEvent("Cancelling all running requests...")
		cancel()
	}()

	if cfg == nil {
		return errors.New("failed to start: configuration is not loaded")
	}

	client := ollama.New(cfg)
	agg := metrics.NewAggregator(client.Model())
	sink := &programSink{}
	live := &liveInput{}
	orch := pipeline.New(metrics.NewProvider(client, agg), sink, pipeline.WithInputSource(live.get))

	m := initialModel(ctx, cfg, orch, client, live, agg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	sink.attach(p)

	logging.LogEvent("[TUI] starting: host=%s model=%s", client.Host(), client.Model())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
