package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/schmitthub/vitewind/internal/iostreams"
)

// ProgressStepStatus is the state of one step in the display.
type ProgressStepStatus int

const (
	StepPending ProgressStepStatus = iota
	StepRunning
	StepComplete
	StepError
)

// ProgressStep is one update sent to RunProgress. An event with only LogLine
// set feeds the output viewport without touching any step.
type ProgressStep struct {
	ID      string
	Name    string
	Status  ProgressStepStatus
	LogLine string
}

// Progress display modes accepted by RunProgress.
const (
	ModeAuto  = "auto"
	ModePlain = "plain"
	ModeTTY   = "tty"
	ModeNone  = "none"
)

// ProgressModes lists the valid mode values, for flag validation.
var ProgressModes = []string{ModeAuto, ModePlain, ModeTTY, ModeNone}

// ProgressDisplayConfig configures the display.
type ProgressDisplayConfig struct {
	Title    string // e.g. "Creating"
	Subtitle string // e.g. the project name

	// CompletionVerb prefixes the success summary, e.g. "Scaffolded".
	CompletionVerb string

	// LogLines is the viewport height (default 5).
	LogLines int
}

const defaultLogLines = 5

func (cfg *ProgressDisplayConfig) logLines() int {
	if cfg.LogLines > 0 {
		return cfg.LogLines
	}
	return defaultLogLines
}

// ProgressResult reports how the display ended.
type ProgressResult struct {
	// Err is context.Canceled when the user interrupted the TTY display, or
	// the BubbleTea error if the display itself failed.
	Err error
}

// RunProgress consumes ch until it is closed and renders each update. The
// caller closes ch when the work is done. In ModeAuto a TTY on stderr gets
// the animated display and anything else gets one line per transition.
func RunProgress(ios *iostreams.IOStreams, mode string, cfg ProgressDisplayConfig, ch <-chan ProgressStep) ProgressResult {
	switch mode {
	case ModeNone:
		for range ch {
		}
		return ProgressResult{}
	case ModeTTY:
		return runProgressTTY(ios, cfg, ch)
	case ModePlain:
		return runProgressPlain(ios, cfg, ch)
	}
	if ios.IsStderrTTY() {
		return runProgressTTY(ios, cfg, ch)
	}
	return runProgressPlain(ios, cfg, ch)
}

type progressStep struct {
	id        string
	name      string
	status    ProgressStepStatus
	startTime time.Time
	endTime   time.Time
}

func (s *progressStep) apply(step ProgressStep, now time.Time) {
	if step.Name != "" {
		s.name = step.Name
	}
	s.status = step.Status
	if step.Status == StepComplete || step.Status == StepError {
		s.endTime = now
	}
}

func (s *progressStep) elapsed(now time.Time) time.Duration {
	if s.endTime.IsZero() {
		return now.Sub(s.startTime)
	}
	return s.endTime.Sub(s.startTime)
}

// progressTracker keeps steps in arrival order.
type progressTracker struct {
	steps []*progressStep
	index map[string]*progressStep
}

func newProgressTracker() *progressTracker {
	return &progressTracker{index: make(map[string]*progressStep)}
}

// update applies step and reports whether the step's status changed.
func (t *progressTracker) update(step ProgressStep, now time.Time) (*progressStep, bool) {
	s, ok := t.index[step.ID]
	if !ok {
		s = &progressStep{id: step.ID, name: step.Name, status: step.Status, startTime: now}
		if step.Status == StepComplete || step.Status == StepError {
			s.endTime = now
		}
		t.index[step.ID] = s
		t.steps = append(t.steps, s)
		return s, true
	}
	prev := s.status
	s.apply(step, now)
	return s, prev != s.status
}

func (t *progressTracker) failed() bool {
	for _, s := range t.steps {
		if s.status == StepError {
			return true
		}
	}
	return false
}

// logBuffer keeps the last capacity lines and counts every line seen.
type logBuffer struct {
	lines    []string
	capacity int
	total    int
}

func (b *logBuffer) push(line string) {
	b.total++
	b.lines = append(b.lines, line)
	if len(b.lines) > b.capacity {
		b.lines = b.lines[len(b.lines)-b.capacity:]
	}
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}

// ---------------------------------------------------------------------------
// TTY mode
// ---------------------------------------------------------------------------

type progressStepMsg ProgressStep

type progressChannelClosedMsg struct{}

func waitForProgressStep(ch <-chan ProgressStep) tea.Cmd {
	return func() tea.Msg {
		step, ok := <-ch
		if !ok {
			return progressChannelClosedMsg{}
		}
		return progressStepMsg(step)
	}
}

type progressModel struct {
	cs  *iostreams.ColorScheme
	cfg ProgressDisplayConfig

	tracker   *progressTracker
	logs      *logBuffer
	startTime time.Time
	now       func() time.Time

	finished    bool
	interrupted bool

	spinner spinner.Model
	width   int

	eventCh <-chan ProgressStep
}

func newProgressModel(ios *iostreams.IOStreams, cfg ProgressDisplayConfig, eventCh <-chan ProgressStep) progressModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = iostreams.InfoStyle

	return progressModel{
		cs:        ios.ColorScheme(),
		cfg:       cfg,
		tracker:   newProgressTracker(),
		logs:      &logBuffer{capacity: cfg.logLines()},
		startTime: time.Now(),
		now:       time.Now,
		spinner:   s,
		width:     ios.TerminalWidth(),
		eventCh:   eventCh,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForProgressStep(m.eventCh))
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.interrupted = true
			m.finished = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressStepMsg:
		m.processEvent(ProgressStep(msg))
		return m, waitForProgressStep(m.eventCh)

	case progressChannelClosedMsg:
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *progressModel) processEvent(step ProgressStep) {
	if step.LogLine != "" {
		m.logs.push(step.LogLine)
	}
	if step.ID != "" {
		m.tracker.update(step, m.now())
	}
}

func (m progressModel) View() string {
	width := max(m.width, 40)
	spin := m.spinner.View()
	if m.finished {
		spin = ""
	}

	var buf strings.Builder
	m.renderHeader(&buf, width)
	buf.WriteByte('\n')
	for _, s := range m.tracker.steps {
		m.renderStep(&buf, s, spin, width)
	}
	buf.WriteByte('\n')
	m.renderViewport(&buf, width)
	return buf.String()
}

func (m progressModel) renderHeader(buf *strings.Builder, width int) {
	cs := m.cs
	title := cs.Bold(cs.Magenta(fmt.Sprintf("  ━━ %s ", m.cfg.Title)))
	subtitle := cs.Muted(fmt.Sprintf(" %s ━━", m.cfg.Subtitle))
	fill := max(width-lipgloss.Width(title)-lipgloss.Width(subtitle), 3)
	buf.WriteString(title + cs.Muted(strings.Repeat("━", fill)) + subtitle + "\n")
}

func (m progressModel) renderStep(buf *strings.Builder, s *progressStep, spin string, width int) {
	cs := m.cs
	var icon, duration string
	name := s.name
	switch s.status {
	case StepPending:
		icon = cs.Muted("○")
		name = cs.Muted(name)
	case StepRunning:
		icon = spin
		duration = cs.Muted(formatDuration(s.elapsed(m.now())))
	case StepComplete:
		icon = cs.Green("✓")
		duration = cs.Muted(formatDuration(s.elapsed(m.now())))
	case StepError:
		icon = cs.Red("✗")
		duration = cs.Muted(formatDuration(s.elapsed(m.now())))
	}

	durationWidth := lipgloss.Width(duration)
	name = ansi.Truncate(name, max(width-durationWidth-6, 1), "…")

	buf.WriteString("  " + icon + " " + name)
	if duration != "" {
		pad := max(width-4-lipgloss.Width(name)-durationWidth, 2)
		buf.WriteString(strings.Repeat(" ", pad) + duration)
	}
	buf.WriteByte('\n')
}

// renderViewport draws the boxed tail of command output.
func (m progressModel) renderViewport(buf *strings.Builder, width int) {
	cs := m.cs
	inner := max(width-6, 20)

	title := ""
	for _, s := range m.tracker.steps {
		if s.status == StepRunning {
			title = " " + ansi.Truncate(s.name, inner-4, "…") + " "
			break
		}
	}
	top := "  ┌" + title + strings.Repeat("─", max(inner-lipgloss.Width(title), 0)) + "┐"
	buf.WriteString(cs.Muted(top) + "\n")

	for _, line := range m.logs.lines {
		line = ansi.Truncate(line, inner, "…")
		pad := max(inner-lipgloss.Width(line), 0)
		buf.WriteString(cs.Muted("  │ ") + line + strings.Repeat(" ", pad) + cs.Muted(" │") + "\n")
	}
	for range m.logs.capacity - len(m.logs.lines) {
		buf.WriteString(cs.Muted("  │ ") + strings.Repeat(" ", inner) + cs.Muted(" │") + "\n")
	}

	counter := ""
	if m.logs.total > len(m.logs.lines) {
		counter = fmt.Sprintf(" %d of %d lines ", len(m.logs.lines), m.logs.total)
	}
	bottom := "  └" + strings.Repeat("─", max(inner-len(counter), 0)) + counter + "┘"
	buf.WriteString(cs.Muted(bottom) + "\n")
}

func runProgressTTY(ios *iostreams.IOStreams, cfg ProgressDisplayConfig, ch <-chan ProgressStep) ProgressResult {
	final, err := RunProgram(ios, newProgressModel(ios, cfg, ch))
	if err != nil {
		return ProgressResult{Err: fmt.Errorf("display error: %w", err)}
	}
	m, ok := final.(progressModel)
	if !ok {
		return ProgressResult{Err: fmt.Errorf("unexpected model type %T", final)}
	}
	if m.interrupted {
		return ProgressResult{Err: context.Canceled}
	}
	renderSummary(ios, &cfg, m.tracker, m.startTime)
	return ProgressResult{}
}

// ---------------------------------------------------------------------------
// Plain mode
// ---------------------------------------------------------------------------

func runProgressPlain(ios *iostreams.IOStreams, cfg ProgressDisplayConfig, ch <-chan ProgressStep) ProgressResult {
	cs := ios.ColorScheme()
	startTime := time.Now()
	tracker := newProgressTracker()

	fmt.Fprintf(ios.ErrOut, "%s %s (%s)\n", cs.Magenta("━━"), cfg.Title, cfg.Subtitle)

	for step := range ch {
		if step.ID == "" {
			continue
		}
		s, changed := tracker.update(step, time.Now())
		if changed && s.status != StepPending {
			renderPlainStep(ios, cs, s)
		}
	}

	renderSummary(ios, &cfg, tracker, startTime)
	return ProgressResult{}
}

func renderPlainStep(ios *iostreams.IOStreams, cs *iostreams.ColorScheme, s *progressStep) {
	switch s.status {
	case StepRunning:
		fmt.Fprintf(ios.ErrOut, "[run]  %s\n", s.name)
	case StepComplete:
		fmt.Fprintf(ios.ErrOut, "[ok]   %s (%s)\n", s.name, formatDuration(s.elapsed(time.Now())))
	case StepError:
		fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.Red("[fail]"), s.name)
	}
}

// renderSummary prints the closing line on success. Failures are reported by
// the caller, which owns the error.
func renderSummary(ios *iostreams.IOStreams, cfg *ProgressDisplayConfig, tracker *progressTracker, startTime time.Time) {
	if tracker.failed() || len(tracker.steps) == 0 {
		return
	}
	cs := ios.ColorScheme()
	verb := cfg.CompletionVerb
	if verb == "" {
		verb = "Finished"
	}
	fmt.Fprintf(ios.ErrOut, "%s %s %s %s\n", cs.SuccessIcon(), verb, cfg.Subtitle,
		cs.Muted(formatDuration(time.Since(startTime))))
}
