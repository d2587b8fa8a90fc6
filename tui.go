package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI message types
type RecordingStartMsg struct{}
type RecordingStopMsg struct{ Auto bool }
type AudioLevelMsg struct{ Level float64 }
type TranscriptionMsg struct{ Text string }
type QueueDepthMsg struct{ Depth int }
type StatusMsg struct{ Text string }
type ErrorMsg struct{ Text string }
type ModeLineMsg struct{ Text string }   // model/engine info
type DeviceLineMsg struct{ Text string } // microphone device name
type tickMsg time.Time

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	recStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	meterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
)

type tuiModel struct {
	recording  bool
	startedAt  time.Time
	duration   time.Duration
	level      float64
	peak       float64
	lastText   string
	queue      int
	status     string
	errText    string
	modeLine   string
	deviceLine string
	shortcut   string
	width      int
}

func NewTUIProgram(shortcut string) *tea.Program {
	return tea.NewProgram(tuiModel{shortcut: shortcut}, tea.WithAltScreen())
}

func tuiTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tickMsg:
		if m.recording {
			m.duration = time.Since(m.startedAt)
		}
		return m, tuiTick()

	case RecordingStartMsg:
		m.recording = true
		m.startedAt = time.Now()
		m.duration = 0
		m.peak = 0
		m.errText = ""

	case RecordingStopMsg:
		m.recording = false
		m.level = 0
		if msg.Auto {
			m.status = "stopped: max recording duration reached"
		} else {
			m.status = ""
		}

	case AudioLevelMsg:
		m.level = msg.Level
		if msg.Level > m.peak {
			m.peak = msg.Level
		}

	case TranscriptionMsg:
		m.lastText = msg.Text

	case QueueDepthMsg:
		m.queue = msg.Depth

	case StatusMsg:
		m.status = msg.Text

	case ErrorMsg:
		m.errText = msg.Text

	case ModeLineMsg:
		m.modeLine = msg.Text

	case DeviceLineMsg:
		m.deviceLine = msg.Text
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chirp") + "  " + faintStyle.Render(m.modeLine) + "\n")
	if m.deviceLine != "" {
		b.WriteString(faintStyle.Render(m.deviceLine) + "\n")
	}
	b.WriteString("\n")

	if m.recording {
		b.WriteString(recStyle.Render("● REC") + fmt.Sprintf(" %5.1fs  ", m.duration.Seconds()))
		b.WriteString(meterStyle.Render(levelBar(m.level, 30)) + "\n")
	} else {
		b.WriteString(idleStyle.Render(fmt.Sprintf("idle — press %s to record", m.shortcut)) + "\n")
	}

	if m.queue > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("queued recordings: %d", m.queue)) + "\n")
	}

	if m.lastText != "" {
		b.WriteString("\n" + textStyle.Render(m.lastText) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + errStyle.Render("error: "+m.errText) + "\n")
	}

	b.WriteString("\n" + faintStyle.Render("q quit") + "\n")
	return b.String()
}

func levelBar(level float64, width int) string {
	n := int(level * 3 * float64(width))
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

// tuiSink forwards orchestrator events into the running Bubble Tea program.
type tuiSink struct {
	p *tea.Program
}

func (s *tuiSink) RecordingStart()           { s.p.Send(RecordingStartMsg{}) }
func (s *tuiSink) RecordingStop(auto bool)   { s.p.Send(RecordingStopMsg{Auto: auto}) }
func (s *tuiSink) AudioLevel(level float64)  { s.p.Send(AudioLevelMsg{Level: level}) }
func (s *tuiSink) Transcription(text string) { s.p.Send(TranscriptionMsg{Text: text}) }
func (s *tuiSink) QueueDepth(n int)          { s.p.Send(QueueDepthMsg{Depth: n}) }
func (s *tuiSink) Status(text string)        { s.p.Send(StatusMsg{Text: text}) }
func (s *tuiSink) Error(text string)         { s.p.Send(ErrorMsg{Text: text}) }
