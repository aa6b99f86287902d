package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/olivier-w/wavebar/internal/compose"
	"github.com/olivier-w/wavebar/internal/config"
	"github.com/olivier-w/wavebar/internal/playback"
	"github.com/olivier-w/wavebar/internal/util"
	"github.com/olivier-w/wavebar/internal/visualizer"
)

const (
	seekStep = 5 * time.Second
	bpmStep  = 10

	barRows     = 3
	ringRows    = 9
	minWidth    = 30
	fallbackW   = 60
	unknownTime = "-:--"
)

// Options wires a Model to its transport and resolved settings.
type Options struct {
	Transport *playback.Transport
	Settings  config.Settings
	Title     string
	Artist    string
	Profile   termenv.Profile
	Logger    *zap.Logger
}

// Model is the Bubbletea model for the wavebar TUI.
type Model struct {
	transport *playback.Transport
	bar       *visualizer.ProgressBar
	rings     *visualizer.ConcentricWaves
	renderer  *compose.Renderer
	keys      keyMap
	help      help.Model
	log       *zap.Logger

	title      string
	artist     string
	refresh    time.Duration
	width      int
	now        time.Time
	snap       playback.Snapshot
	shown      progressSpring
	progress   float64
	repeatMode RepeatMode
	quitting   bool

	ringsView  string
	ringsAt    time.Time
	ringsDirty bool
}

// New creates a Model. The transport must already be running.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	refresh := opts.Settings.Refresh
	if refresh <= 0 {
		refresh = config.DefaultRefreshInterval
	}
	now := time.Now()
	rings := visualizer.NewConcentricWaves(opts.Settings.Scheme)
	return Model{
		transport:  opts.Transport,
		bar:        visualizer.NewProgressBar(opts.Settings.Bar, now),
		rings:      rings,
		renderer:   compose.NewRenderer(opts.Profile),
		keys:       defaultKeyMap(),
		help:       help.New(),
		log:        log,
		title:      opts.Title,
		artist:     opts.Artist,
		refresh:    refresh,
		now:        now,
		shown:      newProgressSpring(refresh),
		ringsDirty: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.refresh), checkDone(m.transport), tea.SetWindowTitle(windowTitle(m.title, false)))
}

func checkDone(t *playback.Transport) tea.Cmd {
	done := t.Done()
	return func() tea.Msg {
		<-done
		return playbackEndedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.now = time.Time(msg)
		m.refreshSnapshot()
		m.progress = m.shown.step(m.snap.Progress())
		if m.ringsDirty || m.now.Sub(m.ringsAt) >= m.rings.FrameInterval() {
			m.renderRings()
		}
		return m, tickCmd(m.refresh)

	case playbackEndedMsg:
		if m.repeatMode == RepeatOne {
			m.log.Debug("track ended, looping")
			m.transport.Restart()
			m.bar.RestartBoxes(time.Now())
			m.shown.jump(0)
			return m, checkDone(m.transport)
		}
		m.log.Debug("track ended")
		return m.quit()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.ringsDirty = true
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Pause):
		m.transport.TogglePause()
		paused := m.transport.Paused()
		m.refreshSnapshot()
		return m, tea.SetWindowTitle(windowTitle(m.title, paused))
	case key.Matches(msg, m.keys.SeekBack):
		m.transport.Seek(-seekStep)
	case key.Matches(msg, m.keys.SeekFwd):
		m.transport.Seek(seekStep)
	case key.Matches(msg, m.keys.Effects):
		m.bar.Config.EffectsEnabled = !m.bar.Config.EffectsEnabled
		m.log.Debug("effects toggled", zap.Bool("enabled", m.bar.Config.EffectsEnabled))
	case key.Matches(msg, m.keys.Effect):
		m.bar.Config.Effect = m.bar.Config.Effect.Next()
		m.log.Debug("effect changed", zap.Stringer("effect", m.bar.Config.Effect))
	case key.Matches(msg, m.keys.Style):
		m.bar.Config.Style = m.bar.Config.Style.Toggle()
		m.log.Debug("style changed", zap.Stringer("style", m.bar.Config.Style))
	case key.Matches(msg, m.keys.Boxes):
		m.bar.Config.ShowBoxes = !m.bar.Config.ShowBoxes
		if m.bar.Config.ShowBoxes {
			m.bar.RestartBoxes(time.Now())
		}
	case key.Matches(msg, m.keys.NextScheme):
		m.rings.Scheme = m.rings.Scheme.Next()
		m.ringsDirty = true
		m.log.Debug("scheme changed", zap.Stringer("scheme", m.rings.Scheme))
	case key.Matches(msg, m.keys.PrevScheme):
		m.rings.Scheme = m.rings.Scheme.Prev()
		m.ringsDirty = true
		m.log.Debug("scheme changed", zap.Stringer("scheme", m.rings.Scheme))
	case key.Matches(msg, m.keys.BPMUp):
		m.transport.AdjustBPM(bpmStep)
		m.log.Debug("bpm changed", zap.Float64("bpm", m.transport.BPM()))
	case key.Matches(msg, m.keys.BPMDown):
		m.transport.AdjustBPM(-bpmStep)
		m.log.Debug("bpm changed", zap.Float64("bpm", m.transport.BPM()))
	case key.Matches(msg, m.keys.Repeat):
		m.repeatMode = m.repeatMode.Next()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return m, nil
	}
	m.refreshSnapshot()
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.transport.Close()
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

// refreshSnapshot reads the latest published state. Before the first
// publication the zero snapshot is used, which renders as stale.
func (m *Model) refreshSnapshot() {
	snap, ok := m.transport.State().Load()
	if !ok {
		snap = playback.Snapshot{}
	}
	m.snap = snap
}

func (m *Model) contentWidth() int {
	w := m.width
	if w < minWidth {
		w = fallbackW
	}
	return w - 4
}

func (m *Model) renderRings() {
	w := m.contentWidth() - 2
	in := m.snap.Input(m.now)
	g := m.rings.Render(w, ringRows, in.BPM, in.ElapsedMs, in.BaseColor)
	m.ringsView = m.renderer.Render(g)
	m.ringsAt = m.now
	m.ringsDirty = false
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(indent(headerStyle.Render("wavebar")))
	b.WriteString("\n\n")
	b.WriteString(indent(titleStyle.Render(m.title)))
	b.WriteString("\n")
	if m.artist != "" {
		b.WriteString(indent(artistStyle.Render(m.artist)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.ringsView != "" {
		b.WriteString(indent(paneStyle.Render(m.ringsView)))
		b.WriteString("\n\n")
	}
	b.WriteString(indent(m.progressLine(w)))
	b.WriteString("\n\n")
	b.WriteString(indent(m.statusLine(w)))
	b.WriteString("\n\n")
	b.WriteString(indent(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) progressLine(w int) string {
	elapsed := timeStyle.Render(util.FormatDuration(m.snap.Position))
	total := unknownTime
	if m.snap.Duration > 0 {
		total = util.FormatDuration(m.snap.Duration)
	}
	duration := timeStyle.Render(total)

	barWidth := max(w-lipgloss.Width(elapsed)-lipgloss.Width(duration)-2, 1)
	in := m.snap.Input(m.now)
	in.Progress = m.progress
	bar := m.renderer.Render(m.bar.Render(in, barWidth, barRows))

	return lipgloss.JoinHorizontal(lipgloss.Center, elapsed, " ", bar, " ", duration)
}

func (m Model) statusLine(w int) string {
	icon, text := "▶", "playing"
	if m.snap.Paused {
		icon, text = "❚❚", "paused"
	}
	left := fmt.Sprintf("%s  %s", icon, text)
	if r := m.repeatMode.Icon(); r != "" {
		left += "  " + r
	}

	effect := m.bar.Config.Effect.String()
	if !m.bar.Config.EffectsEnabled {
		effect = "effects off"
	}
	right := fmt.Sprintf("%s  %s  %s  %s",
		m.bar.EffectiveStyle(), effect, m.rings.Scheme.Label(), bpmLabel(m.snap.BPM))

	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func bpmLabel(bpm float64) string {
	if bpm <= 0 {
		return "- BPM"
	}
	return fmt.Sprintf("%.0f BPM", bpm)
}

func indent(s string) string {
	return lipgloss.NewStyle().PaddingLeft(2).Render(s)
}

func windowTitle(title string, paused bool) string {
	if paused {
		return "⏸ " + title + " - wavebar"
	}
	return "▶ " + title + " - wavebar"
}
