package visualizer

import (
	"math"
	"time"
)

// Input is one immutable view of the playback state, taken once per tick.
type Input struct {
	Progress  float64 // 0..1
	ElapsedMs float64
	Now       time.Time
	BPM       float64
	BaseColor *RGB
	// Stale marks missing or outdated playback state. The bar then falls
	// back to its flat baseline.
	Stale bool
}

// BarConfig is the user-facing configuration of the progress bar.
type BarConfig struct {
	Style          Style
	Effect         Effect
	ShowBoxes      bool
	EffectsEnabled bool
}

// DefaultBarConfig returns the configuration used when nothing is set.
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Style:          DefaultStyle,
		Effect:         DefaultEffect,
		ShowBoxes:      true,
		EffectsEnabled: true,
	}
}

const (
	classicFilled = '━'
	classicEmpty  = '─'

	// trackDim scales the remaining-track color of the wave bar.
	trackDim = 0.35
	// minWaveBarCols is the narrowest bar left between the two boxes.
	minWaveBarCols = 4
)

// ProgressBar composes the bar styles, effects and flank boxes.
type ProgressBar struct {
	Config BarConfig
	Engine EffectEngine

	spinner *BoxAnimator
	pulse   *BoxAnimator
}

// NewProgressBar creates a renderer whose box animations start at anchor.
func NewProgressBar(cfg BarConfig, anchor time.Time) *ProgressBar {
	return &ProgressBar{
		Config:  cfg,
		Engine:  DefaultEffectEngine,
		spinner: NewBoxAnimator(BoxSpinner, anchor),
		pulse:   NewBoxAnimator(BoxPulse, anchor),
	}
}

// RestartBoxes re-anchors both box animations.
func (p *ProgressBar) RestartBoxes(now time.Time) {
	p.ensureBoxes(now)
	p.spinner.Restart(now)
	p.pulse.Restart(now)
}

// ensureBoxes anchors the box animators at now when the bar was built
// without NewProgressBar.
func (p *ProgressBar) ensureBoxes(now time.Time) {
	if p.spinner == nil {
		p.spinner = NewBoxAnimator(BoxSpinner, now)
	}
	if p.pulse == nil {
		p.pulse = NewBoxAnimator(BoxPulse, now)
	}
}

// EffectiveStyle applies the effects kill-switch: with effects disabled
// the bar is always classic.
func (p *ProgressBar) EffectiveStyle() Style {
	if !p.Config.EffectsEnabled {
		return StyleClassic
	}
	return p.Config.Style
}

func (p *ProgressBar) boxesVisible(cols int) bool {
	return p.Config.EffectsEnabled && p.Config.ShowBoxes &&
		cols >= 2*(DefaultBoxWidth+1)+minWaveBarCols
}

// Render draws the bar into a cols x rows grid. It never fails; areas
// smaller than one cell are raised to 1x1.
func (p *ProgressBar) Render(in Input, cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	in = sanitizeInput(in)

	barX, barW := 0, g.Width
	boxes := p.boxesVisible(g.Width)
	if boxes {
		barX = DefaultBoxWidth + 1
		barW = g.Width - 2*(DefaultBoxWidth+1)
	}

	switch p.EffectiveStyle() {
	case StyleClassic:
		renderClassic(g, barX, barW, in)
	case StyleSineWave:
		p.renderWave(g, barX, barW, in)
	}

	if boxes {
		p.drawBoxes(g, in)
	}
	return g
}

func sanitizeInput(in Input) Input {
	in.Progress = clamp01(in.Progress)
	if math.IsNaN(in.ElapsedMs) || math.IsInf(in.ElapsedMs, 0) || in.ElapsedMs < 0 {
		in.ElapsedMs = 0
	}
	return in
}

func renderClassic(g *Grid, x0, width int, in Input) {
	y := (g.Height - 1) / 2
	filled := int(in.Progress * float64(width))
	fill := NeutralGradient
	if in.BaseColor != nil {
		fill = AlbumPalette(*in.BaseColor)
	}
	den := float64(max(width-1, 1))
	for i := range width {
		if i < filled {
			g.Set(x0+i, y, Cell{Glyph: classicFilled, Fg: fill.At(float64(i) / den)})
		} else {
			g.Set(x0+i, y, Cell{Glyph: classicEmpty, Fg: dimTrack})
		}
	}
}

func (p *ProgressBar) renderWave(g *Grid, x0, width int, in Input) {
	effect := p.Config.Effect
	if in.Stale {
		effect = EffectNone
	}
	canvas := NewBrailleCanvas(width, g.Height)
	sampler := SamplerFor(effect.Wave(), width, g.Height)
	grad := effect.Gradient()
	phase := p.Engine.Phase(in.ElapsedMs, in.Progress)

	pw, ph := canvas.PixelWidth(), canvas.PixelHeight()
	center := float64(ph-1) / 2
	filled := int(math.Round(in.Progress * float64(pw)))

	prevY := 0
	for x := range filled {
		xn := float64(x) / float64(pw)
		y := int(math.Round(center - sampler.Sample(xn, phase)))
		c := waveColor(effect, grad, sampler, xn, phase)
		if x == 0 {
			canvas.SetDot(x, y, c)
		} else {
			canvas.DrawLine(x-1, prevY, x, y, c)
		}
		prevY = y
	}

	// The remaining track starts at the next whole cell so a cell is never
	// shared between the wave and the track.
	track := grad.At(0).Scale(trackDim)
	cy := int(math.Round(center))
	for x := filled + filled%2; x < pw; x++ {
		canvas.SetDot(x, cy, track)
	}

	canvas.drawInto(g, x0, 0)
}

func waveColor(effect Effect, grad Gradient, s Sampler, x, phase float64) RGB {
	switch effect {
	case EffectTriangles:
		return grad.At(s.Ramp(x, phase))
	case EffectCircles, EffectSquares:
		return grad.At(pingPong(phase + x))
	default:
		return grad.At(0)
	}
}

func (p *ProgressBar) drawBoxes(g *Grid, in Input) {
	p.ensureBoxes(in.Now)
	grad := p.Config.Effect.Gradient()
	if in.Stale {
		grad = EffectNone.Gradient()
	}
	y := (g.Height - 1) / 2
	for i, c := range p.spinner.Render(in.Now, grad) {
		g.Set(i, y, c)
	}
	right := g.Width - DefaultBoxWidth
	for i, c := range p.pulse.Render(in.Now, grad) {
		g.Set(right+i, y, c)
	}
}

// SpinnerFrame and PulseFrame expose the current box frames.
func (p *ProgressBar) SpinnerFrame(now time.Time) int {
	p.ensureBoxes(now)
	return p.spinner.Frame(now)
}

func (p *ProgressBar) PulseFrame(now time.Time) int {
	p.ensureBoxes(now)
	return p.pulse.Frame(now)
}
