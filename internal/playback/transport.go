package playback

import (
	"sync"
	"time"

	"github.com/olivier-w/wavebar/internal/visualizer"
)

const (
	defaultPublishInterval = 50 * time.Millisecond
	minBPM                 = 60
	maxBPM                 = 200
)

// Options configures a Transport.
type Options struct {
	Duration  time.Duration // 0 means unknown; the transport then never ends
	BPM       float64
	BaseColor *visualizer.RGB
	Title     string

	// PublishInterval is how often the monitor publishes a snapshot.
	PublishInterval time.Duration
	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// Transport simulates playback of one track: it tracks position over wall
// time, supports pause and seek, and publishes snapshots to its State.
// It produces no audio.
type Transport struct {
	mu        sync.Mutex
	now       func() time.Time
	duration  time.Duration
	offset    time.Duration // position at startedAt
	startedAt time.Time
	paused    bool
	bpm       float64
	color     *visualizer.RGB
	title     string

	interval  time.Duration
	state     *State
	done      chan struct{}
	doneFired bool
	stopMon   chan struct{}
	closed    bool
}

// New starts a transport at position 0 and begins publishing snapshots.
func New(opts Options) *Transport {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	interval := opts.PublishInterval
	if interval <= 0 {
		interval = defaultPublishInterval
	}
	t := &Transport{
		now:       now,
		duration:  opts.Duration,
		startedAt: now(),
		bpm:       opts.BPM,
		color:     opts.BaseColor,
		title:     opts.Title,
		interval:  interval,
		state:     &State{},
		done:      make(chan struct{}),
		stopMon:   make(chan struct{}),
	}
	t.publish()
	go t.monitor(t.stopMon)
	return t
}

func (t *Transport) monitor(stop <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.publish()
		}
	}
}

// publish stores a fresh snapshot and fires Done once the end is reached.
// The store happens under mu so an older snapshot can never replace a
// newer one.
func (t *Transport) publish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.snapshotLocked()
	if t.duration > 0 && snap.Position >= t.duration && !t.doneFired {
		t.doneFired = true
		close(t.done)
	}
	t.state.Publish(snap)
}

func (t *Transport) snapshotLocked() Snapshot {
	return Snapshot{
		Position:  t.positionLocked(),
		Duration:  t.duration,
		Paused:    t.paused,
		BPM:       t.bpm,
		BaseColor: t.color,
		Title:     t.title,
		Taken:     t.now(),
	}
}

func (t *Transport) positionLocked() time.Duration {
	pos := t.offset
	if !t.paused {
		pos += t.now().Sub(t.startedAt)
	}
	if pos < 0 {
		pos = 0
	}
	if t.duration > 0 && pos > t.duration {
		pos = t.duration
	}
	return pos
}

// State returns the snapshot store the transport publishes to.
func (t *Transport) State() *State {
	return t.state
}

// Snapshot returns the state right now, without waiting for the monitor.
func (t *Transport) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Done returns a channel that closes when playback reaches the end.
func (t *Transport) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Position returns the current playback position.
func (t *Transport) Position() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.positionLocked()
}

// Duration returns the track length, or 0 when unknown.
func (t *Transport) Duration() time.Duration {
	return t.duration
}

// Paused returns whether playback is paused.
func (t *Transport) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// TogglePause toggles between play and pause.
func (t *Transport) TogglePause() {
	t.mu.Lock()
	t.setPausedLocked(!t.paused)
	t.mu.Unlock()
	t.publish()
}

// Pause stops the position without toggling.
func (t *Transport) Pause() {
	t.mu.Lock()
	t.setPausedLocked(true)
	t.mu.Unlock()
	t.publish()
}

func (t *Transport) setPausedLocked(paused bool) {
	if paused == t.paused {
		return
	}
	t.offset = t.positionLocked()
	t.startedAt = t.now()
	t.paused = paused
}

// Seek moves playback by delta from the current position.
func (t *Transport) Seek(delta time.Duration) {
	t.mu.Lock()
	target := t.positionLocked() + delta
	t.mu.Unlock()
	t.SeekTo(target)
}

// SeekTo moves playback to target, clamped to the track.
func (t *Transport) SeekTo(target time.Duration) {
	t.mu.Lock()
	if target < 0 {
		target = 0
	}
	if t.duration > 0 && target > t.duration {
		target = t.duration
	}
	t.offset = target
	t.startedAt = t.now()
	t.mu.Unlock()
	t.publish()
}

// Restart seeks to the beginning and resumes playback. This resets the
// done channel so Done() can be used again.
func (t *Transport) Restart() {
	t.mu.Lock()
	t.offset = 0
	t.startedAt = t.now()
	t.paused = false
	if t.doneFired {
		t.done = make(chan struct{})
		t.doneFired = false
	}
	t.mu.Unlock()
	t.publish()
}

// BPM returns the tempo, or 0 when unknown.
func (t *Transport) BPM() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bpm
}

// AdjustBPM changes the tempo by delta, clamped to 60..200.
func (t *Transport) AdjustBPM(delta float64) {
	t.mu.Lock()
	bpm := t.bpm
	if bpm <= 0 {
		bpm = 120
	}
	bpm += delta
	if bpm < minBPM {
		bpm = minBPM
	}
	if bpm > maxBPM {
		bpm = maxBPM
	}
	t.bpm = bpm
	t.mu.Unlock()
	t.publish()
}

// Close stops the monitor. It is safe to call more than once.
func (t *Transport) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	close(t.stopMon)
}
