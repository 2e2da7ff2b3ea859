// Package audio tracks sound cues for the terminal front-end. There is no
// decoder: a cue is a timed playback entry the renderer can show, optionally
// echoed as a terminal bell.
package audio

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/engine"
)

// cueSeconds is how long a one-shot cue stays audible.
var cueSeconds = map[engine.Cue]float64{
	engine.CueCollect: 0.25,
	engine.CuePowerUp: 0.8,
	engine.CueDeath:   1.2,
}

// Playback is one running cue.
type Playback struct {
	Handle engine.Handle
	Cue    engine.Cue
	Loop   bool
	Volume float64
	left   float64 // Seconds remaining for one-shots
}

// Options configures a Mixer.
type Options struct {
	// BackgroundVolume is applied to the looping background track.
	BackgroundVolume float64
	// Bell receives a BEL byte for every one-shot cue when non-nil.
	Bell   io.Writer
	Logger *log.Logger
}

// Mixer implements engine.Audio. It is driven from the game loop and is not
// safe for concurrent use.
type Mixer struct {
	opts    Options
	next    engine.Handle
	playing map[engine.Handle]*Playback
	last    engine.Cue
}

var _ engine.Audio = (*Mixer)(nil)

// NewMixer creates a silent mixer.
func NewMixer(opts Options) *Mixer {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Mixer{
		opts:    opts,
		playing: make(map[engine.Handle]*Playback),
	}
}

// SetBackgroundVolume changes the volume used by later background plays.
func (m *Mixer) SetBackgroundVolume(v float64) {
	m.opts.BackgroundVolume = v
}

// Play starts cue c and returns its handle. Cues may overlap; the background
// track loops until stopped.
func (m *Mixer) Play(c engine.Cue) engine.Handle {
	m.next++
	p := &Playback{Handle: m.next, Cue: c, Volume: 1}
	if c == engine.CueBackground {
		p.Loop = true
		p.Volume = m.opts.BackgroundVolume
	} else {
		p.left = cueSeconds[c]
		m.last = c
		if m.opts.Bell != nil {
			_, _ = m.opts.Bell.Write([]byte{'\a'})
		}
	}
	m.playing[p.Handle] = p
	m.opts.Logger.Debug("cue", "cue", c.String(), "handle", int(p.Handle))
	return p.Handle
}

// Stop ends the playback h. Unknown or finished handles are ignored.
func (m *Mixer) Stop(h engine.Handle) {
	if p, ok := m.playing[h]; ok {
		m.opts.Logger.Debug("cue stopped", "cue", p.Cue.String(), "handle", int(h))
		delete(m.playing, h)
	}
}

// Advance ages one-shot cues by dt seconds and drops the finished ones.
func (m *Mixer) Advance(dt float64) {
	for h, p := range m.playing {
		if p.Loop {
			continue
		}
		p.left -= dt
		if p.left <= 0 {
			delete(m.playing, h)
		}
	}
}

// StopAll silences everything.
func (m *Mixer) StopAll() {
	clear(m.playing)
}

// IsPlaying reports whether any playback of cue c is running.
func (m *Mixer) IsPlaying(c engine.Cue) bool {
	for _, p := range m.playing {
		if p.Cue == c {
			return true
		}
	}
	return false
}

// Current returns the most recent one-shot cue that is still audible.
func (m *Mixer) Current() (engine.Cue, bool) {
	if m.last == 0 || !m.IsPlaying(m.last) {
		return 0, false
	}
	return m.last, true
}
