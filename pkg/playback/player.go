package playback

import "github.com/sarkarshuvojit/ecg-playback/pkg/ecg"

// Player owns the read cursor over an immutable series. It is not safe for
// concurrent use; the scheduler goroutine is its only caller.
type Player struct {
	series      *ecg.FlatSeries
	windowSize  int
	cursor      int
	startAtZero bool
	started     bool
}

type Option func(*Player)

// StartAtZero makes the first Advance return the window at index 0. Without it
// the cursor moves before the first window is cut, so index 0 is first shown
// only after a full wrap.
func StartAtZero() Option {
	return func(p *Player) {
		p.startAtZero = true
	}
}

func NewPlayer(series *ecg.FlatSeries, windowSize int, opts ...Option) *Player {
	p := &Player{
		series:     series,
		windowSize: windowSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Advance moves the cursor one sample forward, wrapping at the end of the
// series, and returns the window starting there. Near the end the window is
// truncated rather than wrapped. ok is false for an empty series.
func (p *Player) Advance() (w Window, ok bool) {
	n := p.series.Len()
	if n == 0 {
		return Window{}, false
	}

	if p.startAtZero && !p.started {
		p.cursor = 0
	} else {
		p.cursor = (p.cursor + 1) % n
	}
	p.started = true

	end := min(p.cursor+p.windowSize, n)
	return Window{
		Start:      p.cursor,
		Timestamps: p.series.Timestamps[p.cursor:end:end],
		Amplitudes: p.series.Amplitudes[p.cursor:end:end],
	}, true
}

func (p *Player) Cursor() int {
	return p.cursor
}

func (p *Player) WindowSize() int {
	return p.windowSize
}

func (p *Player) SeriesLen() int {
	return p.series.Len()
}
