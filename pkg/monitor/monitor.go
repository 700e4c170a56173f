package monitor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/sarkarshuvojit/ecg-playback/pkg/config"
	"github.com/sarkarshuvojit/ecg-playback/pkg/playback"
	"github.com/sarkarshuvojit/ecg-playback/pkg/scheduler"
	"github.com/sarkarshuvojit/ecg-playback/pkg/source"
)

type State string

const (
	StateLoading   State = "loading"
	StateStreaming State = "streaming"
	StateFailed    State = "failed"
)

var (
	ErrNotReady       = errors.New("dataset is still loading")
	ErrLoadFailed     = errors.New("dataset could not be loaded")
	ErrAlreadyStarted = errors.New("monitor already started")
)

type Status struct {
	ID           uuid.UUID
	State        State
	SeriesLength int
	WindowSize   int
	Err          error
}

// Monitor is one playback component: it loads its dataset once and then
// drives a scheduler over it until its context ends.
type Monitor struct {
	id         uuid.UUID
	opener     source.Opener
	cfg        *config.MonitorConfig
	publishers []scheduler.Publisher

	started bool
	mu      sync.RWMutex
	state   State
	length  int
	err     error
}

func New(id uuid.UUID, opener source.Opener, cfg *config.MonitorConfig, publishers ...scheduler.Publisher) *Monitor {
	return &Monitor{
		id:         id,
		opener:     opener,
		cfg:        cfg,
		publishers: publishers,
		state:      StateLoading,
	}
}

func (m *Monitor) ID() uuid.UUID {
	return m.id
}

// Run loads the dataset and then plays it until ctx is cancelled. The
// scheduler is not armed unless the whole series loaded. A failed load is
// final: Run returns the error and the monitor never streams.
func (m *Monitor) Run(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	m.started = true
	m.mu.Unlock()

	log.Printf("Loading dataset from %s", m.opener)
	series, err := source.Load(ctx, m.opener, m.cfg.SampleRate)
	if err != nil {
		m.setFailed(err)
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	m.mu.Lock()
	m.state = StateStreaming
	m.length = series.Len()
	m.mu.Unlock()
	log.Printf("Loaded %d samples, starting playback (window=%d, interval=%s)",
		series.Len(), m.cfg.WindowSize, m.cfg.UpdateInterval)

	var opts []playback.Option
	if m.cfg.StartAtZero {
		opts = append(opts, playback.StartAtZero())
	}
	player := playback.NewPlayer(series, m.cfg.WindowSize, opts...)
	scheduler.New(player, m.cfg.UpdateInterval, m.publishers...).Run(ctx)
	return nil
}

func (m *Monitor) setFailed(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateFailed
	m.err = err
}

func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Status{
		ID:           m.id,
		State:        m.state,
		SeriesLength: m.length,
		WindowSize:   m.cfg.WindowSize,
		Err:          m.err,
	}
}

// Ready returns nil once frames are being produced, otherwise ErrNotReady or
// ErrLoadFailed.
func (m *Monitor) Ready() error {
	st := m.Status()
	switch st.State {
	case StateStreaming:
		return nil
	case StateFailed:
		return ErrLoadFailed
	default:
		return ErrNotReady
	}
}
