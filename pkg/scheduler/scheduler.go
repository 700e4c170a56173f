package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/sarkarshuvojit/ecg-playback/pkg/playback"
	"github.com/sarkarshuvojit/ecg-playback/pkg/render"
)

// Publisher receives the frame produced on each tick.
type Publisher interface {
	Publish(ctx context.Context, f render.Frame) error
}

// Scheduler advances a Player on a fixed interval. Run is the only code that
// touches the player, so no locking is needed around the cursor.
type Scheduler struct {
	player     *playback.Player
	publishers []Publisher
	interval   time.Duration
	ticks      uint64
}

func New(player *playback.Player, interval time.Duration, publishers ...Publisher) *Scheduler {
	return &Scheduler{
		player:     player,
		publishers: publishers,
		interval:   interval,
	}
}

// Run ticks until ctx is cancelled. The ticker is released on every return path.
func (s *Scheduler) Run(ctx context.Context) {
	if s.player.SeriesLen() == 0 {
		log.Println("Series is empty, nothing to play")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Window scheduler stopped after %d ticks", s.ticks)
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one advancement and publishes the resulting frame. It reports
// whether a frame was produced.
func (s *Scheduler) Tick(ctx context.Context) bool {
	w, ok := s.player.Advance()
	if !ok {
		return false
	}
	s.ticks++

	frame := render.FromWindow(w)
	for _, p := range s.publishers {
		if err := p.Publish(ctx, frame); err != nil {
			log.Printf("Error publishing frame at cursor %d: %v", frame.Cursor, err)
		}
	}
	return true
}

func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
