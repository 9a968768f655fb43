package search

import (
	"context"
	"time"
)

// DefaultAnimation is the show/hide duration of the list page
const DefaultAnimation = 400 * time.Millisecond

// Animator drives one show or hide transition. Animate reports progress in
// [0,1] through frame and returns once the transition is complete, or with
// the context error when it was cut short.
type Animator interface {
	Animate(ctx context.Context, frame func(progress float64)) error
}

// TimedAnimator spreads frames evenly over Duration
type TimedAnimator struct {
	Duration time.Duration
	Interval time.Duration // frame spacing, defaults to 16ms
}

// NewTimedAnimator returns an animator for the given duration; zero or
// negative durations complete immediately
func NewTimedAnimator(d time.Duration) Animator {
	if d <= 0 {
		return InstantAnimator{}
	}
	return TimedAnimator{Duration: d, Interval: 16 * time.Millisecond}
}

func (a TimedAnimator) Animate(ctx context.Context, frame func(progress float64)) error {
	if a.Duration <= 0 {
		return InstantAnimator{}.Animate(ctx, frame)
	}
	interval := a.Interval
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.NewTimer(a.Duration)
	defer deadline.Stop()

	frame(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			frame(1)
			return nil
		case now := <-ticker.C:
			frame(float64(now.Sub(start)) / float64(a.Duration))
		}
	}
}

// InstantAnimator completes every transition in a single frame
type InstantAnimator struct{}

func (InstantAnimator) Animate(ctx context.Context, frame func(progress float64)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	frame(1)
	return nil
}
