// Package motion animates center panels towards their settle offsets. It is
// advanced explicitly by the host's frame clock.
package motion

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/kyaoi/swipeview/internal/swipe"
)

// ErrStopped is reported to pending moves when the tweener shuts down.
var ErrStopped = errors.New("tweener stopped")

const DefaultDuration = 180 * time.Millisecond

type move struct {
	tween *gween.Tween
	step  func(float64)
	done  func(error)
}

// Tweener implements swipe.Animator with eased tweens.
type Tweener struct {
	Duration time.Duration
	Easing   ease.TweenFunc

	moves   []*move
	stopped bool
}

var _ swipe.Animator = (*Tweener)(nil)

// NewTweener creates a tweener with the given settle duration.
func NewTweener(d time.Duration) *Tweener {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Tweener{Duration: d, Easing: ease.OutCubic}
}

// TranslateTo implements swipe.Animator.
func (t *Tweener) TranslateTo(from, to float64, step func(float64), done func(error)) {
	if t.stopped {
		done(ErrStopped)
		return
	}
	if math.IsNaN(to) || math.IsInf(to, 0) {
		done(errors.Errorf("invalid target offset %v", to))
		return
	}
	if from == to {
		step(to)
		done(nil)
		return
	}
	easing := t.Easing
	if easing == nil {
		easing = ease.OutCubic
	}
	t.moves = append(t.moves, &move{
		tween: gween.New(float32(from), float32(to), float32(t.Duration.Seconds()), easing),
		step:  step,
		done:  done,
	})
}

// Active reports whether any move is still running.
func (t *Tweener) Active() bool {
	return len(t.moves) > 0
}

// Advance moves every running tween forward by dt and completes the finished
// ones.
func (t *Tweener) Advance(dt time.Duration) {
	running := t.moves
	t.moves = nil
	var finished []*move
	for _, m := range running {
		value, done := m.tween.Update(float32(dt.Seconds()))
		m.step(float64(value))
		if done {
			finished = append(finished, m)
			continue
		}
		t.moves = append(t.moves, m)
	}
	// Completion callbacks may start new moves, so they run last.
	for _, m := range finished {
		m.done(nil)
	}
}

// Stop fails every pending move and refuses new ones.
func (t *Tweener) Stop() {
	t.stopped = true
	pending := t.moves
	t.moves = nil
	for _, m := range pending {
		m.done(ErrStopped)
	}
}
