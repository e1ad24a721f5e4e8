package swipe

// Animator moves the center panel to a target offset over time. It calls step
// with every intermediate offset and done exactly once when the move is over,
// both on the caller's event loop.
type Animator interface {
	TranslateTo(from, to float64, step func(offset float64), done func(err error))
}

// Instant is an Animator that jumps straight to the target.
type Instant struct{}

// TranslateTo implements Animator.
func (Instant) TranslateTo(_, to float64, step func(float64), done func(error)) {
	step(to)
	done(nil)
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(from, to float64, step func(float64), done func(error))

// TranslateTo implements Animator.
func (f AnimatorFunc) TranslateTo(from, to float64, step func(float64), done func(error)) {
	f(from, to, step, done)
}
