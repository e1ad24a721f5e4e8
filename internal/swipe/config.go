package swipe

import (
	"math"

	"github.com/pkg/errors"
)

const (
	DefaultSwipeOffset         = 100
	DefaultValidationThreshold = 50
)

// Config is set by the host and read-only while a gesture runs.
type Config struct {
	// SwipeOffset is the maximum travel of the center panel.
	SwipeOffset float64
	// ValidationThreshold is the travel beyond which a release commits.
	ValidationThreshold float64
	OpenOnTap           bool
	CloseOnTap          bool
}

// DefaultConfig returns the configuration a control starts with.
func DefaultConfig() Config {
	return Config{
		SwipeOffset:         DefaultSwipeOffset,
		ValidationThreshold: DefaultValidationThreshold,
	}
}

// Validate checks that the distances are usable.
func (c Config) Validate() error {
	if math.IsNaN(c.SwipeOffset) || c.SwipeOffset <= 0 {
		return errors.Errorf("swipe offset must be positive, got %v", c.SwipeOffset)
	}
	if math.IsNaN(c.ValidationThreshold) || c.ValidationThreshold < 0 {
		return errors.Errorf("validation threshold must not be negative, got %v", c.ValidationThreshold)
	}
	return nil
}
