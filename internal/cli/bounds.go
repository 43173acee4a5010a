package cli

import (
	"fmt"

	"github.com/Veraticus/health-agent/internal/common"
)

// IntBounds is an optional inclusive range for integer input.
type IntBounds struct {
	min *int
	max *int
}

// IntOption configures IntBounds.
type IntOption func(*IntBounds)

// WithMin sets an inclusive lower bound.
func WithMin(n int) IntOption {
	return func(b *IntBounds) { b.min = &n }
}

// WithMax sets an inclusive upper bound.
func WithMax(n int) IntOption {
	return func(b *IntBounds) { b.max = &n }
}

// WithRange sets both inclusive bounds.
func WithRange(minValue, maxValue int) IntOption {
	return func(b *IntBounds) {
		WithMin(minValue)(b)
		WithMax(maxValue)(b)
	}
}

// NewIntBounds builds bounds from options. No options means unbounded.
func NewIntBounds(opts ...IntOption) IntBounds {
	var b IntBounds
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Check returns an error wrapping common.ErrInputRange when v is out of bounds.
func (b IntBounds) Check(v int) error {
	if (b.min != nil && v < *b.min) || (b.max != nil && v > *b.max) {
		return fmt.Errorf("%w: %d is not %s", common.ErrInputRange, v, b.describe())
	}
	return nil
}

// Diagnostic is the message shown for an out-of-range value.
func (b IntBounds) Diagnostic() string {
	return fmt.Sprintf("Please enter a value %s.", b.describe())
}

func (b IntBounds) describe() string {
	switch {
	case b.min != nil && b.max != nil:
		return fmt.Sprintf("between %d and %d", *b.min, *b.max)
	case b.min != nil:
		return fmt.Sprintf("of at least %d", *b.min)
	case b.max != nil:
		return fmt.Sprintf("of at most %d", *b.max)
	default:
		return "within range"
	}
}
