// Package dist implements categorical sampling over ordered probability
// tables with an injectable uniform source.
package dist

import (
	"errors"
	"fmt"
)

// ErrInvalidDistribution reports a probability table whose mass runs out
// before a draw lands. Probabilities summing below one are a caller bug, not
// a runtime condition: propagate the error and terminate, never retry.
var ErrInvalidDistribution = errors.New("invalid probability distribution")

// Source yields uniform draws in [0, 1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Entry pairs one outcome with its probability mass.
type Entry[T any] struct {
	Value       T
	Probability float64
}

// Distribution is an ordered probability table. The sampler walks entries
// front to back, so keeping them in a slice rather than a map gives every
// seeded run an identical walk.
type Distribution[T any] []Entry[T]

// Total returns the summed probability mass of the table.
func (d Distribution[T]) Total() float64 {
	var total float64
	for _, e := range d {
		total += e.Probability
	}
	return total
}

// Sample draws one outcome from d. It subtracts each entry's mass from a
// uniform draw and returns the first entry whose mass exceeds the remainder.
// A table summing to at least one always lands; anything less exhausts the
// walk and fails with ErrInvalidDistribution.
func Sample[T any](src Source, d Distribution[T]) (T, error) {
	u := src.Float64()
	for _, e := range d {
		if u < e.Probability {
			return e.Value, nil
		}
		u -= e.Probability
	}
	var zero T
	return zero, fmt.Errorf("%w: %d entries sum to %v", ErrInvalidDistribution, len(d), d.Total())
}
