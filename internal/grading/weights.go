package grading

import (
	"fmt"
	"math"
)

// weightSumTolerance is how far a weight sum may stray from 1.0 and still be
// accepted. It absorbs float rounding in values like 0.1+0.2+0.7.
const weightSumTolerance = 1e-9

// Default category weights. They sum to 1.0.
const (
	DefaultTestWeight       = 0.40
	DefaultAssignmentWeight = 0.40
	DefaultQuizWeight       = 0.20
)

// WeightConfig holds the contribution of each category to the course average.
type WeightConfig struct {
	Test       float64
	Assignment float64
	Quiz       float64
}

// DefaultWeights returns the 40/40/20 test/assignment/quiz split.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		Test:       DefaultTestWeight,
		Assignment: DefaultAssignmentWeight,
		Quiz:       DefaultQuizWeight,
	}
}

// NewWeightConfig returns a validated WeightConfig.
func NewWeightConfig(test, assignment, quiz float64) (WeightConfig, error) {
	w := WeightConfig{Test: test, Assignment: assignment, Quiz: quiz}
	if err := w.Validate(); err != nil {
		return WeightConfig{}, err
	}
	return w, nil
}

// Validate reports whether every weight is a finite non-negative number and
// the three weights sum to 1.0.
func (w WeightConfig) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"test", w.Test},
		{"assignment", w.Assignment},
		{"quiz", w.Quiz},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("weights: %s weight is not a finite number", f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("weights: %s weight %g must not be negative", f.name, f.v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("weights: sum %g must equal 1", sum)
	}
	return nil
}

// Sum returns Test + Assignment + Quiz.
func (w WeightConfig) Sum() float64 {
	return w.Test + w.Assignment + w.Quiz
}
