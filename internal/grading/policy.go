package grading

import (
	"fmt"
	"math"
)

// Category names one of the three grade categories.
type Category string

const (
	CategoryTests       Category = "tests"
	CategoryAssignments Category = "assignments"
	CategoryQuizzes     Category = "quizzes"
)

// Categories is the ordered set of categories a Policy knows about.
var Categories = []Category{CategoryTests, CategoryAssignments, CategoryQuizzes}

// ParseCategory returns the Category named s.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q: want tests|assignments|quizzes", s)
}

// Letter grade thresholds, applied to the course average.
const (
	ThresholdA = 90.0
	ThresholdB = 80.0
	ThresholdC = 70.0
	ThresholdD = 60.0
)

// Letter maps a course average to a letter grade.
func Letter(score float64) string {
	switch {
	case score >= ThresholdA:
		return "A"
	case score >= ThresholdB:
		return "B"
	case score >= ThresholdC:
		return "C"
	case score >= ThresholdD:
		return "D"
	default:
		return "F"
	}
}

// Breakdown groups one student's scores by category.
type Breakdown struct {
	Tests       GradeSet
	Assignments GradeSet
	Quizzes     GradeSet
}

// Set returns the GradeSet for c. Unknown categories yield an empty set.
func (b Breakdown) Set(c Category) GradeSet {
	switch c {
	case CategoryTests:
		return b.Tests
	case CategoryAssignments:
		return b.Assignments
	case CategoryQuizzes:
		return b.Quizzes
	}
	return GradeSet{}
}

// Result is the outcome of evaluating a Breakdown under a Policy.
type Result struct {
	TestAverage       float64 `json:"test_average"`
	AssignmentAverage float64 `json:"assignment_average"`
	QuizAverage       float64 `json:"quiz_average"`
	CourseAverage     float64 `json:"course_average"`
	Letter            string  `json:"letter"`
}

// CategoryAverage returns the Result field for c.
func (r Result) CategoryAverage(c Category) float64 {
	switch c {
	case CategoryTests:
		return r.TestAverage
	case CategoryAssignments:
		return r.AssignmentAverage
	case CategoryQuizzes:
		return r.QuizAverage
	}
	return 0
}

// Policy combines category weights with the set of categories that drop
// their lowest score.
type Policy struct {
	Weights    WeightConfig
	DropLowest map[Category]bool
}

// DefaultPolicy returns 40/40/20 weights with the lowest quiz dropped.
func DefaultPolicy() Policy {
	return Policy{
		Weights:    DefaultWeights(),
		DropLowest: map[Category]bool{CategoryQuizzes: true},
	}
}

// Validate checks the policy weights.
func (p Policy) Validate() error {
	return p.Weights.Validate()
}

// Evaluate computes every category average and the weighted course average.
// Evaluate does not validate p. DefaultPolicy().Evaluate gives the same
// course average as CourseAverage.
func (p Policy) Evaluate(b Breakdown) Result {
	r := Result{
		TestAverage:       CategoryAverage(b.Tests, p.DropLowest[CategoryTests]),
		AssignmentAverage: CategoryAverage(b.Assignments, p.DropLowest[CategoryAssignments]),
		QuizAverage:       CategoryAverage(b.Quizzes, p.DropLowest[CategoryQuizzes]),
	}
	r.CourseAverage = weighted(p.Weights, r.TestAverage, r.AssignmentAverage, r.QuizAverage)
	r.Letter = Letter(r.CourseAverage)
	return r
}

// Scale bounds the valid range of a single score, inclusive at both ends.
type Scale struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// DefaultScale is the 0–100 percentage scale.
func DefaultScale() Scale {
	return Scale{Min: 0, Max: 100}
}

// Check returns an error naming the first score in g that is NaN, infinite,
// or outside [s.Min, s.Max].
func (s Scale) Check(g GradeSet) error {
	for i, v := range g.scores {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("score #%d is not a finite number", i+1)
		}
		if v < s.Min || v > s.Max {
			return fmt.Errorf("score #%d (%g) is outside [%g, %g]", i+1, v, s.Min, s.Max)
		}
	}
	return nil
}
