package grading

// GradeSet is an ordered, immutable sequence of scores for one category.
// The zero value is an empty set.
type GradeSet struct {
	scores []float64
}

// NewGradeSet returns a GradeSet holding a copy of scores.
func NewGradeSet(scores ...float64) GradeSet {
	if len(scores) == 0 {
		return GradeSet{}
	}
	cp := make([]float64, len(scores))
	copy(cp, scores)
	return GradeSet{scores: cp}
}

// Scores returns a copy of the scores in their original order.
func (g GradeSet) Scores() []float64 {
	out := make([]float64, len(g.scores))
	copy(out, g.scores)
	return out
}

// Len returns the number of scores in the set.
func (g GradeSet) Len() int {
	return len(g.scores)
}

// CategoryAverage returns the arithmetic mean of scores.
//
// When dropLowest is true and the set holds at least two scores, exactly one
// occurrence of the minimum is excluded from both the sum and the count.
// With fewer than two scores nothing is dropped. An empty set averages to 0.
func CategoryAverage(scores GradeSet, dropLowest bool) float64 {
	n := len(scores.scores)
	if n == 0 {
		return 0
	}

	var sum float64
	lowest := scores.scores[0]
	for _, s := range scores.scores {
		sum += s
		if s < lowest {
			lowest = s
		}
	}

	if dropLowest && n >= 2 {
		return (sum - lowest) / float64(n-1)
	}
	return sum / float64(n)
}

// CourseAverage computes the weighted course average:
//
//	weights.Test*avg(tests) + weights.Assignment*avg(assignments) + weights.Quiz*avg(quizzes)
//
// The lowest quiz score is dropped; tests and assignments are averaged as-is.
// weights is used as given. Call WeightConfig.Validate first if the caller
// needs the sum-to-one guarantee.
func CourseAverage(tests, assignments, quizzes GradeSet, weights WeightConfig) float64 {
	return weighted(weights,
		CategoryAverage(tests, false),
		CategoryAverage(assignments, false),
		CategoryAverage(quizzes, true))
}

// weighted combines three category averages under w.
func weighted(w WeightConfig, test, assignment, quiz float64) float64 {
	return w.Test*test + w.Assignment*assignment + w.Quiz*quiz
}
