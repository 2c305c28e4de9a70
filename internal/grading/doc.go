// Package grading computes weighted course averages from per-category scores.
//
// average.go provides the pure CategoryAverage and CourseAverage functions.
// A category average is the plain mean of its scores, optionally after
// excluding one occurrence of the lowest score. The course average is the
// weighted sum of the test, assignment and quiz averages.
//
// policy.go generalises the drop-lowest rule to any category via Policy and
// maps a course average to a letter grade: A ≥90, B ≥80, C ≥70, D ≥60, F.
//
// Nothing in this package performs I/O or holds shared state.
package grading
