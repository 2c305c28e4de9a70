package report

import (
	"github.com/gradebook/gradebook/internal/grading"
	"github.com/gradebook/gradebook/internal/roster"
)

// Report is the evaluated roster for one course.
type Report struct {
	Course       string  `json:"course"`
	Rows         []Row   `json:"students"`
	ClassAverage float64 `json:"class_average"`
}

// Row is one student's evaluated grades.
type Row struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	grading.Result
}

// Build evaluates every student in r under p, preserving roster order.
// ClassAverage is the mean course average, or 0 for an empty roster.
func Build(r *roster.Roster, p grading.Policy) *Report {
	rep := &Report{
		Course: r.Course,
		Rows:   make([]Row, 0, len(r.Students)),
	}
	var total float64
	for _, s := range r.Students {
		res := p.Evaluate(s.Breakdown())
		rep.Rows = append(rep.Rows, Row{ID: s.ID, Name: s.Name, Result: res})
		total += res.CourseAverage
	}
	if n := len(rep.Rows); n > 0 {
		rep.ClassAverage = total / float64(n)
	}
	return rep
}
