// Package roster loads a course roster: the students enrolled in one course
// and their raw scores per category.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gradebook/gradebook/internal/grading"
	"github.com/gradebook/gradebook/internal/watch"
)

// Roster is one course and its students, in file order.
type Roster struct {
	Course   string    `yaml:"course" json:"course"`
	Students []Student `yaml:"students" json:"students"`
}

// Student holds one student's raw scores.
type Student struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name,omitempty"`
	Tests       []float64 `yaml:"tests" json:"tests"`
	Assignments []float64 `yaml:"assignments" json:"assignments"`
	Quizzes     []float64 `yaml:"quizzes" json:"quizzes"`
}

// Breakdown converts the student's scores into immutable grade sets.
func (s Student) Breakdown() grading.Breakdown {
	return grading.Breakdown{
		Tests:       grading.NewGradeSet(s.Tests...),
		Assignments: grading.NewGradeSet(s.Assignments...),
		Quizzes:     grading.NewGradeSet(s.Quizzes...),
	}
}

// Load reads the roster file at path and validates every score against scale.
func Load(path string, scale grading.Scale) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read %q: %w", path, err)
	}
	return Parse(data, scale)
}

// Parse decodes a YAML (or JSON) roster document and validates it.
func Parse(data []byte, scale grading.Scale) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("roster: parse yaml: %w", err)
	}
	if err := validate(&r, scale); err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	return &r, nil
}

// validate checks student identity and score ranges.
func validate(r *Roster, scale grading.Scale) error {
	seen := make(map[string]int, len(r.Students))
	for i, s := range r.Students {
		if s.ID == "" {
			return fmt.Errorf("students[%d]: id is required", i)
		}
		if j, dup := seen[s.ID]; dup {
			return fmt.Errorf("students[%d]: id %q already used by students[%d]", i, s.ID, j)
		}
		seen[s.ID] = i

		b := s.Breakdown()
		for _, c := range grading.Categories {
			if err := scale.Check(b.Set(c)); err != nil {
				return fmt.Errorf("students[%d] %q: %s: %w", i, s.ID, c, err)
			}
		}
	}
	return nil
}

// Watch monitors path and calls onChange with the re-loaded roster after
// every write. scale is consulted on each reload so a rescaled policy applies
// to later edits. Invalid rosters are logged and skipped.
func Watch(ctx context.Context, path string, scale func() grading.Scale, onChange func(*Roster)) error {
	return watch.File(ctx, path, func() error {
		r, err := Load(path, scale())
		if err != nil {
			return err
		}
		slog.Info("roster: reloaded", "path", path, "students", len(r.Students))
		onChange(r)
		return nil
	})
}
