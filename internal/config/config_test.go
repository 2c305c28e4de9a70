package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gradebook/gradebook/internal/grading"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "gradebook.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	// Only log_level is set; every other field falls back to its default.
	p := writeConfig(t, "log_level: info\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("log_level: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Scale != grading.DefaultScale() {
		t.Errorf("scale: got %+v, want %+v", cfg.Scale, grading.DefaultScale())
	}
	if cfg.Weights.WeightConfig() != grading.DefaultWeights() {
		t.Errorf("weights: got %+v, want %+v", cfg.Weights, grading.DefaultWeights())
	}
	if len(cfg.DropLowest) != 1 || cfg.DropLowest[0] != "quizzes" {
		t.Errorf("drop_lowest: got %v, want [quizzes]", cfg.DropLowest)
	}
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `log_level: debug
scale:
  min: 0
  max: 20
weights:
  test: 0.5
  assignment: 0.3
  quiz: 0.2
drop_lowest: [tests, quizzes]
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level(): got %v, want debug", cfg.Level())
	}
	if cfg.Scale.Max != 20 {
		t.Errorf("scale.max: got %g, want 20", cfg.Scale.Max)
	}
	if cfg.Weights.Test != 0.5 || cfg.Weights.Assignment != 0.3 || cfg.Weights.Quiz != 0.2 {
		t.Errorf("weights: got %+v", cfg.Weights)
	}

	pol := cfg.Policy()
	if !pol.DropLowest[grading.CategoryTests] || !pol.DropLowest[grading.CategoryQuizzes] {
		t.Errorf("policy drop set: got %v, want tests+quizzes", pol.DropLowest)
	}
	if pol.DropLowest[grading.CategoryAssignments] {
		t.Error("assignments should not drop")
	}
}

func TestLoad_EmptyDropLowestDisablesDropping(t *testing.T) {
	p := writeConfig(t, "drop_lowest: []\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Policy().DropLowest) != 0 {
		t.Errorf("drop set: got %v, want empty", cfg.Policy().DropLowest)
	}
}

func TestLoad_PartialScaleKeepsDefaultMin(t *testing.T) {
	p := writeConfig(t, "scale:\n  max: 4\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scale.Min != 0 || cfg.Scale.Max != 4 {
		t.Errorf("scale: got %+v, want {0 4}", cfg.Scale)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"weights do not sum to one", "weights: {test: 0.5, assignment: 0.5, quiz: 0.5}\n"},
		{"partial weights break the sum", "weights: {test: 0.6}\n"},
		{"negative weight", "weights: {test: 1.2, assignment: -0.4, quiz: 0.2}\n"},
		{"inverted scale", "scale: {min: 100, max: 0}\n"},
		{"empty scale", "scale: {min: 50, max: 50}\n"},
		{"unknown drop category", "drop_lowest: [labs]\n"},
		{"duplicate drop category", "drop_lowest: [quizzes, quizzes]\n"},
		{"unknown log level", "log_level: verbose\n"},
		{"malformed yaml", "weights: [1, 2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.yaml)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/gradebook.yaml")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestDefault_PolicyMatchesGradingDefault(t *testing.T) {
	got := Default().Policy()
	want := grading.DefaultPolicy()
	if got.Weights != want.Weights {
		t.Errorf("weights: got %+v, want %+v", got.Weights, want.Weights)
	}
	if len(got.DropLowest) != len(want.DropLowest) || !got.DropLowest[grading.CategoryQuizzes] {
		t.Errorf("drop set: got %v, want %v", got.DropLowest, want.DropLowest)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		cfg := &Config{LogLevel: tc.in}
		if got := cfg.Level(); got != tc.want {
			t.Errorf("Level(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
