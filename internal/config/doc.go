// Package config loads and watches the grading policy file (gradebook.yaml).
//
// Config fields:
//   - LogLevel    — debug | info | warn | error (default info)
//   - Scale       — inclusive min/max bounds for a single score (default 0–100)
//   - Weights     — test, assignment and quiz weights; must sum to 1
//     (default 0.4/0.4/0.2)
//   - DropLowest  — categories that drop their lowest score (default [quizzes])
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, onChange) re-loads the file on change and keeps the
// previous config when the new one does not parse or validate.
package config
