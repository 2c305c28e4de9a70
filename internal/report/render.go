package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Format selects the output encoding for Render.
type Format string

const (
	FormatText       Format = "text"
	FormatJSON       Format = "json"
	FormatPrometheus Format = "prometheus"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatPrometheus:
		return f, nil
	default:
		return "", fmt.Errorf("report: unknown format %q: want text|json|prometheus", s)
	}
}

// Render writes rep to w in the given format.
func Render(w io.Writer, rep *Report, f Format) error {
	switch f {
	case FormatText:
		return renderText(w, rep)
	case FormatJSON:
		return renderJSON(w, rep)
	case FormatPrometheus:
		return renderPrometheus(w, rep)
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}

func renderText(w io.Writer, rep *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if rep.Course != "" {
		fmt.Fprintf(tw, "Course: %s\n", rep.Course)
	}
	fmt.Fprintln(tw, "ID\tNAME\tTESTS\tASSIGNMENTS\tQUIZZES\tCOURSE\tLETTER")
	for _, r := range rep.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			r.ID, r.Name,
			r.TestAverage, r.AssignmentAverage, r.QuizAverage,
			r.CourseAverage, r.Letter)
	}
	fmt.Fprintf(tw, "\t\t\t\t\t%.2f\tclass average\n", rep.ClassAverage)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}
	return nil
}

func renderJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: write json: %w", err)
	}
	return nil
}
