package report

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/gradebook/gradebook/internal/grading"
)

// Metric family names written by the Prometheus renderer.
const (
	metricCourseAverage   = "gradebook_course_average"
	metricCategoryAverage = "gradebook_category_average"
	metricClassAverage    = "gradebook_class_average"
)

// Families converts rep into gauge metric families. Families without any
// samples are omitted since the text format cannot express them.
func Families(rep *Report) []*dto.MetricFamily {
	course := gaugeFamily(metricCourseAverage, "Weighted course average per student.")
	category := gaugeFamily(metricCategoryAverage, "Per-category average per student, after any dropped score.")
	class := gaugeFamily(metricClassAverage, "Mean course average across the roster.")

	for _, r := range rep.Rows {
		course.Metric = append(course.Metric,
			gauge(r.CourseAverage, "course", rep.Course, "student", r.ID))
		for _, c := range grading.Categories {
			category.Metric = append(category.Metric,
				gauge(r.CategoryAverage(c), "category", string(c), "course", rep.Course, "student", r.ID))
		}
	}
	if len(rep.Rows) > 0 {
		class.Metric = append(class.Metric, gauge(rep.ClassAverage, "course", rep.Course))
	}

	var out []*dto.MetricFamily
	for _, mf := range []*dto.MetricFamily{course, category, class} {
		if len(mf.Metric) > 0 {
			out = append(out, mf)
		}
	}
	return out
}

func renderPrometheus(w io.Writer, rep *Report) error {
	for _, mf := range Families(rep) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func gaugeFamily(name, help string) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
}

// gauge builds one sample. labels alternates name, value and must already be
// sorted by name.
func gauge(v float64, labels ...string) *dto.Metric {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(v)}}
	for i := 0; i+1 < len(labels); i += 2 {
		m.Label = append(m.Label, &dto.LabelPair{
			Name:  proto.String(labels[i]),
			Value: proto.String(labels[i+1]),
		})
	}
	return m
}
