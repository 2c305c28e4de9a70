// Package report applies a grading policy to a roster and renders the
// results.
//
// report.go builds the per-student Report. render.go writes it as an aligned
// text table or indented JSON. prometheus.go writes it as a Prometheus text
// exposition with three gauge families:
//
//	gradebook_course_average{course, student}
//	gradebook_category_average{category, course, student}
//	gradebook_class_average{course}
package report
