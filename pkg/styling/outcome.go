package styling

import "style-weaver-be/internal/entity"

// Outcome is the result of one pipeline stage: either the real value or a
// fallback value with the status and reason that caused it.
type Outcome[T any] struct {
	Value  T
	Report entity.StageReport
	Err    error
}

func Ok[T any](value T) Outcome[T] {
	return Outcome[T]{
		Value:  value,
		Report: entity.StageReport{Status: entity.StageStatusOK},
	}
}

func Fallback[T any](value T, status entity.StageStatus, err error) Outcome[T] {
	report := entity.StageReport{Status: status, Reason: ReasonOf(err)}
	if err != nil {
		report.Detail = err.Error()
	}
	return Outcome[T]{Value: value, Report: report, Err: err}
}

func (o Outcome[T]) OK() bool {
	return o.Report.Status == entity.StageStatusOK
}
