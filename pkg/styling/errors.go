package styling

import (
	"errors"
	"fmt"

	"style-weaver-be/internal/entity"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrUnavailable        = errors.New("upstream unavailable")
	ErrEmptyResult        = errors.New("empty result")
	ErrGenerationRejected = errors.New("generation rejected")
)

// ReasonOf classifies an upstream error. Anything that is not one of the
// known sentinels, including context cancellation, counts as unavailable.
func ReasonOf(err error) entity.FailureReason {
	switch {
	case err == nil:
		return entity.ReasonNone
	case errors.Is(err, ErrNotFound):
		return entity.ReasonNotFound
	case errors.Is(err, ErrEmptyResult):
		return entity.ReasonEmptyResult
	case errors.Is(err, ErrGenerationRejected):
		return entity.ReasonGenerationRejected
	default:
		return entity.ReasonUnavailable
	}
}

// IsExpected reports errors that describe the data rather than the health of
// the upstream service.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmptyResult) ||
		errors.Is(err, ErrGenerationRejected)
}

// asUnavailable wraps unclassified errors with ErrUnavailable so callers can
// match them with errors.Is.
func asUnavailable(err error) error {
	if err == nil || errors.Is(err, ErrUnavailable) || IsExpected(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
