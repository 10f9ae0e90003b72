package curve

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCurve   = errors.New("invalid curve")
	ErrNoIntersection = errors.New("curves do not intersect")
	ErrOutOfDomain    = errors.New("value outside curve domain")
)

type CurveError struct {
	Reason string
}

func invalidCurve(format string, args ...any) *CurveError {
	return &CurveError{
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *CurveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidCurve, e.Reason)
}

func (e *CurveError) Unwrap() error {
	return ErrInvalidCurve
}
