package sdcurve

import (
	"errors"
	"fmt"

	"github.com/midbel/econcharts/curve"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrOddCurveCount  = errors.New("equilibrium requires pairs of supply and demand curves")
	ErrInvalidBounds  = errors.New("minimum price must be lower than maximum price")
	ErrInvalidCurve   = curve.ErrInvalidCurve
	ErrNoIntersection = curve.ErrNoIntersection
)

type InputError struct {
	Field  string
	Reason string
}

func invalidInput(field, format string, args ...any) *InputError {
	return &InputError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
