package board

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a coordinate, size or attribute value
// is not acceptable for the board in its current state.
type ErrInvalidArgument struct {
	Reason string
}

func (e *ErrInvalidArgument) Error() string {
	return "invalid argument: " + e.Reason
}

// ErrInvalidState is returned when an operation needs a tile precondition
// that does not hold, such as removing a feature from a bare tile.
type ErrInvalidState struct {
	Reason string
}

func (e *ErrInvalidState) Error() string {
	return "invalid state: " + e.Reason
}

func IsInvalidArgument(err error) bool {
	var target *ErrInvalidArgument
	return errors.As(err, &target)
}

func IsInvalidState(err error) bool {
	var target *ErrInvalidState
	return errors.As(err, &target)
}

func invalidArgument(format string, args ...interface{}) error {
	return &ErrInvalidArgument{Reason: fmt.Sprintf(format, args...)}
}

func invalidState(format string, args ...interface{}) error {
	return &ErrInvalidState{Reason: fmt.Sprintf(format, args...)}
}

func invalidCoordinate(q, r int) error {
	return invalidArgument("invalid coordinate (%d, %d)", q, r)
}
