package repositories

import "errors"

// ErrNotFound is returned when a board is not in storage.
type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "board not found in storage"
}

func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}
