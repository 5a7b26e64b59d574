package service

import (
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// notFoundOr turns a missing row into ErrNotFound and wraps everything
// else unchanged.
func notFoundOr(err error, what string) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, qrm.ErrNoRows)
}
