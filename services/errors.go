package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrInvalidID is returned when a required id is zero.
	ErrInvalidID = errors.New("invalid id")
	// ErrModuleGroupNotFound is returned when no module group has the requested id.
	ErrModuleGroupNotFound = errors.New("module group not found")
	// ErrModuleNotFound is returned when no module has the requested id.
	ErrModuleNotFound = errors.New("module not found")
	// ErrModuleNotInGroup is returned when a module is detached from a group it does not belong to.
	ErrModuleNotInGroup = errors.New("module does not belong to module group")
)

// translateNotFound maps gorm's not-found error to sentinel and wraps anything
// else as a storage failure described by op.
func translateNotFound(err error, sentinel error, op string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", sentinel, id)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func requireID(name string, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: %s is required", ErrInvalidID, name)
	}
	return nil
}
