package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Economy errors. The engine reports insufficient funds and chests on
	// cooldown as a false result; these two codes are reserved for callers
	// that surface those results as errors.
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrChestNotAvailable ErrorCode = "CHEST_NOT_AVAILABLE"
	ErrStoryNotFound     ErrorCode = "STORY_NOT_FOUND"
	ErrBetOutOfRange     ErrorCode = "BET_OUT_OF_RANGE"

	// Argument errors
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// System errors
	ErrPersistenceError ErrorCode = "PERSISTENCE_ERROR"
	ErrDatabaseError    ErrorCode = "DATABASE_ERROR"
	ErrInternalError    ErrorCode = "INTERNAL_ERROR"
)

// GameError represents an engine error with a stable code
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidArgument is shorthand for an ErrInvalidArgument GameError with a formatted message
func InvalidArgument(format string, args ...interface{}) *GameError {
	return NewGameError(ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain
func As(err error, target **GameError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}
