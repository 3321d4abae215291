package deck

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	ErrEmptyCollection   ErrorCode = "EMPTY_COLLECTION"
	ErrInvalidArgument   ErrorCode = "INVALID_ARGUMENT"
	ErrInsufficientCards ErrorCode = "INSUFFICIENT_CARDS"
)

// DeckError represents an error returned by a deck operation
type DeckError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *DeckError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDeckError creates a new DeckError
func NewDeckError(code ErrorCode, message string) *DeckError {
	return &DeckError{
		Code:    code,
		Message: message,
	}
}

// IsDeckError checks if an error is a DeckError and has a specific code
func IsDeckError(err error, code ErrorCode) bool {
	var deckErr *DeckError
	if err == nil {
		return false
	}
	if ok := As(err, &deckErr); !ok {
		return false
	}
	return deckErr.Code == code
}

// As finds the first DeckError in err's chain and stores it in target
func As(err error, target **DeckError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}
