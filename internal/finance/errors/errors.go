package errors

import (
	"errors"
)

// ValidationError marks rejected input, mapped to 422 at the HTTP boundary.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrInvalidCategory = NewValidationError("Invalid category")

var (
	// ErrExpenseNotFound and ErrCategoryNotFound mean the id does not exist
	// at all. ErrNotOwner means the record exists but belongs to somebody
	// else; the two cases are deliberately kept distinct.
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNotOwner         = errors.New("not authorized to access this record")
)
