package services

import "errors"

// EntityNotFoundError reports that no record exists for a requested id.
type EntityNotFoundError struct {
	ID      string
	Message string
}

func (e *EntityNotFoundError) Error() string {
	return e.Message
}

func newEntityNotFound(id, message string) *EntityNotFoundError {
	return &EntityNotFoundError{ID: id, Message: message}
}

// IsEntityNotFound reports whether err is, or wraps, an EntityNotFoundError.
func IsEntityNotFound(err error) bool {
	var nf *EntityNotFoundError
	return errors.As(err, &nf)
}
