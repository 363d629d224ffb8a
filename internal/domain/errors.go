package domain

import "errors"

// ErrAuthenticationRequired is returned when a query parameter needs an
// authenticated caller and the request carries none.
var ErrAuthenticationRequired = errors.New("authentication required")

// InvalidQueryError marks a malformed or unsatisfiable query parameter.
// Detail is safe to surface to clients.
type InvalidQueryError struct {
	Detail string
}

func (e *InvalidQueryError) Error() string {
	return e.Detail
}

// NewInvalidQuery builds an InvalidQueryError with the given client-facing
// detail message.
func NewInvalidQuery(detail string) *InvalidQueryError {
	return &InvalidQueryError{Detail: detail}
}
