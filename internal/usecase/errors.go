package usecase

import (
	"errors"
	"strings"
)

// Error texts double as the public error codes of the HTTP API.
var (
	ErrMissingValueOnRequest = errors.New("MissingValueOnRequest")
	ErrInvalidCardType       = errors.New("InvalidCardType")
	ErrPassNotFound          = errors.New("PassNotFound")
	ErrImageRequestAborted   = errors.New("ImageRequestAborted")
)

// MissingFieldsError lists every required field absent from a card record.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingValueOnRequest.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingValueOnRequest
}
