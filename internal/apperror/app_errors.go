package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell position")
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
)
