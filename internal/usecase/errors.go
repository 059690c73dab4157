package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownPhase     = errors.New("unknown phase")
	ErrPipelineBusy     = errors.New("pipeline already running")
	ErrValidationFailed = errors.New("validation failed")
)
