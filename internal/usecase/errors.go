package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrCorpusNotReady = errors.New("corpus not loaded yet")
	ErrInternal       = errors.New("internal error")
)
