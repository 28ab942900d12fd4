package usecase

import "errors"

var (
	ErrInternal         = errors.New("internal error")
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrPositionNotFound = errors.New("Position not found")
)
