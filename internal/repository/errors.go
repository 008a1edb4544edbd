package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound    = errors.New("resource not found")
	ErrShiftActive = errors.New("dispatcher already has an active shift")
)
