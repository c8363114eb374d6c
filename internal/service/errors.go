package service

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidCursor  = errors.New("invalid cursor")
	ErrNotFound       = errors.New("not found")
)
