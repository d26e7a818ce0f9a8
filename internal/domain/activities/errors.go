package activities

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
)
