package shopping

import "errors"

var (
	ErrItemNotFound = errors.New("shopping item not found")
)
