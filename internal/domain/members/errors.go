package members

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
)
