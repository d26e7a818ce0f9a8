package session

import "errors"

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrNotSignedIn       = errors.New("not signed in")
)
