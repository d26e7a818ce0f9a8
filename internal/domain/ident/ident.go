// Package ident assigns record identifiers.
package ident

import "github.com/google/uuid"

// New returns a time-ordered id (UUIDv7) that taken reports as unused.
// taken may be nil.
func New(taken func(id string) bool) string {
	for {
		id := next()
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// Set builds a lookup for New from the ids already in a collection.
func Set[T any](items []T, id func(T) string) func(string) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[id(item)] = struct{}{}
	}
	return func(candidate string) bool {
		_, ok := seen[candidate]
		return ok
	}
}

func next() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
