// Package storage is the persistent key-value store behind every record
// collection. Each key holds one JSON document that is replaced as a whole on
// every write. Reads never fail: a missing, unreadable or corrupt entry falls
// back to the caller's default.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"family-organizer/pkg/logger"
)

const (
	KeyCurrentUser   = "currentUser"
	KeyFamilyMembers = "familyMembers"
	KeyMealPlans     = "mealPlans"
	KeyShoppingList  = "shoppingList"
	KeyActivities    = "activities"
	KeyAppSettings   = "appSettings"
)

// Keys lists every key the organizer persists, in a stable order.
var Keys = []string{
	KeyCurrentUser,
	KeyFamilyMembers,
	KeyMealPlans,
	KeyShoppingList,
	KeyActivities,
	KeyAppSettings,
}

var ErrNotFound = errors.New("storage: key not found")

// Backend is the durable medium. Load returns ErrNotFound for absent keys.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

type Recorder interface {
	StoreWrite(key, result string)
	StoreFallback(key, reason string)
}

type noopRecorder struct{}

func (noopRecorder) StoreWrite(string, string)    {}
func (noopRecorder) StoreFallback(string, string) {}

type Store struct {
	backend Backend
	log     logger.Logger
	metrics Recorder

	// mu serializes read-modify-write cycles issued through Update.
	mu sync.Mutex
}

type Option func(*Store)

func WithRecorder(recorder Recorder) Option {
	return func(s *Store) {
		if recorder != nil {
			s.metrics = recorder
		}
	}
}

func NewStore(backend Backend, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     log,
		metrics: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored value for key. An absent key is seeded with the
// default; an unreadable or corrupt one is left untouched and the default is
// returned.
func Get[T any](ctx context.Context, s *Store, key string, seed func() T) T {
	if value, found := load(ctx, s, key, seed); found {
		return value
	}

	// Recheck under the lock; an Update may have written the key since.
	s.mu.Lock()
	defer s.mu.Unlock()
	return get(ctx, s, key, seed)
}

// Set replaces the value for key. Failures are logged and counted, never
// returned.
func Set[T any](ctx context.Context, s *Store, key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set(ctx, s, key, value)
}

// Update reads key, applies fn and writes the result back while holding the
// store lock. An error from fn aborts the write and is returned unchanged.
func Update[T any](ctx context.Context, s *Store, key string, seed func() T, fn func(T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := get(ctx, s, key, seed)
	next, err := fn(current)
	if err != nil {
		return err
	}
	set(ctx, s, key, next)
	return nil
}

// get is Get for callers already holding s.mu.
func get[T any](ctx context.Context, s *Store, key string, seed func() T) T {
	if value, found := load(ctx, s, key, seed); found {
		return value
	}
	value := seed()
	set(ctx, s, key, value)
	return value
}

// load reports found=false only when the key is absent. Unreadable and corrupt
// entries resolve to the default without touching the backend.
func load[T any](ctx context.Context, s *Store, key string, seed func() T) (T, bool) {
	payload, err := s.backend.Load(ctx, key)
	switch {
	case err == nil:
		var value T
		decodeErr := json.Unmarshal(payload, &value)
		if decodeErr == nil {
			return value, true
		}
		s.log.InternalError("storage: decode failed, using default", decodeErr, "key", key)
		s.metrics.StoreFallback(key, "corrupt")
		return seed(), true
	case errors.Is(err, ErrNotFound):
		var zero T
		return zero, false
	default:
		s.log.InternalError("storage: load failed, using default", err, "key", key)
		s.metrics.StoreFallback(key, "unavailable")
		return seed(), true
	}
}

func set[T any](ctx context.Context, s *Store, key string, value T) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.InternalError("storage: encode failed", err, "key", key)
		s.metrics.StoreWrite(key, "encode_error")
		return
	}
	if err := s.backend.Save(ctx, key, payload); err != nil {
		s.log.InternalError("storage: save failed", err, "key", key)
		s.metrics.StoreWrite(key, "error")
		return
	}
	s.metrics.StoreWrite(key, "ok")
}
