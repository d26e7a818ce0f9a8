package state

import (
	"context"

	"family-organizer/internal/domain/session"
	"family-organizer/internal/storage"
)

// SessionRepository keeps the single signed-in user. A nil user is stored
// as JSON null.
type SessionRepository struct {
	store *storage.Store
}

func NewSessionRepository(store *storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) CurrentUser(ctx context.Context) *session.User {
	return storage.Get(ctx, r.store, storage.KeyCurrentUser, noUser)
}

func (r *SessionRepository) SaveCurrentUser(ctx context.Context, user *session.User) {
	storage.Set(ctx, r.store, storage.KeyCurrentUser, user)
}

func noUser() *session.User {
	return nil
}
