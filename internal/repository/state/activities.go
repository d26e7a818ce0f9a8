package state

import (
	"context"

	"family-organizer/internal/domain/activities"
	"family-organizer/internal/storage"
)

type ActivityRepository struct {
	store *storage.Store
	seed  []activities.Activity
}

func NewActivityRepository(store *storage.Store, seed []activities.Activity) *ActivityRepository {
	return &ActivityRepository{store: store, seed: seed}
}

func (r *ActivityRepository) ListActivities(ctx context.Context) []activities.Activity {
	return storage.Get(ctx, r.store, storage.KeyActivities, r.defaults)
}

func (r *ActivityRepository) UpdateActivities(ctx context.Context, fn func([]activities.Activity) ([]activities.Activity, error)) error {
	return storage.Update(ctx, r.store, storage.KeyActivities, r.defaults, fn)
}

func (r *ActivityRepository) defaults() []activities.Activity {
	return cloneOrEmpty(r.seed)
}
