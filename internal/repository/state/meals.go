package state

import (
	"context"

	"family-organizer/internal/domain/meals"
	"family-organizer/internal/storage"
)

type MealPlanRepository struct {
	store *storage.Store
	seed  []meals.MealPlan
}

func NewMealPlanRepository(store *storage.Store, seed []meals.MealPlan) *MealPlanRepository {
	return &MealPlanRepository{store: store, seed: seed}
}

func (r *MealPlanRepository) ListMealPlans(ctx context.Context) []meals.MealPlan {
	return storage.Get(ctx, r.store, storage.KeyMealPlans, r.defaults)
}

func (r *MealPlanRepository) UpdateMealPlans(ctx context.Context, fn func([]meals.MealPlan) ([]meals.MealPlan, error)) error {
	return storage.Update(ctx, r.store, storage.KeyMealPlans, r.defaults, fn)
}

func (r *MealPlanRepository) defaults() []meals.MealPlan {
	return cloneOrEmpty(r.seed)
}
