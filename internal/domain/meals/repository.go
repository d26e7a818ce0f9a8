package meals

import (
	"context"

	"family-organizer/internal/domain/members"
)

type Repository interface {
	ListMealPlans(ctx context.Context) []MealPlan
	UpdateMealPlans(ctx context.Context, fn func([]MealPlan) ([]MealPlan, error)) error
}

type ChildDirectory interface {
	Children(ctx context.Context) []members.FamilyMember
}
