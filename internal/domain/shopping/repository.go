package shopping

import (
	"context"

	"family-organizer/internal/domain/meals"
)

type Repository interface {
	ListShoppingItems(ctx context.Context) []ShoppingItem
	UpdateShoppingItems(ctx context.Context, fn func([]ShoppingItem) ([]ShoppingItem, error)) error
}

type MealPlanSource interface {
	List(ctx context.Context) []meals.MealPlan
}
