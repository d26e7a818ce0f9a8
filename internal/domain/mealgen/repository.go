package mealgen

import (
	"context"

	"family-organizer/internal/domain/meals"
	"family-organizer/internal/integration/completions"
)

type Completer interface {
	Complete(ctx context.Context, apiKey string, messages ...completions.Message) (string, error)
}

type KeyStore interface {
	APIKey(ctx context.Context) string
	SetAPIKey(ctx context.Context, key string) error
}

type PlanReplacer interface {
	ReplaceAll(ctx context.Context, plans []meals.MealPlan) ([]meals.MealPlan, error)
}

type Recorder interface {
	MealGeneration(result string)
}
