package mealgen

import "family-organizer/internal/domain/meals"

type GenerateInput struct {
	APIKey     string
	SaveAPIKey bool
}

// Preview is a generated week that has not been stored yet.
type Preview struct {
	Plans       []meals.MealPlan `json:"plans"`
	MissingDays []string         `json:"missingDays"`
}
