package meals

import "errors"

var (
	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidDay       = errors.New("invalid day")
)
