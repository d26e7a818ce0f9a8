package meals

import "strings"

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type MealPlan struct {
	ID               string              `json:"id" yaml:"id"`
	Day              string              `json:"day" yaml:"day"`
	Breakfast        string              `json:"breakfast" yaml:"breakfast"`
	Lunch            string              `json:"lunch" yaml:"lunch"`
	Dinner           string              `json:"dinner" yaml:"dinner"`
	Snacks           []string            `json:"snacks" yaml:"snacks"`
	Notes            string              `json:"notes,omitempty" yaml:"notes"`
	ChildPreferences map[string][]string `json:"childPreferences,omitempty" yaml:"childPreferences"`
}

type MealPlanInput struct {
	Day       string
	Breakfast string
	Lunch     string
	Dinner    string
	Snacks    []string
	Notes     string
}

// ParseDay returns the canonical weekday name for value, ignoring case.
func ParseDay(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, day := range Weekdays {
		if strings.EqualFold(day, value) {
			return day, nil
		}
	}
	return "", ErrInvalidDay
}

func dayIndex(day string) int {
	for i, weekday := range Weekdays {
		if weekday == day {
			return i
		}
	}
	return len(Weekdays)
}
