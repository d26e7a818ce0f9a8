// Package seed provides the collections a fresh store starts with.
package seed

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/activities"
	"family-organizer/internal/domain/meals"
	"family-organizer/internal/domain/members"
)

type Data struct {
	Members    []members.FamilyMember `yaml:"familyMembers"`
	MealPlans  []meals.MealPlan       `yaml:"mealPlans"`
	Activities []activities.Activity  `yaml:"activities"`
}

// Load returns the built-in defaults with any collection present in the
// YAML file at path replacing its default. An empty path means defaults only.
func Load(path string) (Data, error) {
	data := Defaults()
	if path == "" {
		return data, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var override Data
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Data{}, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	if err := override.validate(); err != nil {
		return Data{}, fmt.Errorf("seed: %s: %w", path, err)
	}

	if override.Members != nil {
		data.Members = override.Members
	}
	if override.MealPlans != nil {
		data.MealPlans = override.MealPlans
	}
	if override.Activities != nil {
		data.Activities = override.Activities
	}
	return data, nil
}

func (d Data) validate() error {
	var errs []error
	for i, member := range d.Members {
		if member.ID == "" || member.Name == "" {
			errs = append(errs, fmt.Errorf("familyMembers[%d]: id and name are required", i))
		}
		if !member.Role.Valid() {
			errs = append(errs, fmt.Errorf("familyMembers[%d]: %w: %q", i, access.ErrUnknownRole, member.Role))
		}
	}
	for i, plan := range d.MealPlans {
		if _, err := meals.ParseDay(plan.Day); err != nil {
			errs = append(errs, fmt.Errorf("mealPlans[%d]: %w: %q", i, err, plan.Day))
		}
	}
	for i, activity := range d.Activities {
		if !activity.Type.Valid() {
			errs = append(errs, fmt.Errorf("activities[%d]: unknown type %q", i, activity.Type))
		}
	}
	return errors.Join(errs...)
}

func Defaults() Data {
	return Data{
		Members:    defaultMembers(),
		MealPlans:  defaultMealPlans(),
		Activities: defaultActivities(),
	}
}

func defaultMembers() []members.FamilyMember {
	return []members.FamilyMember{
		{
			ID:                  "1",
			Name:                "Ramesh (Parent)",
			Role:                access.RoleAdmin,
			Password:            "admin123",
			Preferences:         []string{"Healthy eating", "Outdoor activities"},
			MealPreferences:     []string{"Vegetarian", "Low spice"},
			ActivityPreferences: []string{"Sports", "Educational"},
		},
		{
			ID:                  "2",
			Name:                "Suresh (Cook)",
			Role:                access.RoleCook,
			Password:            "cook123",
			Preferences:         []string{"Quick recipes", "Indian cuisine"},
			MealPreferences:     []string{"Traditional Indian", "Vegetarian"},
			ActivityPreferences: []string{},
		},
		{
			ID:                  "3",
			Name:                "Jayesh (Driver)",
			Role:                access.RoleDriver,
			Password:            "driver123",
			Preferences:         []string{"Nearby locations", "Flexible timing"},
			MealPreferences:     []string{},
			ActivityPreferences: []string{"Local activities", "Group activities"},
		},
		{
			ID:                  "4",
			Name:                "Dinesh",
			Role:                access.RoleChild,
			Password:            "dinesh123",
			Preferences:         []string{"Sweet foods", "Fun activities"},
			MealPreferences:     []string{"Mild spice", "Sweet dishes", "Fruits", "No bitter vegetables"},
			ActivityPreferences: []string{"Soccer", "Dancing", "Art & Crafts", "Swimming"},
		},
		{
			ID:                  "5",
			Name:                "Pragnesh",
			Role:                access.RoleChild,
			Password:            "pragnesh123",
			Preferences:         []string{"Music", "Outdoor games"},
			MealPreferences:     []string{"Medium spice", "Rice dishes", "Snacks", "No green vegetables"},
			ActivityPreferences: []string{"Music lessons", "Cricket", "Video games", "Reading"},
		},
	}
}

func defaultMealPlans() []meals.MealPlan {
	return []meals.MealPlan{
		{
			ID:        "1",
			Day:       "Monday",
			Breakfast: "Poha with vegetables",
			Lunch:     "Dal rice with sabzi",
			Dinner:    "Roti with paneer curry",
			Snacks:    []string{"Samosa", "Chai"},
			ChildPreferences: map[string][]string{
				"Dinesh":   {"Sweet dishes", "Mild spice"},
				"Pragnesh": {"Rice dishes", "Medium spice"},
			},
		},
		{
			ID:        "2",
			Day:       "Tuesday",
			Breakfast: "Upma with coconut chutney",
			Lunch:     "Rajma rice",
			Dinner:    "Chapati with aloo gobi",
			Snacks:    []string{"Pakora", "Lassi"},
			ChildPreferences: map[string][]string{
				"Dinesh":   {"Sweet dishes", "Fruits"},
				"Pragnesh": {"Rice dishes", "Snacks"},
			},
		},
	}
}

func defaultActivities() []activities.Activity {
	return []activities.Activity{
		{
			ID:                 "1",
			ChildName:          "Dinesh",
			Title:              "Soccer Practice",
			Type:               activities.TypeSoccer,
			Date:               "2024-12-20",
			Time:               "16:00",
			Location:           "Community Sports Center",
			Driver:             "Jayesh (Driver)",
			Notes:              "Bring water bottle and cleats",
			MatchesPreferences: true,
		},
		{
			ID:                 "2",
			ChildName:          "Pragnesh",
			Title:              "Piano Lesson",
			Type:               activities.TypeMusic,
			Date:               "2024-12-21",
			Time:               "15:30",
			Location:           "Music Academy",
			Driver:             "Jayesh (Driver)",
			Notes:              "Practice scales before lesson",
			MatchesPreferences: true,
		},
		{
			ID:                 "3",
			ChildName:          "Dinesh",
			Title:              "Art Class",
			Type:               activities.TypeOther,
			Date:               "2024-12-22",
			Time:               "14:00",
			Location:           "Community Center",
			Driver:             "Jayesh (Driver)",
			Notes:              "Bring art supplies",
			MatchesPreferences: true,
		},
	}
}
