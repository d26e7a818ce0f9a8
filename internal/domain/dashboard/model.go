package dashboard

import (
	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/activities"
	"family-organizer/internal/domain/meals"
)

type MemberOverview struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role access.Role `json:"role"`
}

type Preferences struct {
	Meal     []string `json:"mealPreferences"`
	Activity []string `json:"activityPreferences"`
}

// Summary is the landing screen. Sections the role cannot see are omitted.
type Summary struct {
	Weekday            string                `json:"weekday"`
	TodaysMeal         *meals.MealPlan       `json:"todaysMeal,omitempty"`
	UpcomingActivities []activities.Activity `json:"upcomingActivities"`
	PendingShopping    *int                  `json:"pendingShopping,omitempty"`
	Family             []MemberOverview      `json:"family,omitempty"`
	MyPreferences      *Preferences          `json:"myPreferences,omitempty"`
}
