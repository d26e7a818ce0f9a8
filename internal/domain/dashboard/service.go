package dashboard

import (
	"context"
	"time"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/activities"
	"family-organizer/internal/domain/meals"
	"family-organizer/internal/domain/members"
)

const (
	upcomingDays  = 7
	upcomingLimit = 3
)

type MealSource interface {
	ForDay(ctx context.Context, day string) (*meals.MealPlan, error)
}

type ActivitySource interface {
	Within(ctx context.Context, p access.Principal, days, limit int) []activities.Activity
}

type ShoppingSource interface {
	PendingCount(ctx context.Context) int
}

type MemberSource interface {
	List(ctx context.Context) []members.FamilyMember
	Get(ctx context.Context, id string) (*members.FamilyMember, error)
}

type Service struct {
	meals      MealSource
	activities ActivitySource
	shopping   ShoppingSource
	members    MemberSource
	now        func() time.Time
}

func NewService(mealSource MealSource, activitySource ActivitySource, shoppingSource ShoppingSource, memberSource MemberSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		meals:      mealSource,
		activities: activitySource,
		shopping:   shoppingSource,
		members:    memberSource,
		now:        now,
	}
}

func (s *Service) Summary(ctx context.Context, memberID string, p access.Principal) Summary {
	weekday := s.now().Weekday().String()
	summary := Summary{
		Weekday:            weekday,
		UpcomingActivities: s.activities.Within(ctx, p, upcomingDays, upcomingLimit),
	}

	if access.Allows(p.Role, access.CollectionMealPlans) {
		if plan, err := s.meals.ForDay(ctx, weekday); err == nil {
			summary.TodaysMeal = plan
		}
	}

	if access.Allows(p.Role, access.CollectionShopping) {
		pending := s.shopping.PendingCount(ctx)
		summary.PendingShopping = &pending
	}

	switch p.Role {
	case access.RoleAdmin:
		for _, member := range s.members.List(ctx) {
			summary.Family = append(summary.Family, MemberOverview{ID: member.ID, Name: member.Name, Role: member.Role})
		}
	case access.RoleChild:
		if member, err := s.members.Get(ctx, memberID); err == nil {
			summary.MyPreferences = &Preferences{
				Meal:     nonNil(member.MealPreferences),
				Activity: nonNil(member.ActivityPreferences),
			}
		}
	}

	return summary
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
