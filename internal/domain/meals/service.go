package meals

import (
	"context"
	"slices"
	"strings"

	"family-organizer/internal/domain/ident"
	"family-organizer/internal/domain/validation"
)

type Service struct {
	repo     Repository
	children ChildDirectory
}

func NewService(repo Repository, children ChildDirectory) *Service {
	return &Service{repo: repo, children: children}
}

// List returns plans ordered Monday to Sunday. Plans for the same day keep
// their creation order.
func (s *Service) List(ctx context.Context) []MealPlan {
	plans := s.repo.ListMealPlans(ctx)
	slices.SortStableFunc(plans, func(a, b MealPlan) int {
		return dayIndex(a.Day) - dayIndex(b.Day)
	})
	return plans
}

func (s *Service) Get(ctx context.Context, id string) (*MealPlan, error) {
	for _, plan := range s.repo.ListMealPlans(ctx) {
		if plan.ID == id {
			return &plan, nil
		}
	}
	return nil, ErrMealPlanNotFound
}

// ForDay returns the most recently created plan for day.
func (s *Service) ForDay(ctx context.Context, day string) (*MealPlan, error) {
	canonical, err := ParseDay(day)
	if err != nil {
		return nil, err
	}

	plans := s.repo.ListMealPlans(ctx)
	for i := len(plans) - 1; i >= 0; i-- {
		if plans[i].Day == canonical {
			plan := plans[i]
			return &plan, nil
		}
	}
	return nil, ErrMealPlanNotFound
}

func (s *Service) Create(ctx context.Context, input MealPlanInput) (*MealPlan, error) {
	plan, err := s.planFromInput(ctx, input)
	if err != nil {
		return nil, err
	}

	err = s.repo.UpdateMealPlans(ctx, func(current []MealPlan) ([]MealPlan, error) {
		plan.ID = ident.New(ident.Set(current, planID))
		return append(current, plan), nil
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// Update replaces every editable field of the plan and refreshes its
// child preference snapshot.
func (s *Service) Update(ctx context.Context, id string, input MealPlanInput) (*MealPlan, error) {
	plan, err := s.planFromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	plan.ID = id

	err = s.repo.UpdateMealPlans(ctx, func(current []MealPlan) ([]MealPlan, error) {
		idx := slices.IndexFunc(current, func(p MealPlan) bool { return p.ID == id })
		if idx < 0 {
			return nil, ErrMealPlanNotFound
		}
		next := slices.Clone(current)
		next[idx] = plan
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.UpdateMealPlans(ctx, func(current []MealPlan) ([]MealPlan, error) {
		idx := slices.IndexFunc(current, func(p MealPlan) bool { return p.ID == id })
		if idx < 0 {
			return nil, ErrMealPlanNotFound
		}
		return slices.Delete(slices.Clone(current), idx, idx+1), nil
	})
}

// ReplaceAll swaps the whole collection for plans, stamping each with the
// current children's meal preferences. Ids already used within plans are
// reassigned.
func (s *Service) ReplaceAll(ctx context.Context, plans []MealPlan) ([]MealPlan, error) {
	snapshot := s.ChildPreferences(ctx)
	next := make([]MealPlan, 0, len(plans))
	seen := make(map[string]struct{}, len(plans))

	for _, plan := range plans {
		day, err := ParseDay(plan.Day)
		if err != nil {
			return nil, validation.Errorf("day must be a weekday name, got %q", plan.Day)
		}
		plan.Day = day
		if _, dup := seen[plan.ID]; plan.ID == "" || dup {
			plan.ID = ident.New(func(candidate string) bool {
				_, ok := seen[candidate]
				return ok
			})
		}
		seen[plan.ID] = struct{}{}
		plan.Snacks = cleanSnacks(plan.Snacks)
		plan.ChildPreferences = copyPreferences(snapshot)
		next = append(next, plan)
	}

	err := s.repo.UpdateMealPlans(ctx, func([]MealPlan) ([]MealPlan, error) {
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return next, nil
}

// ChildPreferences maps each child with meal preferences to a copy of them.
func (s *Service) ChildPreferences(ctx context.Context) map[string][]string {
	snapshot := make(map[string][]string)
	for _, child := range s.children.Children(ctx) {
		if len(child.MealPreferences) == 0 {
			continue
		}
		snapshot[child.Name] = slices.Clone(child.MealPreferences)
	}
	if len(snapshot) == 0 {
		return nil
	}
	return snapshot
}

func (s *Service) planFromInput(ctx context.Context, input MealPlanInput) (MealPlan, error) {
	day, err := ParseDay(input.Day)
	if err != nil {
		return MealPlan{}, validation.Errorf("day must be a weekday name, got %q", input.Day)
	}
	return MealPlan{
		Day:              day,
		Breakfast:        strings.TrimSpace(input.Breakfast),
		Lunch:            strings.TrimSpace(input.Lunch),
		Dinner:           strings.TrimSpace(input.Dinner),
		Snacks:           cleanSnacks(input.Snacks),
		Notes:            strings.TrimSpace(input.Notes),
		ChildPreferences: s.ChildPreferences(ctx),
	}, nil
}

func copyPreferences(snapshot map[string][]string) map[string][]string {
	if snapshot == nil {
		return nil
	}
	copied := make(map[string][]string, len(snapshot))
	for name, prefs := range snapshot {
		copied[name] = slices.Clone(prefs)
	}
	return copied
}

func cleanSnacks(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}

func planID(p MealPlan) string {
	return p.ID
}
