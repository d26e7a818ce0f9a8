package meals

import (
	"context"
	"errors"
	"testing"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/members"
	"family-organizer/internal/domain/validation"
)

type fakeMealRepo struct {
	items []MealPlan
}

func (r *fakeMealRepo) ListMealPlans(ctx context.Context) []MealPlan {
	return append([]MealPlan(nil), r.items...)
}

func (r *fakeMealRepo) UpdateMealPlans(ctx context.Context, fn func([]MealPlan) ([]MealPlan, error)) error {
	next, err := fn(r.ListMealPlans(ctx))
	if err != nil {
		return err
	}
	r.items = next
	return nil
}

type fakeChildren []members.FamilyMember

func (c fakeChildren) Children(ctx context.Context) []members.FamilyMember {
	return c
}

var testChildren = fakeChildren{
	{ID: "4", Name: "Dinesh", Role: access.RoleChild, MealPreferences: []string{"pasta", "pizza"}},
	{ID: "5", Name: "Pragnesh", Role: access.RoleChild},
}

func TestCreateMealPlanSnapshotsChildren(t *testing.T) {
	repo := &fakeMealRepo{}
	service := NewService(repo, testChildren)

	plan, err := service.Create(context.Background(), MealPlanInput{Day: "friday", Breakfast: " Poha ", Snacks: []string{"Chai", " "}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Day != "Friday" || plan.Breakfast != "Poha" || len(plan.Snacks) != 1 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if len(plan.ChildPreferences) != 1 || len(plan.ChildPreferences["Dinesh"]) != 2 {
		t.Fatalf("unexpected snapshot: %v", plan.ChildPreferences)
	}
	if _, ok := plan.ChildPreferences["Pragnesh"]; ok {
		t.Fatalf("expected child without preferences omitted")
	}
}

func TestCreateMealPlanInvalidDay(t *testing.T) {
	service := NewService(&fakeMealRepo{}, testChildren)
	if _, err := service.Create(context.Background(), MealPlanInput{Day: "Funday"}); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestForDayLastCreatedWins(t *testing.T) {
	repo := &fakeMealRepo{items: []MealPlan{
		{ID: "a", Day: "Monday", Breakfast: "first"},
		{ID: "b", Day: "Tuesday"},
		{ID: "c", Day: "Monday", Breakfast: "second"},
	}}
	service := NewService(repo, testChildren)

	plan, err := service.ForDay(context.Background(), "monday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.ID != "c" {
		t.Fatalf("expected last created plan, got %s", plan.ID)
	}
	if _, err := service.ForDay(context.Background(), "Sunday"); !errors.Is(err, ErrMealPlanNotFound) {
		t.Fatalf("expected ErrMealPlanNotFound, got %v", err)
	}
	if _, err := service.ForDay(context.Background(), "Someday"); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
}

func TestListOrdersByWeekday(t *testing.T) {
	repo := &fakeMealRepo{items: []MealPlan{
		{ID: "1", Day: "Sunday"},
		{ID: "2", Day: "Monday"},
		{ID: "3", Day: "Wednesday"},
		{ID: "4", Day: "Monday"},
	}}
	service := NewService(repo, testChildren)

	plans := service.List(context.Background())
	var ids string
	for _, plan := range plans {
		ids += plan.ID
	}
	if ids != "2431" {
		t.Fatalf("unexpected order: %s", ids)
	}
}

func TestUpdateAndDeleteMealPlan(t *testing.T) {
	repo := &fakeMealRepo{items: []MealPlan{{ID: "a", Day: "Monday", Breakfast: "old"}}}
	service := NewService(repo, testChildren)
	ctx := context.Background()

	plan, err := service.Update(ctx, "a", MealPlanInput{Day: "Monday", Breakfast: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.ID != "a" || repo.items[0].Breakfast != "new" {
		t.Fatalf("expected plan updated, got %+v", repo.items[0])
	}
	if _, err := service.Update(ctx, "missing", MealPlanInput{Day: "Monday"}); !errors.Is(err, ErrMealPlanNotFound) {
		t.Fatalf("expected ErrMealPlanNotFound, got %v", err)
	}
	if err := service.Delete(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected empty collection, got %+v", repo.items)
	}
	if err := service.Delete(ctx, "a"); !errors.Is(err, ErrMealPlanNotFound) {
		t.Fatalf("expected ErrMealPlanNotFound, got %v", err)
	}
}

func TestReplaceAll(t *testing.T) {
	repo := &fakeMealRepo{items: []MealPlan{{ID: "old", Day: "Monday"}}}
	service := NewService(repo, testChildren)

	parsed := ParseWeek("Monday:\nBreakfast: Poha\nLunch: Dal\nDinner: Roti\nSnacks: Chai\nTuesday:\nBreakfast: Upma\nLunch: Rice\nDinner: Khichdi\nSnacks: Fruit")
	plans, err := service.ReplaceAll(context.Background(), parsed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 2 || len(repo.items) != 2 {
		t.Fatalf("expected 2 plans stored, got %d", len(repo.items))
	}
	for _, plan := range repo.items {
		if plan.ID == "old" {
			t.Fatalf("expected previous plans replaced")
		}
		if len(plan.ChildPreferences["Dinesh"]) != 2 {
			t.Fatalf("expected snapshot on %s, got %v", plan.Day, plan.ChildPreferences)
		}
	}
}
