package state

import (
	"context"
	"reflect"
	"testing"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/activities"
	"family-organizer/internal/domain/meals"
	"family-organizer/internal/domain/members"
	"family-organizer/internal/domain/session"
	"family-organizer/internal/domain/settings"
	"family-organizer/internal/domain/shopping"
	"family-organizer/internal/repository/inmemory"
	"family-organizer/internal/seed"
	"family-organizer/internal/storage"
	"family-organizer/pkg/logger"
)

func newTestStore() (*storage.Store, *inmemory.StateBackend) {
	backend := inmemory.NewStateBackend()
	return storage.NewStore(backend, logger.Discard()), backend
}

func TestMembersSeededOnFirstRead(t *testing.T) {
	store, backend := newTestStore()
	data := seed.Defaults()
	repo := NewMemberRepository(store, data.Members)

	got := repo.ListMembers(context.Background())
	if !reflect.DeepEqual(got, data.Members) {
		t.Fatalf("expected seeded members")
	}
	if _, err := backend.Load(context.Background(), storage.KeyFamilyMembers); err != nil {
		t.Fatalf("expected seed persisted, got %v", err)
	}

	got[0].Name = "mutated"
	if repo.ListMembers(context.Background())[0].Name == "mutated" {
		t.Fatalf("expected list to be a copy")
	}
}

func TestMembersCorruptEntryFallsBack(t *testing.T) {
	store, backend := newTestStore()
	backend.Put(storage.KeyFamilyMembers, []byte(`[{"id":"1","role":"nanny"}]`))
	repo := NewMemberRepository(store, []members.FamilyMember{{ID: "seed", Role: access.RoleAdmin}})

	got := repo.ListMembers(context.Background())
	if len(got) != 1 || got[0].ID != "seed" {
		t.Fatalf("expected default for undecodable entry, got %+v", got)
	}
	payload, _ := backend.Load(context.Background(), storage.KeyFamilyMembers)
	if string(payload) != `[{"id":"1","role":"nanny"}]` {
		t.Fatalf("expected stored entry untouched, got %s", payload)
	}
}

func TestShoppingUpdateRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	repo := NewShoppingRepository(store)
	ctx := context.Background()

	if got := repo.ListShoppingItems(ctx); got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
	item := shopping.ShoppingItem{ID: "a", Name: "Milk", Category: "Dairy", Quantity: "1", AddedBy: "Cook"}
	err := repo.UpdateShoppingItems(ctx, func(current []shopping.ShoppingItem) ([]shopping.ShoppingItem, error) {
		return append(current, item), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.ListShoppingItems(ctx); len(got) != 1 || got[0] != item {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestSessionNullWhenSignedOut(t *testing.T) {
	store, backend := newTestStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	if repo.CurrentUser(ctx) != nil {
		t.Fatalf("expected no user")
	}
	repo.SaveCurrentUser(ctx, &session.User{ID: "1", Name: "Parent", Role: access.RoleAdmin})
	if user := repo.CurrentUser(ctx); user == nil || user.Name != "Parent" {
		t.Fatalf("unexpected user: %+v", user)
	}
	repo.SaveCurrentUser(ctx, nil)
	payload, _ := backend.Load(ctx, storage.KeyCurrentUser)
	if string(payload) != "null" {
		t.Fatalf("expected null payload, got %s", payload)
	}
}

func replaceWith[T any](value T) func(T) (T, error) {
	return func(T) (T, error) { return value, nil }
}

func TestCollectionsRoundTrip(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(t *testing.T, store *storage.Store) (wrote, read interface{})
	}{
		{
			name: "members with empty and filled lists",
			run: func(t *testing.T, store *storage.Store) (interface{}, interface{}) {
				repo := NewMemberRepository(store, nil)
				want := []members.FamilyMember{
					{
						ID:                  "a",
						Name:                "Asha",
						Role:                access.RoleCook,
						Password:            "pw",
						Preferences:         []string{},
						MealPreferences:     []string{},
						ActivityPreferences: []string{},
					},
					{
						ID:                  "b",
						Name:                "Binu",
						Role:                access.RoleChild,
						Avatar:              "b.png",
						Password:            "pw2",
						Preferences:         []string{"Fun"},
						MealPreferences:     []string{"Sweet dishes", "Fruits"},
						ActivityPreferences: []string{"Soccer"},
					},
				}
				if err := repo.UpdateMembers(ctx, replaceWith(want)); err != nil {
					t.Fatalf("update members: %v", err)
				}
				return want, repo.ListMembers(ctx)
			},
		},
		{
			name: "meal plans with child preferences",
			run: func(t *testing.T, store *storage.Store) (interface{}, interface{}) {
				repo := NewMealPlanRepository(store, nil)
				want := []meals.MealPlan{
					{
						ID:        "m1",
						Day:       "Monday",
						Breakfast: "Poha",
						Lunch:     "Dal rice",
						Dinner:    "Roti",
						Snacks:    []string{"Samosa", "Chai"},
						Notes:     "less oil",
						ChildPreferences: map[string][]string{
							"Dinesh": {"Mild spice"},
						},
					},
					{ID: "m2", Day: "Sunday", Breakfast: "Idli", Lunch: "Rice", Dinner: "Khichdi", Snacks: []string{}},
				}
				if err := repo.UpdateMealPlans(ctx, replaceWith(want)); err != nil {
					t.Fatalf("update meal plans: %v", err)
				}
				return want, repo.ListMealPlans(ctx)
			},
		},
		{
			name: "shopping items",
			run: func(t *testing.T, store *storage.Store) (interface{}, interface{}) {
				repo := NewShoppingRepository(store)
				want := []shopping.ShoppingItem{
					{ID: "s1", Name: "Milk", Category: "Dairy", Quantity: "2", AddedBy: "Cook"},
					{ID: "s2", Name: "Rice", Category: "Pantry", Quantity: "1", Completed: true, AddedBy: "Meal Planner"},
				}
				if err := repo.UpdateShoppingItems(ctx, replaceWith(want)); err != nil {
					t.Fatalf("update shopping: %v", err)
				}
				return want, repo.ListShoppingItems(ctx)
			},
		},
		{
			name: "activities",
			run: func(t *testing.T, store *storage.Store) (interface{}, interface{}) {
				repo := NewActivityRepository(store, nil)
				want := []activities.Activity{
					{
						ID:                 "a1",
						ChildName:          "Dinesh",
						Title:              "Soccer Practice",
						Type:               activities.TypeSoccer,
						Date:               "2030-01-05",
						Time:               "16:00",
						Location:           "Sports Center",
						Driver:             "Jayesh (Driver)",
						Notes:              "cleats",
						Recurring:          true,
						MatchesPreferences: true,
					},
					{ID: "a2", ChildName: "Pragnesh", Title: "Homework", Type: activities.TypeStudy, Date: "2030-01-06", Time: "09:30"},
				}
				if err := repo.UpdateActivities(ctx, replaceWith(want)); err != nil {
					t.Fatalf("update activities: %v", err)
				}
				return want, repo.ListActivities(ctx)
			},
		},
		{
			name: "settings",
			run: func(t *testing.T, store *storage.Store) (interface{}, interface{}) {
				repo := NewSettingsRepository(store)
				want := settings.AppSettings{OpenAIAPIKey: "sk-test-1234"}
				if err := repo.UpdateSettings(ctx, replaceWith(want)); err != nil {
					t.Fatalf("update settings: %v", err)
				}
				return want, repo.Settings(ctx)
			},
		},
		{
			name: "current user",
			run: func(t *testing.T, store *storage.Store) (interface{}, interface{}) {
				repo := NewSessionRepository(store)
				want := &session.User{ID: "3", Name: "Jayesh (Driver)", Role: access.RoleDriver}
				repo.SaveCurrentUser(ctx, want)
				return want, repo.CurrentUser(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore()
			wrote, read := tt.run(t, store)
			if !reflect.DeepEqual(wrote, read) {
				t.Fatalf("round trip mismatch:\nwrote %#v\nread  %#v", wrote, read)
			}
		})
	}
}
