package shopping

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"family-organizer/internal/domain/meals"
	"family-organizer/internal/domain/validation"
)

type fakeShoppingRepo struct {
	items []ShoppingItem
}

func (r *fakeShoppingRepo) ListShoppingItems(ctx context.Context) []ShoppingItem {
	return append([]ShoppingItem(nil), r.items...)
}

func (r *fakeShoppingRepo) UpdateShoppingItems(ctx context.Context, fn func([]ShoppingItem) ([]ShoppingItem, error)) error {
	next, err := fn(r.ListShoppingItems(ctx))
	if err != nil {
		return err
	}
	r.items = next
	return nil
}

type fakePlans []meals.MealPlan

func (p fakePlans) List(ctx context.Context) []meals.MealPlan {
	return p
}

func newTestService(items ...ShoppingItem) (*Service, *fakeShoppingRepo) {
	repo := &fakeShoppingRepo{items: items}
	plans := fakePlans{
		{ID: "1", Day: "Monday", Breakfast: "Poha, Tea", Lunch: "Dal, , Rice ", Dinner: "Roti", Snacks: []string{"Samosa", "Chips, Dip"}},
	}
	return NewService(repo, plans), repo
}

func TestAddItemDefaults(t *testing.T) {
	service, repo := newTestService()

	item, err := service.Add(context.Background(), AddItemInput{Name: " Milk "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ShoppingItem{ID: item.ID, Name: "Milk", Category: DefaultCategory, Quantity: DefaultQuantity, AddedBy: UnknownAuthor}
	if *item != want {
		t.Fatalf("expected %+v, got %+v", want, *item)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(repo.items))
	}
	if _, err := service.Add(context.Background(), AddItemInput{Name: "  "}); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestToggleTwiceRestoresItem(t *testing.T) {
	original := ShoppingItem{ID: "a", Name: "Milk", Category: "Dairy", Quantity: "2", AddedBy: "Cook"}
	service, repo := newTestService(original, ShoppingItem{ID: "b", Name: "Eggs"})
	ctx := context.Background()

	toggled, err := service.Toggle(ctx, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected completed after first toggle")
	}
	if _, err := service.Toggle(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.items[0] != original {
		t.Fatalf("expected %+v, got %+v", original, repo.items[0])
	}
	if _, err := service.Toggle(ctx, "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	service, _ := newTestService(
		ShoppingItem{ID: "1", Name: "Whole Milk", Category: "Dairy"},
		ShoppingItem{ID: "2", Name: "Paneer", Category: "Dairy", Completed: true},
		ShoppingItem{ID: "3", Name: "Spinach", Category: "Produce"},
	)
	ctx := context.Background()

	cases := []struct {
		filter ListFilter
		want   []string
	}{
		{ListFilter{}, []string{"1", "2", "3"}},
		{ListFilter{Category: "dairy"}, []string{"1", "2"}},
		{ListFilter{Query: "MILK"}, []string{"1"}},
		{ListFilter{Status: StatusPending}, []string{"1", "3"}},
		{ListFilter{Status: StatusCompleted}, []string{"2"}},
	}
	for _, tc := range cases {
		var got []string
		for _, item := range service.List(ctx, tc.filter) {
			got = append(got, item.ID)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("filter %+v: expected %v, got %v", tc.filter, tc.want, got)
		}
	}
	if service.PendingCount(ctx) != 2 {
		t.Fatalf("expected 2 pending")
	}
}

func TestUpdateItem(t *testing.T) {
	service, _ := newTestService(ShoppingItem{ID: "a", Name: "Milk", Category: "Dairy", Quantity: "1", AddedBy: "Cook"})
	quantity := "3 litres"

	item, err := service.Update(context.Background(), UpdateItemInput{ID: "a", Quantity: &quantity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != "3 litres" || item.Name != "Milk" || item.AddedBy != "Cook" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestDeleteItem(t *testing.T) {
	service, repo := newTestService(ShoppingItem{ID: "a"}, ShoppingItem{ID: "b"})

	if err := service.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.items) != 1 || repo.items[0].ID != "b" {
		t.Fatalf("unexpected items: %+v", repo.items)
	}
	if err := service.Delete(context.Background(), "a"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestAddFromMealPlans(t *testing.T) {
	existing := ShoppingItem{ID: "x", Name: "Soap", Category: "Household"}
	service, repo := newTestService(existing)

	added, err := service.AddFromMealPlans(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	ids := make(map[string]bool)
	for _, item := range added {
		names = append(names, item.Name)
		ids[item.ID] = true
		if item.Completed || item.Category != MealCategory || item.Quantity != "1" || item.AddedBy != MealPlannerAuthor {
			t.Fatalf("unexpected generated item: %+v", item)
		}
	}
	want := []string{"Poha", "Tea", "Dal", "Rice", "Roti", "Samosa", "Chips", "Dip"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	if len(ids) != len(want) {
		t.Fatalf("expected distinct ids")
	}
	if len(repo.items) != len(want)+1 || repo.items[0] != existing {
		t.Fatalf("expected items appended after existing list")
	}
}
