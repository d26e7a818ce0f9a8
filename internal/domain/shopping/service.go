package shopping

import (
	"context"
	"slices"
	"strings"

	"family-organizer/internal/domain/ident"
	"family-organizer/internal/domain/meals"
	"family-organizer/internal/domain/validation"
)

type Service struct {
	repo  Repository
	plans MealPlanSource
}

func NewService(repo Repository, plans MealPlanSource) *Service {
	return &Service{repo: repo, plans: plans}
}

func (s *Service) List(ctx context.Context, filter ListFilter) []ShoppingItem {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)

	result := make([]ShoppingItem, 0)
	for _, item := range s.repo.ListShoppingItems(ctx) {
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		switch filter.Status {
		case StatusPending:
			if item.Completed {
				continue
			}
		case StatusCompleted:
			if !item.Completed {
				continue
			}
		}
		result = append(result, item)
	}
	return result
}

func (s *Service) PendingCount(ctx context.Context) int {
	count := 0
	for _, item := range s.repo.ListShoppingItems(ctx) {
		if !item.Completed {
			count++
		}
	}
	return count
}

func (s *Service) Add(ctx context.Context, input AddItemInput) (*ShoppingItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validation.Errorf("name is required")
	}

	item := ShoppingItem{
		Name:     name,
		Category: orDefault(input.Category, DefaultCategory),
		Quantity: orDefault(input.Quantity, DefaultQuantity),
		AddedBy:  orDefault(input.AddedBy, UnknownAuthor),
	}

	err := s.repo.UpdateShoppingItems(ctx, func(current []ShoppingItem) ([]ShoppingItem, error) {
		item.ID = ident.New(ident.Set(current, itemID))
		return append(current, item), nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *Service) Update(ctx context.Context, input UpdateItemInput) (*ShoppingItem, error) {
	return s.modify(ctx, input.ID, func(item *ShoppingItem) error {
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return validation.Errorf("name is required")
			}
			item.Name = name
		}
		if input.Category != nil {
			item.Category = orDefault(*input.Category, DefaultCategory)
		}
		if input.Quantity != nil {
			item.Quantity = orDefault(*input.Quantity, DefaultQuantity)
		}
		if input.Completed != nil {
			item.Completed = *input.Completed
		}
		return nil
	})
}

// Toggle flips the completed flag and nothing else.
func (s *Service) Toggle(ctx context.Context, id string) (*ShoppingItem, error) {
	return s.modify(ctx, id, func(item *ShoppingItem) error {
		item.Completed = !item.Completed
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.UpdateShoppingItems(ctx, func(current []ShoppingItem) ([]ShoppingItem, error) {
		idx := slices.IndexFunc(current, func(i ShoppingItem) bool { return i.ID == id })
		if idx < 0 {
			return nil, ErrItemNotFound
		}
		return slices.Delete(slices.Clone(current), idx, idx+1), nil
	})
}

// AddFromMealPlans appends one pending item per ingredient of every stored
// meal plan. Existing items are kept, duplicates included.
func (s *Service) AddFromMealPlans(ctx context.Context, addedBy string) ([]ShoppingItem, error) {
	ingredients := Ingredients(s.plans.List(ctx))
	author := orDefault(addedBy, MealPlannerAuthor)

	added := make([]ShoppingItem, 0, len(ingredients))
	err := s.repo.UpdateShoppingItems(ctx, func(current []ShoppingItem) ([]ShoppingItem, error) {
		taken := ident.Set(current, itemID)
		fresh := make(map[string]struct{}, len(ingredients))
		for _, ingredient := range ingredients {
			id := ident.New(func(candidate string) bool {
				_, dup := fresh[candidate]
				return dup || taken(candidate)
			})
			fresh[id] = struct{}{}
			added = append(added, ShoppingItem{
				ID:       id,
				Name:     ingredient,
				Category: MealCategory,
				Quantity: DefaultQuantity,
				AddedBy:  author,
			})
		}
		return append(current, added...), nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// Ingredients splits every meal field and snack on commas and returns the
// trimmed, non-empty parts in plan order.
func Ingredients(plans []meals.MealPlan) []string {
	var result []string
	for _, plan := range plans {
		fields := append([]string{plan.Breakfast, plan.Lunch, plan.Dinner}, plan.Snacks...)
		for _, field := range fields {
			for _, part := range strings.Split(field, ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					result = append(result, part)
				}
			}
		}
	}
	return result
}

func (s *Service) modify(ctx context.Context, id string, fn func(*ShoppingItem) error) (*ShoppingItem, error) {
	var updated ShoppingItem
	err := s.repo.UpdateShoppingItems(ctx, func(current []ShoppingItem) ([]ShoppingItem, error) {
		idx := slices.IndexFunc(current, func(i ShoppingItem) bool { return i.ID == id })
		if idx < 0 {
			return nil, ErrItemNotFound
		}
		item := current[idx]
		if err := fn(&item); err != nil {
			return nil, err
		}
		next := slices.Clone(current)
		next[idx] = item
		updated = item
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func itemID(i ShoppingItem) string {
	return i.ID
}
