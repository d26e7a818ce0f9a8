package state

import (
	"context"

	"family-organizer/internal/domain/shopping"
	"family-organizer/internal/storage"
)

// ShoppingRepository starts empty; there is no seeded shopping list.
type ShoppingRepository struct {
	store *storage.Store
}

func NewShoppingRepository(store *storage.Store) *ShoppingRepository {
	return &ShoppingRepository{store: store}
}

func (r *ShoppingRepository) ListShoppingItems(ctx context.Context) []shopping.ShoppingItem {
	return storage.Get(ctx, r.store, storage.KeyShoppingList, emptyShoppingList)
}

func (r *ShoppingRepository) UpdateShoppingItems(ctx context.Context, fn func([]shopping.ShoppingItem) ([]shopping.ShoppingItem, error)) error {
	return storage.Update(ctx, r.store, storage.KeyShoppingList, emptyShoppingList, fn)
}

func emptyShoppingList() []shopping.ShoppingItem {
	return []shopping.ShoppingItem{}
}
