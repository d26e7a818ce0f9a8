// Package state maps each record collection onto its key in the persistent
// store.
package state

import (
	"context"
	"slices"

	"family-organizer/internal/domain/members"
	"family-organizer/internal/storage"
)

type MemberRepository struct {
	store *storage.Store
	seed  []members.FamilyMember
}

func NewMemberRepository(store *storage.Store, seed []members.FamilyMember) *MemberRepository {
	return &MemberRepository{store: store, seed: seed}
}

func (r *MemberRepository) ListMembers(ctx context.Context) []members.FamilyMember {
	return storage.Get(ctx, r.store, storage.KeyFamilyMembers, r.defaults)
}

func (r *MemberRepository) UpdateMembers(ctx context.Context, fn func([]members.FamilyMember) ([]members.FamilyMember, error)) error {
	return storage.Update(ctx, r.store, storage.KeyFamilyMembers, r.defaults, fn)
}

func (r *MemberRepository) defaults() []members.FamilyMember {
	return cloneOrEmpty(r.seed)
}

func cloneOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}
