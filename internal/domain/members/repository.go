package members

import "context"

type Repository interface {
	ListMembers(ctx context.Context) []FamilyMember
	UpdateMembers(ctx context.Context, fn func([]FamilyMember) ([]FamilyMember, error)) error
}
