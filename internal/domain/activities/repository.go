package activities

import (
	"context"

	"family-organizer/internal/domain/members"
)

type Repository interface {
	ListActivities(ctx context.Context) []Activity
	UpdateActivities(ctx context.Context, fn func([]Activity) ([]Activity, error)) error
}

type ChildFinder interface {
	FindChild(ctx context.Context, name string) (*members.FamilyMember, bool)
}
