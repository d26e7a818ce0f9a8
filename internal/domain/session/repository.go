package session

import (
	"context"

	"family-organizer/internal/domain/members"
)

type Repository interface {
	CurrentUser(ctx context.Context) *User
	SaveCurrentUser(ctx context.Context, user *User)
}

type MemberDirectory interface {
	List(ctx context.Context) []members.FamilyMember
}

type Recorder interface {
	LoginAttempt(result string)
}
