package members

import (
	"context"
	"slices"
	"strings"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/ident"
	"family-organizer/internal/domain/validation"
)

type Options struct {
	HashPasswords bool
}

type Service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) *Service {
	return &Service{repo: repo, opts: opts}
}

func (s *Service) List(ctx context.Context) []FamilyMember {
	return s.repo.ListMembers(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*FamilyMember, error) {
	for _, member := range s.repo.ListMembers(ctx) {
		if member.ID == id {
			return &member, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (s *Service) Children(ctx context.Context) []FamilyMember {
	var children []FamilyMember
	for _, member := range s.repo.ListMembers(ctx) {
		if member.IsChild() {
			children = append(children, member)
		}
	}
	return children
}

// FindChild resolves a child by display name; activities and meal plans
// reference children by name.
func (s *Service) FindChild(ctx context.Context, name string) (*FamilyMember, bool) {
	for _, member := range s.repo.ListMembers(ctx) {
		if member.IsChild() && member.Name == name {
			return &member, true
		}
	}
	return nil, false
}

func (s *Service) Create(ctx context.Context, input CreateMemberInput) (*FamilyMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validation.Errorf("name is required")
	}
	role, err := access.ParseRole(input.Role)
	if err != nil {
		return nil, validation.Errorf("role must be one of admin, cook, driver, child")
	}
	if input.Password == "" {
		return nil, validation.Errorf("password is required")
	}
	password, err := s.storedPassword(input.Password)
	if err != nil {
		return nil, err
	}

	member := FamilyMember{
		Name:                name,
		Role:                role,
		Avatar:              strings.TrimSpace(input.Avatar),
		Password:            password,
		Preferences:         cleanList(input.Preferences),
		MealPreferences:     cleanList(input.MealPreferences),
		ActivityPreferences: cleanList(input.ActivityPreferences),
	}

	err = s.repo.UpdateMembers(ctx, func(current []FamilyMember) ([]FamilyMember, error) {
		member.ID = ident.New(ident.Set(current, memberID))
		return append(current, member), nil
	})
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *Service) Update(ctx context.Context, input UpdateMemberInput) (*FamilyMember, error) {
	var updated FamilyMember
	err := s.repo.UpdateMembers(ctx, func(current []FamilyMember) ([]FamilyMember, error) {
		idx := slices.IndexFunc(current, func(m FamilyMember) bool { return m.ID == input.ID })
		if idx < 0 {
			return nil, ErrMemberNotFound
		}

		member := current[idx]
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return nil, validation.Errorf("name is required")
			}
			member.Name = name
		}
		if input.Role != nil {
			role, err := access.ParseRole(*input.Role)
			if err != nil {
				return nil, validation.Errorf("role must be one of admin, cook, driver, child")
			}
			member.Role = role
		}
		if input.Avatar != nil {
			member.Avatar = strings.TrimSpace(*input.Avatar)
		}
		if input.Password != nil {
			if *input.Password == "" {
				return nil, validation.Errorf("password cannot be empty")
			}
			password, err := s.storedPassword(*input.Password)
			if err != nil {
				return nil, err
			}
			member.Password = password
		}
		if input.Preferences != nil {
			member.Preferences = cleanList(*input.Preferences)
		}
		if input.MealPreferences != nil {
			member.MealPreferences = cleanList(*input.MealPreferences)
		}
		if input.ActivityPreferences != nil {
			member.ActivityPreferences = cleanList(*input.ActivityPreferences)
		}

		next := slices.Clone(current)
		next[idx] = member
		updated = member
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the member only. Activities, meal plans and shopping items
// that mention the member by name are left as they are.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.UpdateMembers(ctx, func(current []FamilyMember) ([]FamilyMember, error) {
		idx := slices.IndexFunc(current, func(m FamilyMember) bool { return m.ID == id })
		if idx < 0 {
			return nil, ErrMemberNotFound
		}
		return slices.Delete(slices.Clone(current), idx, idx+1), nil
	})
}

func (s *Service) storedPassword(password string) (string, error) {
	if !s.opts.HashPasswords {
		return password, nil
	}
	return hashPassword(password)
}

func memberID(m FamilyMember) string {
	return m.ID
}

func cleanList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}
