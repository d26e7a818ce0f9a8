package members

import "family-organizer/internal/domain/access"

type FamilyMember struct {
	ID                  string      `json:"id" yaml:"id"`
	Name                string      `json:"name" yaml:"name"`
	Role                access.Role `json:"role" yaml:"role"`
	Avatar              string      `json:"avatar,omitempty" yaml:"avatar"`
	Password            string      `json:"password" yaml:"password"`
	Preferences         []string    `json:"preferences" yaml:"preferences"`
	MealPreferences     []string    `json:"mealPreferences" yaml:"mealPreferences"`
	ActivityPreferences []string    `json:"activityPreferences" yaml:"activityPreferences"`
}

func (m FamilyMember) IsChild() bool {
	return m.Role == access.RoleChild
}

type CreateMemberInput struct {
	Name                string
	Role                string
	Avatar              string
	Password            string
	Preferences         []string
	MealPreferences     []string
	ActivityPreferences []string
}

type UpdateMemberInput struct {
	ID                  string
	Name                *string
	Role                *string
	Avatar              *string
	Password            *string
	Preferences         *[]string
	MealPreferences     *[]string
	ActivityPreferences *[]string
}
