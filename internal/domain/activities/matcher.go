package activities

import (
	"strings"

	"family-organizer/internal/domain/members"
)

// MatchesPreferences reports whether any of the child's activity preferences
// appears, ignoring case, in the activity's title or type.
func MatchesPreferences(activity Activity, child members.FamilyMember) bool {
	title := strings.ToLower(activity.Title)
	kind := strings.ToLower(string(activity.Type))
	for _, pref := range child.ActivityPreferences {
		pref = strings.ToLower(pref)
		if strings.Contains(title, pref) || strings.Contains(kind, pref) {
			return true
		}
	}
	return false
}
