// Package access decides what a signed-in family member may see and change.
// Decisions depend only on the principal's role and name and on the record's
// own fields.
package access

import (
	"errors"
	"strings"
)

var (
	ErrUnknownRole = errors.New("unknown role")
	ErrForbidden   = errors.New("forbidden")
)

type Collection string

const (
	CollectionMembers    Collection = "familyMembers"
	CollectionMealPlans  Collection = "mealPlans"
	CollectionShopping   Collection = "shoppingList"
	CollectionActivities Collection = "activities"
	CollectionSettings   Collection = "appSettings"
)

type Principal struct {
	Role Role
	Name string
}

// Record carries the record fields the rules read. Only activities use them.
type Record struct {
	ChildName string
	Driver    string
}

type Decision struct {
	Visible  bool
	Editable bool
}

var (
	full     = Decision{Visible: true, Editable: true}
	readOnly = Decision{Visible: true}
	none     = Decision{}
)

func Decide(p Principal, collection Collection, rec Record) Decision {
	switch p.Role {
	case RoleAdmin:
		return full
	case RoleCook:
		switch collection {
		case CollectionMealPlans, CollectionShopping, CollectionSettings:
			return full
		}
		return none
	case RoleDriver:
		if collection == CollectionActivities && rec.Driver != "" && rec.Driver == p.Name {
			return readOnly
		}
		return none
	case RoleChild:
		switch collection {
		case CollectionMealPlans:
			return readOnly
		case CollectionActivities:
			if childOwns(p.Name, rec.ChildName) {
				return readOnly
			}
		}
		return none
	default:
		return none
	}
}

// Allows reports whether the role may open the collection's view at all,
// independent of any particular record.
func Allows(role Role, collection Collection) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleCook:
		return collection == CollectionMealPlans || collection == CollectionShopping || collection == CollectionSettings
	case RoleDriver:
		return collection == CollectionActivities
	case RoleChild:
		return collection == CollectionMealPlans || collection == CollectionActivities
	default:
		return false
	}
}

// CanEdit reports whether the role may create records in the collection.
func CanEdit(p Principal, collection Collection) bool {
	return Allows(p.Role, collection) && Decide(p, collection, Record{}).Editable
}

// childOwns matches the exact name or, loosely, the first word of the
// child's name anywhere in the activity's child name.
func childOwns(userName, childName string) bool {
	if childName == userName {
		return true
	}
	fields := strings.Fields(userName)
	if len(fields) == 0 {
		return false
	}
	return strings.Contains(childName, fields[0])
}

type View string

const (
	ViewDashboard  View = "dashboard"
	ViewMeals      View = "meals"
	ViewShopping   View = "shopping"
	ViewActivities View = "activities"
	ViewFamily     View = "family"
	ViewSettings   View = "settings"
	ViewLocation   View = "location"
)

// Views lists the navigation entries for a role, in display order.
func Views(role Role) []View {
	switch role {
	case RoleAdmin:
		return []View{ViewDashboard, ViewMeals, ViewShopping, ViewActivities, ViewFamily, ViewSettings}
	case RoleCook:
		return []View{ViewDashboard, ViewMeals, ViewShopping, ViewSettings}
	case RoleDriver:
		return []View{ViewDashboard, ViewActivities, ViewLocation}
	case RoleChild:
		return []View{ViewDashboard, ViewMeals, ViewActivities}
	default:
		return []View{ViewDashboard}
	}
}
