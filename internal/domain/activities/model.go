package activities

import (
	"time"

	"family-organizer/internal/domain/access"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Type string

const (
	TypeSoccer Type = "soccer"
	TypeMusic  Type = "music"
	TypeStudy  Type = "study"
	TypeOther  Type = "other"
)

var Types = []Type{TypeSoccer, TypeMusic, TypeStudy, TypeOther}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

type Activity struct {
	ID                 string `json:"id" yaml:"id"`
	ChildName          string `json:"childName" yaml:"childName"`
	Title              string `json:"title" yaml:"title"`
	Type               Type   `json:"type" yaml:"type"`
	Date               string `json:"date" yaml:"date"`
	Time               string `json:"time" yaml:"time"`
	Location           string `json:"location" yaml:"location"`
	Driver             string `json:"driver,omitempty" yaml:"driver"`
	Notes              string `json:"notes,omitempty" yaml:"notes"`
	Recurring          bool   `json:"recurring,omitempty" yaml:"recurring"`
	MatchesPreferences bool   `json:"matchesPreferences,omitempty" yaml:"matchesPreferences"`
}

func (a Activity) Record() access.Record {
	return access.Record{ChildName: a.ChildName, Driver: a.Driver}
}

// StartsAt is the activity's start in loc. ok is false when date or time do
// not parse.
func (a Activity) StartsAt(loc *time.Location) (time.Time, bool) {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, a.Date+" "+a.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

type ActivityInput struct {
	ChildName string
	Title     string
	Type      string
	Date      string
	Time      string
	Location  string
	Driver    string
	Notes     string
	Recurring bool
}

// Schedule is an activity list split around today.
type Schedule struct {
	Upcoming []Activity `json:"upcoming"`
	Past     []Activity `json:"past"`
}
