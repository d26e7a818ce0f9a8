package location

import (
	"time"

	"family-organizer/internal/domain/activities"
)

type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusReady      Status = "ready"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

type Place struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Sighting is a simulated position of a child on the way to an activity.
type Sighting struct {
	ChildName   string              `json:"childName"`
	Activity    activities.Activity `json:"activity"`
	Place       Place               `json:"place"`
	Status      Status              `json:"status"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

var (
	home         = Place{Name: "Home", Address: "123 Home Street, Mumbai", Lat: 19.0760, Lng: 72.8777}
	school       = Place{Name: "School", Address: "456 School Road, Mumbai", Lat: 19.0860, Lng: 72.8877}
	friendsHouse = Place{Name: "Friend's House", Address: "789 Friend Lane, Mumbai", Lat: 19.0660, Lng: 72.8677}
)
