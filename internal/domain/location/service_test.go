package location

import (
	"context"
	"math"
	"testing"
	"time"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/activities"
	"family-organizer/internal/domain/members"
)

type fakeActivities []activities.Activity

func (f fakeActivities) Visible(ctx context.Context, p access.Principal) []activities.Activity {
	var result []activities.Activity
	for _, activity := range f {
		if access.Decide(p, access.CollectionActivities, activity.Record()).Visible {
			result = append(result, activity)
		}
	}
	return result
}

type fakeMembers []members.FamilyMember

func (f fakeMembers) List(ctx context.Context) []members.FamilyMember {
	return f
}

type fixedRandom struct {
	index int
}

func (r fixedRandom) Float64() float64 { return 0.5 }
func (r fixedRandom) IntN(n int) int   { return r.index % n }

var now = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func TestStatusAt(t *testing.T) {
	cases := []struct {
		at   string
		want Status
	}{
		{"16:00", StatusWaiting},
		{"15:31", StatusWaiting},
		{"15:30", StatusReady},
		{"15:01", StatusReady},
		{"15:00", StatusInProgress},
		{"14:01", StatusInProgress},
		{"14:00", StatusCompleted},
	}
	for _, tc := range cases {
		activity := activities.Activity{Date: "2024-03-10", Time: tc.at}
		if got := StatusAt(activity, now); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.at, tc.want, got)
		}
	}
}

func TestTrackTodaysDrives(t *testing.T) {
	source := fakeActivities{
		{ID: "a", ChildName: "Dinesh", Driver: "Driver", Date: "2024-03-10", Time: "16:00", Location: "Sports Complex"},
		{ID: "b", ChildName: "Dinesh", Driver: "Driver", Date: "2024-03-11", Time: "16:00"},
		{ID: "c", ChildName: "Dinesh", Driver: "Other", Date: "2024-03-10", Time: "16:00"},
		{ID: "d", ChildName: "Stranger", Driver: "Driver", Date: "2024-03-10", Time: "16:00"},
	}
	directory := fakeMembers{{Name: "Dinesh", Role: access.RoleChild}, {Name: "Driver", Role: access.RoleDriver}}
	service := NewService(source, directory, func() time.Time { return now }, fixedRandom{index: 1})

	sightings := service.Track(context.Background(), access.Principal{Role: access.RoleDriver, Name: "Driver"})
	if len(sightings) != 1 {
		t.Fatalf("expected 1 sighting, got %d", len(sightings))
	}
	got := sightings[0]
	if got.Activity.ID != "a" || got.Status != StatusWaiting || !got.LastUpdated.Equal(now) {
		t.Fatalf("unexpected sighting: %+v", got)
	}
	if got.Place.Name != "Sports Complex" || math.Abs(got.Place.Lat-19.1260) > 1e-9 {
		t.Fatalf("expected activity venue near home, got %+v", got.Place)
	}
}

func TestTrackAdminOnlyOwnDrives(t *testing.T) {
	source := fakeActivities{
		{ID: "a", ChildName: "Dinesh", Driver: "Driver", Date: "2024-03-10", Time: "16:00"},
		{ID: "b", ChildName: "Dinesh", Driver: "Parent", Date: "2024-03-10", Time: "16:00"},
	}
	directory := fakeMembers{{Name: "Dinesh", Role: access.RoleChild}}
	service := NewService(source, directory, func() time.Time { return now }, fixedRandom{})

	sightings := service.Track(context.Background(), access.Principal{Role: access.RoleAdmin, Name: "Parent"})
	if len(sightings) != 1 || sightings[0].Activity.ID != "b" {
		t.Fatalf("unexpected sightings: %+v", sightings)
	}
	if sightings[0].Place != home {
		t.Fatalf("expected home, got %+v", sightings[0].Place)
	}
}
