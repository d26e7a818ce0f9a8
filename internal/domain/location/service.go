// Package location simulates where children are for the driver's pickups of
// the day. Nothing here is stored; every call draws fresh positions.
package location

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/activities"
	"family-organizer/internal/domain/members"
)

type ActivitySource interface {
	Visible(ctx context.Context, p access.Principal) []activities.Activity
}

type MemberDirectory interface {
	List(ctx context.Context) []members.FamilyMember
}

type Random interface {
	Float64() float64
	IntN(n int) int
}

type Service struct {
	activities ActivitySource
	members    MemberDirectory
	now        func() time.Time

	mu   sync.Mutex
	rand Random
}

func NewService(source ActivitySource, directory MemberDirectory, now func() time.Time, random Random) *Service {
	if now == nil {
		now = time.Now
	}
	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Service{activities: source, members: directory, now: now, rand: random}
}

// Track returns one sighting per activity today that p drives and whose
// child is a known family member.
func (s *Service) Track(ctx context.Context, p access.Principal) []Sighting {
	now := s.now()
	today := now.Format(activities.DateLayout)

	known := make(map[string]bool)
	for _, member := range s.members.List(ctx) {
		known[member.Name] = true
	}

	result := make([]Sighting, 0)
	for _, activity := range s.activities.Visible(ctx, p) {
		if activity.Date != today || activity.Driver == "" || activity.Driver != p.Name {
			continue
		}
		if !known[activity.ChildName] {
			continue
		}
		result = append(result, Sighting{
			ChildName:   activity.ChildName,
			Activity:    activity,
			Place:       s.pick(activity),
			Status:      StatusAt(activity, now),
			LastUpdated: now,
		})
	}
	return result
}

// StatusAt derives the pickup status from whole minutes until the start.
func StatusAt(activity activities.Activity, now time.Time) Status {
	start, ok := activity.StartsAt(now.Location())
	if !ok {
		return StatusWaiting
	}
	minutes := int(math.Floor(start.Sub(now).Minutes()))
	switch {
	case minutes > 30:
		return StatusWaiting
	case minutes > 0:
		return StatusReady
	case minutes > -60:
		return StatusInProgress
	default:
		return StatusCompleted
	}
}

func (s *Service) pick(activity activities.Activity) Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	venue := Place{
		Name:    activity.Location,
		Address: activity.Location,
		Lat:     home.Lat + s.rand.Float64()*0.1,
		Lng:     home.Lng + s.rand.Float64()*0.1,
	}
	places := []Place{home, venue, school, friendsHouse}
	return places[s.rand.IntN(len(places))]
}
