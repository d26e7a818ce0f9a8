package activities

import (
	"context"
	"slices"
	"strings"
	"time"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/ident"
	"family-organizer/internal/domain/validation"
)

type Service struct {
	repo     Repository
	children ChildFinder
	now      func() time.Time
}

func NewService(repo Repository, children ChildFinder, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, children: children, now: now}
}

func (s *Service) Get(ctx context.Context, id string) (*Activity, error) {
	for _, activity := range s.repo.ListActivities(ctx) {
		if activity.ID == id {
			return &activity, nil
		}
	}
	return nil, ErrActivityNotFound
}

// Visible returns the activities p may see, in stored order.
func (s *Service) Visible(ctx context.Context, p access.Principal) []Activity {
	result := make([]Activity, 0)
	for _, activity := range s.repo.ListActivities(ctx) {
		if access.Decide(p, access.CollectionActivities, activity.Record()).Visible {
			result = append(result, activity)
		}
	}
	return result
}

// Schedule splits the visible activities into upcoming (today or later,
// soonest first) and past (most recent first).
func (s *Service) Schedule(ctx context.Context, p access.Principal) Schedule {
	today := s.Today()
	schedule := Schedule{Upcoming: make([]Activity, 0), Past: make([]Activity, 0)}
	for _, activity := range s.Visible(ctx, p) {
		if activity.Date >= today {
			schedule.Upcoming = append(schedule.Upcoming, activity)
		} else {
			schedule.Past = append(schedule.Past, activity)
		}
	}
	slices.SortStableFunc(schedule.Upcoming, compareStart)
	slices.SortStableFunc(schedule.Past, func(a, b Activity) int { return compareStart(b, a) })
	return schedule
}

// OnDate returns the visible activities scheduled for date, by start time.
func (s *Service) OnDate(ctx context.Context, p access.Principal, date string) ([]Activity, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, validation.Errorf("date must be YYYY-MM-DD, got %q", date)
	}
	result := make([]Activity, 0)
	for _, activity := range s.Visible(ctx, p) {
		if activity.Date == date {
			result = append(result, activity)
		}
	}
	slices.SortStableFunc(result, compareStart)
	return result, nil
}

// Within returns up to limit visible activities dated from today through
// today plus days, in stored order.
func (s *Service) Within(ctx context.Context, p access.Principal, days, limit int) []Activity {
	today := s.now()
	from := today.Format(DateLayout)
	to := today.AddDate(0, 0, days).Format(DateLayout)

	result := make([]Activity, 0, limit)
	for _, activity := range s.Visible(ctx, p) {
		if len(result) == limit {
			break
		}
		if activity.Date >= from && activity.Date <= to {
			result = append(result, activity)
		}
	}
	return result
}

func (s *Service) Today() string {
	return s.now().Format(DateLayout)
}

func (s *Service) Create(ctx context.Context, input ActivityInput) (*Activity, error) {
	activity, err := s.activityFromInput(ctx, input)
	if err != nil {
		return nil, err
	}

	err = s.repo.UpdateActivities(ctx, func(current []Activity) ([]Activity, error) {
		activity.ID = ident.New(ident.Set(current, activityID))
		return append(current, activity), nil
	})
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

// Update replaces every editable field and recomputes the preference match.
func (s *Service) Update(ctx context.Context, id string, input ActivityInput) (*Activity, error) {
	activity, err := s.activityFromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	activity.ID = id

	err = s.repo.UpdateActivities(ctx, func(current []Activity) ([]Activity, error) {
		idx := slices.IndexFunc(current, func(a Activity) bool { return a.ID == id })
		if idx < 0 {
			return nil, ErrActivityNotFound
		}
		next := slices.Clone(current)
		next[idx] = activity
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.UpdateActivities(ctx, func(current []Activity) ([]Activity, error) {
		idx := slices.IndexFunc(current, func(a Activity) bool { return a.ID == id })
		if idx < 0 {
			return nil, ErrActivityNotFound
		}
		return slices.Delete(slices.Clone(current), idx, idx+1), nil
	})
}

func (s *Service) activityFromInput(ctx context.Context, input ActivityInput) (Activity, error) {
	activity := Activity{
		ChildName: strings.TrimSpace(input.ChildName),
		Title:     strings.TrimSpace(input.Title),
		Type:      Type(strings.ToLower(strings.TrimSpace(input.Type))),
		Date:      strings.TrimSpace(input.Date),
		Time:      strings.TrimSpace(input.Time),
		Location:  strings.TrimSpace(input.Location),
		Driver:    strings.TrimSpace(input.Driver),
		Notes:     strings.TrimSpace(input.Notes),
		Recurring: input.Recurring,
	}

	switch {
	case activity.ChildName == "":
		return Activity{}, validation.Errorf("childName is required")
	case activity.Title == "":
		return Activity{}, validation.Errorf("title is required")
	case !activity.Type.Valid():
		return Activity{}, validation.Errorf("type must be one of soccer, music, study, other")
	}
	if _, err := time.Parse(DateLayout, activity.Date); err != nil {
		return Activity{}, validation.Errorf("date must be YYYY-MM-DD, got %q", activity.Date)
	}
	if _, err := time.Parse(TimeLayout, activity.Time); err != nil {
		return Activity{}, validation.Errorf("time must be HH:MM, got %q", activity.Time)
	}

	if child, ok := s.children.FindChild(ctx, activity.ChildName); ok {
		activity.MatchesPreferences = MatchesPreferences(activity, *child)
	}
	return activity, nil
}

func compareStart(a, b Activity) int {
	if c := strings.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Time, b.Time)
}

func activityID(a Activity) string {
	return a.ID
}
