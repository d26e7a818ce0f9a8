package session

import (
	"context"

	"family-organizer/internal/domain/members"
	"family-organizer/pkg/logger"
)

type Options struct {
	InsecureDemoMode bool
}

type Service struct {
	repo     Repository
	members  MemberDirectory
	log      logger.Logger
	recorder Recorder
	opts     Options
}

func NewService(repo Repository, directory MemberDirectory, log logger.Logger, recorder Recorder, opts Options) *Service {
	return &Service{
		repo:     repo,
		members:  directory,
		log:      log,
		recorder: recorder,
		opts:     opts,
	}
}

// Login replaces the current session with memberID when password matches.
// A failed attempt leaves any existing session in place.
func (s *Service) Login(ctx context.Context, memberID, password string) (*User, error) {
	member, ok := s.findMember(ctx, memberID)
	if !ok {
		s.record("unknown_member")
		return nil, ErrMemberNotFound
	}
	if !members.VerifyPassword(member, password) {
		s.record("rejected")
		s.log.BusinessError("session: login rejected", ErrIncorrectPassword, "member_id", memberID)
		return nil, ErrIncorrectPassword
	}

	user := &User{ID: member.ID, Name: member.Name, Role: member.Role}
	s.repo.SaveCurrentUser(ctx, user)
	s.record("ok")
	s.log.Info("session: signed in", "member_id", member.ID, "role", member.Role.String())
	return user, nil
}

func (s *Service) Logout(ctx context.Context) {
	s.repo.SaveCurrentUser(ctx, nil)
}

func (s *Service) Current(ctx context.Context) (*User, bool) {
	user := s.repo.CurrentUser(ctx)
	if user == nil || user.ID == "" {
		return nil, false
	}
	return user, true
}

func (s *Service) Candidates(ctx context.Context) []Candidate {
	list := s.members.List(ctx)
	result := make([]Candidate, 0, len(list))
	for _, member := range list {
		candidate := Candidate{
			ID:     member.ID,
			Name:   member.Name,
			Role:   member.Role,
			Avatar: member.Avatar,
		}
		if s.opts.InsecureDemoMode {
			if hint, ok := members.PasswordHint(member); ok {
				candidate.PasswordHint = hint
			}
		}
		result = append(result, candidate)
	}
	return result
}

func (s *Service) findMember(ctx context.Context, id string) (members.FamilyMember, bool) {
	for _, member := range s.members.List(ctx) {
		if member.ID == id {
			return member, true
		}
	}
	return members.FamilyMember{}, false
}

func (s *Service) record(result string) {
	if s.recorder != nil {
		s.recorder.LoginAttempt(result)
	}
}
