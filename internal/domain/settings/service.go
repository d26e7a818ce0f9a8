package settings

import (
	"context"
	"strings"

	"family-organizer/internal/domain/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) APIKey(ctx context.Context) string {
	return s.repo.Settings(ctx).OpenAIAPIKey
}

// View returns the stored key, masked unless reveal is set.
func (s *Service) View(ctx context.Context, reveal bool) APIKeyView {
	key := s.APIKey(ctx)
	if key == "" {
		return APIKeyView{}
	}
	if !reveal {
		key = Mask(key)
	}
	return APIKeyView{Configured: true, APIKey: key}
}

func (s *Service) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return validation.Errorf("apiKey is required")
	}
	return s.repo.UpdateSettings(ctx, func(current AppSettings) (AppSettings, error) {
		current.OpenAIAPIKey = key
		return current, nil
	})
}

func (s *Service) ClearAPIKey(ctx context.Context) error {
	return s.repo.UpdateSettings(ctx, func(current AppSettings) (AppSettings, error) {
		current.OpenAIAPIKey = ""
		return current, nil
	})
}

// Mask keeps the last four characters of key visible.
func Mask(key string) string {
	const visible = 4
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}
