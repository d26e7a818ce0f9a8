package mealgen

import (
	"context"
	"strings"
	"sync"

	"family-organizer/internal/domain/meals"
	"family-organizer/internal/domain/validation"
	"family-organizer/internal/integration/completions"
	"family-organizer/pkg/logger"
)

type Options struct {
	// FallbackAPIKey is used when neither the request nor the saved
	// settings carry a key.
	FallbackAPIKey string
}

type Service struct {
	completer Completer
	keys      KeyStore
	plans     PlanReplacer
	log       logger.Logger
	recorder  Recorder
	opts      Options

	inFlight sync.Mutex
}

func NewService(completer Completer, keys KeyStore, plans PlanReplacer, log logger.Logger, recorder Recorder, opts Options) *Service {
	return &Service{
		completer: completer,
		keys:      keys,
		plans:     plans,
		log:       log,
		recorder:  recorder,
		opts:      opts,
	}
}

// Generate asks the completions service for a week of meals and returns the
// parsed preview. Nothing but the optionally saved key is stored.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Preview, error) {
	if !s.inFlight.TryLock() {
		s.record("busy")
		return nil, ErrGenerationInProgress
	}
	defer s.inFlight.Unlock()

	apiKey := strings.TrimSpace(input.APIKey)
	if apiKey != "" && input.SaveAPIKey {
		if err := s.keys.SetAPIKey(ctx, apiKey); err != nil {
			return nil, err
		}
	}
	if apiKey == "" {
		apiKey = s.keys.APIKey(ctx)
	}
	if apiKey == "" {
		apiKey = s.opts.FallbackAPIKey
	}
	if apiKey == "" {
		s.record("no_key")
		return nil, ErrAPIKeyRequired
	}

	text, err := s.completer.Complete(ctx, apiKey,
		completions.Message{Role: "system", Content: systemPrompt},
		completions.Message{Role: "user", Content: weekPrompt},
	)
	if err != nil {
		s.record("error")
		s.log.BusinessError("mealgen: generation failed", err)
		return nil, &GenerationError{Err: err}
	}

	plans := meals.ParseWeek(text)
	s.record("ok")
	s.log.Info("mealgen: week generated", "days", len(plans))
	return &Preview{Plans: plans, MissingDays: missingDays(plans)}, nil
}

// Accept stores plans as the whole meal-plan collection.
func (s *Service) Accept(ctx context.Context, plans []meals.MealPlan) ([]meals.MealPlan, error) {
	if len(plans) == 0 {
		return nil, validation.Errorf("at least one meal plan is required")
	}
	return s.plans.ReplaceAll(ctx, plans)
}

func (s *Service) record(result string) {
	if s.recorder != nil {
		s.recorder.MealGeneration(result)
	}
}

func missingDays(plans []meals.MealPlan) []string {
	found := make(map[string]bool, len(plans))
	for _, plan := range plans {
		found[plan.Day] = true
	}
	missing := make([]string, 0)
	for _, day := range meals.Weekdays {
		if !found[day] {
			missing = append(missing, day)
		}
	}
	return missing
}
