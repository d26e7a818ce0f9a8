package meals

import (
	"regexp"
	"strings"

	"family-organizer/internal/domain/ident"
)

var dayPatterns = buildDayPatterns()

func buildDayPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(Weekdays))
	for _, day := range Weekdays {
		patterns = append(patterns, regexp.MustCompile(
			`(?i)`+day+`:\s*\n?Breakfast:\s*([^\n]+)\n?Lunch:\s*([^\n]+)\n?Dinner:\s*([^\n]+)\n?Snacks:\s*([^\n]+)`,
		))
	}
	return patterns
}

// ParseWeek extracts one plan per weekday stanza found in text, Monday first.
// Days without a complete stanza are left out. Plans carry fresh ids and no
// child preferences.
func ParseWeek(text string) []MealPlan {
	plans := make([]MealPlan, 0, len(Weekdays))
	taken := make(map[string]struct{})

	for i, pattern := range dayPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		id := ident.New(func(candidate string) bool {
			_, ok := taken[candidate]
			return ok
		})
		taken[id] = struct{}{}

		plans = append(plans, MealPlan{
			ID:        id,
			Day:       Weekdays[i],
			Breakfast: strings.TrimSpace(match[1]),
			Lunch:     strings.TrimSpace(match[2]),
			Dinner:    strings.TrimSpace(match[3]),
			Snacks:    parseSnacks(match[4]),
		})
	}

	return plans
}

func parseSnacks(value string) []string {
	parts := strings.Split(value, ",")
	snacks := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "[")
		part = strings.TrimSuffix(part, "]")
		if part != "" {
			snacks = append(snacks, part)
		}
	}
	return snacks
}
