package meals

import (
	"reflect"
	"testing"
)

func TestParseWeekSingleDay(t *testing.T) {
	plans := ParseWeek("Monday:\nBreakfast: Poha\nLunch: Dal Rice\nDinner: Roti Sabzi\nSnacks: [Samosa], [Chai]")

	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	plan := plans[0]
	if plan.Day != "Monday" || plan.Breakfast != "Poha" || plan.Lunch != "Dal Rice" || plan.Dinner != "Roti Sabzi" {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if !reflect.DeepEqual(plan.Snacks, []string{"Samosa", "Chai"}) {
		t.Fatalf("unexpected snacks: %v", plan.Snacks)
	}
	if plan.ID == "" {
		t.Fatalf("expected id")
	}
	if plan.ChildPreferences != nil {
		t.Fatalf("expected no child preferences, got %v", plan.ChildPreferences)
	}
}

func TestParseWeekOrdersDaysAndSkipsMissing(t *testing.T) {
	text := `Here is your plan.

wednesday:
Breakfast: Upma
Lunch: Rajma Chawal
Dinner: Khichdi
Snacks: Fruit, Nuts

Monday:
Breakfast: Idli
Lunch: Sambar Rice
Dinner: Paratha
Snacks: [Dhokla, Lassi]

Tuesday:
Breakfast: Dosa
Lunch: only lunch here`

	plans := ParseWeek(text)
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].Day != "Monday" || plans[1].Day != "Wednesday" {
		t.Fatalf("unexpected order: %s, %s", plans[0].Day, plans[1].Day)
	}
	if plans[0].ID == plans[1].ID {
		t.Fatalf("expected distinct ids")
	}
	if !reflect.DeepEqual(plans[0].Snacks, []string{"Dhokla", "Lassi"}) {
		t.Fatalf("unexpected snacks: %v", plans[0].Snacks)
	}
	if !reflect.DeepEqual(plans[1].Snacks, []string{"Fruit", "Nuts"}) {
		t.Fatalf("unexpected snacks: %v", plans[1].Snacks)
	}
}

func TestParseWeekMalformedInput(t *testing.T) {
	for _, text := range []string{"", "no meals today", "Monday: Breakfast:", "Sunday:\nSnacks: chips"} {
		if plans := ParseWeek(text); len(plans) != 0 {
			t.Fatalf("expected no plans for %q, got %+v", text, plans)
		}
	}
}

func TestParseSnacksDropsEmpty(t *testing.T) {
	got := parseSnacks(" [Chakli] , , [], Banana ")
	if !reflect.DeepEqual(got, []string{"Chakli", "Banana"}) {
		t.Fatalf("unexpected snacks: %v", got)
	}
}
