package access

import (
	"encoding/json"
	"errors"
	"testing"
)

var allCollections = []Collection{
	CollectionMembers,
	CollectionMealPlans,
	CollectionShopping,
	CollectionActivities,
	CollectionSettings,
}

func TestDecideAdminSeesEverything(t *testing.T) {
	p := Principal{Role: RoleAdmin, Name: "Ramesh (Parent)"}
	for _, c := range allCollections {
		if got := Decide(p, c, Record{}); got != full {
			t.Fatalf("admin on %s: expected full, got %+v", c, got)
		}
	}
}

func TestDecideCook(t *testing.T) {
	p := Principal{Role: RoleCook, Name: "Suresh (Cook)"}
	tests := map[Collection]Decision{
		CollectionMealPlans:  full,
		CollectionShopping:   full,
		CollectionSettings:   full,
		CollectionActivities: none,
		CollectionMembers:    none,
	}
	for c, want := range tests {
		if got := Decide(p, c, Record{ChildName: "Dinesh"}); got != want {
			t.Fatalf("cook on %s: expected %+v, got %+v", c, want, got)
		}
	}
}

func TestDecideDriverOnlyOwnActivities(t *testing.T) {
	p := Principal{Role: RoleDriver, Name: "Jayesh (Driver)"}

	if got := Decide(p, CollectionActivities, Record{Driver: "Jayesh (Driver)"}); got != readOnly {
		t.Fatalf("expected read-only on own activity, got %+v", got)
	}
	if got := Decide(p, CollectionActivities, Record{Driver: "Someone Else"}); got != none {
		t.Fatalf("expected nothing on other driver's activity, got %+v", got)
	}
	if got := Decide(p, CollectionActivities, Record{}); got != none {
		t.Fatalf("expected nothing on activity without driver, got %+v", got)
	}
	if got := Decide(p, CollectionMealPlans, Record{}); got != none {
		t.Fatalf("expected no meal plan access, got %+v", got)
	}
}

func TestDecideChildActivityMatching(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		childName string
		visible   bool
	}{
		{name: "exact", userName: "Dinesh", childName: "Dinesh", visible: true},
		{name: "first token contained", userName: "Dinesh Kumar", childName: "Dinesh", visible: true},
		{name: "loose substring", userName: "Dinesh", childName: "Dinesh (younger)", visible: true},
		{name: "other child", userName: "Dinesh", childName: "Pragnesh", visible: false},
		{name: "empty user name", userName: "", childName: "Pragnesh", visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(Principal{Role: RoleChild, Name: tt.userName}, CollectionActivities, Record{ChildName: tt.childName})
			if got.Visible != tt.visible {
				t.Fatalf("expected visible=%v, got %+v", tt.visible, got)
			}
			if got.Editable {
				t.Fatalf("child must never edit")
			}
		})
	}
}

func TestDecideChildNeverEditable(t *testing.T) {
	p := Principal{Role: RoleChild, Name: "Pragnesh"}
	records := []Record{{}, {ChildName: "Pragnesh"}, {ChildName: "Pragnesh", Driver: "Pragnesh"}}
	for _, c := range allCollections {
		for _, rec := range records {
			if Decide(p, c, rec).Editable {
				t.Fatalf("child got editable on %s %+v", c, rec)
			}
		}
	}
	if !Decide(p, CollectionMealPlans, Record{}).Visible {
		t.Fatalf("child should read meal plans")
	}
}

func TestDecideIsPure(t *testing.T) {
	p := Principal{Role: RoleChild, Name: "Dinesh"}
	rec := Record{ChildName: "Dinesh", Driver: "Jayesh (Driver)"}
	first := Decide(p, CollectionActivities, rec)
	second := Decide(p, CollectionActivities, rec)
	if first != second {
		t.Fatalf("expected identical decisions, got %+v and %+v", first, second)
	}
}

func TestDecideUnknownRole(t *testing.T) {
	if got := Decide(Principal{Role: Role("guest")}, CollectionMealPlans, Record{}); got != none {
		t.Fatalf("expected nothing for unknown role, got %+v", got)
	}
}

func TestAllowsAndCanEdit(t *testing.T) {
	if !Allows(RoleDriver, CollectionActivities) || Allows(RoleDriver, CollectionShopping) {
		t.Fatalf("unexpected driver view access")
	}
	if CanEdit(Principal{Role: RoleDriver, Name: "Jayesh"}, CollectionActivities) {
		t.Fatalf("driver must not create activities")
	}
	if !CanEdit(Principal{Role: RoleCook}, CollectionShopping) {
		t.Fatalf("cook must edit shopping")
	}
	if CanEdit(Principal{Role: RoleCook}, CollectionMembers) {
		t.Fatalf("cook must not manage members")
	}
}

func TestViews(t *testing.T) {
	views := Views(RoleDriver)
	if len(views) != 3 || views[2] != ViewLocation {
		t.Fatalf("unexpected driver views %v", views)
	}
	if Views(Role("guest"))[0] != ViewDashboard {
		t.Fatalf("expected dashboard only for unknown role")
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Cook ")
	if err != nil || role != RoleCook {
		t.Fatalf("expected cook, got %q %v", role, err)
	}
	if _, err := ParseRole("owner"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}

	var decoded struct{ Role Role }
	if err := json.Unmarshal([]byte(`{"Role":"plumber"}`), &decoded); err == nil {
		t.Fatalf("expected decode error for unknown role")
	}
}
