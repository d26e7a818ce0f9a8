package ident

import "testing"

func TestNewSkipsTakenIDs(t *testing.T) {
	calls := 0
	id := New(func(string) bool {
		calls++
		return calls < 3
	})
	if id == "" {
		t.Fatalf("expected non-empty id")
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestNewIsUniqueAcrossCalls(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New(nil)
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestSet(t *testing.T) {
	type rec struct{ ID string }
	taken := Set([]rec{{ID: "a"}, {ID: "b"}}, func(r rec) string { return r.ID })
	if !taken("a") || taken("c") {
		t.Fatalf("unexpected lookup result")
	}
}
