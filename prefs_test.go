package dashmet

import (
	"testing"

	"git.unix.lgbt/diamondburned/dashmet/internal/badgerlog"
)

func prepPrefs(t *testing.T) *PrefStore {
	t.Helper()

	s, err := OpenPrefs(t.TempDir(), badgerlog.NoLogging)
	if err != nil {
		t.Fatal("failed to open prefs:", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Error("failed to close prefs:", err)
		}
	})

	return s
}

func TestPrefs(t *testing.T) {
	s := prepPrefs(t)

	prefs, err := s.Get("nobody")
	if err != nil {
		t.Fatal("failed to get unknown client:", err)
	}
	if prefs != (Preferences{}) {
		t.Errorf("expected zero prefs, got %+v", prefs)
	}

	if err := s.Set("alice", Preferences{Theme: "light"}); err != nil {
		t.Fatal("failed to set:", err)
	}
	if err := s.Set("bob", Preferences{Theme: "dark"}); err != nil {
		t.Fatal("failed to set:", err)
	}

	tests := map[string]string{
		"alice":  "light",
		"bob":    "dark",
		"nobody": "",
	}

	for id, theme := range tests {
		prefs, err := s.Get(id)
		if err != nil {
			t.Fatalf("failed to get %s: %v", id, err)
		}
		if prefs.Theme != theme {
			t.Errorf("%s expected theme %q, got %q", id, theme, prefs.Theme)
		}
	}
}

func TestPrefsInMemory(t *testing.T) {
	s, err := OpenPrefs("", badgerlog.NoLogging)
	if err != nil {
		t.Fatal("failed to open in-memory prefs:", err)
	}
	defer s.Close()

	if err := s.Set("x", Preferences{Theme: "light"}); err != nil {
		t.Fatal("failed to set:", err)
	}

	prefs, err := s.Get("x")
	if err != nil {
		t.Fatal("failed to get:", err)
	}
	if prefs.Theme != "light" {
		t.Errorf("expected light, got %q", prefs.Theme)
	}
}

func TestDecodePrefsRejectsGarbage(t *testing.T) {
	var prefs Preferences
	if err := decodePrefs([]byte(`{"Theme":"dark"}`), &prefs); err == nil {
		t.Error("expected error for unversioned prefs")
	}
}
