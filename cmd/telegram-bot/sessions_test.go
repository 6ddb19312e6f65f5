package main

import (
	"strings"
	"testing"
	"time"

	"tasklist/internal/manager"
)

func newTestSessions() *sessions {
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return newSessions(time.UTC, func() time.Time { return fixed })
}

func TestBotAddAndList(t *testing.T) {
	s := newTestSessions()

	if got := s.handleCommand(1, "list", ""); got != manager.EmptyStoreMessage {
		t.Errorf("expected empty store message, got %q", got)
	}

	got := s.handleCommand(1, "add", "Buy milk | 2 liters | 2024-03-05")
	if !strings.Contains(got, "ID: #1") || !strings.Contains(got, "March 5, 2024") {
		t.Errorf("unexpected add reply %q", got)
	}

	s.handleText(1, "Call mom")
	s.handleCommand(1, "done", "2")

	list := s.handleCommand(1, "list", "")
	for _, want := range []string{"[ ] #1: Buy milk (March 5, 2024)", "    2 liters", "[x] #2: Call mom (March 1, 2024)"} {
		if !strings.Contains(list, want) {
			t.Errorf("list missing %q:\n%s", want, list)
		}
	}
}

func TestBotChatsAreIsolated(t *testing.T) {
	s := newTestSessions()
	s.handleText(1, "first chat task")

	if got := s.handleCommand(2, "list", ""); got != manager.EmptyStoreMessage {
		t.Errorf("chat 2 sees chat 1 tasks: %q", got)
	}
	if got := s.handleCommand(2, "add", "own task"); !strings.Contains(got, "ID: #1") {
		t.Errorf("ids are per chat, got %q", got)
	}
}

func TestBotFilters(t *testing.T) {
	s := newTestSessions()
	s.handleCommand(1, "add", "today")
	s.handleCommand(1, "add", "later | | 2024-03-09")

	if got := s.handleCommand(1, "status", "completed"); got != "Status filter: completed" {
		t.Errorf("unexpected status reply %q", got)
	}
	if got := s.handleCommand(1, "list", ""); got != manager.EmptyViewMessage {
		t.Errorf("expected filter message, got %q", got)
	}

	s.handleCommand(1, "status", "all")
	s.handleCommand(1, "date", "2024-03-09")
	list := s.handleCommand(1, "list", "")
	if !strings.Contains(list, "#2: later") || strings.Contains(list, "#1: today") {
		t.Errorf("date filter not applied:\n%s", list)
	}

	if got := s.handleCommand(1, "date", "none"); got != "Date filter cleared" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestBotBadInput(t *testing.T) {
	s := newTestSessions()

	cases := map[string][2]string{
		"empty add":   {"add", ""},
		"blank title": {"add", "  | desc"},
		"bad id":      {"done", "x"},
		"bad status":  {"status", "finished"},
		"bad date":    {"date", "soon"},
		"bad due":     {"add", "t | d | soon"},
		"unknown":     {"frobnicate", ""},
	}
	for name, c := range cases {
		if got := s.handleCommand(1, c[0], c[1]); strings.HasPrefix(got, "Task added") {
			t.Errorf("%s: unexpected success %q", name, got)
		}
	}

	if got := s.handleCommand(1, "done", "5"); got != "Task #5 not found" {
		t.Errorf("unexpected reply %q", got)
	}
	if got := s.handleCommand(1, "delete", "5"); got != "Task #5 not found" {
		t.Errorf("delete of a missing task: unexpected reply %q", got)
	}
	if got := s.handleText(1, "   "); got != "" {
		t.Errorf("blank text should be ignored, got %q", got)
	}
	if n := s.get(1).Tasks().Len(); n != 0 {
		t.Errorf("bad input added %d tasks", n)
	}
}
