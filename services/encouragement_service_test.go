package services

import (
	"strings"
	"testing"
)

func TestEncouragementMessage(t *testing.T) {
	// Messages are random within a band, so assert on shape: non-empty,
	// placeholder filled, first name only.
	for i := 0; i < 20; i++ {
		msg := EncouragementMessage(500, 2000, 2, "Ana Paula Souza")
		if msg == "" {
			t.Fatal("empty message")
		}
		if strings.Contains(msg, "%s") {
			t.Fatalf("placeholder not filled: %q", msg)
		}
		if strings.Contains(msg, "Paula") {
			t.Fatalf("full name leaked into message: %q", msg)
		}
	}
}

func TestEncouragementMessage_NoMeals(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		msg := EncouragementMessage(0, 2000, 0, "Ana")
		found := false
		for _, m := range noMealsMessages {
			if fill(m, "Ana") == msg {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("message %q not from the no-meals set", msg)
		}
		seen[msg] = true
	}
	if len(seen) < 2 {
		t.Error("no-meals message never varied across 50 draws")
	}
}

func TestEncouragementMessage_GoalReachedBand(t *testing.T) {
	goalSet := encouragementBands[len(encouragementBands)-1].messages
	for i := 0; i < 20; i++ {
		msg := EncouragementMessage(1900, 2000, 3, "Ana") // 95%
		found := false
		for _, m := range goalSet {
			if fill(m, "Ana") == msg {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("95%% progress picked outside the goal band: %q", msg)
		}
	}
}

func TestEncouragementMessage_ZeroGoalSafe(t *testing.T) {
	if msg := EncouragementMessage(500, 0, 1, "Ana"); msg == "" {
		t.Error("zero goal produced no message")
	}
}
