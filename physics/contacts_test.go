package physics

import (
	"slices"
	"testing"
)

func TestContactTrackerEarliestWins(t *testing.T) {
	c := NewContactTracker()
	c.Begin("hand", 7)
	c.Begin("hand", 3)
	c.Begin("hand", 9)

	got, ok := c.Target("hand", nil)
	if !ok || got != 7 {
		t.Fatalf("Target = %d, %v, want 7, true", got, ok)
	}

	c.End("hand", 7)
	got, ok = c.Target("hand", nil)
	if !ok || got != 3 {
		t.Fatalf("Target after 7 left = %d, %v, want 3, true", got, ok)
	}
}

func TestContactTrackerExcludesSelf(t *testing.T) {
	c := NewContactTracker()
	c.Begin("hand", 1)
	c.Begin("hand", 2)

	got, ok := c.Target("hand", NewBodySet(1))
	if !ok || got != 2 {
		t.Fatalf("Target = %d, %v, want 2, true", got, ok)
	}
	if _, ok := c.Target("hand", NewBodySet(1, 2)); ok {
		t.Fatal("Target found a body although every contact is excluded")
	}
}

func TestContactTrackerCountsFixtures(t *testing.T) {
	c := NewContactTracker()
	c.Begin("hand", 4)
	c.Begin("hand", 5)
	c.Begin("hand", 4)
	c.End("hand", 4)

	if got := c.Touching("hand"); !slices.Equal(got, []BodyID{4, 5}) {
		t.Fatalf("Touching = %v, want [4 5]", got)
	}
	c.End("hand", 4)
	if got := c.Touching("hand"); !slices.Equal(got, []BodyID{5}) {
		t.Fatalf("Touching = %v, want [5]", got)
	}
}

func TestContactTrackerSeparateTags(t *testing.T) {
	c := NewContactTracker()
	c.Begin("left", 1)
	c.Begin("right", 2)
	c.End("left", 2)
	c.End("unknown", 1)

	if got, _ := c.Target("left", nil); got != 1 {
		t.Fatalf("left Target = %d, want 1", got)
	}
	if got, _ := c.Target("right", nil); got != 2 {
		t.Fatalf("right Target = %d, want 2", got)
	}

	c.Reset()
	if _, ok := c.Target("left", nil); ok {
		t.Fatal("left still has a target after Reset")
	}
	if _, ok := c.Target("right", nil); ok {
		t.Fatal("right still has a target after Reset")
	}
}
