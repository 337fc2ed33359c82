/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package borgpod

import (
	"testing"

	"github.com/google/uuid"
)

func TestCollectiveLookup(t *testing.T) {
	hive := NewCollective()

	t.Run("UnknownKeyNotFound", func(t *testing.T) {
		if _, ok := hive.GetPod(uuid.New()); ok {
			t.Fatal("A key never registered must yield not found")
		}
	})

	t.Run("RegisteredPodFound", func(t *testing.T) {
		p := mustNew[circleShape](t, hive)

		got, ok := hive.GetPod(p.ID())
		if !ok {
			t.Fatal("Registered pod must be found by its identity key")
		}
		if got != p {
			t.Fatal("Lookup must return the same pod handle")
		}
	})
}

func TestCollectiveLen(t *testing.T) {
	hive := NewCollective()

	a := mustNew[circleShape](t, hive)
	b := mustNew[squareShape](t, hive)

	if hive.Len() != 2 {
		t.Fatalf("Expected 2 live pods, got %d", hive.Len())
	}

	// Conversion relabels in place and must not add entries.
	mustNew[squareShape](t, hive, a)
	if hive.Len() != 2 {
		t.Fatalf("Conversion must not grow the registry, got %d", hive.Len())
	}

	_ = b
}

func TestCollectiveOverwriteIsSilent(t *testing.T) {
	hive := NewCollective()

	p := mustNew[circleShape](t, hive)

	// Re-adopting the same pod overwrites the entry without error.
	hive.adopt(p)
	if got, ok := hive.GetPod(p.ID()); !ok || got != p {
		t.Fatal("Overwriting a registration must keep the pod reachable")
	}
	if hive.Len() != 1 {
		t.Fatalf("Overwrite must not duplicate entries, got %d", hive.Len())
	}
}

func TestCollectivesAreIndependent(t *testing.T) {
	left := NewCollective()
	right := NewCollective()

	p := mustNew[circleShape](t, left)

	if _, ok := right.GetPod(p.ID()); ok {
		t.Fatal("Collectives must not share registrations")
	}
}
