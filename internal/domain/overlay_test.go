package domain

import (
	"testing"
)

func TestApplyVerification(t *testing.T) {
	records := []Community{
		{Username: "alice"},
		{Username: "bob", Verified: true},
		{Username: "carol"},
	}
	flags := VerifiedFlags{"alice": true}

	got := ApplyVerification(records, flags)

	if !got[0].Verified {
		t.Error("alice should be verified via persisted flag")
	}
	if !got[1].Verified {
		t.Error("bob should keep his dataset flag")
	}
	if got[2].Verified {
		t.Error("carol should default to unverified")
	}

	// Source records stay untouched.
	if records[0].Verified {
		t.Error("ApplyVerification() mutated its input")
	}
}

func TestToggleVerified(t *testing.T) {
	records := []Community{
		{Username: "alice"},
		{Username: "bob", Verified: true},
	}
	flags := VerifiedFlags{}

	// Toggle on.
	toggled, next := ToggleVerified(records, flags, "alice")
	if !toggled[0].Verified {
		t.Error("alice should be verified after toggle")
	}
	if !next["alice"] {
		t.Error("flag map should contain alice after toggle")
	}
	if toggled[1].Verified != records[1].Verified {
		t.Error("toggle must leave other records untouched")
	}
	if len(flags) != 0 || records[0].Verified {
		t.Error("ToggleVerified() mutated its inputs")
	}

	// Toggle is its own inverse.
	restored, final := ToggleVerified(toggled, next, "alice")
	if restored[0].Verified {
		t.Error("second toggle should restore alice to unverified")
	}
	if _, ok := final["alice"]; ok {
		t.Error("second toggle should remove alice from the flag map")
	}
}

func TestToggleVerifiedUnknownUsername(t *testing.T) {
	records := []Community{{Username: "alice"}}

	toggled, next := ToggleVerified(records, VerifiedFlags{}, "ghost")

	// The flag change persists even with no record to update.
	if !next["ghost"] {
		t.Error("toggle should flip the flag for an unknown username")
	}
	if toggled[0].Verified {
		t.Error("toggle for unknown username should not touch other records")
	}
}
