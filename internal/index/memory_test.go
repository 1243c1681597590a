package index

import (
	"testing"

	"github.com/swingscene/radar/internal/domain"
)

func TestCommunityIndexReplaceAndAll(t *testing.T) {
	idx := NewCommunityIndex()

	if idx.Count() != 0 {
		t.Errorf("new index Count() = %d, want 0", idx.Count())
	}

	records := []domain.Community{
		{Username: "alice", City: "Oslo"},
		{Username: "bob", City: "Berlin"},
	}
	idx.Replace(records)

	got := idx.All()
	if len(got) != 2 {
		t.Fatalf("All() = %d records, want 2", len(got))
	}
	// Dataset order preserved.
	if got[0].Username != "alice" || got[1].Username != "bob" {
		t.Errorf("All() order = %v", []string{got[0].Username, got[1].Username})
	}
	if idx.LastReload().IsZero() {
		t.Error("Replace() should set the last reload timestamp")
	}
}

func TestCommunityIndexAllReturnsCopy(t *testing.T) {
	idx := NewCommunityIndex()
	idx.Replace([]domain.Community{{Username: "alice"}})

	snapshot := idx.All()
	snapshot[0].Username = "mallory"

	if c, _ := idx.Get("alice"); c.Username != "alice" {
		t.Error("mutating a snapshot must not affect the index")
	}
}

func TestCommunityIndexGet(t *testing.T) {
	idx := NewCommunityIndex()
	idx.Replace([]domain.Community{{Username: "alice", City: "Oslo"}})

	c, ok := idx.Get("alice")
	if !ok || c.City != "Oslo" {
		t.Errorf("Get(alice) = %+v, %v", c, ok)
	}

	if _, ok := idx.Get("ghost"); ok {
		t.Error("Get() should report unknown usernames")
	}
}

func TestCommunityIndexSetVerified(t *testing.T) {
	idx := NewCommunityIndex()
	idx.Replace([]domain.Community{{Username: "alice"}})

	if !idx.SetVerified("alice", true) {
		t.Fatal("SetVerified(alice) should succeed")
	}
	if c, _ := idx.Get("alice"); !c.Verified {
		t.Error("alice should be verified after SetVerified")
	}

	if idx.SetVerified("ghost", true) {
		t.Error("SetVerified() should report unknown usernames")
	}
}
