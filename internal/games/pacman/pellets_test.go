package pacman

import (
	"slices"
	"testing"
)

func TestPelletSetAddGet(t *testing.T) {
	s := NewPelletSet(4)
	a := s.Add(Pellet{X: 1})
	b := s.Add(Pellet{X: 2})

	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
	if p := s.Get(b); p == nil || p.X != 2 {
		t.Errorf("Get(b) = %+v, expected pellet with X=2", p)
	}
	if !s.Contains(a) || s.Contains(PelletID(7)) || s.Contains(PelletID(-1)) {
		t.Error("Contains() reported the wrong membership")
	}
}

func TestPelletSetRemoveSwapsLast(t *testing.T) {
	s := NewPelletSet(0)
	ids := make([]PelletID, 4)
	for i := range ids {
		ids[i] = s.Add(Pellet{X: float64(i)})
	}

	if !s.Remove(ids[1]) {
		t.Fatal("Remove() of a live pellet should succeed")
	}

	expected := []PelletID{ids[0], ids[3], ids[2]}
	if !slices.Equal(s.Active(), expected) {
		t.Errorf("Active() = %v, expected %v", s.Active(), expected)
	}
	if s.Get(ids[1]) != nil {
		t.Error("Get() of a removed pellet should return nil")
	}
	// Surviving handles still resolve to the same pellets.
	if p := s.Get(ids[3]); p == nil || p.X != 3 {
		t.Errorf("Get(ids[3]) = %+v, expected X=3", p)
	}
}

func TestPelletSetRemoveIdempotent(t *testing.T) {
	s := NewPelletSet(2)
	id := s.Add(Pellet{})

	if !s.Remove(id) {
		t.Fatal("first Remove() should succeed")
	}
	if s.Remove(id) {
		t.Error("second Remove() should be a no-op")
	}
	if s.Remove(PelletID(42)) {
		t.Error("Remove() of an unknown handle should be a no-op")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestPelletSetRemoveAll(t *testing.T) {
	s := NewPelletSet(8)
	var ids []PelletID
	for i := range 8 {
		ids = append(ids, s.Add(Pellet{X: float64(i)}))
	}
	// Remove in an order that exercises both the last slot and the middle.
	for _, i := range []int{7, 0, 3, 5, 1, 6, 2, 4} {
		if !s.Remove(ids[i]) {
			t.Fatalf("Remove(ids[%d]) failed", i)
		}
		for _, id := range s.Active() {
			if s.Get(id) == nil {
				t.Fatalf("active handle %d does not resolve", id)
			}
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}
