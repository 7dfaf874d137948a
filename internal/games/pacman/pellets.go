package pacman

// PelletID is a stable handle to a pellet. It stays valid until the pellet is
// removed and is never reused within a set.
type PelletID int

// PelletSet stores pellets in an arena addressed by handle and keeps a dense
// list of the live ones. Removal swaps the last live handle into the hole, so
// it is O(1) and the order of Active changes after a removal.
type PelletSet struct {
	slots  []Pellet
	pos    []int // slot -> index in active, -1 once removed
	active []PelletID
}

// NewPelletSet creates an empty set with room for capacity pellets.
func NewPelletSet(capacity int) *PelletSet {
	return &PelletSet{
		slots:  make([]Pellet, 0, capacity),
		pos:    make([]int, 0, capacity),
		active: make([]PelletID, 0, capacity),
	}
}

// Add stores a pellet and returns its handle.
func (s *PelletSet) Add(p Pellet) PelletID {
	id := PelletID(len(s.slots))
	s.slots = append(s.slots, p)
	s.pos = append(s.pos, len(s.active))
	s.active = append(s.active, id)
	return id
}

// Contains reports whether the handle refers to a live pellet.
func (s *PelletSet) Contains(id PelletID) bool {
	return id >= 0 && int(id) < len(s.pos) && s.pos[id] >= 0
}

// Get returns the pellet for a live handle, or nil.
func (s *PelletSet) Get(id PelletID) *Pellet {
	if !s.Contains(id) {
		return nil
	}
	return &s.slots[id]
}

// Remove drops a pellet. Removing a dead or unknown handle is a no-op that
// returns false.
func (s *PelletSet) Remove(id PelletID) bool {
	if !s.Contains(id) {
		return false
	}
	i := s.pos[id]
	last := len(s.active) - 1
	moved := s.active[last]
	s.active[i] = moved
	s.pos[moved] = i
	s.active = s.active[:last]
	s.pos[id] = -1
	return true
}

// Len returns the number of live pellets.
func (s *PelletSet) Len() int {
	return len(s.active)
}

// Active returns the live handles. The slice is owned by the set and is
// invalidated by the next Remove; do not remove while ranging over it.
func (s *PelletSet) Active() []PelletID {
	return s.active
}
