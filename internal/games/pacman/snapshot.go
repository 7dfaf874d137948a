package pacman

import (
	"math"
)

// Snapshot contains the dynamic game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	Score       int
	PlayerX     float64
	PlayerY     float64
	VelocityX   float64
	VelocityY   float64
	Intent      int
	LastKey     string
	PelletsLeft int

	// Pellet centers in slot order (2 floats each: X, Y)
	PelletData []float64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	data := make([]float64, 0, w.pellets.Len()*2)
	for i := range w.pellets.slots {
		id := PelletID(i)
		if p := w.pellets.Get(id); p != nil {
			data = append(data, p.X, p.Y)
		}
	}

	return Snapshot{
		Tick:        w.ticks,
		Score:       w.score,
		PlayerX:     w.player.X,
		PlayerY:     w.player.Y,
		VelocityX:   w.player.Velocity.X,
		VelocityY:   w.player.Velocity.Y,
		Intent:      int(w.latch.Intent()),
		LastKey:     string(w.latch.Last()),
		PelletsLeft: w.pellets.Len(),
		PelletData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.VelocityX)
	h = h*31 + math.Float64bits(snap.VelocityY)
	h = h*31 + uint64(snap.Intent)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PelletsLeft) //#nosec G115 -- hash computation

	for _, r := range snap.LastKey {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PelletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
