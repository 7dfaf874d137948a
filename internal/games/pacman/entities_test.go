package pacman

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// corridor is a closed horizontal corridor: the player at (60,60) with
// pellets at (100,60) and (140,60) and the right wall starting at x=160.
var corridor = []string{
	"1---2",
	"|P..|",
	"3---4",
}

func loadLevel(t *testing.T, rows []string) Level {
	t.Helper()
	lvl, err := Load(ParseRows(rows), 40, 0)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return lvl
}

func newTestPlayer(lvl Level) *Player {
	return NewPlayer(lvl.Start.X, lvl.Start.Y, 15, 3, 3)
}

func TestPlayerBlockedByWallAtRest(t *testing.T) {
	lvl := loadLevel(t, []string{"|P|"})
	p := newTestPlayer(lvl)

	p.Update(core.DirRight, lvl.Walls)

	if p.X != 60 || p.Y != 20 {
		t.Errorf("position = (%v,%v), expected unchanged (60,20)", p.X, p.Y)
	}
	if !p.Velocity.IsZero() {
		t.Errorf("Velocity = %+v, expected zero", p.Velocity)
	}
}

func TestPlayerMovesAlongFreeAxis(t *testing.T) {
	lvl := loadLevel(t, corridor)
	p := newTestPlayer(lvl)

	p.Update(core.DirRight, lvl.Walls)

	if p.Velocity != (core.Vec{X: 3}) {
		t.Errorf("Velocity = %+v, expected (3,0)", p.Velocity)
	}
	if p.X != 63 || p.Y != 60 {
		t.Errorf("position = (%v,%v), expected (63,60)", p.X, p.Y)
	}
}

func TestPlayerStopsShortOfWall(t *testing.T) {
	lvl := loadLevel(t, corridor)
	p := newTestPlayer(lvl)

	for range 60 {
		p.Update(core.DirRight, lvl.Walls)
	}

	if p.X != 141 {
		t.Errorf("X = %v, expected 141", p.X)
	}
	if !p.Velocity.IsZero() {
		t.Errorf("Velocity = %+v, expected zero against the wall", p.Velocity)
	}
}

func TestPlayerBlockedTurnKeepsOtherAxis(t *testing.T) {
	lvl := loadLevel(t, corridor)
	p := newTestPlayer(lvl)

	p.Update(core.DirRight, lvl.Walls)
	p.Update(core.DirUp, lvl.Walls)

	if p.Velocity != (core.Vec{X: 3}) {
		t.Errorf("Velocity = %+v, expected (3,0) after a blocked turn", p.Velocity)
	}
	if p.X != 66 {
		t.Errorf("X = %v, expected 66", p.X)
	}
}

func TestPlayerAcceptedTurnClearsOtherAxis(t *testing.T) {
	// An open 3x3 room: every direction is free from the center.
	lvl := loadLevel(t, []string{
		"1---2",
		"|   |",
		"| P |",
		"|   |",
		"3---4",
	})
	p := newTestPlayer(lvl)

	p.Update(core.DirRight, lvl.Walls)
	p.Update(core.DirDown, lvl.Walls)

	if p.Velocity != (core.Vec{Y: 3}) {
		t.Errorf("Velocity = %+v, expected (0,3)", p.Velocity)
	}
	if p.X != 103 || p.Y != 103 {
		t.Errorf("position = (%v,%v), expected (103,103)", p.X, p.Y)
	}
}

func TestPlayerNoIntentCoasts(t *testing.T) {
	lvl := loadLevel(t, corridor)
	p := newTestPlayer(lvl)

	p.Update(core.DirRight, lvl.Walls)
	p.Update(core.DirNone, lvl.Walls)

	if p.X != 66 {
		t.Errorf("X = %v, expected 66 while coasting", p.X)
	}
}

func TestPlayerSafetyCheckZeroesVelocity(t *testing.T) {
	lvl := loadLevel(t, corridor)
	p := newTestPlayer(lvl)
	p.X = 141
	p.Velocity = core.Vec{X: 3}

	p.Update(core.DirNone, lvl.Walls)

	if !p.Velocity.IsZero() || p.X != 141 {
		t.Errorf("Velocity = %+v X = %v, expected stop at 141", p.Velocity, p.X)
	}
}

func TestPelletUpdateTransitionsOnce(t *testing.T) {
	player := NewPlayer(60, 60, 15, 3, 3)
	pellet := &Pellet{X: 70, Y: 60, R: 3}

	if !pellet.Update(player) {
		t.Fatal("first Update() should report collection")
	}
	if !pellet.Collected {
		t.Error("pellet should be marked collected")
	}
	if pellet.Update(player) {
		t.Error("second Update() should not report collection again")
	}
}

func TestPelletUpdateDistance(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		hit  bool
	}{
		{"overlapping", 60, true},
		{"just inside", 77.9, true},
		{"touching", 78, false},
		{"apart", 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player := NewPlayer(60, 60, 15, 3, 3)
			pellet := &Pellet{X: tc.x, Y: 60, R: 3}
			if got := pellet.Update(player); got != tc.hit {
				t.Errorf("Update() = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestEntityDraw(t *testing.T) {
	var rec core.Recorder

	NewWall(0, 40, 40, ShapeBlock).Draw(&rec)
	NewPlayer(60, 60, 15, 3, 3).Draw(&rec)
	(&Pellet{X: 100, Y: 60, R: 3}).Draw(&rec)

	if len(rec.Commands) != 3 {
		t.Fatalf("recorded %d commands, expected 3", len(rec.Commands))
	}
	if c := rec.Commands[0]; c.Op != core.OpDrawImage || c.X != 0 || c.Y != 40 || c.Sprite.Name != "block" {
		t.Errorf("wall draw = %+v", c)
	}
	if c := rec.Commands[1]; c.Op != core.OpFillCircle || c.R != 15 || c.Color != core.ColorYellow {
		t.Errorf("player draw = %+v", c)
	}
	if c := rec.Commands[2]; c.Op != core.OpFillCircle || c.R != 3 || c.Color != core.ColorWhite {
		t.Errorf("pellet draw = %+v", c)
	}
}
