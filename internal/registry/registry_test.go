package registry

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

type fakeGame struct {
	id string
}

func (f *fakeGame) ID() string                         { return f.id }
func (f *fakeGame) Title() string                      { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig) error     { return nil }
func (f *fakeGame) HandleKey(core.KeyEvent)            {}
func (f *fakeGame) Step(core.Surface) core.StepResult  { return core.StepResult{} }
func (f *fakeGame) State() core.GameState              { return core.GameState{} }
func (f *fakeGame) Display() core.Display              { return core.Display{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("fake-b", func() Game { return &fakeGame{id: "fake-b"} })
	Register("fake-a", func() Game { return &fakeGame{id: "fake-a"} })

	if !Exists("fake-a") {
		t.Error("Exists(fake-a) = false, expected true")
	}

	g, err := Create("fake-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "fake-b" {
		t.Errorf("ID() = %q, expected fake-b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "fake-a" && info.Title != "Fake fake-a" {
			t.Errorf("Title = %q, expected Fake fake-a", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("fake-dup", func() Game { return &fakeGame{id: "fake-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate ID should panic")
		}
	}()
	Register("fake-dup", func() Game { return &fakeGame{id: "fake-dup"} })
}
