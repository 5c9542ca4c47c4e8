package registry

import (
	"testing"

	"github.com/vovakirdan/match-master/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                          { return g.id }
func (g stubGame) Title() string                       { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)            {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                 {}
func (g stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}
	if Title("stub_b") != "Stub stub_b" {
		t.Errorf("Title() = %q", Title("stub_b"))
	}
	if Title("missing") != "missing" {
		t.Error("Title() should fall back to the ID")
	}

	list := List()
	if len(list) < 2 || list[0].ID > list[1].ID {
		t.Errorf("List() not sorted: %+v", list)
	}

	if Exists("missing") || !Exists("stub_a") {
		t.Error("Exists() mismatch")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
