package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Click(3, 4)

	if !f.Has(ActionConfirm) || f.Has(ActionBooster) {
		t.Errorf("actions = %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionConfirm) || len(f.Clicks) != 0 {
		t.Error("Clear should reset actions and clicks")
	}
	if !clone.Has(ActionConfirm) || len(clone.Clicks) != 1 || clone.Clicks[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("clone = %+v", clone)
	}
}

func TestActionString(t *testing.T) {
	if ActionBooster.String() != "Booster" {
		t.Errorf("ActionBooster = %q", ActionBooster.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
