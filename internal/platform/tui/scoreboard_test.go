package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match-master/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("match3", "run-1", 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	results := []storage.LevelResult{
		{RunID: "run-1", GameID: "match3", Level: 0, Score: 52, Moves: 14, Outcome: "complete"},
		{RunID: "run-1", GameID: "match3", Level: 1, Score: 68, Moves: 40, Outcome: "game_over"},
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "match3", "Match Master", []string{"Warm-up", "Chain Reaction"}, 100, 30)
	if len(m.rows) != 1 || m.rows[0][1] != "120" {
		t.Fatalf("top runs rows = %v", m.rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewLevels || len(m.rows) != 2 {
		t.Fatalf("levels view rows = %v", m.rows)
	}
	if m.rows[0][0] != "1. Warm-up" || m.rows[0][4] != "14" || m.rows[1][4] != "-" {
		t.Errorf("levels rows = %v", m.rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || len(m.rows) != 2 {
		t.Fatalf("recent view rows = %v", m.rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.view != viewLevels {
		t.Errorf("shift+tab view = %v, want levels", m.view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "match3", "Match Master", nil, 60, 20)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected unavailable message")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestOutcomeLabel(t *testing.T) {
	if outcomeLabel("complete") != "cleared" || outcomeLabel("other") != "other" {
		t.Error("unexpected outcome labels")
	}
}
