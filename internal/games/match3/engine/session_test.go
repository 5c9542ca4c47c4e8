package engine

import (
	"errors"
	"testing"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultLevels(), 0)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := s.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestNewSessionRejectsEmptyTable(t *testing.T) {
	if _, err := NewSession(nil, 6); err == nil {
		t.Error("expected error for empty level table")
	}
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(t)
	st := s.State()

	if st.Phase != PhasePlaying || st.TimeRemaining != 60 || st.TargetScore != 50 || st.MaxMoves != 20 {
		t.Errorf("state = %+v", st)
	}
	if err := s.Start(3); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Start(3) = %v, want ErrInvalidLevel", err)
	}
}

func TestSessionEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		level int
		score int
		moves int
		want  PopupReason
	}{
		{"still playing", 0, 10, 5, PopupNone},
		{"target reached", 0, 50, 3, PopupLevelComplete},
		{"target beats move limit", 1, 70, 40, PopupLevelComplete},
		{"out of moves", 0, 49, 20, PopupGameOver},
		{"final level", 2, 100, 1, PopupAllLevelsComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			if err := s.Start(tt.level); err != nil {
				t.Fatal(err)
			}
			s.AddScore(tt.score)
			for range tt.moves {
				s.RecordMove()
			}

			if got := s.Evaluate(); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
			if tt.want != PopupNone && !s.State().PopupVisible() {
				t.Error("popup not visible")
			}
		})
	}
}

func TestSessionTick(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 59; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if st := s.State(); st.TimeRemaining != 1 || st.Phase != PhasePlaying {
		t.Fatalf("after 59 ticks: %+v", st)
	}

	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if st := s.State(); st.Popup != PopupGameOver || st.TimeRemaining != 0 {
		t.Errorf("after timeout: %+v", st)
	}
	if err := s.Tick(); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("tick in popup = %v, want ErrNotPlaying", err)
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(t)

	if err := s.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Resume while playing = %v", err)
	}
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	if !s.State().IsPaused() {
		t.Error("expected paused")
	}
	if err := s.Tick(); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("Tick while paused = %v", err)
	}
	if s.State().TimeRemaining != 60 {
		t.Error("timer ran while paused")
	}
	if err := s.Resume(); err != nil {
		t.Fatal(err)
	}
	if !s.Playing() {
		t.Error("expected playing after resume")
	}
}

func TestSessionStars(t *testing.T) {
	s := newTestSession(t)

	s.AddStars(5)
	if s.State().BoosterEnabled {
		t.Fatal("booster armed below threshold")
	}
	if err := s.ConsumeBooster(); !errors.Is(err, ErrBoosterDisabled) {
		t.Errorf("ConsumeBooster = %v, want ErrBoosterDisabled", err)
	}

	s.AddStars(1)
	if !s.State().BoosterEnabled {
		t.Fatal("booster not armed at threshold")
	}

	if err := s.ConsumeBooster(); err != nil {
		t.Fatal(err)
	}
	if st := s.State(); st.StarCount != 0 || st.BoosterEnabled {
		t.Errorf("after booster: %+v", st)
	}
}

func TestSessionTransitions(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.NextLevel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("NextLevel while playing = %v", err)
	}
	if _, err := s.ReplayLevel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("ReplayLevel while playing = %v", err)
	}

	s.AddScore(50)
	s.Evaluate()
	next, err := s.NextLevel()
	if err != nil || next != 1 {
		t.Fatalf("NextLevel = %d, %v", next, err)
	}

	if err := s.Start(2); err != nil {
		t.Fatal(err)
	}
	s.AddScore(100)
	if got := s.Evaluate(); got != PopupAllLevelsComplete {
		t.Fatalf("Evaluate = %v", got)
	}
	if _, err := s.NextLevel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("NextLevel after final level = %v", err)
	}
	if lvl, err := s.ReplayLevel(); err != nil || lvl != 0 {
		t.Errorf("ReplayLevel = %d, %v, want 0", lvl, err)
	}
}
