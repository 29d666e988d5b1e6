package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

func newTestSession(p *profile.PlayerData, saves *int) *Session {
	return NewSession(SessionConfig{
		Cols:     80,
		Rows:     22,
		Rand:     rand.New(rand.NewSource(3)),
		Settings: profile.DefaultSettings(),
		Player:   p,
		Rewards:  DefaultRewards(),
		Save:     func() { *saves++ },
	})
}

func TestNewSession(t *testing.T) {
	var saves int
	s := newTestSession(profile.NewPlayerData(), &saves)

	if s.Floor() != 1 {
		t.Errorf("Floor() = %d, expected 1", s.Floor())
	}
	if s.Countdown() != 0 || s.Completed() {
		t.Error("new session should have no countdown and not be completed")
	}
	if s.Grid().Cols() != 80 || s.Grid().Rows() != 22 {
		t.Errorf("grid is %dx%d, expected 80x22", s.Grid().Cols(), s.Grid().Rows())
	}
	if pos := s.Position(); pos.X != 40 || pos.Y != 11 {
		t.Errorf("player starts at %v, expected the center (40, 11)", pos)
	}
}

func TestSessionMovement(t *testing.T) {
	var saves int
	s := newTestSession(profile.NewPlayerData(), &saves)
	in := core.NewInputState()
	now := time.Now()

	in.KeyDown("right", now)
	s.Update(1, in)
	if got := s.Position().X; math.Abs(got-55) > 1e-9 {
		t.Errorf("after 1s right, x = %.2f, expected 55 (15 cells/s)", got)
	}
	in.KeyUp("right")

	// Opposite keys cancel
	in.KeyDown("up", now)
	in.KeyDown("s", now)
	s.Update(1, in)
	if got := s.Position().Y; got != 11 {
		t.Errorf("up+down moved the player to y=%.2f", got)
	}
	in.KeyUp("s")

	s.Update(100, in)
	if got := s.Position().Y; got != 0 {
		t.Errorf("y should clamp to 0, got %.2f", got)
	}

	in.ReleaseAll()
	in.KeyDown("a", now)
	s.Update(100, in)
	if got := s.Position().X; got != 0 {
		t.Errorf("x should clamp to 0, got %.2f", got)
	}
}

func TestFloorCompletionAndAdvance(t *testing.T) {
	var saves int
	p := profile.NewPlayerData()
	s := newTestSession(p, &saves)
	in := core.NewInputState()
	firstGrid := s.Grid()

	s.SetPosition(core.Vec{X: 79, Y: 5})
	s.Update(0.016, in)

	if !s.Completed() {
		t.Fatal("reaching the exit should complete the floor")
	}
	if p.Currency != 8 {
		t.Errorf("Currency = %d, expected 8", p.Currency)
	}
	if saves != 1 {
		t.Errorf("player saved %d times, expected 1", saves)
	}
	if c := s.Countdown(); c <= 29 || c > 30 {
		t.Errorf("Countdown() = %.3f, expected just under 30", c)
	}

	// Standing in the exit again must not pay twice
	for i := 0; i < 10; i++ {
		s.Update(0.016, in)
	}
	if p.Currency != 8 || saves != 1 {
		t.Errorf("re-trigger paid again: currency=%d saves=%d", p.Currency, saves)
	}
	if s.Floor() != 1 {
		t.Fatal("floor advanced before the countdown ended")
	}

	s.Update(30, in)

	if s.Floor() != 2 {
		t.Errorf("Floor() = %d, expected 2", s.Floor())
	}
	if s.Completed() {
		t.Error("completed flag should clear on the new floor")
	}
	if s.Countdown() != 0 {
		t.Errorf("Countdown() = %.3f, expected 0", s.Countdown())
	}
	if s.Position() != s.EntryPoint() {
		t.Errorf("player at %v, expected entry point %v", s.Position(), s.EntryPoint())
	}
	if s.Grid() == firstGrid {
		t.Error("a new floor needs a freshly generated grid")
	}
	if s.Grid().Cols() != 80 || s.Grid().Rows() != 22 {
		t.Error("grid dimensions must stay fixed for the session")
	}
	if s.Earned() != 8 {
		t.Errorf("Earned() = %d, expected 8", s.Earned())
	}
}

func TestRingReward(t *testing.T) {
	tests := []struct {
		name    string
		wearing bool
		want    int
	}{
		{"without ring", false, 8},
		{"with ring", true, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var saves int
			p := profile.NewPlayerData()
			p.OwnedCosmetics.Put(RingCosmetic)
			if tc.wearing {
				p.EquippedCosmetics.Put(RingCosmetic)
			}
			s := newTestSession(p, &saves)

			s.SetPosition(core.Vec{X: 80, Y: 3})
			s.Update(0.01, core.NewInputState())

			if p.Currency != tc.want {
				t.Errorf("Currency = %d, expected %d", p.Currency, tc.want)
			}
		})
	}
}

func TestZeroCountdownAdvancesImmediately(t *testing.T) {
	var saves int
	p := profile.NewPlayerData()
	s := newTestSession(p, &saves)
	s.cfg.Settings[profile.SettingElevatorCountdownTime] = 0

	s.SetPosition(core.Vec{X: 80, Y: 3})
	s.Update(0.01, core.NewInputState())

	if s.Floor() != 2 || s.Completed() {
		t.Errorf("floor=%d completed=%v, expected floor 2 and not completed", s.Floor(), s.Completed())
	}
	if p.Currency != 8 {
		t.Errorf("Currency = %d, expected 8", p.Currency)
	}
}

func TestClock(t *testing.T) {
	var c Clock
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if dt := c.Delta(t0); dt != 0 {
		t.Errorf("first Delta = %v, expected 0", dt)
	}
	if dt := c.Delta(t0.Add(500 * time.Millisecond)); dt != 0.5 {
		t.Errorf("Delta = %v, expected 0.5", dt)
	}

	c.Reset()
	if dt := c.Delta(t0.Add(10 * time.Second)); dt != 0 {
		t.Errorf("Delta after Reset = %v, expected 0", dt)
	}
	if dt := c.Delta(t0.Add(9 * time.Second)); dt != 0 {
		t.Errorf("Delta going back in time = %v, expected 0", dt)
	}
}
