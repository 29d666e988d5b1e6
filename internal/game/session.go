package game

import (
	"math/rand"

	"github.com/vovakirdan/dungeon-collector/internal/core"
	"github.com/vovakirdan/dungeon-collector/internal/dungeon"
	"github.com/vovakirdan/dungeon-collector/internal/profile"
)

// Movement keys, as named by the frontends.
var (
	keysUp    = []string{"up", "w"}
	keysDown  = []string{"down", "s"}
	keysLeft  = []string{"left", "a"}
	keysRight = []string{"right", "d"}
)

// RingCosmetic boosts the floor reward while worn.
const RingCosmetic = "ring"

// Rewards are the coins paid for completing a floor.
type Rewards struct {
	Base int
	Ring int
}

// DefaultRewards pays 8 coins, or 12 while wearing the ring.
func DefaultRewards() Rewards {
	return Rewards{Base: 8, Ring: 12}
}

// For reports the reward for a player in their current outfit.
func (r Rewards) For(p *profile.PlayerData) int {
	if p.Wearing(RingCosmetic) {
		return r.Ring
	}
	return r.Base
}

// SessionConfig holds what a gameplay session reads and writes.
type SessionConfig struct {
	Cols     int
	Rows     int
	Rand     *rand.Rand
	Settings profile.Settings
	Player   *profile.PlayerData
	Rewards  Rewards
	// Save persists the player record after a reward. May be nil.
	Save func()
}

// Session is the in-game sub-state: one run through consecutive floors.
type Session struct {
	cfg SessionConfig

	floor     int
	grid      *dungeon.Grid
	pos       core.Vec
	countdown float64
	completed bool

	earned  int
	elapsed float64
}

// NewSession starts a run on floor 1 with a fresh grid and the player in
// the middle of the play area.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	if cfg.Settings == nil {
		cfg.Settings = profile.DefaultSettings()
	}
	if cfg.Player == nil {
		cfg.Player = profile.NewPlayerData()
	}
	cfg.Cols, cfg.Rows = max(cfg.Cols, 1), max(cfg.Rows, 1)

	s := &Session{cfg: cfg, floor: 1}
	s.generate()
	s.pos = core.Vec{X: s.width() / 2, Y: s.height() / 2}
	return s
}

func (s *Session) width() float64  { return float64(s.cfg.Cols) }
func (s *Session) height() float64 { return float64(s.cfg.Rows) }

// Floor returns the current floor number, starting at 1.
func (s *Session) Floor() int { return s.floor }

// Grid returns the current floor layout.
func (s *Session) Grid() *dungeon.Grid { return s.grid }

// Position returns the player position in cells.
func (s *Session) Position() core.Vec { return s.pos }

// SetPosition moves the player, clamped to the play area.
func (s *Session) SetPosition(v core.Vec) {
	s.pos = core.Vec{
		X: core.ClampF(v.X, 0, s.width()),
		Y: core.ClampF(v.Y, 0, s.height()),
	}
}

// Countdown returns the seconds left before the elevator leaves. Zero or
// less means it is idle.
func (s *Session) Countdown() float64 { return s.countdown }

// Completed reports whether the exit was reached on this floor.
func (s *Session) Completed() bool { return s.completed }

// Earned returns the coins won during this run.
func (s *Session) Earned() int { return s.earned }

// Elapsed returns the seconds of play simulated so far.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Speed returns the movement speed in cells per second.
func (s *Session) Speed() float64 {
	return max(float64(s.cfg.Settings.Get(profile.SettingCursorSpeed, 600)), 0) / 40
}

// ExitX returns the column past which the player triggers the elevator.
func (s *Session) ExitX() float64 {
	size := core.Clamp(s.cfg.Settings.Get(profile.SettingElevatorSize, 6), 1, s.cfg.Cols)
	return s.width() - float64(size)
}

// EntryPoint is where the player appears after the elevator ride.
func (s *Session) EntryPoint() core.Vec {
	return core.Vec{X: 1, Y: s.height() / 2}
}

// Update advances the session by dt seconds.
func (s *Session) Update(dt float64, in *core.InputState) {
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt

	var dx, dy float64
	if in.AnyHeld(keysUp...) {
		dy--
	}
	if in.AnyHeld(keysDown...) {
		dy++
	}
	if in.AnyHeld(keysLeft...) {
		dx--
	}
	if in.AnyHeld(keysRight...) {
		dx++
	}
	speed := s.Speed()
	s.SetPosition(core.Vec{X: s.pos.X + dx*speed*dt, Y: s.pos.Y + dy*speed*dt})

	if s.pos.X > s.ExitX() && !s.completed {
		s.complete()
	}

	if s.countdown > 0 {
		s.countdown -= dt
		if s.countdown <= 0 {
			s.advance()
		}
	}
}

func (s *Session) complete() {
	s.completed = true

	reward := s.cfg.Rewards.For(s.cfg.Player)
	s.cfg.Player.Credit(reward)
	s.earned += reward
	if s.cfg.Save != nil {
		s.cfg.Save()
	}

	s.countdown = float64(s.cfg.Settings.Get(profile.SettingElevatorCountdownTime, 30))
	if s.countdown <= 0 {
		// No countdown configured: ride the elevator straight away.
		s.advance()
	}
}

func (s *Session) advance() {
	s.floor++
	s.completed = false
	s.countdown = 0
	s.generate()
	s.pos = s.EntryPoint()
}

func (s *Session) generate() {
	p := dungeon.WallChance(s.cfg.Settings, s.floor)
	s.grid = dungeon.Generate(s.cfg.Rand, s.cfg.Cols, s.cfg.Rows, p)
}
