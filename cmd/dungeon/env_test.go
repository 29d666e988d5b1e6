package main

import (
	"testing"

	"github.com/vovakirdan/dungeon-collector/internal/core"
)

func TestGameOptionsUseRuntimeSeed(t *testing.T) {
	e := &env{}
	rt := core.DefaultConfig()
	rt.Seed = 42

	a := e.gameOptions(rt).Rand
	b := e.gameOptions(rt).Rand
	for i := 0; i < 5; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d: %d != %d, same seed should repeat floors", i, x, y)
		}
	}
}

func TestNewRandZeroSeed(t *testing.T) {
	if newRand(0) == nil {
		t.Fatal("newRand(0) should fall back to a time-based seed")
	}
}
