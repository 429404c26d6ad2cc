package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/confetti/emitter"
	"github.com/milk9111/confetti/physics"
)

func testConfig() emitter.Config {
	return emitter.Config{
		Position:        emitter.Position{Top: 600, Left: 400},
		Angle:           -90,
		Spread:          30,
		Velocity:        10,
		Volatility:      0.3,
		AngularVelocity: 0.2,
		Concentration:   30,
		Duration:        time.Second,
		Sprites:         []string{"confetti_red"},
	}
}

func TestSimulate(t *testing.T) {
	var out bytes.Buffer
	s, err := simulate(testConfig(), physics.WorldConfig{Width: 800, Height: 720}, simOptions{
		seconds: 2,
		tps:     60,
		seed:    3,
		every:   30,
		out:     &out,
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if s.Ticks != 120 {
		t.Fatalf("Ticks = %d, want 120", s.Ticks)
	}
	if s.Emitted != 30 {
		t.Fatalf("Emitted = %d, want 30", s.Emitted)
	}
	if s.StoppedAt <= time.Second || s.StoppedAt > time.Second+100*time.Millisecond {
		t.Fatalf("StoppedAt = %v, want just after 1s", s.StoppedAt)
	}
	if s.Live+s.Removed != 30 {
		t.Fatalf("live %d + removed %d should account for every body", s.Live, s.Removed)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 4 {
		t.Fatalf("printed %d progress lines, want 4", lines)
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Sprites = nil
	_, err := simulate(cfg, physics.WorldConfig{Width: 800, Height: 600}, simOptions{seconds: 1})
	if !errors.Is(err, emitter.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}
