package emitter

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestSampleStaysInsideWindows(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"base", func(c *Config) {}},
		{"wide_spread", func(c *Config) { c.Spread = 360 }},
		{"no_volatility", func(c *Config) { c.Volatility = 0 }},
		{"full_volatility", func(c *Config) { c.Volatility = 1 }},
		{"right_facing", func(c *Config) { c.Angle = 0; c.Spread = 10 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := baseConfig()
			c.mutate(&cfg)
			s := NewSampler(seeded(7))

			minSpeed := cfg.Velocity * (1 - cfg.Volatility)
			maxSpeed := cfg.Velocity * (1 + cfg.Volatility)
			for i := 0; i < 2000; i++ {
				tr := s.Sample(cfg)
				speed := tr.Direction.Len()
				if speed < minSpeed-tolerance || speed > maxSpeed+tolerance {
					t.Fatalf("sample %d: speed %v outside [%v, %v]", i, speed, minSpeed, maxSpeed)
				}
				if tr.AngularVelocity < 0 || tr.AngularVelocity >= cfg.AngularVelocity {
					t.Fatalf("sample %d: spin %v outside [0, %v)", i, tr.AngularVelocity, cfg.AngularVelocity)
				}
				if cfg.Spread >= 360 || speed == 0 {
					continue
				}
				deg := math.Atan2(tr.Direction.Y, tr.Direction.X) * 180 / math.Pi
				// bring deg onto the same turn as the configured angle
				for deg < cfg.Angle-180 {
					deg += 360
				}
				for deg > cfg.Angle+180 {
					deg -= 360
				}
				if deg < cfg.Angle-cfg.Spread/2-1e-6 || deg > cfg.Angle+cfg.Spread/2+1e-6 {
					t.Fatalf("sample %d: angle %v outside spread window around %v", i, deg, cfg.Angle)
				}
			}
		})
	}
}

func TestSampleScriptedDraws(t *testing.T) {
	cfg := baseConfig()
	cfg.Angle = 0
	cfg.Spread = 90
	cfg.Velocity = 10
	cfg.Volatility = 0.5
	cfg.AngularVelocity = 0.4

	cases := []struct {
		name      string
		uAngle    float64
		uVel      float64
		wantAngle float64
		wantSpeed float64
	}{
		{"low_edge", 0, 0, -45, 5},
		{"centre", 0.5, 0.5, 0, 10},
		{"upper", 0.75, 0.9, 22.5, 14},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSampler(&scriptedRand{floats: []float64{c.uAngle, c.uVel}})
			tr := s.Sample(cfg)

			rad := c.wantAngle * math.Pi / 180
			wantX := math.Cos(rad) * c.wantSpeed
			wantY := math.Sin(rad) * c.wantSpeed
			if math.Abs(tr.Direction.X-wantX) > tolerance || math.Abs(tr.Direction.Y-wantY) > tolerance {
				t.Fatalf("direction = %+v, want {%v %v}", tr.Direction, wantX, wantY)
			}
			if math.Abs(tr.Direction.Len()-c.wantSpeed) > tolerance {
				t.Fatalf("magnitude = %v, want %v", tr.Direction.Len(), c.wantSpeed)
			}
			if want := cfg.AngularVelocity * c.uVel; math.Abs(tr.AngularVelocity-want) > tolerance {
				t.Fatalf("spin = %v, want %v", tr.AngularVelocity, want)
			}
		})
	}
}

func TestSampleStraightDown(t *testing.T) {
	cfg := baseConfig()
	cfg.Angle = 90
	cfg.Spread = 0
	cfg.Volatility = 0
	cfg.Velocity = 10
	cfg.AngularVelocity = 0.5

	s := NewSampler(seeded(42))
	for i := 0; i < 200; i++ {
		tr := s.Sample(cfg)
		if math.Abs(tr.Direction.X) > 1e-9 || math.Abs(tr.Direction.Y-10) > 1e-9 {
			t.Fatalf("sample %d: direction = %+v, want {0 10}", i, tr.Direction)
		}
		if tr.AngularVelocity < 0 || tr.AngularVelocity > cfg.AngularVelocity {
			t.Fatalf("sample %d: spin %v outside [0, %v]", i, tr.AngularVelocity, cfg.AngularVelocity)
		}
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	cfg := baseConfig()
	a := NewSampler(seeded(99))
	b := NewSampler(seeded(99))
	for i := 0; i < 50; i++ {
		if ta, tb := a.Sample(cfg), b.Sample(cfg); ta != tb {
			t.Fatalf("sample %d differs: %+v vs %+v", i, ta, tb)
		}
	}
}
