package emitter

import "testing"

func TestBuildCollisionCategory(t *testing.T) {
	cases := []struct {
		name       string
		collisions bool
		want       CollisionCategory
	}{
		{"disabled", false, CollisionNone},
		{"enabled", true, CollisionDefault},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.CollisionsEnabled = c.collisions
			f := NewFactory(seeded(1))
			s := NewSampler(seeded(2))
			for i := 0; i < 20; i++ {
				d := f.Build(cfg.Position, s.Sample(cfg), cfg)
				if d.Collision != c.want {
					t.Fatalf("particle %d: collision = %v, want %v", i, d.Collision, c.want)
				}
			}
		})
	}
}

func TestBuildCopiesTrajectoryAndPosition(t *testing.T) {
	cfg := baseConfig()
	f := NewFactory(&scriptedRand{ints: []int{1}})
	tr := Trajectory{Direction: Vec2{X: 3, Y: -4}, AngularVelocity: 0.2}

	d := f.Build(cfg.Position, tr, cfg)

	if d.X != cfg.Position.Left || d.Y != cfg.Position.Top {
		t.Fatalf("spawn = (%v, %v), want (%v, %v)", d.X, d.Y, cfg.Position.Left, cfg.Position.Top)
	}
	if d.Width != ParticleSize || d.Height != ParticleSize {
		t.Fatalf("size = %vx%v, want %dx%d", d.Width, d.Height, ParticleSize, ParticleSize)
	}
	if d.Velocity != tr.Direction || d.AngularVelocity != tr.AngularVelocity {
		t.Fatalf("descriptor motion = %+v / %v, want %+v / %v", d.Velocity, d.AngularVelocity, tr.Direction, tr.AngularVelocity)
	}
	if d.Sprite != "green" {
		t.Fatalf("sprite = %q, want green", d.Sprite)
	}
}

func TestBuildFrictionAir(t *testing.T) {
	cfg := baseConfig()
	f := NewFactory(seeded(3))
	if d := f.Build(cfg.Position, Trajectory{}, cfg); d.FrictionAir != DefaultFrictionAir {
		t.Fatalf("FrictionAir = %v, want default %v", d.FrictionAir, DefaultFrictionAir)
	}
	cfg.AirFriction = 0.05
	if d := f.Build(cfg.Position, Trajectory{}, cfg); d.FrictionAir != 0.05 {
		t.Fatalf("FrictionAir = %v, want 0.05", d.FrictionAir)
	}
}

func TestBuildPicksEverySprite(t *testing.T) {
	cfg := baseConfig()
	f := NewFactory(seeded(11))
	seen := map[string]int{}
	for i := 0; i < 600; i++ {
		seen[f.Build(cfg.Position, Trajectory{}, cfg).Sprite]++
	}
	for _, s := range cfg.Sprites {
		// uniform over 3 sprites: expect ~200 each
		if seen[s] < 120 {
			t.Fatalf("sprite %q picked %d times out of 600", s, seen[s])
		}
	}
	if len(seen) != len(cfg.Sprites) {
		t.Fatalf("picked unknown sprites: %v", seen)
	}
}
