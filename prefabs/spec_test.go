package prefabs

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/Mairuzu0/Boost-Game/rocket"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func TestLoadRocketSpec(t *testing.T) {
	spec, err := LoadRocketSpec()
	if err != nil {
		t.Fatalf("LoadRocketSpec: %v", err)
	}

	p := spec.Params()
	if p.TransitionDelay != 1300*time.Millisecond {
		t.Fatalf("expected 1.3s delay, got %v", p.TransitionDelay)
	}

	clips := map[string]bool{}
	for _, c := range spec.Audio {
		clips[c.Name] = true
	}
	for _, s := range []rocket.Sound{rocket.SoundEngine, rocket.SoundDeath, rocket.SoundSuccess} {
		if !clips[s.String()] {
			t.Fatalf("missing audio clip %q", s)
		}
	}

	emitters := map[string]bool{}
	for _, e := range spec.Emitters {
		emitters[e.Name] = true
	}
	for _, name := range []string{"engine", "death", "success"} {
		if !emitters[name] {
			t.Fatalf("missing emitter %q", name)
		}
	}
}

func TestRocketSpecValidate(t *testing.T) {
	valid := func() RocketSpec {
		return RocketSpec{
			Thrust: ThrustSpec{Rotation: 100, Main: 100, TransitionDelaySeconds: 1},
			Body:   BodySpec{Width: 1, Height: 1, Mass: 1},
			Audio: []AudioClipSpec{
				{Name: "engine", Sound: "engine"},
				{Name: "death", Sound: "death"},
				{Name: "success", Sound: "success"},
			},
			Emitters: []EmitterSpec{
				{Name: EngineEmitter, LifetimeSeconds: 1},
				{Name: DeathEmitter, LifetimeSeconds: 1},
				{Name: SuccessEmitter, LifetimeSeconds: 1},
			},
		}
	}

	cases := []struct {
		name   string
		mutate func(s *RocketSpec)
		want   error
	}{
		{"valid", func(s *RocketSpec) {}, nil},
		{"negative_thrust", func(s *RocketSpec) { s.Thrust.Main = -5 }, rocket.ErrInvalidParams},
		{"no_mass", func(s *RocketSpec) { s.Body.Mass = 0 }, ErrInvalidSpec},
		{"duplicate_emitter", func(s *RocketSpec) {
			s.Emitters = []EmitterSpec{{Name: "a", LifetimeSeconds: 1}, {Name: "a", LifetimeSeconds: 1}}
		}, ErrInvalidSpec},
		{"zero_lifetime", func(s *RocketSpec) { s.Emitters = []EmitterSpec{{Name: "a"}} }, ErrInvalidSpec},
		{"known_sound", func(s *RocketSpec) { s.Audio = append(s.Audio, AudioClipSpec{Name: "boom", Sound: "death"}) }, nil},
		{"unknown_sound", func(s *RocketSpec) { s.Audio = append(s.Audio, AudioClipSpec{Name: "boom", Sound: "kaboom"}) }, ErrInvalidSpec},
		{"missing_success_emitter", func(s *RocketSpec) { s.Emitters = s.Emitters[:2] }, ErrInvalidSpec},
		{"missing_success_clip", func(s *RocketSpec) { s.Audio = s.Audio[:2] }, ErrInvalidSpec},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid()
			c.mutate(&s)
			err := s.Validate()
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
		ok   bool
	}{
		{`"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, true},
		{`"#ff800080"`, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x80}, true},
		{"orange", colornames.Orange, true},
		{"Orange", colornames.Orange, true},
		{`"#fff"`, nil, false},
		{"notacolor", nil, false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte("c: "+c.in+"\n"), &out)
			if !c.ok {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.C.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, out.C.Color)
			}
		})
	}

	if (YAMLColor{}).Or(colornames.Red) != colornames.Red {
		t.Fatalf("expected fallback color")
	}
}
