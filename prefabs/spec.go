package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Mairuzu0/Boost-Game/assets"
	"github.com/Mairuzu0/Boost-Game/rocket"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const RocketFile = "rocket.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ThrustSpec struct {
	Rotation               float64 `yaml:"rotation"`
	Main                   float64 `yaml:"main"`
	TransitionDelaySeconds float64 `yaml:"transition_delay_seconds"`
}

type BodySpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

type HullSpec struct {
	Color  YAMLColor `yaml:"color"`
	Window YAMLColor `yaml:"window"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	Sound  string  `yaml:"sound"`
	Volume float64 `yaml:"volume"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type EmitterSpec struct {
	Name string `yaml:"name"`
	// Burst emitters release Count particles per Play; others stream Rate
	// particles per second while playing.
	Burst           bool       `yaml:"burst"`
	Count           int        `yaml:"count"`
	Rate            float64    `yaml:"rate"`
	Speed           float64    `yaml:"speed"`
	SpeedJitter     float64    `yaml:"speed_jitter"`
	Spread          float64    `yaml:"spread"`
	LifetimeSeconds float64    `yaml:"lifetime_seconds"`
	Size            float64    `yaml:"size"`
	Color           YAMLColor  `yaml:"color"`
	Offset          VectorSpec `yaml:"offset"`
	Direction       VectorSpec `yaml:"direction"`
}

// ShakeSpec is a screen shake. A zero duration disables it.
type ShakeSpec struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	Intensity       float64 `yaml:"intensity"`
}

func (s ShakeSpec) Duration() time.Duration {
	return time.Duration(s.DurationSeconds * float64(time.Second))
}

// RocketSpec is the tuning prefab for the player rocket.
type RocketSpec struct {
	Name       string          `yaml:"name"`
	Thrust     ThrustSpec      `yaml:"thrust"`
	Body       BodySpec        `yaml:"body"`
	Hull       HullSpec        `yaml:"hull"`
	Audio      []AudioClipSpec `yaml:"audio"`
	Emitters   []EmitterSpec   `yaml:"emitters"`
	DeathShake ShakeSpec       `yaml:"death_shake"`
}

func LoadRocketSpec() (*RocketSpec, error) {
	spec, err := LoadSpec[RocketSpec](RocketFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", RocketFile, err)
	}
	return &spec, nil
}

// Params converts the thrust section into controller parameters.
func (s *RocketSpec) Params() rocket.Params {
	return rocket.Params{
		RotationThrust:  s.Thrust.Rotation,
		MainThrust:      s.Thrust.Main,
		TransitionDelay: time.Duration(s.Thrust.TransitionDelaySeconds * float64(time.Second)),
	}
}

// Emitter names the rocket controller expects on its entity.
const (
	EngineEmitter  = "engine"
	DeathEmitter   = "death"
	SuccessEmitter = "success"
)

var requiredEmitters = []string{EngineEmitter, DeathEmitter, SuccessEmitter}

func (s *RocketSpec) Validate() error {
	if err := s.Params().Validate(); err != nil {
		return err
	}
	if s.Body.Width <= 0 || s.Body.Height <= 0 || s.Body.Mass <= 0 {
		return fmt.Errorf("%w: body %vx%v mass %v", ErrInvalidSpec, s.Body.Width, s.Body.Height, s.Body.Mass)
	}
	sounds := assets.SoundNames()
	clips := make(map[string]bool, len(s.Audio))
	for _, clip := range s.Audio {
		if clip.Name == "" || !slices.Contains(sounds, clip.Sound) {
			return fmt.Errorf("%w: audio clip %q uses unknown sound %q", ErrInvalidSpec, clip.Name, clip.Sound)
		}
		clips[clip.Name] = true
	}
	for _, snd := range []rocket.Sound{rocket.SoundEngine, rocket.SoundDeath, rocket.SoundSuccess} {
		if !clips[snd.String()] {
			return fmt.Errorf("%w: no %q audio clip", ErrInvalidSpec, snd)
		}
	}
	seen := make(map[string]bool, len(s.Emitters))
	for _, e := range s.Emitters {
		if e.Name == "" || seen[e.Name] {
			return fmt.Errorf("%w: emitter name %q empty or repeated", ErrInvalidSpec, e.Name)
		}
		seen[e.Name] = true
		if e.LifetimeSeconds <= 0 {
			return fmt.Errorf("%w: emitter %q lifetime %v", ErrInvalidSpec, e.Name, e.LifetimeSeconds)
		}
	}
	for _, name := range requiredEmitters {
		if !seen[name] {
			return fmt.Errorf("%w: no %q emitter", ErrInvalidSpec, name)
		}
	}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if !strings.HasPrefix(value.Value, "#") {
		named, ok := colornames.Map[strings.ToLower(value.Value)]
		if !ok {
			return fmt.Errorf("unknown color name: %s", value.Value)
		}
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c's color, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
