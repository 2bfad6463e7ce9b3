// Package assets produces the game's runtime media. Sound effects are
// synthesized at startup so the binary carries no audio files.
package assets

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context

	clipsOnce sync.Once
	clips     map[string][]byte
)

// AudioContext returns the process-wide audio context, creating it on first
// use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// SoundNames lists the synthesized clips.
func SoundNames() []string {
	return []string{"engine", "death", "success"}
}

// LoadSound returns the PCM bytes for a synthesized clip.
func LoadSound(name string) ([]byte, error) {
	clipsOnce.Do(func() {
		rng := rand.New(rand.NewSource(1))
		clips = map[string][]byte{
			"engine":  pcm16Stereo(engineSound(rng), 0.6),
			"death":   pcm16Stereo(deathSound(rng), 0.8),
			"success": pcm16Stereo(successSound(rng), 0.6),
		}
	})
	b, ok := clips[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", name)
	}
	return b, nil
}

// LoadAudioPlayer creates a player for a synthesized clip.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	b, err := LoadSound(name)
	if err != nil {
		return nil, err
	}
	return AudioContext().NewPlayerFromBytes(b), nil
}
