package entity

import (
	"fmt"

	"github.com/Mairuzu0/Boost-Game/assets"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/prefabs"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// buildAudioComponent loads a player per clip. Muted components keep their
// clip names with nil players so requests are still accepted.
func buildAudioComponent(audioSpecs []prefabs.AudioClipSpec, muted bool) (*component.Audio, error) {
	n := len(audioSpecs)

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		var player *audio.Player
		if !muted {
			var err error
			player, err = assets.LoadAudioPlayer(clip.Sound)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
		}
		vol := clip.Volume
		if vol <= 0 {
			vol = 1
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, vol)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}

// ReleaseAudio pauses every player so a discarded world falls silent.
func ReleaseAudio(a *component.Audio) {
	if a == nil {
		return
	}
	for _, p := range a.Players {
		if p != nil && p.IsPlaying() {
			p.Pause()
		}
	}
}
