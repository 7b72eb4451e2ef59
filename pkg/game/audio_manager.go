package game

import (
	"fmt"
	"io"
	"log"

	"github.com/gameblabla/Cannonballs/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager plays sound cues.
// Cues are queued fire-and-forget by the systems and played on Update,
// using the volume from SettingsManager.
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // may be nil
	players         map[types.SoundCue]*audio.Player
	pending         []types.SoundCue
	history         []types.SoundCue
}

// NewAudioManager creates an audio manager.
//
// Parameters:
//   - ctx: ebiten audio context, nil to record cues without playing them
//   - sm: settings manager for volume and enable switch, may be nil
//
// Returns:
//   - *AudioManager: the manager
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[types.SoundCue]*audio.Player),
	}
}

// RegisterCue attaches a decoded sample to a cue.
//
// Parameters:
//   - cue: the cue the sample plays for
//   - stream: 16-bit stereo PCM at the context sample rate
//
// Returns:
//   - error: if there is no audio context or the player cannot be created
func (am *AudioManager) RegisterCue(cue types.SoundCue, stream io.ReadSeeker) error {
	if am.context == nil {
		return fmt.Errorf("failed to register cue %s: no audio context", cue)
	}
	player, err := am.context.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("failed to create player for cue %s: %w", cue, err)
	}
	am.players[cue] = player
	return nil
}

// QueueCue queues cue for the next Update.
func (am *AudioManager) QueueCue(cue types.SoundCue) {
	am.pending = append(am.pending, cue)
	am.history = append(am.history, cue)
}

// Update plays every queued cue.
func (am *AudioManager) Update() {
	for _, cue := range am.pending {
		am.PlayCue(cue)
	}
	am.pending = am.pending[:0]
}

// PlayCue plays cue immediately.
//
// Returns:
//   - bool: whether a sample was started
func (am *AudioManager) PlayCue(cue types.SoundCue) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().CuesEnabled {
		return false
	}

	player, ok := am.players[cue]
	if !ok {
		log.Printf("[AudioManager] Warning: No sample for cue %s", cue)
		return false
	}

	player.SetVolume(am.cueVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()
	return true
}

// Pending returns the number of cues waiting for Update.
func (am *AudioManager) Pending() int {
	return len(am.pending)
}

// History returns every cue queued so far, oldest first.
func (am *AudioManager) History() []types.SoundCue {
	out := make([]types.SoundCue, len(am.history))
	copy(out, am.history)
	return out
}

// SetCueVolume stores the volume and applies it to every player.
func (am *AudioManager) SetCueVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetCueVolume(volume)
	}
	for _, player := range am.players {
		player.SetVolume(clampVolume(volume))
	}
}

func (am *AudioManager) cueVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().CueVolume
	}
	return 0.8
}
