package game

import (
	"bytes"
	"testing"

	"github.com/gameblabla/Cannonballs/pkg/types"
)

func TestAudioManagerQueuesWithoutContext(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	am.QueueCue(types.CueVoiceCongrats)
	if am.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", am.Pending())
	}

	// nothing registered: Update drains the queue without playing
	am.Update()
	if am.Pending() != 0 {
		t.Errorf("Pending() after Update() = %d, want 0", am.Pending())
	}

	history := am.History()
	if len(history) != 1 || history[0] != types.CueVoiceCongrats {
		t.Errorf("History() = %v, want [VOICE_CONGRATS]", history)
	}
}

func TestAudioManagerRegisterNeedsContext(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if err := am.RegisterCue(types.CueVoiceCongrats, bytes.NewReader(nil)); err == nil {
		t.Error("RegisterCue() without a context should fail")
	}
}

func TestAudioManagerCuesDisabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetCuesEnabled(false)
	am := NewAudioManager(nil, sm)
	if am.PlayCue(types.CueVoiceCongrats) {
		t.Error("PlayCue() with cues disabled should not play")
	}
}

func TestAudioManagerVolume(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)
	am.SetCueVolume(0.3)
	if got := am.cueVolume(); got != 0.3 {
		t.Errorf("cueVolume() = %v, want 0.3", got)
	}
	if got := NewAudioManager(nil, nil).cueVolume(); got != 0.8 {
		t.Errorf("cueVolume() without settings = %v, want 0.8", got)
	}
}
