package app

import (
	"strings"
	"testing"

	"github.com/gameblabla/Cannonballs/internal/rom/romtest"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

type cueLog struct {
	cues []types.SoundCue
}

func (c *cueLog) QueueCue(cue types.SoundCue) {
	c.cues = append(c.cues, cue)
}

func newDemoSession(t *testing.T, mode types.OperatingMode, variant int) (*Session, *cueLog) {
	t.Helper()
	image, addr := romtest.BuildDemo()
	cues := &cueLog{}
	s, err := NewSession(SessionConfig{
		ROM:         image,
		Addresses:   addr,
		Cues:        cues,
		Mode:        mode,
		Variant:     variant,
		ScrollSpeed: 1,
	})
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s, cues
}

// runUntilDone steps at most limit frames and returns the frames used.
func runUntilDone(s *Session, limit int) int {
	frames := 0
	for !s.Done() && frames < limit {
		s.Step()
		frames++
	}
	return frames
}

func TestParseMoment(t *testing.T) {
	for m := MomentFlag; m <= MomentEnd; m++ {
		got, err := ParseMoment(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMoment(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMoment("podium"); err == nil {
		t.Error("ParseMoment(\"podium\") should fail")
	}
}

func TestNewSessionRequiresImage(t *testing.T) {
	if _, err := NewSession(SessionConfig{}); err == nil {
		t.Error("NewSession() without an image should fail")
	}
}

func TestSessionFlag(t *testing.T) {
	s, _ := newDemoSession(t, types.ModeOriginal, 0)
	if err := s.Restart(MomentFlag); err != nil {
		t.Fatalf("Restart() error: %v", err)
	}

	runUntilDone(s, 4000)
	if !s.Done() {
		t.Fatal("flag never passed the camera")
	}
	if s.State.Phase != types.PhaseInGame {
		t.Errorf("phase = %s, want %s", s.State.Phase, types.PhaseInGame)
	}
}

func TestSessionIntro(t *testing.T) {
	s, _ := newDemoSession(t, types.ModeOriginal, 0)
	if err := s.Restart(MomentIntro); err != nil {
		t.Fatalf("Restart() error: %v", err)
	}

	runUntilDone(s, 2000)
	if !s.Done() {
		t.Fatal("intro never finished")
	}
	if s.Ferrari.State != types.FerrariInGame {
		t.Errorf("ferrari state = %s, want %s", s.Ferrari.State, types.FerrariInGame)
	}

	// the parked vehicle stays on screen
	s.Step()
	if len(s.Order.DrawList()) != 1 {
		t.Errorf("draw list has %d sprites after the intro, want 1", len(s.Order.DrawList()))
	}
}

func TestSessionEndSequence(t *testing.T) {
	tests := []struct {
		name      string
		mode      types.OperatingMode
		wantPhase types.GamePhase
		handoffs  int
	}{
		{"original", types.ModeOriginal, types.PhaseInitMap, 0},
		{"enhanced", types.ModeEnhanced, types.PhaseInitBest2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cues := newDemoSession(t, tt.mode, 3)
			if err := s.Restart(MomentEnd); err != nil {
				t.Fatalf("Restart() error: %v", err)
			}

			runUntilDone(s, 4000)
			if !s.Done() {
				t.Fatal("end sequence never completed")
			}
			if s.Ticks() != 0x190 {
				t.Errorf("Ticks() = %d, want %d", s.Ticks(), 0x190)
			}
			if s.State.Phase != tt.wantPhase {
				t.Errorf("phase = %s, want %s", s.State.Phase, tt.wantPhase)
			}
			if s.handoffs != tt.handoffs {
				t.Errorf("handoffs = %d, want %d", s.handoffs, tt.handoffs)
			}
			if len(cues.cues) != 1 || cues.cues[0] != types.CueVoiceCongrats {
				t.Errorf("cues = %v, want one congratulations", cues.cues)
			}
			if !strings.Contains(s.Status(), "[done]") {
				t.Errorf("Status() = %q, want done marker", s.Status())
			}
		})
	}
}

func TestSessionRestartRejectsVariant(t *testing.T) {
	s, _ := newDemoSession(t, types.ModeOriginal, 0)
	s.SetVariant(types.EndSeqVariants)
	if err := s.Restart(MomentEnd); err == nil {
		t.Error("Restart() with a bad variant should fail")
	}
}

func TestSessionActors(t *testing.T) {
	tests := []struct {
		moment Moment
		want   int
	}{
		{MomentFlag, 1},
		{MomentIntro, 3},
		{MomentEnd, int(types.RoleEffects) + 1},
	}
	for _, tt := range tests {
		s, _ := newDemoSession(t, types.ModeOriginal, 0)
		if err := s.Restart(tt.moment); err != nil {
			t.Fatalf("Restart(%s) error: %v", tt.moment, err)
		}
		for i := 0; i < 20; i++ {
			s.Step()
		}
		actors := s.Actors()
		if len(actors) != tt.want {
			t.Errorf("%s: %d actors, want %d", tt.moment, len(actors), tt.want)
		}
		for _, info := range actors {
			if line := FormatActor(info); !strings.Contains(line, info.Name) {
				t.Errorf("FormatActor() = %q, missing name %q", line, info.Name)
			}
		}
	}
}
