package components

import (
	"testing"

	"github.com/gameblabla/Cannonballs/pkg/types"
)

func TestTimelineRow(t *testing.T) {
	tests := []struct {
		name  string
		role  types.ActorRole
		stage ActorStage
		want  types.ActorRole
	}{
		{"trophy entering", types.RoleTrophy, StageEntering, types.RoleTrophy},
		{"trophy active", types.RoleTrophy, StageActive, types.RoleTrophy},
		{"trophy presented", types.RoleTrophy, StagePresented, types.RoleTrophyPresented},
		{"effects presented", types.RoleEffects, StagePresented, types.RoleEffectsPresented},
		{"door presented", types.RoleDoor, StagePresented, types.RoleDoor},
		{"vehicle", types.RoleFerrari, StageActive, types.RoleFerrari},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &AnimSpriteComponent{Role: tt.role, Stage: tt.stage}
			if got := a.TimelineRow(); got != tt.want {
				t.Errorf("TimelineRow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBindClearsState(t *testing.T) {
	first := &SpriteComponent{Slot: SlotCrash}
	second := &SpriteComponent{Slot: SlotFlag}
	a := &AnimSpriteComponent{
		Sprite:     first,
		AddrCurr:   0x100,
		Frame:      3,
		FrameDelay: 9,
		Props:      PropsTimelineDriver,
		Stage:      StagePresented,
	}
	a.Bind(second)
	if a.Sprite != second {
		t.Errorf("Sprite = %v, want slot %v", a.Sprite.Slot, SlotFlag)
	}
	if a.AddrCurr != 0 || a.Frame != 0 || a.FrameDelay != 0 || a.Props != 0 || a.Stage != StageEntering {
		t.Errorf("Bind() left state behind: %+v", a)
	}
}

func TestSpriteControlBits(t *testing.T) {
	s := &SpriteComponent{}
	s.Enable()
	s.SetHFlip(true)
	if !s.Enabled() || !s.HFlipped() {
		t.Fatalf("Control = 0x%02x, want enable and hflip", s.Control)
	}
	s.SetHFlip(false)
	if s.HFlipped() {
		t.Error("SetHFlip(false) left the flip bit set")
	}
	s.Disable()
	if s.Enabled() {
		t.Error("Disable() left the enable bit set")
	}
}
