package game

import (
	"testing"

	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/ecs"
)

func TestSpritePool(t *testing.T) {
	pool := NewSpritePool(ecs.NewEntityManager())

	for slot := components.SpriteSlot(0); slot < components.SlotCount; slot++ {
		sprite := pool.Sprite(slot)
		if sprite == nil {
			t.Fatalf("Sprite(%d) = nil", slot)
		}
		if sprite.Slot != slot {
			t.Errorf("Sprite(%d).Slot = %d", slot, sprite.Slot)
		}
		if sprite.Enabled() {
			t.Errorf("Sprite(%d) starts enabled", slot)
		}
	}

	if pool.Sprite(components.SlotCount) != nil || pool.Sprite(-1) != nil {
		t.Error("Sprite() of an unknown slot should be nil")
	}

	// the pool hands out the same instance every time
	pool.Sprite(components.SlotFlag).Enable()
	pool.Sprite(components.SlotCrash).Enable()
	enabled := pool.Enabled()
	if len(enabled) != 2 || enabled[0].Slot != components.SlotFlag || enabled[1].Slot != components.SlotCrash {
		t.Errorf("Enabled() = %v, want flag then crash", enabled)
	}

	pool.Sprite(components.SlotFlag).X = 40
	pool.Reset()
	if len(pool.Enabled()) != 0 || pool.Sprite(components.SlotFlag).X != 0 {
		t.Error("Reset() left sprite state behind")
	}
	if pool.Sprite(components.SlotFlag).Slot != components.SlotFlag {
		t.Error("Reset() lost the slot number")
	}
}
