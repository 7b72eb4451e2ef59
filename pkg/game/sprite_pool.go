package game

import (
	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/ecs"
)

// SpritePool owns one sprite entity per hardware slot.
type SpritePool struct {
	entityManager *ecs.EntityManager
	slots         [components.SlotCount]ecs.EntityID
}

// NewSpritePool creates the sprite entities.
//
// Parameters:
//   - em: entity manager that will own the sprites
//
// Returns:
//   - *SpritePool: pool with every slot populated and disabled
func NewSpritePool(em *ecs.EntityManager) *SpritePool {
	p := &SpritePool{entityManager: em}
	for slot := components.SpriteSlot(0); slot < components.SlotCount; slot++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.SpriteComponent{Slot: slot})
		p.slots[slot] = id
	}
	return p
}

// Sprite returns the sprite of slot, or nil for an unknown slot.
func (p *SpritePool) Sprite(slot components.SpriteSlot) *components.SpriteComponent {
	if slot < 0 || slot >= components.SlotCount {
		return nil
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](p.entityManager, p.slots[slot])
	if !ok {
		return nil
	}
	return sprite
}

// Enabled returns the enabled sprites in slot order.
func (p *SpritePool) Enabled() []*components.SpriteComponent {
	var out []*components.SpriteComponent
	for _, id := range ecs.GetEntitiesWith1[*components.SpriteComponent](p.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](p.entityManager, id)
		if sprite.Enabled() {
			out = append(out, sprite)
		}
	}
	return out
}

// Reset clears every sprite back to a disabled, zeroed entry.
func (p *SpritePool) Reset() {
	for slot := components.SpriteSlot(0); slot < components.SlotCount; slot++ {
		if sprite := p.Sprite(slot); sprite != nil {
			*sprite = components.SpriteComponent{Slot: slot}
		}
	}
}
