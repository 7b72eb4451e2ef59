package systems

import (
	"github.com/gameblabla/Cannonballs/internal/rom"
	"github.com/gameblabla/Cannonballs/pkg/components"
)

// Projection scales local offsets by priority / 512.
const projectionShift = 9

func negateIf(v int32, negate bool) int32 {
	if negate {
		return -v
	}
	return v
}

// projectFlag places the marshal at integer depth z16. The local x is
// measured from the road's centre line at that depth.
func (s *AnimSeqSystem) projectFlag(sprite *components.SpriteComponent, block rom.Block, z16 uint16) {
	sprite.Priority = z16
	sprite.Zoom = uint8(z16 >> 2)

	x := int32(block.LocalX() - s.road.RoadOffset(z16))
	sprite.X = int16(negateIf((x*int32(z16))>>projectionShift, block.NegateX()))

	y := int16((int32(block.LocalY()) * int32(z16)) >> projectionShift)
	sprite.Y = s.road.RoadY(z16) - y

	sprite.SetHFlip(block.HFlip())
}

// projectIntro places an intro actor at the fixed intro depth. Y is not
// scaled by depth.
func (s *AnimSeqSystem) projectIntro(sprite *components.SpriteComponent, block rom.Block) {
	sprite.Zoom = s.cfg.Intro.Zoom
	sprite.RoadPriority = s.cfg.Intro.Priority
	sprite.Priority = s.cfg.Intro.Priority - block.SpritePriority()

	x := int32(block.LocalX()) * int32(sprite.Priority)
	sprite.X = int16(negateIf(x>>projectionShift, block.NegateX()))

	sprite.Y = s.cfg.Intro.BaseY - block.LocalY()

	sprite.SetHFlip(block.HFlip())
}

// projectOutro places an end sequence actor at the depth stored in its
// entry. The x byte is not sign-extended here: its sign comes from the
// negate flag only.
func (s *AnimSeqSystem) projectOutro(sprite *components.SpriteComponent, block rom.Block) {
	sprite.Zoom = block.Depth >> 1
	sprite.RoadPriority = uint16(block.Depth) << 1
	sprite.Priority = sprite.RoadPriority - block.SpritePriority()

	x := int32(block.RawX()) * int32(sprite.Priority)
	sprite.X = int16(negateIf(x>>projectionShift, block.NegateX()))

	y := int16((int32(block.LocalY()) * int32(sprite.Priority)) >> projectionShift)
	sprite.Y = s.road.RoadY(sprite.Priority) - y

	sprite.SetHFlip(block.HFlip())
}

// projectShadow derives a shadow from its parent. The shadow copies the
// parent's road priority last, so its size uses the value the parent wrote
// this tick and the compositor sees the parent's depth.
func (s *AnimSeqSystem) projectShadow(sprite, parent *components.SpriteComponent, shift uint8) {
	sprite.X = parent.X
	priority := parent.RoadPriority >> shift
	sprite.Zoom = uint8(priority - (priority >> 2))
	sprite.Y = s.road.RoadY(parent.RoadPriority)
	sprite.RoadPriority = parent.RoadPriority
}
