package components

// SpriteSlot names a hardware sprite entry owned by the sprite pool.
type SpriteSlot int

const (
	SlotFlag SpriteSlot = iota
	SlotFerrari
	SlotPass1
	SlotPass2
	SlotCrash
	SlotCrashShadow
	SlotShadow
	SlotCrashPass1
	SlotCrashPass1Shadow
	SlotCrashPass2
	SlotCrashPass2Shadow
	// SlotCount is the number of slots in the pool
	SlotCount
)

// Control bits
const (
	ControlEnable uint8 = 0x01
	ControlHFlip  uint8 = 0x02
)

// DrawBottom anchors the sprite by its bottom edge
const DrawBottom uint8 = 0x08

// ShadowCast marks a sprite that casts a shadow of the given intensity
const ShadowCast uint8 = 7

// SpriteComponent is a renderable sprite entry.
// Position and priority are written by whichever moment owns the sprite;
// the compositor only reads them.
type SpriteComponent struct {
	Slot SpriteSlot

	X, Y int16
	// Z is a 16.16 depth, used only by sprites that integrate their own depth
	Z uint32

	// Priority is the draw-order key, RoadPriority the depth relative to the road
	Priority     uint16
	RoadPriority uint16
	Zoom         uint8

	// Addr is the 20-bit sprite data address
	Addr   uint32
	PalSrc uint8
	Pal    uint8

	Control   uint8
	Shadow    uint8
	DrawProps uint8
}

func (s *SpriteComponent) Enabled() bool {
	return s.Control&ControlEnable != 0
}

func (s *SpriteComponent) Enable() {
	s.Control |= ControlEnable
}

func (s *SpriteComponent) Disable() {
	s.Control &^= ControlEnable
}

func (s *SpriteComponent) HFlipped() bool {
	return s.Control&ControlHFlip != 0
}

// SetHFlip sets or clears the horizontal flip bit.
func (s *SpriteComponent) SetHFlip(flip bool) {
	if flip {
		s.Control |= ControlHFlip
	} else {
		s.Control &^= ControlHFlip
	}
}
