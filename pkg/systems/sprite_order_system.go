package systems

import (
	"sort"

	"github.com/gameblabla/Cannonballs/pkg/components"
)

// SpriteOrderSystem collects the sprites submitted during a frame and
// orders them for drawing. Shadow sprites go in their own bucket, drawn
// beneath everything else.
type SpriteOrderSystem struct {
	paletteMap []uint8
	shadowAddr uint32

	sprites []*components.SpriteComponent
	shadows []*components.SpriteComponent
}

// NewSpriteOrderSystem creates a compositor.
//
// Parameters:
//   - paletteMap: maps source palettes to hardware palettes, nil for identity
//   - shadowAddr: sprite data address that marks a shadow sprite
func NewSpriteOrderSystem(paletteMap []uint8, shadowAddr uint32) *SpriteOrderSystem {
	return &SpriteOrderSystem{
		paletteMap: paletteMap,
		shadowAddr: shadowAddr,
	}
}

// BeginFrame empties the draw list.
func (s *SpriteOrderSystem) BeginFrame() {
	s.sprites = s.sprites[:0]
	s.shadows = s.shadows[:0]
}

// MapPalette resolves the sprite's hardware palette.
func (s *SpriteOrderSystem) MapPalette(sprite *components.SpriteComponent) {
	if int(sprite.PalSrc) < len(s.paletteMap) {
		sprite.Pal = s.paletteMap[sprite.PalSrc]
		return
	}
	sprite.Pal = sprite.PalSrc
}

// Order adds an enabled sprite to this frame's draw list. A sprite
// submitted twice in a frame is drawn once.
func (s *SpriteOrderSystem) Order(sprite *components.SpriteComponent) {
	if !sprite.Enabled() {
		return
	}
	bucket := &s.sprites
	if s.IsShadow(sprite) {
		bucket = &s.shadows
	}
	for _, existing := range *bucket {
		if existing == sprite {
			return
		}
	}
	*bucket = append(*bucket, sprite)
}

// IsShadow reports whether sprite draws the shadow graphic.
func (s *SpriteOrderSystem) IsShadow(sprite *components.SpriteComponent) bool {
	return s.shadowAddr != 0 && sprite.Addr == s.shadowAddr
}

// DrawList returns this frame's sprites back to front: shadows first,
// then everything else by ascending priority. Submission order breaks ties.
func (s *SpriteOrderSystem) DrawList() []*components.SpriteComponent {
	out := make([]*components.SpriteComponent, 0, len(s.shadows)+len(s.sprites))
	out = append(out, byPriority(s.shadows)...)
	out = append(out, byPriority(s.sprites)...)
	return out
}

func byPriority(in []*components.SpriteComponent) []*components.SpriteComponent {
	out := make([]*components.SpriteComponent, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}
