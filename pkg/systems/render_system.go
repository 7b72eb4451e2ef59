package systems

import (
	"fmt"
	"image/color"

	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen size of the arcade board
const (
	ScreenWidth  = 320
	ScreenHeight = 224
)

// Size of a sprite drawn at full zoom
const (
	fullZoom        = 0x7F
	fullZoomWidth   = 48
	fullZoomHeight  = 64
	shadowThickness = 6
)

// RenderSystem draws the compositor's draw list as flat boxes. There is no
// sprite graphics decoder: each box is coloured by palette and labelled
// with its slot.
type RenderSystem struct {
	order      *SpriteOrderSystem
	showLabels bool
}

// NewRenderSystem creates a renderer for the draw list of order.
func NewRenderSystem(order *SpriteOrderSystem) *RenderSystem {
	return &RenderSystem{order: order, showLabels: true}
}

// SetShowLabels toggles the per-sprite debug labels.
func (s *RenderSystem) SetShowLabels(show bool) {
	s.showLabels = show
}

// SpriteRect returns the screen rectangle of sprite. X is measured from
// the screen centre; bottom-anchored sprites stand on Y.
func SpriteRect(sprite *components.SpriteComponent, shadow bool) (x, y, w, h float32) {
	w = float32(fullZoomWidth) * float32(sprite.Zoom) / fullZoom
	h = float32(fullZoomHeight) * float32(sprite.Zoom) / fullZoom
	if shadow {
		h = float32(shadowThickness) * float32(sprite.Zoom) / fullZoom
	}
	x = float32(ScreenWidth/2+int(sprite.X)) - w/2
	y = float32(sprite.Y)
	if sprite.DrawProps&components.DrawBottom != 0 || shadow {
		y -= h
	}
	return x, y, w, h
}

// PaletteColor returns the debug colour of a hardware palette.
func PaletteColor(pal uint8) color.RGBA {
	return color.RGBA{
		R: 0x40 + (pal*53)%0xC0,
		G: 0x40 + (pal*97)%0xC0,
		B: 0x40 + (pal*29)%0xC0,
		A: 0xFF,
	}
}

// Draw renders the current draw list onto screen.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, sprite := range s.order.DrawList() {
		shadow := s.order.IsShadow(sprite)
		x, y, w, h := SpriteRect(sprite, shadow)
		if w <= 0 || h <= 0 {
			continue
		}

		if shadow {
			vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{A: 0x80}, false)
			continue
		}

		vector.DrawFilledRect(screen, x, y, w, h, PaletteColor(sprite.Pal), false)
		// facing marker
		edge := x + w - 2
		if sprite.HFlipped() {
			edge = x
		}
		vector.DrawFilledRect(screen, edge, y, 2, h, color.White, false)

		if s.showLabels {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", sprite.Slot), int(x), int(y)-14)
		}
	}
}
