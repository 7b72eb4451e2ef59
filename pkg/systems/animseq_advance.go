package systems

import (
	"github.com/gameblabla/Cannonballs/internal/rom"
	"github.com/gameblabla/Cannonballs/pkg/components"
)

// currentEntry decodes the entry the actor is showing.
func (s *AnimSeqSystem) currentEntry(a *components.AnimSpriteComponent) (rom.Block, uint32) {
	index := rom.EntryOffset(a.AddrCurr, a.Frame)
	return s.rom.ReadBlock(index), index
}

// applyEntry copies the sprite data address and palette of block.
func applyEntry(sprite *components.SpriteComponent, block rom.Block) {
	sprite.Addr = block.SpriteAddr()
	sprite.PalSrc = block.Palette
}

// countDown spends one tick of the current entry and reports whether it
// expired. The counter wraps like the original 8-bit register, so an entry
// loaded with delay 0 is held for 256 ticks.
func countDown(a *components.AnimSpriteComponent) bool {
	a.FrameDelay--
	return a.FrameDelay == 0
}

// followChain moves to the next chain and primes its first entry.
func (s *AnimSeqSystem) followChain(a *components.AnimSpriteComponent) {
	a.AddrCurr = a.AddrNext
	a.FrameDelay = s.rom.ReadDelay(a.AddrCurr)
	a.Frame = 0
}

// nextEntry steps to the following entry of the chain, priming its delay.
func (s *AnimSeqSystem) nextEntry(a *components.AnimSpriteComponent, index uint32) {
	a.FrameDelay = s.rom.ReadDelay(index + rom.BlockSize)
	a.Frame++
}

// advance spends one tick of the entry at index, decoded as block, and
// reports whether the actor followed a chain.
func (s *AnimSeqSystem) advance(a *components.AnimSpriteComponent, block rom.Block, index uint32) bool {
	if !countDown(a) {
		return false
	}
	if block.Chain() {
		s.followChain(a)
		return true
	}
	s.nextEntry(a, index)
	return false
}

// primeDelay reloads the delay from the first entry of the current chain.
func (s *AnimSeqSystem) primeDelay(a *components.AnimSpriteComponent) {
	a.FrameDelay = s.rom.ReadDelay(a.AddrCurr)
}
