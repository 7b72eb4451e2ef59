package systems

import (
	"log"

	"github.com/gameblabla/Cannonballs/pkg/types"
)

// FlagSeq runs one invocation of the flag waving marshal.
//
// The marshal plays the chain of the current start phase, reloading it
// whenever the phase changes before the race starts. Each tick it moves
// towards the camera by a step read from the zoom lookup table and is
// switched off once it passes the depth ceiling or the game leaves the
// start and race phases.
func (s *AnimSeqSystem) FlagSeq() {
	a := &s.flag
	if !a.Sprite.Enabled() {
		return
	}

	if s.gameState.TickFrame {
		phase := s.gameState.Phase
		if phase < types.PhaseStart1 || phase > types.PhaseGameOver {
			a.Sprite.Disable()
			return
		}

		if phase < types.PhaseInGame && a.State != phase {
			a.State = phase
			a.AddrCurr, a.AddrNext = s.rom.ReadPair(s.addr.FlagSeq + uint32(phase-types.PhaseStart1)<<3)
			s.primeDelay(a)
			a.Frame = 0
		}

		if phase <= types.PhaseInGame && !s.waveFlag() {
			return
		}
	}

	s.submit(a.Sprite)
}

// waveFlag plays one tick of the marshal. It returns false when the
// marshal passed the depth ceiling and was switched off.
func (s *AnimSeqSystem) waveFlag() bool {
	a := &s.flag
	sprite := a.Sprite

	block, index := s.currentEntry(a)
	applyEntry(sprite, block)

	step := s.addr.ZoomLookup + ((sprite.Z>>16)<<2 | s.gameState.ScrollSpeed)
	sprite.Z += s.rom.Read32(step)
	z16 := uint16(sprite.Z >> 16)

	if z16 >= s.cfg.Flag.DepthCeiling {
		sprite.Disable()
		log.Printf("[AnimSeqSystem] Flag passed depth 0x%X, disabled", z16)
		return false
	}

	s.projectFlag(sprite, block, z16)
	s.advance(a, block, index)
	return true
}
