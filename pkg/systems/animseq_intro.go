package systems

import (
	"log"

	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// FerrariSeq starts the intro drive-in and plays its first pass.
//
// Nothing happens while the vehicle sprite is off or during music
// selection. From the logo phase or earlier the intro is skipped and the
// vehicle goes straight to gameplay.
//
// Returns:
//   - bool: whether the intro is now playing
func (s *AnimSeqSystem) FerrariSeq() bool {
	if !s.car.Sprite.Enabled() {
		return false
	}
	if s.gameState.Phase == types.PhaseMusic {
		return false
	}

	s.pass1.Sprite.Enable()
	s.pass2.Sprite.Enable()

	if s.gameState.Phase <= types.PhaseLogo {
		s.ferrari.InitInGame()
		return false
	}

	s.primeDelay(&s.car)
	s.primeDelay(&s.pass1)
	s.primeDelay(&s.pass2)

	s.ferrari.SetCarState(types.CarNormal)
	s.ferrari.SetState(types.FerrariSeq2)
	s.introActive = true
	log.Printf("[AnimSeqSystem] Intro started in phase %s", s.gameState.Phase)

	s.TickIntro()
	return s.introActive
}

// TickIntro runs one invocation of the intro: the vehicle, then each
// passenger.
func (s *AnimSeqSystem) TickIntro() {
	for _, a := range s.IntroActors() {
		if !s.introActive {
			return
		}
		s.intro(a)
	}
}

// intro runs one pass of an intro actor. Passenger 2 reaching a chain
// entry ends the intro and returns the vehicle to gameplay.
func (s *AnimSeqSystem) intro(a *components.AnimSpriteComponent) {
	if s.gameState.Phase <= types.PhaseLogo {
		s.endIntro()
		return
	}

	if s.gameState.TickFrame {
		if a.Frame >= 1 {
			s.ferrari.SetCarState(types.CarAnimSeq)
		}

		block, index := s.currentEntry(a)
		applyEntry(a.Sprite, block)
		s.projectIntro(a.Sprite, block)

		if countDown(a) {
			if block.Chain() {
				if a == &s.pass2 {
					if !s.road.InCarView() {
						s.submit(a.Sprite)
					}
					s.endIntro()
					return
				}
				s.followChain(a)
			} else {
				s.nextEntry(a, index)
			}
		}
	}

	if !s.road.InCarView() {
		s.submit(a.Sprite)
	}
}

func (s *AnimSeqSystem) endIntro() {
	s.introActive = false
	s.ferrari.InitInGame()
	log.Printf("[AnimSeqSystem] Intro finished, vehicle handed to gameplay")
}
