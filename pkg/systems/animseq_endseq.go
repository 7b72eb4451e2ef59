package systems

import (
	"fmt"
	"log"

	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// InitEndSeq activates end sequence variant. The vehicle sprite is handed
// to the sequence, the in-game passengers are hidden and the timeline is
// rewound; the actors are placed on the next simulation tick.
//
// Activating a sequence that is already playing restarts it.
//
// Parameters:
//   - variant: end sequence to play (0-4)
//
// Returns:
//   - error: if variant is out of range
func (s *AnimSeqSystem) InitEndSeq(variant int) error {
	if variant < 0 || variant >= types.EndSeqVariants {
		return fmt.Errorf("invalid end sequence variant %d", variant)
	}
	s.gameState.EndSeq = variant

	s.ferrari.SetState(types.FerrariEndSeq)

	s.car.Sprite.Enable()
	s.car.Role = types.RoleFerrari
	s.car.Stage = components.StageEntering
	s.car.Sprite.DrawProps = components.DrawBottom
	s.car.Rewind()

	s.seqPos = 0

	// replaced by the sequence's own passengers
	s.sprites.Sprite(components.SlotPass1).Disable()
	s.sprites.Sprite(components.SlotPass2).Disable()

	s.endSeqState = endSeqInit
	s.endSeqActive = true
	s.endSeqComplete = false

	log.Printf("[AnimSeqSystem] End sequence %d activated", variant)
	return nil
}

// StartEndSeq activates variant and runs its first invocation. Callers
// that use it must not call TickEndSeq again in the same frame.
func (s *AnimSeqSystem) StartEndSeq(variant int) error {
	if err := s.InitEndSeq(variant); err != nil {
		return fmt.Errorf("failed to start end sequence: %w", err)
	}
	s.TickEndSeq()
	return nil
}

// TickEndSeq runs one invocation of the end sequence. The first simulation
// tick after activation places every actor and then plays that same tick.
func (s *AnimSeqSystem) TickEndSeq() {
	if s.endSeqState == endSeqInit {
		if !s.gameState.TickFrame {
			return
		}
		s.placeEndActors()
	}
	s.playEndSeq()
}

// placeEndActors gives each actor its opening chain for the active variant.
func (s *AnimSeqSystem) placeEndActors() {
	variant := s.gameState.EndSeq
	pair := func(table uint32) (uint32, uint32) {
		return s.rom.ReadPair(table + uint32(variant)<<3)
	}

	s.car.AddrCurr, s.car.AddrNext = pair(s.addr.EndSeqObj1)
	s.car.Props = s.driverProps(types.RoleFerrari)
	s.stopped = false

	s.enterActor(&s.door, types.RoleDoor)
	s.door.Sprite.Shadow = 3
	s.door.AddrCurr, s.door.AddrNext = pair(s.addr.EndSeqObj2)

	s.enterActor(&s.interior, types.RoleInterior)
	s.interior.AddrCurr, s.interior.AddrNext = pair(s.addr.EndSeqObj3)

	s.enterShadow(&s.carShadow, types.RoleCarShadow)

	s.enterActor(&s.pass1, types.RoleMan)
	s.pass1.AddrCurr, s.pass1.AddrNext = pair(s.addr.EndSeqObj4)

	// passenger shadows start from a clean control byte
	s.manShadow.Sprite.Control = 0
	s.enterShadow(&s.manShadow, types.RoleManShadow)
	s.manShadow.Sprite.Shadow = components.ShadowCast

	s.enterActor(&s.pass2, types.RoleFemale)
	s.pass2.AddrCurr, s.pass2.AddrNext = pair(s.addr.EndSeqObj5)

	s.femaleShadow.Sprite.Control = 0
	s.enterShadow(&s.femaleShadow, types.RoleFemaleShadow)
	s.femaleShadow.Sprite.Shadow = components.ShadowCast

	s.enterActor(&s.trophy, types.RoleTrophy)
	s.trophy.AddrCurr, s.trophy.AddrNext = pair(s.addr.EndSeqObj6)

	if variant == types.VariantAlternateAnimated {
		s.enterActor(&s.alternate, types.RoleAlternate)
		s.alternate.AddrCurr, s.alternate.AddrNext = pair(s.addr.EndSeqObjB)
	} else {
		s.enterShadow(&s.alternate, types.RoleAlternate)
		s.alternate.Sprite.Shadow = components.ShadowCast
	}

	s.enterActor(&s.effects, types.RoleEffects)
	s.effects.AddrCurr, s.effects.AddrNext = pair(s.addr.EndSeqObj7)

	s.endSeqState = endSeqRunning
	log.Printf("[AnimSeqSystem] End sequence %d actors placed, timeline driven by %s",
		variant, s.cfg.TimelineDriver(variant))
}

// enterActor enables an actor at the start of its script.
func (s *AnimSeqSystem) enterActor(a *components.AnimSpriteComponent, role types.ActorRole) {
	a.Sprite.Enable()
	a.Sprite.DrawProps = components.DrawBottom
	a.Role = role
	a.Stage = components.StageEntering
	a.Rewind()
	a.Props = s.driverProps(role)
}

// enterShadow enables an actor whose position is derived from a parent.
func (s *AnimSeqSystem) enterShadow(a *components.AnimSpriteComponent, role types.ActorRole) {
	s.enterActor(a, role)
	a.AddrCurr, a.AddrNext = 0, 0
	a.Sprite.Addr = s.addr.ShadowData
}

func (s *AnimSeqSystem) driverProps(role types.ActorRole) uint16 {
	if s.cfg.TimelineDriver(s.gameState.EndSeq) == role {
		return components.PropsTimelineDriver
	}
	return 0
}

// playEndSeq runs every actor once, parents before their shadows.
func (s *AnimSeqSystem) playEndSeq() {
	s.outroVehicle()
	s.outro(&s.door)
	s.outro(&s.interior)
	s.shadow(&s.car, &s.carShadow)
	s.outro(&s.pass1)
	s.shadow(&s.pass1, &s.manShadow)
	s.outro(&s.pass2)
	s.shadow(&s.pass2, &s.femaleShadow)
	s.outro(&s.trophy)
	if s.gameState.EndSeq == types.VariantAlternateAnimated {
		s.outro(&s.alternate)
	} else {
		s.shadow(&s.trophy, &s.alternate)
	}
	s.outro(&s.effects)
}

// outroVehicle brakes the vehicle to a halt, congratulates the player once
// it stops, then animates it.
func (s *AnimSeqSystem) outroVehicle() {
	if !s.stopped {
		if s.ferrari.Speed()>>16 != 0 {
			s.ferrari.ApplyAutoBrake()
		} else {
			s.queueCue(types.CueVoiceCongrats)
			s.stopped = true
			log.Printf("[AnimSeqSystem] Vehicle stopped at timeline position %d", s.seqPos)
		}
	}
	s.outro(&s.car)
}

// outro runs one pass of an end sequence actor.
func (s *AnimSeqSystem) outro(a *components.AnimSpriteComponent) {
	s.ferrari.ResetSteering()

	if !s.gate(a) {
		return
	}

	if s.gameState.TickFrame {
		block, index := s.currentEntry(a)
		applyEntry(a.Sprite, block)
		s.projectOutro(a.Sprite, block)
		if s.advance(a, block, index) {
			a.Props |= components.PropsChained
		}
		s.compositor.MapPalette(a.Sprite)
	}

	s.compositor.Order(a.Sprite)
}

// shadow runs one pass of a shadow actor following parent.
func (s *AnimSeqSystem) shadow(parent, a *components.AnimSpriteComponent) {
	if !s.gate(a) {
		return
	}

	if s.gameState.TickFrame {
		shift := s.cfg.Shadow.Shift
		if a.Role == types.RoleCarShadow {
			shift = s.cfg.Shadow.CarShift
			if parent.Props&components.PropsChained == 0 && s.ferrari.SpriteAIX() <= s.cfg.Shadow.CentreThreshold {
				shift++
			}
		}
		s.projectShadow(a.Sprite, parent.Sprite, shift)
	}

	s.compositor.Order(a.Sprite)
}
