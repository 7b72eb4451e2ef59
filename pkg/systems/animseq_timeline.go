package systems

import (
	"log"

	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// windowOffset locates the [start, end] window of row for variant. Rows
// are 20 bytes apart, one long per variant.
func (s *AnimSeqSystem) windowOffset(variant int, row types.ActorRole) uint32 {
	r := uint32(row)
	return s.addr.EndTable + uint32(variant)<<2 + r<<2 + r<<4
}

// Window returns the timeline window of row in the active variant.
func (s *AnimSeqSystem) Window(row types.ActorRole) (start, end int16) {
	off := s.windowOffset(s.gameState.EndSeq, row)
	return int16(s.rom.Read16(off)), int16(s.rom.Read16(off + 2))
}

// gate decides whether the actor runs this pass, and advances the shared
// timeline when the actor drives it. The position compared against the
// window is the one before the advance.
func (s *AnimSeqSystem) gate(a *components.AnimSpriteComponent) bool {
	start, end := s.Window(a.TimelineRow())
	pos := s.seqPos

	if s.gameState.TickFrame && a.Props&components.PropsTimelineDriver != 0 && a.Sprite.Enabled() {
		s.seqPos++
	}

	if s.endSeqActive && s.seqPos == s.cfg.EndSeqLength(s.gameState.EndSeq) {
		s.completeEndSeq()
	}

	switch {
	case pos == start:
		if a.AddrCurr != 0 {
			s.primeDelay(a)
		}
		s.markActive(a)
		return true
	case pos < start || pos > end:
		return false
	case pos < end:
		s.markActive(a)
		return true
	}

	// pos == end
	if a.Stage != components.StagePresented && (a.Role == types.RoleTrophy || a.Role == types.RoleEffects) {
		s.present(a)
		return false
	}
	return true
}

func (s *AnimSeqSystem) markActive(a *components.AnimSpriteComponent) {
	if a.Stage == components.StageEntering {
		a.Stage = components.StageActive
	}
}

// present switches the trophy presenter or the effects to their presented
// pose. The new chain starts on the next pass.
func (s *AnimSeqSystem) present(a *components.AnimSpriteComponent) {
	table := s.addr.EndSeqObj8
	if a.Role == types.RoleEffects {
		table = s.addr.EndSeqObjA
	}
	variant := s.gameState.EndSeq

	a.Stage = components.StagePresented
	if variant >= s.cfg.PresentedShadowFrom {
		a.Sprite.Shadow = components.ShadowCast
	}
	a.AddrCurr, a.AddrNext = s.rom.ReadPair(table + uint32(variant)<<3)
	a.Frame = 0
}

// completeEndSeq hands control to the next phase once the timeline has
// run its full length.
func (s *AnimSeqSystem) completeEndSeq() {
	s.endSeqActive = false
	s.endSeqComplete = true

	if s.gameState.Mode == types.ModeOriginal {
		s.gameState.SetPhase(types.PhaseInitMap)
		log.Printf("[AnimSeqSystem] End sequence %d complete, showing course map", s.gameState.EndSeq)
		return
	}

	s.gameState.SetPhase(types.PhaseInitBest2)
	log.Printf("[AnimSeqSystem] End sequence %d complete, entering best outrunners", s.gameState.EndSeq)
	if s.onHandoff != nil {
		s.onHandoff()
	}
}
