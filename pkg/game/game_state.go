package game

import (
	"log"

	"github.com/gameblabla/Cannonballs/pkg/types"
)

// GameState holds the global mode signals the animation sequences read.
// One instance is created per run and handed to every system; there is no
// package-level instance.
type GameState struct {
	// Phase is the current game phase
	Phase types.GamePhase

	// TickFrame is set on frames that advance the simulation. Sprites are
	// still submitted for drawing on the other frames.
	TickFrame bool

	// EndSeq selects the end sequence variant (0-4)
	EndSeq int

	Mode types.OperatingMode

	// ScrollSpeed selects the column of the sprite zoom lookup table
	ScrollSpeed uint32

	frame uint64
}

// NewGameState returns a state in the power-on phase.
func NewGameState() *GameState {
	return &GameState{Phase: types.PhaseInit}
}

// SetPhase moves to phase p.
func (gs *GameState) SetPhase(p types.GamePhase) {
	if p != gs.Phase {
		log.Printf("[GameState] Phase %s -> %s", gs.Phase, p)
	}
	gs.Phase = p
}

// BeginFrame starts a display frame. The simulation ticks on every other
// frame, as the arcade board does.
func (gs *GameState) BeginFrame() {
	gs.frame++
	gs.TickFrame = gs.frame%2 == 1
}

// Frame returns the number of frames begun so far.
func (gs *GameState) Frame() uint64 {
	return gs.frame
}
