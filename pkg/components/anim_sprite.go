package components

import "github.com/gameblabla/Cannonballs/pkg/types"

// ActorStage tracks where an end-sequence actor is in its script.
type ActorStage int

const (
	// StageEntering is set on activation, before the actor's window has opened
	StageEntering ActorStage = iota
	// StageActive means the actor's window has opened at least once
	StageActive
	// StagePresented means the actor switched to its presented pose table
	StagePresented
)

func (s ActorStage) String() string {
	switch s {
	case StageEntering:
		return "entering"
	case StageActive:
		return "active"
	case StagePresented:
		return "presented"
	default:
		return "unknown"
	}
}

// Props bits
const (
	// PropsChained is set once the actor has followed a chain entry
	PropsChained uint16 = 0x00FF
	// PropsTimelineDriver marks the actor whose passes advance the shared timeline
	PropsTimelineDriver uint16 = 0xFF00
)

// AnimSpriteComponent is the playback state of one animated actor.
// Sprite is not owned: it belongs to the sprite pool, and two actors may
// share one sprite as long as their moments never run together.
type AnimSpriteComponent struct {
	Sprite *SpriteComponent

	// AddrCurr is the chain being played, AddrNext the chain loaded when
	// the current one ends
	AddrCurr uint32
	AddrNext uint32

	// Frame indexes 8-byte entries within AddrCurr
	Frame      uint16
	FrameDelay uint8
	Props      uint16

	// State remembers the game phase the flag chain was selected for
	State types.GamePhase

	Role  types.ActorRole
	Stage ActorStage
}

// Bind attaches the actor to sprite and clears its playback state.
func (a *AnimSpriteComponent) Bind(sprite *SpriteComponent) {
	*a = AnimSpriteComponent{Sprite: sprite}
}

// Rewind restarts the current chain from its first entry.
func (a *AnimSpriteComponent) Rewind() {
	a.Frame = 0
	a.FrameDelay = 0
}

// TimelineRow is the row of the window table gating this actor. Presented
// poses have rows of their own.
func (a *AnimSpriteComponent) TimelineRow() types.ActorRole {
	if a.Stage != StagePresented {
		return a.Role
	}
	switch a.Role {
	case types.RoleTrophy:
		return types.RoleTrophyPresented
	case types.RoleEffects:
		return types.RoleEffectsPresented
	}
	return a.Role
}
