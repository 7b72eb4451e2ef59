package app

import (
	"fmt"
	"log"

	"github.com/gameblabla/Cannonballs/internal/rom"
	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/config"
	"github.com/gameblabla/Cannonballs/pkg/ecs"
	"github.com/gameblabla/Cannonballs/pkg/game"
	"github.com/gameblabla/Cannonballs/pkg/road"
	"github.com/gameblabla/Cannonballs/pkg/systems"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// Moment is one of the animation sequences a session can play.
type Moment int

const (
	MomentFlag Moment = iota
	MomentIntro
	MomentEnd
)

func (m Moment) String() string {
	switch m {
	case MomentFlag:
		return "flag"
	case MomentIntro:
		return "intro"
	case MomentEnd:
		return "end"
	}
	return fmt.Sprintf("moment(%d)", int(m))
}

// ParseMoment converts a command line name to a Moment.
func ParseMoment(name string) (Moment, error) {
	for m := MomentFlag; m <= MomentEnd; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown moment %q (want flag, intro or end)", name)
}

const (
	// flagPhaseTicks is how long each start phase lasts before the next
	flagPhaseTicks = 90
	// endSeqEntrySpeed is the vehicle speed when the end sequence begins
	endSeqEntrySpeed = 0x30000
	ferrariDecel     = 0x1800

	roadHorizon = 112
	roadBottom  = systems.ScreenHeight - 1
)

// SessionConfig describes what a session plays.
type SessionConfig struct {
	ROM       *rom.ROM
	Addresses *config.AddressMap
	// Engine is the calibration, nil for the defaults
	Engine *config.AnimSeqConfig
	// Cues receives sound cues, nil to drop them
	Cues        systems.CuePlayer
	Mode        types.OperatingMode
	Variant     int
	ScrollSpeed uint32
	PaletteMap  []uint8
}

// Session runs the animation engine against a stand-in game: the global
// state, a sprite pool, a straight road and a vehicle that brakes on its
// own. It has no display; App and the terminal tracer draw it.
type Session struct {
	State   *game.GameState
	Pool    *game.SpritePool
	Road    *road.TableRoad
	Order   *systems.SpriteOrderSystem
	Ferrari *game.Ferrari
	Engine  *systems.AnimSeqSystem

	moment   Moment
	variant  int
	started  bool
	ticks    int
	handoffs int
}

// NewSession wires a session. Call Restart to begin a moment.
//
// Parameters:
//   - cfg: data image, calibration and collaborators
//
// Returns:
//   - *Session: idle session
//   - error: if the data image or address map is missing
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.ROM == nil || cfg.Addresses == nil {
		return nil, fmt.Errorf("failed to create session: data image and address map are required")
	}

	s := &Session{
		State:   game.NewGameState(),
		Pool:    game.NewSpritePool(ecs.NewEntityManager()),
		Road:    road.NewPerspectiveRoad(roadHorizon, roadBottom),
		Order:   systems.NewSpriteOrderSystem(cfg.PaletteMap, cfg.Addresses.ShadowData),
		Ferrari: game.NewFerrari(ferrariDecel),
		variant: cfg.Variant,
	}
	s.State.Mode = cfg.Mode
	s.State.ScrollSpeed = cfg.ScrollSpeed

	s.Engine = systems.NewAnimSeqSystem(systems.AnimSeqDeps{
		ROM:        cfg.ROM,
		Addresses:  cfg.Addresses,
		Config:     cfg.Engine,
		GameState:  s.State,
		Sprites:    s.Pool,
		Road:       s.Road,
		Compositor: s.Order,
		Cues:       cfg.Cues,
		Ferrari:    s.Ferrari,
	})
	s.Engine.SetHandoffCallback(func() {
		s.handoffs++
		log.Printf("[Session] Best outrunners hand-off #%d", s.handoffs)
	})
	return s, nil
}

// Restart begins moment m from scratch.
//
// Returns:
//   - error: if the selected end sequence variant is invalid
func (s *Session) Restart(m Moment) error {
	s.moment = m
	s.started = false
	s.ticks = 0

	s.Pool.Reset()
	s.Ferrari.Reset()
	s.Engine.Init()

	switch m {
	case MomentFlag:
		s.State.SetPhase(types.PhaseStart1)
	case MomentIntro:
		s.State.SetPhase(types.PhaseInitGame)
	case MomentEnd:
		s.State.SetPhase(types.PhaseGameOver)
		s.Ferrari.SetSpeed(endSeqEntrySpeed)
		if err := s.Engine.InitEndSeq(s.variant); err != nil {
			return fmt.Errorf("failed to restart %s: %w", m, err)
		}
	default:
		return fmt.Errorf("failed to restart: unknown moment %d", int(m))
	}

	log.Printf("[Session] Playing %s (variant %d, %s mode)", m, s.variant, s.State.Mode)
	return nil
}

// Step runs one display frame. The simulation ticks on every other frame.
func (s *Session) Step() {
	s.State.BeginFrame()
	s.Order.BeginFrame()
	tick := s.State.TickFrame

	switch s.moment {
	case MomentFlag:
		if tick {
			s.advanceStartPhase()
		}
		s.Engine.FlagSeq()
	case MomentIntro:
		s.stepIntro()
	case MomentEnd:
		s.Engine.TickEndSeq()
	}

	if tick {
		s.Ferrari.Update()
		s.ticks++
	}
}

// advanceStartPhase counts down the starting lights.
func (s *Session) advanceStartPhase() {
	phase := s.State.Phase
	if phase >= types.PhaseStart1 && phase < types.PhaseInGame && (s.ticks+1)%flagPhaseTicks == 0 {
		s.State.SetPhase(phase + 1)
	}
}

func (s *Session) stepIntro() {
	switch {
	case !s.started:
		if s.State.TickFrame {
			s.started = true
			s.Engine.FerrariSeq()
		}
	case s.Engine.IntroActive():
		s.Engine.TickIntro()
	default:
		// parked in gameplay
		s.Order.Order(s.Pool.Sprite(components.SlotFerrari))
	}
}

// Moment returns the moment being played.
func (s *Session) Moment() Moment {
	return s.moment
}

// Ticks returns the simulation ticks since the last restart.
func (s *Session) Ticks() int {
	return s.ticks
}

func (s *Session) Variant() int {
	return s.variant
}

// SetVariant selects the end sequence used by the next restart.
func (s *Session) SetVariant(variant int) {
	s.variant = variant
}

// SetMode changes where a finished end sequence hands control.
func (s *Session) SetMode(mode types.OperatingMode) {
	s.State.Mode = mode
}

// SetConfig swaps the engine calibration.
func (s *Session) SetConfig(cfg *config.AnimSeqConfig) {
	s.Engine.SetConfig(cfg)
}

// Done reports whether the current moment has finished.
func (s *Session) Done() bool {
	switch s.moment {
	case MomentFlag:
		return !s.Engine.FlagActor().Sprite.Enabled()
	case MomentIntro:
		return s.started && !s.Engine.IntroActive()
	case MomentEnd:
		return s.Engine.EndSeqComplete()
	}
	return true
}

// ActorInfo names an actor for display.
type ActorInfo struct {
	Name  string
	Actor *components.AnimSpriteComponent
}

// Actors lists the actors of the current moment.
func (s *Session) Actors() []ActorInfo {
	switch s.moment {
	case MomentFlag:
		return []ActorInfo{{"flag", s.Engine.FlagActor()}}
	case MomentIntro:
		intro := s.Engine.IntroActors()
		return []ActorInfo{{"ferrari", intro[0]}, {"pass1", intro[1]}, {"pass2", intro[2]}}
	}
	var out []ActorInfo
	for role := types.RoleFerrari; role <= types.RoleEffects; role++ {
		out = append(out, ActorInfo{role.String(), s.Engine.Actor(role)})
	}
	return out
}

// Status returns a one-line summary of the session.
func (s *Session) Status() string {
	status := fmt.Sprintf("%s  phase=%s  tick=%d", s.moment, s.State.Phase, s.ticks)
	if s.moment == MomentEnd {
		status += fmt.Sprintf("  variant=%d  pos=%d  speed=%d", s.variant, s.Engine.SeqPos(), s.Ferrari.Speed()>>16)
	}
	if s.Done() {
		status += "  [done]"
	}
	return status
}

// FormatActor renders one actor's playback state.
func FormatActor(info ActorInfo) string {
	a := info.Actor
	sp := a.Sprite
	on := "-"
	if sp.Enabled() {
		on = "*"
	}
	return fmt.Sprintf("%s %-14s %-9s f=%-3d d=%-3d x=%-5d y=%-4d z=%-3d p=%-4d addr=%05X",
		on, info.Name, a.Stage, a.Frame, a.FrameDelay, sp.X, sp.Y, sp.Zoom, sp.Priority, a.AddrCurr)
}
