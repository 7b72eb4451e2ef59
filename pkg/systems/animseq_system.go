package systems

import (
	"log"

	"github.com/gameblabla/Cannonballs/internal/rom"
	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/config"
	"github.com/gameblabla/Cannonballs/pkg/game"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// Road is the road service sprites are projected onto.
type Road interface {
	// RoadY returns the screen row of the road at priority
	RoadY(priority uint16) int16
	// RoadOffset returns the road's horizontal offset at depth
	RoadOffset(depth uint16) int16
	InCarView() bool
}

// SpriteCompositor orders sprites for drawing.
type SpriteCompositor interface {
	MapPalette(sprite *components.SpriteComponent)
	Order(sprite *components.SpriteComponent)
}

// CuePlayer dispatches sound cues. Cues are fire-and-forget.
type CuePlayer interface {
	QueueCue(cue types.SoundCue)
}

// FerrariControl is the part of the player vehicle the sequences drive.
type FerrariControl interface {
	InitInGame()
	SetState(s types.FerrariState)
	SetCarState(s types.CarState)
	// Speed is the 16.16 speed increment
	Speed() uint32
	ApplyAutoBrake()
	SpriteAIX() int16
	ResetSteering()
}

// SpriteSource hands out the pool's sprites.
type SpriteSource interface {
	Sprite(slot components.SpriteSlot) *components.SpriteComponent
}

// AnimSeqDeps wires an AnimSeqSystem to its collaborators.
type AnimSeqDeps struct {
	ROM        *rom.ROM
	Addresses  *config.AddressMap
	Config     *config.AnimSeqConfig
	GameState  *game.GameState
	Sprites    SpriteSource
	Road       Road
	Compositor SpriteCompositor
	Cues       CuePlayer
	Ferrari    FerrariControl
}

type endSeqState int

const (
	endSeqInit endSeqState = iota
	endSeqRunning
)

// AnimSeqSystem plays the byte-coded animation sequences: the flag waving
// marshal, the intro drive-in and the five end sequences.
//
// The system owns every actor's playback state and the end sequence
// timeline. Sprites belong to the pool; the system only writes their
// position, zoom, priority and control bits.
type AnimSeqSystem struct {
	rom        *rom.ROM
	addr       *config.AddressMap
	cfg        *config.AnimSeqConfig
	gameState  *game.GameState
	sprites    SpriteSource
	road       Road
	compositor SpriteCompositor
	cues       CuePlayer
	ferrari    FerrariControl

	flag  components.AnimSpriteComponent
	car   components.AnimSpriteComponent
	pass1 components.AnimSpriteComponent
	pass2 components.AnimSpriteComponent

	door         components.AnimSpriteComponent
	interior     components.AnimSpriteComponent
	carShadow    components.AnimSpriteComponent
	manShadow    components.AnimSpriteComponent
	femaleShadow components.AnimSpriteComponent
	trophy       components.AnimSpriteComponent
	alternate    components.AnimSpriteComponent
	effects      components.AnimSpriteComponent

	introActive bool

	endSeqState    endSeqState
	endSeqActive   bool
	endSeqComplete bool
	seqPos         int16
	stopped        bool

	onHandoff func()
}

// NewAnimSeqSystem creates the system and binds its actors to the pool.
//
// Parameters:
//   - deps: collaborators; Cues may be nil to discard cues
//
// Returns:
//   - *AnimSeqSystem: initialised system
func NewAnimSeqSystem(deps AnimSeqDeps) *AnimSeqSystem {
	s := &AnimSeqSystem{
		rom:        deps.ROM,
		addr:       deps.Addresses,
		cfg:        deps.Config,
		gameState:  deps.GameState,
		sprites:    deps.Sprites,
		road:       deps.Road,
		compositor: deps.Compositor,
		cues:       deps.Cues,
		ferrari:    deps.Ferrari,
	}
	if s.cfg == nil {
		s.cfg = config.DefaultAnimSeqConfig()
	}
	s.Init()
	return s
}

// SetHandoffCallback sets the function run when an end sequence completes
// in enhanced mode, after the phase has moved to INIT_BEST2.
func (s *AnimSeqSystem) SetHandoffCallback(fn func()) {
	s.onHandoff = fn
}

// SetConfig swaps the calibration. Actors keep their state; new values
// apply from the next pass.
func (s *AnimSeqSystem) SetConfig(cfg *config.AnimSeqConfig) {
	s.cfg = cfg
}

// Init binds every actor to its sprite and resets all moments: the flag
// is armed, the vehicle and passengers point at their intro chains and the
// end sequence is idle.
func (s *AnimSeqSystem) Init() {
	s.flag.Bind(s.sprites.Sprite(components.SlotFlag))
	s.flag.State = types.PhaseInit
	s.flag.Sprite.Shadow = components.ShadowCast
	s.flag.Sprite.DrawProps = components.DrawBottom
	s.flag.Sprite.Enable()
	s.flag.Sprite.Z = s.cfg.Flag.StartDepth << 16

	s.car.Bind(s.sprites.Sprite(components.SlotFerrari))
	s.car.AddrCurr = s.addr.FerrariCurr
	s.car.AddrNext = s.addr.FerrariNext
	s.car.Sprite.Enable()
	s.car.Sprite.DrawProps = components.DrawBottom

	s.pass1.Bind(s.sprites.Sprite(components.SlotPass1))
	s.pass1.AddrCurr = s.addr.Pass1Curr
	s.pass1.AddrNext = s.addr.Pass1Next
	s.pass1.Sprite.DrawProps = components.DrawBottom

	s.pass2.Bind(s.sprites.Sprite(components.SlotPass2))
	s.pass2.AddrCurr = s.addr.Pass2Curr
	s.pass2.AddrNext = s.addr.Pass2Next
	s.pass2.Sprite.DrawProps = components.DrawBottom

	s.door.Bind(s.sprites.Sprite(components.SlotCrash))
	s.interior.Bind(s.sprites.Sprite(components.SlotCrashShadow))
	s.carShadow.Bind(s.sprites.Sprite(components.SlotShadow))
	s.manShadow.Bind(s.sprites.Sprite(components.SlotCrashPass1))
	s.femaleShadow.Bind(s.sprites.Sprite(components.SlotCrashPass1Shadow))
	s.trophy.Bind(s.sprites.Sprite(components.SlotCrashPass2))
	s.alternate.Bind(s.sprites.Sprite(components.SlotCrashPass2Shadow))
	// effects reuse the marshal's sprite; the two never run together
	s.effects.Bind(s.sprites.Sprite(components.SlotFlag))

	s.introActive = false
	s.endSeqState = endSeqInit
	s.endSeqActive = false
	s.endSeqComplete = false
	s.seqPos = 0
	s.stopped = false

	log.Printf("[AnimSeqSystem] Initialised")
}

// FlagActor returns the marshal's playback state.
func (s *AnimSeqSystem) FlagActor() *components.AnimSpriteComponent {
	return &s.flag
}

// IntroActors returns the vehicle and both passengers.
func (s *AnimSeqSystem) IntroActors() []*components.AnimSpriteComponent {
	return []*components.AnimSpriteComponent{&s.car, &s.pass1, &s.pass2}
}

// Actor returns the end sequence actor playing role. Presented roles map
// to the actor that presents them.
func (s *AnimSeqSystem) Actor(role types.ActorRole) *components.AnimSpriteComponent {
	switch role {
	case types.RoleFerrari:
		return &s.car
	case types.RoleDoor:
		return &s.door
	case types.RoleInterior:
		return &s.interior
	case types.RoleCarShadow:
		return &s.carShadow
	case types.RoleMan:
		return &s.pass1
	case types.RoleManShadow:
		return &s.manShadow
	case types.RoleFemale:
		return &s.pass2
	case types.RoleFemaleShadow:
		return &s.femaleShadow
	case types.RoleTrophy, types.RoleTrophyPresented:
		return &s.trophy
	case types.RoleAlternate:
		return &s.alternate
	case types.RoleEffects, types.RoleEffectsPresented:
		return &s.effects
	}
	return nil
}

// SeqPos returns the end sequence timeline position.
func (s *AnimSeqSystem) SeqPos() int16 {
	return s.seqPos
}

// EndSeqActive reports whether an end sequence is playing.
func (s *AnimSeqSystem) EndSeqActive() bool {
	return s.endSeqActive
}

// EndSeqComplete reports whether the last end sequence reached its length.
func (s *AnimSeqSystem) EndSeqComplete() bool {
	return s.endSeqComplete
}

// IntroActive reports whether the intro drive-in is playing.
func (s *AnimSeqSystem) IntroActive() bool {
	return s.introActive
}

// VehicleStopped reports whether the end sequence brought the vehicle to rest.
func (s *AnimSeqSystem) VehicleStopped() bool {
	return s.stopped
}

func (s *AnimSeqSystem) queueCue(cue types.SoundCue) {
	if s.cues != nil {
		s.cues.QueueCue(cue)
	}
}

// submit maps the palette and orders the sprite.
func (s *AnimSeqSystem) submit(sprite *components.SpriteComponent) {
	s.compositor.MapPalette(sprite)
	s.compositor.Order(sprite)
}
