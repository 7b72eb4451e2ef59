package systems

import (
	"testing"

	"github.com/gameblabla/Cannonballs/internal/rom/romtest"
	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/config"
	"github.com/gameblabla/Cannonballs/pkg/ecs"
	"github.com/gameblabla/Cannonballs/pkg/game"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// fakeRoad puts the road at y = 100 + priority/4 and shifts it by a fixed
// offset at every depth.
type fakeRoad struct {
	offset int16
	inCar  bool
}

func (r *fakeRoad) RoadY(priority uint16) int16 {
	return 100 + int16(priority>>2)
}

func (r *fakeRoad) RoadOffset(depth uint16) int16 {
	return r.offset
}

func (r *fakeRoad) InCarView() bool {
	return r.inCar
}

// recordingCompositor remembers every call made to it.
type recordingCompositor struct {
	mapped  []*components.SpriteComponent
	ordered []*components.SpriteComponent
}

func (c *recordingCompositor) MapPalette(sprite *components.SpriteComponent) {
	sprite.Pal = sprite.PalSrc
	c.mapped = append(c.mapped, sprite)
}

func (c *recordingCompositor) Order(sprite *components.SpriteComponent) {
	c.ordered = append(c.ordered, sprite)
}

func (c *recordingCompositor) reset() {
	c.mapped = nil
	c.ordered = nil
}

func (c *recordingCompositor) orderedCount(sprite *components.SpriteComponent) int {
	n := 0
	for _, s := range c.ordered {
		if s == sprite {
			n++
		}
	}
	return n
}

type fakeCues struct {
	cues []types.SoundCue
}

func (c *fakeCues) QueueCue(cue types.SoundCue) {
	c.cues = append(c.cues, cue)
}

func (c *fakeCues) count(cue types.SoundCue) int {
	n := 0
	for _, q := range c.cues {
		if q == cue {
			n++
		}
	}
	return n
}

// engineFixture is an AnimSeqSystem wired to fakes.
type engineFixture struct {
	sys     *AnimSeqSystem
	state   *game.GameState
	pool    *game.SpritePool
	road    *fakeRoad
	comp    *recordingCompositor
	cues    *fakeCues
	ferrari *game.Ferrari
	addr    *config.AddressMap
}

// newEngineFixture builds an engine over the image laid out by build.
// A nil build uses the demo image.
func newEngineFixture(t *testing.T, build func(b *romtest.Builder, m *config.AddressMap)) *engineFixture {
	t.Helper()

	f := &engineFixture{
		state:   game.NewGameState(),
		pool:    game.NewSpritePool(ecs.NewEntityManager()),
		road:    &fakeRoad{},
		comp:    &recordingCompositor{},
		cues:    &fakeCues{},
		ferrari: game.NewFerrari(0x4000),
	}

	deps := AnimSeqDeps{
		Config:     config.DefaultAnimSeqConfig(),
		GameState:  f.state,
		Sprites:    f.pool,
		Road:       f.road,
		Compositor: f.comp,
		Cues:       f.cues,
		Ferrari:    f.ferrari,
	}
	if build == nil {
		deps.ROM, deps.Addresses = romtest.BuildDemo()
	} else {
		b := romtest.NewBuilder(0x100)
		m := &config.AddressMap{}
		build(b, m)
		deps.ROM, deps.Addresses = b.ROM(), m
	}
	f.addr = deps.Addresses
	f.sys = NewAnimSeqSystem(deps)
	return f
}

// tick runs fn on a simulation tick.
func (f *engineFixture) tick(fn func()) {
	f.state.TickFrame = true
	fn()
}

// idle runs fn on a display-only frame.
func (f *engineFixture) idle(fn func()) {
	f.state.TickFrame = false
	fn()
}

// endSeqTables allocates every end sequence pair table and the window table,
// all pointing at chain for every variant, with the window of every row
// set to [start, end].
func endSeqTables(b *romtest.Builder, m *config.AddressMap, chain uint32, start, end int16) {
	for _, table := range []*uint32{
		&m.EndSeqObj1, &m.EndSeqObj2, &m.EndSeqObj3, &m.EndSeqObj4, &m.EndSeqObj5,
		&m.EndSeqObj6, &m.EndSeqObj7, &m.EndSeqObj8, &m.EndSeqObjA, &m.EndSeqObjB,
	} {
		*table = b.Alloc(romtest.PairTableSize())
		for v := 0; v < types.EndSeqVariants; v++ {
			b.PutPair(*table+uint32(v)<<3, chain, chain)
		}
	}
	m.EndTable = b.Alloc(romtest.WindowTableSize())
	for v := 0; v < types.EndSeqVariants; v++ {
		for row := types.RoleFerrari; row <= types.RoleEffectsPresented; row++ {
			b.PutWindow(m.EndTable, v, row, start, end)
		}
	}
	m.ShadowData = b.Alloc(16)
}
