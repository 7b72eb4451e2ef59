package romtest

import (
	"github.com/gameblabla/Cannonballs/internal/rom"
	"github.com/gameblabla/Cannonballs/pkg/config"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// Demo sprite data addresses. Nothing is stored there; the debug renderer
// only uses them to tell frames apart.
const (
	demoSpriteFlag    = 0x10000
	demoSpriteFerrari = 0x20000
	demoSpritePass1   = 0x30000
	demoSpritePass2   = 0x40000
	demoSpriteEndSeq  = 0x50000
)

// flagPhases is the number of phases with a flag chain pair, START1..GAMEOVER
const flagPhases = int(types.PhaseGameOver-types.PhaseStart1) + 1

// BuildDemo lays out a complete image: flag chains for every start phase,
// the intro drive-in, and all five end sequences. Scroll speed 0 leaves the
// flag parked; scroll speed 1 moves it towards the camera.
//
// Returns:
//   - *rom.ROM: the image
//   - *config.AddressMap: where the tables live in it
func BuildDemo() (*rom.ROM, *config.AddressMap) {
	b := NewBuilder(0x100)
	m := &config.AddressMap{}

	m.ShadowData = b.Alloc(16)
	buildZoomLookup(b, m)
	buildFlag(b, m)
	buildIntro(b, m)
	buildEndSequences(b, m, config.DefaultAnimSeqConfig())

	return b.ROM(), m
}

func buildZoomLookup(b *Builder, m *config.AddressMap) {
	m.ZoomLookup = b.Alloc(0x200*4 + 4)
	for z := uint32(0); z < 0x200; z++ {
		// speed 1 reads 0x00003000: 3/16 of a depth unit per tick
		b.PutLong(m.ZoomLookup+z<<2, 0x00000030)
	}
}

func buildFlag(b *Builder, m *config.AddressMap) {
	m.FlagSeq = b.Alloc(uint32(flagPhases) * 8)
	for p := 0; p < flagPhases; p++ {
		sprite := uint32(demoSpriteFlag + p*0x1000)
		var specs []BlockSpec
		for f := 0; f < 4; f++ {
			specs = append(specs, BlockSpec{
				Palette:    uint8(0x10 + p),
				SpriteAddr: sprite + uint32(f)*0x100,
				X:          -60,
				Y:          int8(40 + f%2*2),
				HFlip:      f%2 == 1,
				Chain:      f == 3,
				Delay:      uint8(6 - p%3),
			})
		}
		chain := b.Chain(specs...)
		b.PutPair(m.FlagSeq+uint32(p)*8, chain, chain)
	}
}

func buildIntro(b *Builder, m *config.AddressMap) {
	// vehicle drives in from the right and parks
	var drive []BlockSpec
	for i := 0; i < 6; i++ {
		drive = append(drive, BlockSpec{
			Palette:    0x20,
			SpriteAddr: demoSpriteFerrari + uint32(i%2)*0x100,
			Priority:   1,
			X:          int8(120 - i*24),
			Chain:      i == 5,
			Delay:      3,
		})
	}
	park := b.Chain(BlockSpec{Palette: 0x20, SpriteAddr: demoSpriteFerrari, Priority: 1, Chain: true, Delay: 30})
	m.FerrariCurr = b.Chain(drive...)
	m.FerrariNext = park

	// passenger 1 hops in behind it
	var hop []BlockSpec
	for i := 0; i < 5; i++ {
		hop = append(hop, BlockSpec{
			Palette:    0x21,
			SpriteAddr: demoSpritePass1 + uint32(i)*0x100,
			NegateX:    true,
			Priority:   2,
			X:          int8(40 - i*6),
			Y:          int8(20 - i*4),
			Chain:      i == 4,
			Delay:      4,
		})
	}
	seated := b.Chain(BlockSpec{Palette: 0x21, SpriteAddr: demoSpritePass1, NegateX: true, Priority: 2, X: 16, Chain: true, Delay: 30})
	m.Pass1Curr = b.Chain(hop...)
	m.Pass1Next = seated

	// passenger 2's chain entry ends the intro
	var wave []BlockSpec
	for i := 0; i < 14; i++ {
		wave = append(wave, BlockSpec{
			Palette:    0x22,
			SpriteAddr: demoSpritePass2 + uint32(i%4)*0x100,
			Priority:   2,
			X:          16,
			Y:          int8(8 - i%2*4),
			HFlip:      i%4 >= 2,
			Chain:      i == 13,
			Delay:      4,
		})
	}
	m.Pass2Curr = b.Chain(wave...)
	m.Pass2Next = m.Pass2Curr
}

// endActor describes the demo script of one end sequence chain table.
type endActor struct {
	table  *uint32
	sprite uint32
	x      int8
	dx     int8
	y      int8
	depth  uint8
	negate bool
}

func buildEndSequences(b *Builder, m *config.AddressMap, cfg *config.AnimSeqConfig) {
	// vehicle, door, interior, man, female (mirrored), trophy presenter,
	// effects, trophy presented, effects presented, alternate
	actors := []endActor{
		{&m.EndSeqObj1, 0x0000, 0, 0, 0, 0xC0, false},
		{&m.EndSeqObj2, 0x1000, 24, 2, 12, 0xC0, false},
		{&m.EndSeqObj3, 0x2000, 0, 0, 8, 0xC0, false},
		{&m.EndSeqObj4, 0x3000, 24, 8, 0, 0xB8, false},
		{&m.EndSeqObj5, 0x4000, 24, 8, 0, 0xB8, true},
		{&m.EndSeqObj6, 0x5000, 100, -6, 0, 0xA0, false},
		{&m.EndSeqObj7, 0x6000, 0, 0, 48, 0x90, false},
		{&m.EndSeqObj8, 0x7000, 76, 0, 0, 0xA0, false},
		{&m.EndSeqObjA, 0x8000, 0, 0, 56, 0x90, false},
		{&m.EndSeqObjB, 0x9000, 110, -4, 0, 0xA8, false},
	}
	for _, a := range actors {
		*a.table = b.Alloc(PairTableSize())
	}

	for v := 0; v < types.EndSeqVariants; v++ {
		for i, a := range actors {
			sprite := demoSpriteEndSeq + a.sprite + uint32(v)*0x100
			var move []BlockSpec
			for f := 0; f < 4; f++ {
				move = append(move, BlockSpec{
					Palette:    uint8(0x30 + i),
					SpriteAddr: sprite + uint32(f)*0x10,
					NegateX:    a.negate,
					Priority:   uint8(i % 8),
					X:          a.x + a.dx*int8(f),
					Y:          a.y,
					Depth:      a.depth,
					HFlip:      f%2 == 1 && i >= 7,
					Chain:      f == 3,
					Delay:      uint8(6 + v),
				})
			}
			idle := b.Chain(BlockSpec{
				Palette:    uint8(0x30 + i),
				SpriteAddr: sprite,
				NegateX:    a.negate,
				Priority:   uint8(i % 8),
				X:          a.x + a.dx*3,
				Y:          a.y,
				Depth:      a.depth,
				Chain:      true,
				Delay:      20,
			})
			b.PutPair(*a.table+uint32(v)<<3, b.Chain(move...), idle)
		}
	}

	m.EndTable = b.Alloc(WindowTableSize())
	for v := 0; v < types.EndSeqVariants; v++ {
		l := cfg.EndSeqLength(v)
		third, half := l/3, l/2
		windows := []struct {
			row        types.ActorRole
			start, end int16
		}{
			{types.RoleFerrari, 0, l},
			{types.RoleDoor, 40, l},
			{types.RoleInterior, 0, l},
			{types.RoleCarShadow, 0, l},
			{types.RoleMan, 80, l},
			{types.RoleManShadow, 80, l},
			{types.RoleFemale, 120, l},
			{types.RoleFemaleShadow, 120, l},
			{types.RoleTrophy, third, half},
			{types.RoleAlternate, third, l},
			{types.RoleEffects, 0, half},
			{types.RoleTrophyPresented, half + 1, l},
			{types.RoleEffectsPresented, half + 1, l},
		}
		for _, w := range windows {
			b.PutWindow(m.EndTable, v, w.row, w.start, w.end)
		}
	}
}
