package systems

import (
	"testing"

	"github.com/gameblabla/Cannonballs/internal/rom/romtest"
	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/config"
)

// newTestActor binds a fresh actor to the door sprite and points it at chain.
func newTestActor(f *engineFixture, curr, next uint32) *components.AnimSpriteComponent {
	a := &components.AnimSpriteComponent{}
	a.Bind(f.pool.Sprite(components.SlotCrash))
	a.AddrCurr = curr
	a.AddrNext = next
	f.sys.primeDelay(a)
	return a
}

// step runs the advancer once on the actor's current entry.
func step(f *engineFixture, a *components.AnimSpriteComponent) bool {
	block, index := f.sys.currentEntry(a)
	return f.sys.advance(a, block, index)
}

func TestAdvanceWithinChain(t *testing.T) {
	var chain, next uint32
	f := newEngineFixture(t, func(b *romtest.Builder, m *config.AddressMap) {
		chain = b.Chain(
			romtest.BlockSpec{Delay: 3},
			romtest.BlockSpec{Delay: 5, HFlip: true},
			romtest.BlockSpec{Delay: 7, Chain: true},
		)
		next = b.Chain(romtest.BlockSpec{Delay: 9, Chain: true})
	})
	a := newTestActor(f, chain, next)

	for i := 0; i < 2; i++ {
		if step(f, a) {
			t.Fatalf("tick %d: unexpected chain", i+1)
		}
		if a.Frame != 0 {
			t.Fatalf("tick %d: Frame = %d, want 0", i+1, a.Frame)
		}
	}

	step(f, a)
	if a.Frame != 1 {
		t.Errorf("after 3 ticks Frame = %d, want 1", a.Frame)
	}
	if want := f.sys.rom.ReadDelay(chain + 8); a.FrameDelay != want {
		t.Errorf("after 3 ticks FrameDelay = %d, want %d", a.FrameDelay, want)
	}
	if a.FrameDelay != 5 {
		t.Errorf("after 3 ticks FrameDelay = %d, want 5", a.FrameDelay)
	}

	for i := 0; i < 5; i++ {
		step(f, a)
	}
	if a.Frame != 2 || a.FrameDelay != 7 {
		t.Fatalf("after 8 ticks Frame = %d, FrameDelay = %d, want 2, 7", a.Frame, a.FrameDelay)
	}

	for i := 0; i < 6; i++ {
		if step(f, a) {
			t.Fatalf("chained %d ticks early", 7-i-1)
		}
	}
	if !step(f, a) {
		t.Fatal("chain entry expired without chaining")
	}
	if a.AddrCurr != next {
		t.Errorf("AddrCurr = 0x%X, want 0x%X", a.AddrCurr, next)
	}
	if a.Frame != 0 {
		t.Errorf("Frame = %d after chain, want 0", a.Frame)
	}
	if a.FrameDelay != 9 {
		t.Errorf("FrameDelay = %d after chain, want 9", a.FrameDelay)
	}
}

func TestAdvanceDelayReloadMasksControl(t *testing.T) {
	tests := []struct {
		name    string
		control uint8
		want    uint8
	}{
		{"plain", 0x03, 3},
		{"hflip", 0x43, 3},
		{"chain", 0x83, 3},
		{"all bits", 0xFF, 0x3F},
		{"flip only", 0x40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var chain uint32
			f := newEngineFixture(t, func(b *romtest.Builder, m *config.AddressMap) {
				chain = b.Chain(romtest.BlockSpec{Delay: 1}, romtest.BlockSpec{})
				b.PutByte(chain+8+7, tt.control)
			})
			a := newTestActor(f, chain, chain)

			step(f, a)
			if a.Frame != 1 {
				t.Fatalf("Frame = %d, want 1", a.Frame)
			}
			if a.FrameDelay != tt.want {
				t.Errorf("FrameDelay = 0x%X, want 0x%X", a.FrameDelay, tt.want)
			}
		})
	}
}

func TestAdvanceZeroDelayWraps(t *testing.T) {
	var chain uint32
	f := newEngineFixture(t, func(b *romtest.Builder, m *config.AddressMap) {
		chain = b.Chain(romtest.BlockSpec{Delay: 0}, romtest.BlockSpec{Delay: 4})
	})
	a := newTestActor(f, chain, chain)

	for i := 0; i < 255; i++ {
		step(f, a)
	}
	if a.Frame != 0 {
		t.Fatalf("Frame = %d after 255 ticks, want 0", a.Frame)
	}
	step(f, a)
	if a.Frame != 1 {
		t.Errorf("Frame = %d after 256 ticks, want 1", a.Frame)
	}
}

func TestApplyEntry(t *testing.T) {
	var chain uint32
	f := newEngineFixture(t, func(b *romtest.Builder, m *config.AddressMap) {
		chain = b.Chain(romtest.BlockSpec{Palette: 0x2C, SpriteAddr: 0xA1234, Delay: 1})
	})
	a := newTestActor(f, chain, chain)

	block, _ := f.sys.currentEntry(a)
	applyEntry(a.Sprite, block)
	if a.Sprite.Addr != 0xA1234 {
		t.Errorf("Addr = 0x%X, want 0xA1234", a.Sprite.Addr)
	}
	if a.Sprite.PalSrc != 0x2C {
		t.Errorf("PalSrc = 0x%X, want 0x2C", a.Sprite.PalSrc)
	}
}
