// Package romtest lays out animation tables in a byte image. Tests use it
// to build fixtures; the viewer uses BuildDemo when no ROM image is given.
package romtest

import (
	"github.com/gameblabla/Cannonballs/internal/rom"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// windowRowSize is the stride between actor rows of a window table
const windowRowSize = types.EndSeqVariants * 4

// BlockSpec describes one animation entry.
type BlockSpec struct {
	Palette    uint8
	SpriteAddr uint32
	NegateX    bool
	// Priority is the 3-bit sprite to sprite priority
	Priority uint8
	X, Y     int8
	Depth    uint8
	Chain    bool
	HFlip    bool
	Delay    uint8
}

// Control encodes a control byte.
func Control(chain, hflip bool, delay uint8) uint8 {
	c := delay & 0x3F
	if chain {
		c |= 0x80
	}
	if hflip {
		c |= 0x40
	}
	return c
}

// Builder grows a big-endian image. Offset 0 is never handed out so that a
// zero address can mean "unset".
type Builder struct {
	data []byte
	next uint32
}

// NewBuilder returns a builder whose first allocation starts at base.
func NewBuilder(base uint32) *Builder {
	if base == 0 {
		base = 4
	}
	return &Builder{data: make([]byte, base), next: base}
}

func (b *Builder) grow(end uint32) {
	if int(end) > len(b.data) {
		b.data = append(b.data, make([]byte, int(end)-len(b.data))...)
	}
}

// Alloc reserves n zeroed bytes, 4-byte aligned, and returns their offset.
func (b *Builder) Alloc(n uint32) uint32 {
	off := (b.next + 3) &^ 3
	b.next = off + n
	b.grow(b.next)
	return off
}

func (b *Builder) PutByte(off uint32, v uint8) {
	b.grow(off + 1)
	b.data[off] = v
}

func (b *Builder) PutWord(off uint32, v uint16) {
	b.grow(off + 2)
	b.data[off] = byte(v >> 8)
	b.data[off+1] = byte(v)
}

func (b *Builder) PutLong(off uint32, v uint32) {
	b.PutWord(off, uint16(v>>16))
	b.PutWord(off+2, uint16(v))
}

// PutPair writes a (curr, next) chain pair.
func (b *Builder) PutPair(off, curr, next uint32) {
	b.PutLong(off, curr)
	b.PutLong(off+4, next)
}

// PutBlock encodes e at off.
func (b *Builder) PutBlock(off uint32, e BlockSpec) {
	flags := uint8(e.SpriteAddr>>16) & 0x0F
	flags |= (e.Priority & 0x07) << 4
	if e.NegateX {
		flags |= 0x80
	}
	b.PutByte(off, e.Palette)
	b.PutByte(off+1, flags)
	b.PutWord(off+2, uint16(e.SpriteAddr))
	b.PutByte(off+4, uint8(e.X))
	b.PutByte(off+5, uint8(e.Y))
	b.PutByte(off+6, e.Depth)
	b.PutByte(off+rom.ControlOffset, Control(e.Chain, e.HFlip, e.Delay))
}

// Chain allocates consecutive entries and returns the offset of the first.
// An extra zeroed entry follows the last one, as the advancer peeks one
// entry ahead.
func (b *Builder) Chain(entries ...BlockSpec) uint32 {
	base := b.Alloc(uint32(len(entries)+1) * rom.BlockSize)
	for i, e := range entries {
		b.PutBlock(rom.EntryOffset(base, uint16(i)), e)
	}
	return base
}

// PutWindow writes the [start, end] timeline window of row in variant.
func (b *Builder) PutWindow(table uint32, variant int, row types.ActorRole, start, end int16) {
	off := table + uint32(variant)<<2 + uint32(row)*windowRowSize
	b.PutWord(off, uint16(start))
	b.PutWord(off+2, uint16(end))
}

// WindowTableSize is the size of a window table covering every row.
func WindowTableSize() uint32 {
	return uint32(types.RoleEffectsPresented+1) * windowRowSize
}

// PairTableSize is the size of a chain pair table covering every variant.
func PairTableSize() uint32 {
	return types.EndSeqVariants * 8
}

// Bytes returns the image built so far.
func (b *Builder) Bytes() []byte {
	return b.data
}

// ROM wraps a copy of the image.
func (b *Builder) ROM() *rom.ROM {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return rom.New(data)
}
