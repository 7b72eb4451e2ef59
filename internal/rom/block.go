package rom

// Animation blocks are stored in groups of 8 bytes:
//
//	+00 [Byte] Sprite colour palette
//	+01 [Byte] Bit 7: make x position negative
//	           Bits 4-6: sprite to sprite priority
//	           Bits 0-3: top bits of sprite data address
//	+02 [Word] Sprite data address
//	+04 [Byte] Sprite x position
//	+05 [Byte] Sprite y position
//	+06 [Byte] Sprite to road priority
//	+07 [Byte] Bit 7: load next block of animation data
//	           Bit 6: h-flip
//	           Bits 0-5: frame delay
const (
	BlockSize     = 8
	ControlOffset = 7
)

const (
	flagNegateX     = 0x80
	flagPriority    = 0x70
	controlChain    = 0x80
	controlHFlip    = 0x40
	controlDelayMsk = 0x3F
)

// Block is one decoded animation entry.
type Block struct {
	Palette uint8
	Flags   uint8
	AddrLo  uint16
	X       uint8
	Y       uint8
	Depth   uint8
	Control uint8
}

// ReadBlock decodes the entry at offset.
func (r *ROM) ReadBlock(offset uint32) Block {
	return Block{
		Palette: r.Read8(offset),
		Flags:   r.Read8(offset + 1),
		AddrLo:  r.Read16(offset + 2),
		X:       r.Read8(offset + 4),
		Y:       r.Read8(offset + 5),
		Depth:   r.Read8(offset + 6),
		Control: r.Read8(offset + ControlOffset),
	}
}

// ReadDelay returns the frame delay stored in the control byte of the entry
// at offset.
func (r *ROM) ReadDelay(offset uint32) uint8 {
	return r.Read8(offset+ControlOffset) & controlDelayMsk
}

// EntryOffset returns the address of entry frame within the block chain at base.
func EntryOffset(base uint32, frame uint16) uint32 {
	return base + uint32(frame)<<3
}

// SpriteAddr is the 20-bit sprite data address.
func (b Block) SpriteAddr() uint32 {
	return (uint32(b.Flags)<<16 | uint32(b.AddrLo)) & SpriteAddrMask
}

// Word0 is the first word of the entry (palette and flags), the value the
// priority extraction reads.
func (b Block) Word0() uint16 {
	return uint16(b.Palette)<<8 | uint16(b.Flags)
}

func (b Block) NegateX() bool {
	return b.Flags&flagNegateX != 0
}

// SpritePriority returns the 3-bit sprite to sprite priority.
func (b Block) SpritePriority() uint16 {
	return (b.Word0() & flagPriority) >> 4
}

// LocalX is the sign-extended x position.
func (b Block) LocalX() int16 {
	return int16(int8(b.X))
}

// RawX is the x position without sign extension.
func (b Block) RawX() uint16 {
	return uint16(b.X)
}

// LocalY is the sign-extended y position.
func (b Block) LocalY() int16 {
	return int16(int8(b.Y))
}

// Chain reports whether the entry terminates the current chain.
func (b Block) Chain() bool {
	return b.Control&controlChain != 0
}

func (b Block) HFlip() bool {
	return b.Control&controlHFlip != 0
}

// Delay is the number of ticks the entry is held.
func (b Block) Delay() uint8 {
	return b.Control & controlDelayMsk
}
