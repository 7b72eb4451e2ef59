// Package rom provides read-only access to the program ROM image that holds
// the animation-sequence tables.
//
// The image is treated as trusted, static content: offsets are not validated
// against table boundaries. Values are stored big-endian, matching the 68000
// byte order of the original hardware.
package rom

import (
	"fmt"
	"os"
)

// SpriteAddrMask masks a long read down to the 20-bit sprite data address.
const SpriteAddrMask = 0xFFFFF

// ROM is an immutable, byte-addressable data source.
// It is safe for concurrent reads since nothing ever writes to it.
type ROM struct {
	data []byte
}

// New wraps an existing image. The slice must not be modified afterwards.
func New(data []byte) *ROM {
	return &ROM{data: data}
}

// Load reads a ROM image from disk.
//
// Parameters:
//   - path: Path to a de-interleaved program ROM image
//
// Returns:
//   - *ROM: The loaded image
//   - error: Read error, or nil if successful
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rom image '%s': %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rom image '%s' is empty", path)
	}
	return New(data), nil
}

// Size returns the image length in bytes.
func (r *ROM) Size() int {
	return len(r.data)
}

// Read8 returns the byte at offset.
// Offsets past the end of the image read as zero.
func (r *ROM) Read8(offset uint32) uint8 {
	if int64(offset) >= int64(len(r.data)) {
		return 0
	}
	return r.data[offset]
}

// Read16 returns the big-endian word at offset.
func (r *ROM) Read16(offset uint32) uint16 {
	return uint16(r.Read8(offset))<<8 | uint16(r.Read8(offset+1))
}

// Read32 returns the big-endian long at offset.
func (r *ROM) Read32(offset uint32) uint32 {
	return uint32(r.Read16(offset))<<16 | uint32(r.Read16(offset+2))
}

// ReadPair reads two consecutive longs, the layout used by every
// (current, next) animation pointer table.
func (r *ROM) ReadPair(offset uint32) (curr, next uint32) {
	return r.Read32(offset), r.Read32(offset + 4)
}
