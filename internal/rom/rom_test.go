package rom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadWidths(t *testing.T) {
	r := New([]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC})

	if got := r.Read8(1); got != 0x34 {
		t.Errorf("Read8(1) = 0x%02x, want 0x34", got)
	}
	if got := r.Read16(1); got != 0x3456 {
		t.Errorf("Read16(1) = 0x%04x, want 0x3456", got)
	}
	if got := r.Read32(2); got != 0x56789ABC {
		t.Errorf("Read32(2) = 0x%08x, want 0x56789abc", got)
	}
}

func TestReadPastEndIsZero(t *testing.T) {
	r := New([]byte{0xFF, 0xFF})

	if got := r.Read8(2); got != 0 {
		t.Errorf("Read8(2) = 0x%02x, want 0", got)
	}
	if got := r.Read16(1); got != 0xFF00 {
		t.Errorf("Read16(1) = 0x%04x, want 0xff00", got)
	}
	if got := r.Read32(0x100); got != 0 {
		t.Errorf("Read32(0x100) = 0x%08x, want 0", got)
	}
}

func TestReadPair(t *testing.T) {
	r := New([]byte{0, 0, 0x10, 0, 0, 0, 0x20, 0})
	curr, next := r.ReadPair(0)
	if curr != 0x1000 || next != 0x2000 {
		t.Errorf("ReadPair(0) = (0x%x, 0x%x), want (0x1000, 0x2000)", curr, next)
	}
}

func TestReadBlock(t *testing.T) {
	// palette 0x21, negate x, priority 5, addr 0xA1234, x -3, y 10, depth 0x40, chain+hflip delay 0x3F
	data := []byte{0x21, 0xDA, 0x12, 0x34, 0xFD, 0x0A, 0x40, 0xFF}
	b := New(data).ReadBlock(0)

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Palette", b.Palette, uint8(0x21)},
		{"SpriteAddr", b.SpriteAddr(), uint32(0xA1234)},
		{"NegateX", b.NegateX(), true},
		{"SpritePriority", b.SpritePriority(), uint16(5)},
		{"LocalX", b.LocalX(), int16(-3)},
		{"RawX", b.RawX(), uint16(0xFD)},
		{"LocalY", b.LocalY(), int16(10)},
		{"Depth", b.Depth, uint8(0x40)},
		{"Chain", b.Chain(), true},
		{"HFlip", b.HFlip(), true},
		{"Delay", b.Delay(), uint8(0x3F)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestSpriteAddrMatchesMaskedLong(t *testing.T) {
	data := []byte{0xAB, 0x7C, 0xDE, 0xF0, 0, 0, 0, 0}
	r := New(data)
	if got, want := r.ReadBlock(0).SpriteAddr(), r.Read32(0)&SpriteAddrMask; got != want {
		t.Errorf("SpriteAddr() = 0x%x, want 0x%x", got, want)
	}
}

func TestReadDelayAndEntryOffset(t *testing.T) {
	data := make([]byte, 24)
	data[7] = 0x83
	data[15] = 0x45
	r := New(data)

	if got := r.ReadDelay(0); got != 3 {
		t.Errorf("ReadDelay(0) = %d, want 3", got)
	}
	if got := r.ReadDelay(EntryOffset(0, 1)); got != 5 {
		t.Errorf("ReadDelay(entry 1) = %d, want 5", got)
	}
	if got := EntryOffset(0x100, 3); got != 0x118 {
		t.Errorf("EntryOffset(0x100, 3) = 0x%x, want 0x118", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "epr-10381b.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("Failed to write temp rom: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if r.Size() != 3 {
		t.Errorf("Size() = %d, want 3", r.Size())
	}

	if _, err := Load(filepath.Join(dir, "missing.bin")); err == nil || !strings.Contains(err.Error(), "failed to read rom image") {
		t.Errorf("Load(missing) error = %v, want read failure", err)
	}

	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("Failed to write temp rom: %v", err)
	}
	if _, err := Load(empty); err == nil {
		t.Error("Load(empty) should fail")
	}
}
