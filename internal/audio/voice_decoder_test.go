package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func TestDecodeVoicePCM8(t *testing.T) {
	raw := []byte{0x80, 0xFF, 0x00}
	dec, err := DecodeVoice(bytes.NewReader(raw), FormatPCM8, 8000, 8000)
	if err != nil {
		t.Fatalf("DecodeVoice() error: %v", err)
	}

	// mono in, stereo 16-bit out
	if dec.Length() != int64(len(raw)*4) {
		t.Fatalf("Length() = %d, want %d", dec.Length(), len(raw)*4)
	}

	out, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}

	tests := []struct {
		frame int
		want  int16
	}{
		{0, 0},
		{1, 0x7F00},
		{2, -0x8000},
	}
	for _, tt := range tests {
		left := int16(binary.LittleEndian.Uint16(out[tt.frame*4:]))
		right := int16(binary.LittleEndian.Uint16(out[tt.frame*4+2:]))
		if left != tt.want || right != tt.want {
			t.Errorf("frame %d = (%d, %d), want %d on both channels", tt.frame, left, right, tt.want)
		}
	}
}

func TestDecodeVoiceResamples(t *testing.T) {
	raw := make([]byte, 100)
	dec, err := DecodeVoice(bytes.NewReader(raw), FormatPCM8, 8000, 16000)
	if err != nil {
		t.Fatalf("DecodeVoice() error: %v", err)
	}
	if dec.Length() != 200*4 {
		t.Errorf("Length() = %d, want %d", dec.Length(), 200*4)
	}
	if dec.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", dec.SampleRate())
	}
}

func TestDecodeVoiceRejectsBadRate(t *testing.T) {
	if _, err := DecodeVoice(bytes.NewReader(nil), FormatPCM8, 0, 44100); err == nil {
		t.Error("DecodeVoice() with zero source rate should fail")
	}
}

func buildAU(encoding uint32, channels uint32, payload []byte) []byte {
	var buf bytes.Buffer
	header := auHeader{
		Magic:      auMagic,
		DataOffset: auHeaderSize,
		DataSize:   uint32(len(payload)),
		Encoding:   encoding,
		SampleRate: 8000,
		Channels:   channels,
	}
	_ = binary.Write(&buf, binary.BigEndian, header)
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeAU(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantErr  bool
		wantLen  int64
		wantHead int16
	}{
		{"ulaw", buildAU(auEncodingULaw, 1, []byte{0xFF, 0x00}), false, 8, 0},
		{"signed pcm8", buildAU(auEncodingPCM8, 1, []byte{0x00, 0x7F}), false, 8, 0},
		{"stereo rejected", buildAU(auEncodingULaw, 2, []byte{0xFF}), true, 0, 0},
		{"pcm16 rejected", buildAU(3, 1, []byte{0x00, 0x00}), true, 0, 0},
		{"short file", []byte{0x2e, 0x73}, true, 0, 0},
		{"bad magic", append([]byte("RIFF"), make([]byte, 24)...), true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := DecodeAU(bytes.NewReader(tt.data), 8000)
			if tt.wantErr {
				if err == nil {
					t.Error("DecodeAU() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeAU() error: %v", err)
			}
			if dec.Length() != tt.wantLen {
				t.Errorf("Length() = %d, want %d", dec.Length(), tt.wantLen)
			}
			head := make([]byte, 2)
			if _, err := dec.Read(head); err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if got := int16(binary.LittleEndian.Uint16(head)); got != tt.wantHead {
				t.Errorf("first sample = %d, want %d", got, tt.wantHead)
			}
		})
	}
}

func TestVoiceDecoderSeek(t *testing.T) {
	dec, err := DecodeVoice(bytes.NewReader([]byte{0x80, 0x80}), FormatPCM8, 8000, 8000)
	if err != nil {
		t.Fatalf("DecodeVoice() error: %v", err)
	}
	if _, err := io.ReadAll(dec); err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	pos, err := dec.Seek(0, io.SeekStart)
	if err != nil || pos != 0 {
		t.Fatalf("Seek(0, SeekStart) = %d, %v", pos, err)
	}
	if pos, _ := dec.Seek(-4, io.SeekEnd); pos != 4 {
		t.Errorf("Seek(-4, SeekEnd) = %d, want 4", pos)
	}
	if _, err := dec.Seek(-100, io.SeekCurrent); err == nil {
		t.Error("Seek() to a negative position should fail")
	}
}
