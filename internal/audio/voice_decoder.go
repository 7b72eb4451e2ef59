// Package audio decodes voice samples into the 16-bit little-endian stereo
// PCM stream that ebiten audio players consume.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Format is the encoding of a raw voice sample.
type Format int

const (
	// FormatPCM8 is unsigned 8-bit PCM, the format of the sound board's sample ROMs
	FormatPCM8 Format = iota
	// FormatULaw is 8-bit μ-law
	FormatULaw
)

// VoiceDecoder holds a decoded sample, resampled to the output rate.
type VoiceDecoder struct {
	data       []byte // 16-bit signed stereo PCM
	sampleRate int64
	offset     int64
}

// AU header (24 bytes minimum)
type auHeader struct {
	Magic      uint32
	DataOffset uint32
	DataSize   uint32
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

const (
	auMagic        = 0x2e736e64 // ".snd"
	auEncodingULaw = 1
	auEncodingPCM8 = 2
	auHeaderSize   = 24
)

// DecodeVoice decodes a headerless mono sample.
//
// Parameters:
//   - r: reader with the raw sample bytes
//   - format: encoding of the bytes
//   - srcRate: sample rate of the input in Hz
//   - dstRate: sample rate of the audio context in Hz
//
// Returns:
//   - *VoiceDecoder: stream ready for audio.Context.NewPlayer
//   - error: if reading fails or a rate is not positive
func DecodeVoice(r io.Reader, format Format, srcRate, dstRate int) (*VoiceDecoder, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("invalid sample rates: %d -> %d", srcRate, dstRate)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read voice sample: %w", err)
	}
	return newVoiceDecoder(raw, format, srcRate, dstRate), nil
}

// DecodeAU decodes a Sun/NeXT .au voice sample (μ-law or signed 8-bit,
// mono only).
//
// Parameters:
//   - r: reader containing the AU file
//   - dstRate: sample rate of the audio context in Hz
//
// Returns:
//   - *VoiceDecoder: decoded stream
//   - error: if the header is invalid or the encoding unsupported
func DecodeAU(r io.Reader, dstRate int) (*VoiceDecoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum %d)", len(data), auHeaderSize)
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}
	if header.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x (expected 0x%08x)", header.Magic, auMagic)
	}
	if header.Channels != 1 {
		return nil, fmt.Errorf("unsupported channel count: %d (voice samples are mono)", header.Channels)
	}
	if header.DataOffset < auHeaderSize || int(header.DataOffset) >= len(data) {
		return nil, fmt.Errorf("invalid data offset: %d (file size: %d)", header.DataOffset, len(data))
	}

	payload := data[header.DataOffset:]
	switch header.Encoding {
	case auEncodingULaw:
		return DecodeVoice(bytes.NewReader(payload), FormatULaw, int(header.SampleRate), dstRate)
	case auEncodingPCM8:
		// AU stores signed bytes; shift to the unsigned form the PCM8 path expects
		unsigned := make([]byte, len(payload))
		for i, b := range payload {
			unsigned[i] = b ^ 0x80
		}
		return DecodeVoice(bytes.NewReader(unsigned), FormatPCM8, int(header.SampleRate), dstRate)
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d", header.Encoding)
	}
}

func newVoiceDecoder(raw []byte, format Format, srcRate, dstRate int) *VoiceDecoder {
	// nearest-neighbour resample to the output rate
	n := int(int64(len(raw)) * int64(dstRate) / int64(srcRate))
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		src := raw[int64(i)*int64(srcRate)/int64(dstRate)]
		s := decodeSample(src, format)
		out[i*4] = byte(s)
		out[i*4+1] = byte(s >> 8)
		out[i*4+2] = byte(s)
		out[i*4+3] = byte(s >> 8)
	}
	return &VoiceDecoder{data: out, sampleRate: int64(dstRate)}
}

func decodeSample(b byte, format Format) int16 {
	if format == FormatULaw {
		return mulawTable[b]
	}
	return int16(int(b)-0x80) << 8
}

// Read implements io.Reader.
func (d *VoiceDecoder) Read(p []byte) (int, error) {
	if d.offset >= int64(len(d.data)) {
		return 0, io.EOF
	}
	n := copy(p, d.data[d.offset:])
	d.offset += int64(n)
	return n, nil
}

// Seek implements io.Seeker so players can rewind a cue.
func (d *VoiceDecoder) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = d.offset + offset
	case io.SeekEnd:
		next = int64(len(d.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position: %d", next)
	}
	d.offset = next
	return next, nil
}

// Length returns the decoded stream length in bytes.
func (d *VoiceDecoder) Length() int64 {
	return int64(len(d.data))
}

// SampleRate returns the output sample rate in Hz.
func (d *VoiceDecoder) SampleRate() int64 {
	return d.sampleRate
}
