package types

// SoundCue is a command sent to the sound program.
type SoundCue uint8

// Only the cues the animation sequences can trigger are listed.
const (
	CueReset           SoundCue = 0x80
	CueInitCheers      SoundCue = 0x8D
	CueStopCheers      SoundCue = 0x8E
	CueVoiceCheckpoint SoundCue = 0x9D
	// CueVoiceCongrats is played once the vehicle stops during an end sequence
	CueVoiceCongrats SoundCue = 0x9E
	CueVoiceGetReady SoundCue = 0x9F
	CueInitCheers2   SoundCue = 0x9C
)

// String returns the cue name.
func (c SoundCue) String() string {
	switch c {
	case CueReset:
		return "RESET"
	case CueInitCheers:
		return "INIT_CHEERS"
	case CueStopCheers:
		return "STOP_CHEERS"
	case CueVoiceCheckpoint:
		return "VOICE_CHECKPOINT"
	case CueVoiceCongrats:
		return "VOICE_CONGRATS"
	case CueVoiceGetReady:
		return "VOICE_GETREADY"
	case CueInitCheers2:
		return "INIT_CHEERS2"
	default:
		return "UNKNOWN"
	}
}
