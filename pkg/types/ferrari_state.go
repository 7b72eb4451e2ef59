package types

// FerrariState is the control routine the player vehicle is running.
type FerrariState int

const (
	FerrariInit FerrariState = iota
	FerrariLogo
	// FerrariSeq1 waits for the intro drive-in to be set up
	FerrariSeq1
	// FerrariSeq2 runs the intro drive-in
	FerrariSeq2
	FerrariInGame
	// FerrariEndSeq hands the vehicle sprite to the end sequence
	FerrariEndSeq
)

func (s FerrariState) String() string {
	switch s {
	case FerrariInit:
		return "Init"
	case FerrariLogo:
		return "Logo"
	case FerrariSeq1:
		return "Seq1"
	case FerrariSeq2:
		return "Seq2"
	case FerrariInGame:
		return "InGame"
	case FerrariEndSeq:
		return "EndSeq"
	default:
		return "Unknown"
	}
}

// CarState selects how the vehicle sprite is animated.
type CarState int

const (
	CarNormal CarState = iota
	CarSmoke
	// CarAnimSeq means an animation sequence owns the vehicle frames
	CarAnimSeq
	CarCrash
)
