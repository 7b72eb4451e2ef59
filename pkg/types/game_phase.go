// Package types defines shared base types.
// It depends on no other package in the module, which keeps the config,
// game and systems packages free of import cycles.
package types

// GamePhase is the global game state enum. The numeric values match the
// original program because the flag animation tables are indexed by them.
type GamePhase int

const (
	PhaseInit GamePhase = iota
	PhaseAttract
	PhaseInitBest1
	PhaseBest1
	PhaseInitLogo
	PhaseLogo
	PhaseInitMusic
	PhaseMusic
	PhaseInitGame
	// PhaseStart1 is the first phase with a flag animation chain
	PhaseStart1
	PhaseStart2
	PhaseStart3
	PhaseInGame
	PhaseInitBonus
	PhaseBonus
	PhaseInitGameOver
	PhaseGameOver
	PhaseInitMap
	PhaseMap
	PhaseInitBest2
	PhaseBest2
	PhaseReinit
)

// String returns the phase name.
func (p GamePhase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseAttract:
		return "Attract"
	case PhaseInitBest1:
		return "InitBest1"
	case PhaseBest1:
		return "Best1"
	case PhaseInitLogo:
		return "InitLogo"
	case PhaseLogo:
		return "Logo"
	case PhaseInitMusic:
		return "InitMusic"
	case PhaseMusic:
		return "Music"
	case PhaseInitGame:
		return "InitGame"
	case PhaseStart1:
		return "Start1"
	case PhaseStart2:
		return "Start2"
	case PhaseStart3:
		return "Start3"
	case PhaseInGame:
		return "InGame"
	case PhaseInitBonus:
		return "InitBonus"
	case PhaseBonus:
		return "Bonus"
	case PhaseInitGameOver:
		return "InitGameOver"
	case PhaseGameOver:
		return "GameOver"
	case PhaseInitMap:
		return "InitMap"
	case PhaseMap:
		return "Map"
	case PhaseInitBest2:
		return "InitBest2"
	case PhaseBest2:
		return "Best2"
	case PhaseReinit:
		return "Reinit"
	default:
		return "Unknown"
	}
}

// OperatingMode selects between original-fidelity and enhanced behaviour.
type OperatingMode int

const (
	ModeOriginal OperatingMode = iota
	ModeEnhanced
)

// String returns the mode name used in settings files.
func (m OperatingMode) String() string {
	if m == ModeEnhanced {
		return "enhanced"
	}
	return "original"
}

// ParseOperatingMode converts a settings value back to a mode.
// Unknown values fall back to ModeOriginal.
func ParseOperatingMode(s string) OperatingMode {
	if s == "enhanced" {
		return ModeEnhanced
	}
	return ModeOriginal
}
