package game

import (
	"fmt"
	"log"

	"github.com/gameblabla/Cannonballs/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the persisted viewer and engine options.
type Settings struct {
	// Mode is "original" or "enhanced"; it decides where a finished end
	// sequence hands control
	Mode string `yaml:"mode"`

	// EndSeqVariant is the end sequence played by default (0-4)
	EndSeqVariant int `yaml:"endSeqVariant"`

	CueVolume   float64 `yaml:"cueVolume"`   // 0.0 ~ 1.0
	CuesEnabled bool    `yaml:"cuesEnabled"` // voice cue switch
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		Mode:          types.ModeOriginal.String(),
		EndSeqVariant: 0,
		CueVolume:     0.8,
		CuesEnabled:   true,
	}
}

// SettingsManager loads, saves and holds the settings.
type SettingsManager struct {
	gdataManager *gdata.Manager // may be nil: settings then live in memory only
	settings     *Settings
}

const (
	settingsObject   = "settings"
	settingsProperty = "animseq"
)

// NewSettingsManager creates a settings manager and loads saved settings.
//
// Parameters:
//   - gdataManager: cross-platform storage, nil for in-memory settings
//
// Returns:
//   - *SettingsManager: the manager
//   - error: always nil; load failures fall back to defaults
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads the settings from gdata. Missing storage or a missing file
// yields the defaults.
//
// Returns:
//   - error: if the stored data cannot be read or decoded
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.EndSeqVariant = clampVariant(loaded.EndSeqVariant)
	loaded.CueVolume = clampVolume(loaded.CueVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save writes the settings to gdata. Without storage it does nothing.
//
// Returns:
//   - error: if encoding or writing fails
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings returns the current settings.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// OperatingMode returns the configured operating mode.
func (sm *SettingsManager) OperatingMode() types.OperatingMode {
	return types.ParseOperatingMode(sm.settings.Mode)
}

// SetOperatingMode changes the operating mode. Call Save to persist it.
func (sm *SettingsManager) SetOperatingMode(mode types.OperatingMode) {
	sm.settings.Mode = mode.String()
}

// SetEndSeqVariant changes the default end sequence, clamped to 0-4.
// Call Save to persist it.
func (sm *SettingsManager) SetEndSeqVariant(variant int) {
	sm.settings.EndSeqVariant = clampVariant(variant)
}

// SetCueVolume changes the cue volume, clamped to 0.0 ~ 1.0.
// Call Save to persist it.
func (sm *SettingsManager) SetCueVolume(volume float64) {
	sm.settings.CueVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetCuesEnabled(enabled bool) {
	sm.settings.CuesEnabled = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

func clampVariant(variant int) int {
	if variant < 0 {
		return 0
	}
	if variant >= types.EndSeqVariants {
		return types.EndSeqVariants - 1
	}
	return variant
}
