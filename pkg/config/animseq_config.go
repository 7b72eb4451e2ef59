package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gameblabla/Cannonballs/pkg/embedded"
	"github.com/gameblabla/Cannonballs/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultAnimSeqConfigPath is the built-in calibration file
const DefaultAnimSeqConfigPath = "data/animseq.yaml"

// AnimSeqConfig is the calibration of the animation sequence engine.
//
// Config file: data/animseq.yaml
type AnimSeqConfig struct {
	// EndSeqLengths is the timeline length of each end sequence
	EndSeqLengths []int16 `yaml:"endSeqLengths"`

	// TimelineDrivers names, per end sequence, the actor that advances the timeline
	TimelineDrivers []string `yaml:"timelineDrivers"`

	Flag   FlagCalibration   `yaml:"flag"`
	Intro  IntroCalibration  `yaml:"intro"`
	Shadow ShadowCalibration `yaml:"shadow"`

	// PresentedShadowFrom is the first end sequence whose presented poses cast a shadow
	PresentedShadowFrom int `yaml:"presentedShadowFrom"`

	drivers []types.ActorRole
}

// FlagCalibration positions the flag waving marshal.
type FlagCalibration struct {
	// StartDepth is the integer part of the marshal's initial depth
	StartDepth uint32 `yaml:"startDepth"`
	// DepthCeiling disables the marshal once reached
	DepthCeiling uint16 `yaml:"depthCeiling"`
}

// IntroCalibration positions the intro drive-in.
type IntroCalibration struct {
	Priority uint16 `yaml:"priority"`
	Zoom     uint8  `yaml:"zoom"`
	BaseY    int16  `yaml:"baseY"`
}

// ShadowCalibration sizes the end sequence shadows.
type ShadowCalibration struct {
	// Shift scales passenger and trophy shadows
	Shift uint8 `yaml:"shift"`
	// CarShift scales the vehicle shadow; it widens by one while the vehicle
	// is centred and has not chained yet
	CarShift uint8 `yaml:"carShift"`
	// CentreThreshold is the largest lateral offset that counts as centred
	CentreThreshold int16 `yaml:"centreThreshold"`
}

// DefaultAnimSeqConfig returns the arcade calibration.
func DefaultAnimSeqConfig() *AnimSeqConfig {
	c := &AnimSeqConfig{
		EndSeqLengths:   []int16{0x244, 0x244, 0x244, 0x190, 0x258},
		TimelineDrivers: []string{"effects", "effects", "effects", "effects", "effects"},
		Flag: FlagCalibration{
			StartDepth:   400,
			DepthCeiling: 0x200,
		},
		Intro: IntroCalibration{
			Priority: 0x1FE,
			Zoom:     0x7F,
			BaseY:    221,
		},
		Shadow: ShadowCalibration{
			Shift:           3,
			CarShift:        1,
			CentreThreshold: 5,
		},
		PresentedShadowFrom: 2,
	}
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("default animseq config invalid: %v", err))
	}
	return c
}

// LoadAnimSeqConfig loads the engine calibration.
// Paths starting with "data/" are read from the embedded files, anything
// else from disk.
//
// Parameters:
//   - path: config file path (e.g. "data/animseq.yaml")
//
// Returns:
//   - *AnimSeqConfig: validated config
//   - error: if the file cannot be read, parsed or validated
func LoadAnimSeqConfig(path string) (*AnimSeqConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animseq config: %w", err)
	}
	return ParseAnimSeqConfig(data)
}

// ParseAnimSeqConfig parses and validates YAML calibration data.
func ParseAnimSeqConfig(data []byte) (*AnimSeqConfig, error) {
	var c AnimSeqConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse animseq config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid animseq config: %w", err)
	}
	return &c, nil
}

// Validate checks the config and resolves the timeline driver names.
func (c *AnimSeqConfig) Validate() error {
	if len(c.EndSeqLengths) != types.EndSeqVariants {
		return fmt.Errorf("endSeqLengths has %d entries, want %d", len(c.EndSeqLengths), types.EndSeqVariants)
	}
	for i, l := range c.EndSeqLengths {
		if l <= 0 {
			return fmt.Errorf("endSeqLengths[%d] = %d, must be positive", i, l)
		}
	}

	if len(c.TimelineDrivers) != types.EndSeqVariants {
		return fmt.Errorf("timelineDrivers has %d entries, want %d", len(c.TimelineDrivers), types.EndSeqVariants)
	}
	drivers := make([]types.ActorRole, len(c.TimelineDrivers))
	for i, name := range c.TimelineDrivers {
		role, err := types.ParseActorRole(name)
		if err != nil {
			return fmt.Errorf("timelineDrivers[%d]: %w", i, err)
		}
		if role > types.RoleEffects {
			return fmt.Errorf("timelineDrivers[%d]: %s is not an end sequence actor", i, name)
		}
		drivers[i] = role
	}

	if c.Flag.DepthCeiling == 0 {
		return fmt.Errorf("flag.depthCeiling must be set")
	}
	if c.Flag.StartDepth >= uint32(c.Flag.DepthCeiling) {
		return fmt.Errorf("flag.startDepth (%d) must be below flag.depthCeiling (%d)", c.Flag.StartDepth, c.Flag.DepthCeiling)
	}
	if c.Shadow.Shift > 15 || c.Shadow.CarShift > 14 {
		return fmt.Errorf("shadow shifts out of range: shift=%d carShift=%d", c.Shadow.Shift, c.Shadow.CarShift)
	}

	c.drivers = drivers
	return nil
}

// TimelineDriver returns the actor that advances the timeline of variant.
func (c *AnimSeqConfig) TimelineDriver(variant int) types.ActorRole {
	if variant < 0 || variant >= len(c.drivers) {
		return types.RoleEffects
	}
	return c.drivers[variant]
}

// EndSeqLength returns the timeline length of variant.
func (c *AnimSeqConfig) EndSeqLength(variant int) int16 {
	return c.EndSeqLengths[variant]
}

func readConfigFile(path string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
