package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AddressMap locates the animation tables inside one program ROM revision.
// Every field is an absolute offset into the ROM image.
type AddressMap struct {
	// FlagSeq holds one (curr, next) chain pair per start phase
	FlagSeq uint32 `yaml:"animSeqFlag"`

	FerrariCurr uint32 `yaml:"animFerrariCurr"`
	FerrariNext uint32 `yaml:"animFerrariNext"`
	Pass1Curr   uint32 `yaml:"animPass1Curr"`
	Pass1Next   uint32 `yaml:"animPass1Next"`
	Pass2Curr   uint32 `yaml:"animPass2Curr"`
	Pass2Next   uint32 `yaml:"animPass2Next"`

	// End sequence chain tables, one (curr, next) pair per variant
	EndSeqObj1 uint32 `yaml:"animEndSeqObj1"`
	EndSeqObj2 uint32 `yaml:"animEndSeqObj2"`
	EndSeqObj3 uint32 `yaml:"animEndSeqObj3"`
	EndSeqObj4 uint32 `yaml:"animEndSeqObj4"`
	EndSeqObj5 uint32 `yaml:"animEndSeqObj5"`
	EndSeqObj6 uint32 `yaml:"animEndSeqObj6"`
	EndSeqObj7 uint32 `yaml:"animEndSeqObj7"`
	EndSeqObj8 uint32 `yaml:"animEndSeqObj8"`
	EndSeqObjA uint32 `yaml:"animEndSeqObjA"`
	EndSeqObjB uint32 `yaml:"animEndSeqObjB"`

	// EndTable holds the [start, end] timeline window of each actor
	EndTable uint32 `yaml:"animEndTable"`

	// ShadowData is the sprite data address of the generic shadow
	ShadowData uint32 `yaml:"shadowData"`

	// ZoomLookup is the depth step table of the flag marshal
	ZoomLookup uint32 `yaml:"spriteZoomLookup"`
}

func (m *AddressMap) entries() []struct {
	name string
	addr uint32
} {
	return []struct {
		name string
		addr uint32
	}{
		{"animSeqFlag", m.FlagSeq},
		{"animFerrariCurr", m.FerrariCurr},
		{"animFerrariNext", m.FerrariNext},
		{"animPass1Curr", m.Pass1Curr},
		{"animPass1Next", m.Pass1Next},
		{"animPass2Curr", m.Pass2Curr},
		{"animPass2Next", m.Pass2Next},
		{"animEndSeqObj1", m.EndSeqObj1},
		{"animEndSeqObj2", m.EndSeqObj2},
		{"animEndSeqObj3", m.EndSeqObj3},
		{"animEndSeqObj4", m.EndSeqObj4},
		{"animEndSeqObj5", m.EndSeqObj5},
		{"animEndSeqObj6", m.EndSeqObj6},
		{"animEndSeqObj7", m.EndSeqObj7},
		{"animEndSeqObj8", m.EndSeqObj8},
		{"animEndSeqObjA", m.EndSeqObjA},
		{"animEndSeqObjB", m.EndSeqObjB},
		{"animEndTable", m.EndTable},
		{"shadowData", m.ShadowData},
		{"spriteZoomLookup", m.ZoomLookup},
	}
}

// LoadAddressMap loads an address map from a YAML file.
//
// Parameters:
//   - path: address map path, embedded when it starts with "data/"
//
// Returns:
//   - *AddressMap: the parsed map
//   - error: if the file cannot be read or parsed
func LoadAddressMap(path string) (*AddressMap, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address map: %w", err)
	}
	var m AddressMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse address map: %w", err)
	}
	return &m, nil
}

// Validate checks that every table is set and lies inside a ROM of romSize
// bytes. The tables themselves are trusted and not inspected.
func (m *AddressMap) Validate(romSize uint32) error {
	for _, e := range m.entries() {
		if e.addr == 0 {
			return fmt.Errorf("address %s is not set", e.name)
		}
		if romSize > 0 && e.addr >= romSize {
			return fmt.Errorf("address %s = 0x%X lies outside the %d byte rom", e.name, e.addr, romSize)
		}
	}
	return nil
}
