package types

import "fmt"

// ActorRole identifies an end-sequence actor. The value is also the row of
// the actor in the per-variant timeline window table.
type ActorRole int

const (
	// RoleFerrari is the vehicle
	RoleFerrari ActorRole = iota
	// RoleDoor is the car door opening animation
	RoleDoor
	// RoleInterior is the interior of the car, which wobbles as passengers exit
	RoleInterior
	// RoleCarShadow shadows the vehicle
	RoleCarShadow
	// RoleMan is passenger 1
	RoleMan
	RoleManShadow
	// RoleFemale is passenger 2
	RoleFemale
	RoleFemaleShadow
	// RoleTrophy is the person presenting the trophy
	RoleTrophy
	// RoleAlternate is animated in variant 4 and shadows the trophy presenter otherwise
	RoleAlternate
	// RoleEffects holds after effects (e.g. a cloud of smoke)
	RoleEffects
	// RoleTrophyPresented is the window row used once the trophy pose has been presented
	RoleTrophyPresented
	// RoleEffectsPresented is the window row used once the effects pose has been presented
	RoleEffectsPresented
)

// EndSeqVariants is the number of end-of-game choreography scripts.
const EndSeqVariants = 5

// VariantAlternateAnimated is the only variant that animates RoleAlternate.
const VariantAlternateAnimated = 4

var roleNames = map[ActorRole]string{
	RoleFerrari:          "ferrari",
	RoleDoor:             "door",
	RoleInterior:         "interior",
	RoleCarShadow:        "car_shadow",
	RoleMan:              "man",
	RoleManShadow:        "man_shadow",
	RoleFemale:           "female",
	RoleFemaleShadow:     "female_shadow",
	RoleTrophy:           "trophy",
	RoleAlternate:        "alternate",
	RoleEffects:          "effects",
	RoleTrophyPresented:  "trophy_presented",
	RoleEffectsPresented: "effects_presented",
}

// String returns the role name used in config files.
func (r ActorRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseActorRole converts a config name back to a role.
func ParseActorRole(name string) (ActorRole, error) {
	for role, n := range roleNames {
		if n == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown actor role %q", name)
}
