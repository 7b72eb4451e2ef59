package game

import (
	"log"

	"github.com/gameblabla/Cannonballs/pkg/types"
)

// Ferrari stands in for the player vehicle. It only models what the
// animation sequences touch: its control state, a speed integrator that
// the automatic brake winds down, and the steering inputs.
type Ferrari struct {
	State    types.FerrariState
	CarState types.CarState

	AutoBrake   bool
	BrakeAdjust uint8

	SteeringAdjust int16
	// AIX is the lateral offset the AI steers the sprite by
	AIX int16

	// speed is a 16.16 increment
	speed        uint32
	deceleration uint32

	inGameInits int
}

// NewFerrari returns a parked vehicle.
//
// Parameters:
//   - deceleration: 16.16 amount the automatic brake removes per update
func NewFerrari(deceleration uint32) *Ferrari {
	return &Ferrari{deceleration: deceleration}
}

// Reset parks the vehicle and clears its counters.
func (f *Ferrari) Reset() {
	*f = Ferrari{deceleration: f.deceleration}
}

// InitInGame hands the vehicle back to gameplay.
func (f *Ferrari) InitInGame() {
	f.State = types.FerrariInGame
	f.CarState = types.CarNormal
	f.AutoBrake = false
	f.inGameInits++
	log.Printf("[Ferrari] In-game control initialised")
}

// InGameInits counts InitInGame calls.
func (f *Ferrari) InGameInits() int {
	return f.inGameInits
}

func (f *Ferrari) SetState(s types.FerrariState) {
	f.State = s
}

func (f *Ferrari) SetCarState(s types.CarState) {
	f.CarState = s
}

// Speed returns the 16.16 speed increment.
func (f *Ferrari) Speed() uint32 {
	return f.speed
}

func (f *Ferrari) SetSpeed(speed uint32) {
	f.speed = speed
}

// ApplyAutoBrake engages the automatic brake at full pressure.
func (f *Ferrari) ApplyAutoBrake() {
	f.AutoBrake = true
	f.BrakeAdjust = 0xFF
}

func (f *Ferrari) SpriteAIX() int16 {
	return f.AIX
}

// ResetSteering centres the steering input.
func (f *Ferrari) ResetSteering() {
	f.SteeringAdjust = 0
}

// Update integrates one frame of braking.
func (f *Ferrari) Update() {
	if !f.AutoBrake {
		return
	}
	if f.speed <= f.deceleration {
		f.speed = 0
		return
	}
	f.speed -= f.deceleration
}
