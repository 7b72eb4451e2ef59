package systems

import (
	"testing"

	"github.com/gameblabla/Cannonballs/internal/rom/romtest"
	"github.com/gameblabla/Cannonballs/pkg/components"
	"github.com/gameblabla/Cannonballs/pkg/config"
	"github.com/gameblabla/Cannonballs/pkg/types"
)

// newIntroFixture lays out short intro scripts. Passenger 2 reaches its
// chain entry on the fifth tick.
func newIntroFixture(t *testing.T) *engineFixture {
	t.Helper()
	f := newEngineFixture(t, func(b *romtest.Builder, m *config.AddressMap) {
		m.FerrariCurr = b.Chain(
			romtest.BlockSpec{Palette: 0x20, X: 10, Priority: 1, Delay: 2},
			romtest.BlockSpec{Palette: 0x20, X: 10, Priority: 1, Delay: 2, Chain: true},
		)
		m.FerrariNext = b.Chain(romtest.BlockSpec{Palette: 0x20, Priority: 1, Delay: 30, Chain: true})

		m.Pass1Curr = b.Chain(
			romtest.BlockSpec{Palette: 0x21, Delay: 2},
			romtest.BlockSpec{Palette: 0x21, Delay: 2, Chain: true},
		)
		m.Pass1Next = b.Chain(romtest.BlockSpec{Palette: 0x21, Delay: 30, Chain: true})

		m.Pass2Curr = b.Chain(
			romtest.BlockSpec{Palette: 0x22, X: 16, Delay: 2},
			romtest.BlockSpec{Palette: 0x22, X: 16, Delay: 3, Chain: true},
		)
		m.Pass2Next = m.Pass2Curr
	})
	f.state.Phase = types.PhaseInitGame
	f.state.TickFrame = true
	return f
}

func TestIntroEndsOnSecondPassengerChain(t *testing.T) {
	f := newIntroFixture(t)

	if !f.sys.FerrariSeq() {
		t.Fatal("FerrariSeq() = false, want intro playing")
	}
	if f.ferrari.State != types.FerrariSeq2 {
		t.Errorf("ferrari state = %s, want %s", f.ferrari.State, types.FerrariSeq2)
	}

	// ticks 2 to 4
	for i := 2; i <= 4; i++ {
		f.tick(f.sys.TickIntro)
		if !f.sys.IntroActive() {
			t.Fatalf("intro ended on tick %d, want tick 5", i)
		}
	}
	if f.ferrari.InGameInits() != 0 {
		t.Fatalf("InitInGame called %d times before the end", f.ferrari.InGameInits())
	}

	f.tick(f.sys.TickIntro)
	if f.sys.IntroActive() {
		t.Fatal("intro still active after passenger 2 chained")
	}
	if f.ferrari.InGameInits() != 1 {
		t.Errorf("InitInGame called %d times, want 1", f.ferrari.InGameInits())
	}
	if f.ferrari.State != types.FerrariInGame {
		t.Errorf("ferrari state = %s, want %s", f.ferrari.State, types.FerrariInGame)
	}

	for i := 0; i < 10; i++ {
		f.tick(f.sys.TickIntro)
	}
	if f.ferrari.InGameInits() != 1 {
		t.Errorf("InitInGame called %d times after the intro, want 1", f.ferrari.InGameInits())
	}
}

func TestIntroCarStateFollowsFrame(t *testing.T) {
	f := newIntroFixture(t)
	f.sys.FerrariSeq()

	f.tick(f.sys.TickIntro)
	if f.ferrari.CarState != types.CarNormal {
		t.Errorf("car state after tick 2 = %v, want %v", f.ferrari.CarState, types.CarNormal)
	}

	f.tick(f.sys.TickIntro)
	if f.ferrari.CarState != types.CarAnimSeq {
		t.Errorf("car state after tick 3 = %v, want %v", f.ferrari.CarState, types.CarAnimSeq)
	}
}

func TestIntroProjection(t *testing.T) {
	f := newIntroFixture(t)
	f.sys.FerrariSeq()

	car := f.pool.Sprite(components.SlotFerrari)
	if car.Zoom != 0x7F {
		t.Errorf("Zoom = 0x%X, want 0x7F", car.Zoom)
	}
	if car.Priority != 0x1FD {
		t.Errorf("Priority = 0x%X, want 0x1FD", car.Priority)
	}
	// 10 * 0x1FD >> 9
	if car.X != 9 {
		t.Errorf("X = %d, want 9", car.X)
	}
	if car.Y != 221 {
		t.Errorf("Y = %d, want 221", car.Y)
	}
	if car.PalSrc != 0x20 {
		t.Errorf("PalSrc = 0x%X, want 0x20", car.PalSrc)
	}
}

func TestIntroSubmission(t *testing.T) {
	t.Run("outside view", func(t *testing.T) {
		f := newIntroFixture(t)
		f.sys.FerrariSeq()
		if len(f.comp.ordered) != 3 {
			t.Fatalf("ordered %d sprites on the first tick, want 3", len(f.comp.ordered))
		}

		f.comp.reset()
		before := *f.sys.IntroActors()[0]
		f.idle(f.sys.TickIntro)
		if len(f.comp.ordered) != 3 {
			t.Errorf("ordered %d sprites on a display frame, want 3", len(f.comp.ordered))
		}
		after := *f.sys.IntroActors()[0]
		if before.Frame != after.Frame || before.FrameDelay != after.FrameDelay {
			t.Error("display frame advanced the vehicle")
		}
	})

	t.Run("in-car view", func(t *testing.T) {
		f := newIntroFixture(t)
		f.road.inCar = true
		f.sys.FerrariSeq()
		for f.sys.IntroActive() {
			f.tick(f.sys.TickIntro)
		}
		if len(f.comp.ordered) != 0 {
			t.Errorf("ordered %d sprites in the in-car view, want 0", len(f.comp.ordered))
		}
		if f.ferrari.InGameInits() != 1 {
			t.Errorf("InitInGame called %d times, want 1", f.ferrari.InGameInits())
		}
	})
}

func TestFerrariSeqGating(t *testing.T) {
	tests := []struct {
		name           string
		phase          types.GamePhase
		carDisabled    bool
		want           bool
		wantInits      int
		wantPassengers bool
	}{
		{"music select", types.PhaseMusic, false, false, 0, false},
		{"logo", types.PhaseLogo, false, false, 1, true},
		{"attract", types.PhaseAttract, false, false, 1, true},
		{"car off", types.PhaseInitGame, true, false, 0, false},
		{"game start", types.PhaseInitGame, false, true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIntroFixture(t)
			f.state.Phase = tt.phase
			if tt.carDisabled {
				f.pool.Sprite(components.SlotFerrari).Disable()
			}

			if got := f.sys.FerrariSeq(); got != tt.want {
				t.Errorf("FerrariSeq() = %v, want %v", got, tt.want)
			}
			if f.sys.IntroActive() != tt.want {
				t.Errorf("IntroActive() = %v, want %v", f.sys.IntroActive(), tt.want)
			}
			if f.ferrari.InGameInits() != tt.wantInits {
				t.Errorf("InitInGame called %d times, want %d", f.ferrari.InGameInits(), tt.wantInits)
			}
			if got := f.pool.Sprite(components.SlotPass1).Enabled(); got != tt.wantPassengers {
				t.Errorf("passenger 1 enabled = %v, want %v", got, tt.wantPassengers)
			}
		})
	}
}

func TestIntroAbortedByPhaseChange(t *testing.T) {
	f := newIntroFixture(t)
	f.sys.FerrariSeq()

	f.state.Phase = types.PhaseAttract
	f.tick(f.sys.TickIntro)

	if f.sys.IntroActive() {
		t.Error("intro still active after returning to attract")
	}
	if f.ferrari.InGameInits() != 1 {
		t.Errorf("InitInGame called %d times, want 1", f.ferrari.InGameInits())
	}
}

func TestIntroDemoImage(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.state.Phase = types.PhaseInitGame
	f.state.TickFrame = true

	if !f.sys.FerrariSeq() {
		t.Fatal("demo intro did not start")
	}
	ticks := 1
	for f.sys.IntroActive() && ticks < 1000 {
		f.state.BeginFrame()
		f.sys.TickIntro()
		if f.state.TickFrame {
			ticks++
		}
	}
	if f.sys.IntroActive() {
		t.Fatal("demo intro never finished")
	}
	if f.ferrari.InGameInits() != 1 {
		t.Errorf("InitInGame called %d times, want 1", f.ferrari.InGameInits())
	}
}
