package game

import (
	"testing"

	"powerupsim/internal/sim"
)

func testMatch(t *testing.T) *Match {
	t.Helper()
	return NewMatch(Setup{})
}

func tickN(t *testing.T, m *Match, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := m.Sim().Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
}

func TestSeesaw_TiltDecidesOwner(t *testing.T) {
	m := testMatch(t)
	sw := m.Switches[sim.Red] // front plate is RED by default setup

	if got := sw.Owner(); got != sim.None {
		t.Fatalf("level switch owner = %q, want none", got)
	}

	sw.AddCube(Front)
	if got := sw.Owner(); got != sim.Red {
		t.Fatalf("front-heavy owner = %q, want RED", got)
	}

	sw.AddCube(Back)
	if got := sw.Owner(); got != sim.None {
		t.Fatalf("balanced owner = %q, want none", got)
	}

	// Back-heavy would tilt BLUE, but the red switch can only be red or
	// neutral.
	sw.AddCube(Back)
	if got := sw.Owner(); got != sim.None {
		t.Fatalf("restricted owner = %q, want none", got)
	}
}

func TestScale_UnrestrictedOwnership(t *testing.T) {
	m := testMatch(t)

	m.Scale.AddCube(Back) // back plate is BLUE's side by default setup
	if got := m.Scale.Owner(); got != sim.Blue {
		t.Fatalf("owner = %q, want BLUE", got)
	}
	m.Scale.AddCube(Front)
	m.Scale.AddCube(Front)
	if got := m.Scale.Owner(); got != sim.Red {
		t.Fatalf("owner = %q, want RED", got)
	}
}

func TestSeesaw_ScoreDoublesInAutonomous(t *testing.T) {
	m := testMatch(t)
	sw := m.Switches[sim.Red]
	sw.AddCube(Front)

	tickN(t, m, 1)
	sc := sw.Score()
	// Per-second value doubled in auto, plus the one-time gain bonus.
	if sc != (sim.Score{Red: 2 + 2}) {
		t.Fatalf("auto score = %+v, want {Red:4}", sc)
	}

	tickN(t, m, 1)
	if sc := sw.Score(); sc != (sim.Score{Red: 2}) {
		t.Fatalf("auto steady score = %+v, want {Red:2}", sc)
	}

	// Advance into teleop.
	tickN(t, m, 14)
	if m.Sim().Autonomous() {
		t.Fatal("still autonomous at t=16")
	}
	if sc := sw.Score(); sc != (sim.Score{Red: 1}) {
		t.Fatalf("teleop score = %+v, want {Red:1}", sc)
	}
}

func TestSeesaw_ForceExpiresAfterDuration(t *testing.T) {
	m := testMatch(t)
	sw := m.Switches[sim.Red]

	tickN(t, m, 20) // teleop
	sw.Force(sim.Red)
	if got := sw.Owner(); got != sim.Red {
		t.Fatalf("owner under force = %q, want RED", got)
	}

	// Forced through t=29; the update at t=30 clears it.
	tickN(t, m, 9)
	if !sw.Forced() {
		t.Fatal("force expired early")
	}
	tickN(t, m, 1)
	if sw.Forced() {
		t.Fatal("force still live at t=30")
	}
	if got := sw.Owner(); got != sim.None {
		t.Fatalf("owner after force = %q, want none", got)
	}
}

func TestSeesaw_ForceByWrongAllianceIsNoOp(t *testing.T) {
	m := testMatch(t)
	sw := m.Switches[sim.Red]

	tickN(t, m, 20)
	sw.Force(sim.Blue)
	if sw.Forced() {
		t.Fatal("blue forced the red switch")
	}
}

func TestSeesaw_BoostDoublesOwnerValue(t *testing.T) {
	m := testMatch(t)
	sw := m.Switches[sim.Red]
	sw.AddCube(Front)

	tickN(t, m, 20)
	_ = sw.Score() // consume the backlog so the next read is one tick's worth
	sw.Boost(sim.Red)
	tickN(t, m, 1)
	if sc := sw.Score(); sc != (sim.Score{Red: 2}) {
		t.Fatalf("boosted score = %+v, want {Red:2}", sc)
	}
}

func TestPlate_RemoveFromEmptyIsNoOp(t *testing.T) {
	p := &Plate{}
	p.RemoveCube()
	if p.Cubes() != 0 {
		t.Fatalf("cubes = %d, want 0", p.Cubes())
	}
	p.AddCube()
	p.RemoveCube()
	if p.Cubes() != 0 {
		t.Fatalf("cubes = %d, want 0", p.Cubes())
	}
}
