package players

import (
	"testing"

	"powerupsim/internal/game"
	"powerupsim/internal/sim"
)

func TestAssign_UnknownScenario(t *testing.T) {
	m := game.NewMatch(game.Setup{})
	if err := Assign(m, "no-such-scenario"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestScenario1_FullMatch(t *testing.T) {
	m := game.NewMatch(game.Setup{})
	if err := Assign(m, "scenario1"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	res, err := m.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Score.Red <= res.Score.Blue {
		t.Fatalf("score = %+v, want red ahead", res.Score)
	}
	if res.Score.Blue <= 0 {
		t.Fatalf("score = %+v, want blue on the board", res.Score)
	}

	// Red completes the auto-quest and wins; blue completes the auto-quest.
	if res.RankingPoints != (sim.Score{Red: 3, Blue: 1}) {
		t.Fatalf("ranking points = %+v, want {Red:3 Blue:1}", res.RankingPoints)
	}

	// The red station human fills and plays every column.
	for _, kind := range []game.PowerUp{game.Levitate, game.Boost, game.Force} {
		if !m.Vaults[sim.Red].Column(kind).Played() {
			t.Fatalf("red %s column not played", kind)
		}
	}
	// Blue only ever banks its single exchange cube.
	if m.Vaults[sim.Blue].Column(game.Levitate).Played() {
		t.Fatal("blue levitate played without a full column")
	}

	// Levitate counts as red's one climb.
	climbs := 0
	for _, r := range m.Robots {
		if r.Alliance() == sim.Red && r.Climbed() {
			climbs++
		}
	}
	if climbs != 1 {
		t.Fatalf("red climbs = %d, want 1", climbs)
	}
}

func TestSwitchRunner_OwnsSwitchDuringAuto(t *testing.T) {
	m := game.NewMatch(game.Setup{})
	if err := Assign(m, "scenario1"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// Position 1 robots place their preload by t=9.
	for i := 0; i < 10; i++ {
		if err := m.Sim().Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if got := m.Switches[sim.Red].Owner(); got != sim.Red {
		t.Fatalf("red switch owner = %q, want RED", got)
	}
	if got := m.Switches[sim.Blue].Owner(); got != sim.Blue {
		t.Fatalf("blue switch owner = %q, want BLUE", got)
	}
}

func TestPortalPlayer_DrainsReserve(t *testing.T) {
	m := game.NewMatch(game.Setup{})
	if err := Assign(m, "scenario1"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	if _, err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, a := range []sim.Alliance{sim.Red, sim.Blue} {
		for _, side := range []game.Side{game.Front, game.Back} {
			loc := game.Portal(a, side)
			if m.PortalReserve(loc) != 0 {
				t.Fatalf("%s reserve = %d, want 0", loc, m.PortalReserve(loc))
			}
			if m.CubesAt(loc) != 7 {
				t.Fatalf("cubes at %s = %d, want 7", loc, m.CubesAt(loc))
			}
		}
	}
}
