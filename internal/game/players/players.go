// Package players holds the scripted strategies for the match agents. Each
// strategy is a decider: a resumable sequence of steps that issues one
// instruction per resumption. Strategies are assigned per agent identity
// through an explicit map, injected at setup.
package players

import (
	"fmt"

	"powerupsim/internal/game"
	"powerupsim/internal/sim"
)

type robotKey struct {
	Alliance sim.Alliance
	Position int
}

// Assign attaches the named scenario's deciders to every robot and human in
// the match. Attachment drives each decider once, so first actions are
// scheduled before the first tick.
func Assign(m *game.Match, scenario string) error {
	switch scenario {
	case "", "scenario1":
		assignScenario1(m)
		return nil
	default:
		return fmt.Errorf("players: unknown scenario %q", scenario)
	}
}

// assignScenario1 wires the first-cut strategies: position 1 robots run the
// switch, position 2 robots run the scale, red 3 shuttles cubes into the
// exchange, blue 3 is a slower robot that settles for the auto-run. Station
// humans feed the vault; portal humans feed the field.
func assignScenario1(m *game.Match) {
	builders := map[robotKey]func(*game.Robot) sim.Decider{
		{sim.Red, 1}:  func(r *game.Robot) sim.Decider { return switchRunner(m, r) },
		{sim.Blue, 1}: func(r *game.Robot) sim.Decider { return switchRunner(m, r) },
		{sim.Red, 2}:  func(r *game.Robot) sim.Decider { return scaleRunner(m, r) },
		{sim.Blue, 2}: func(r *game.Robot) sim.Decider { return scaleRunner(m, r) },
		{sim.Red, 3}:  func(r *game.Robot) sim.Decider { return exchangeRunner(m, r) },
		{sim.Blue, 3}: func(r *game.Robot) sim.Decider { return slowRunner(m, r) },
	}
	for _, r := range m.Robots {
		build := builders[robotKey{r.Alliance(), r.Position()}]
		r.SetDecider(build(r))
	}
	for _, h := range m.Humans {
		if h.Station() == game.Station {
			h.SetDecider(stationPlayer(m, h))
		} else {
			h.SetDecider(portalPlayer(m, h))
		}
	}
}

// switchRunner preloads a cube, auto-runs to its alliance's switch plate and
// places the cube there.
func switchRunner(m *game.Match, r *game.Robot) sim.Decider {
	a := r.Alliance()
	side := m.Switches[a].PlateFor(a)
	return sim.NewSteps(
		func() string {
			r.Preload()
			r.DriveTo(game.OuterZone(a))
			return "auto-run"
		},
		func() string {
			r.DriveTo(game.InnerZone(a, side))
			return "auto-run to my Switch plate"
		},
		func() string {
			r.Place()
			return "place a Cube on the Switch"
		},
	)
}

// scaleRunner preloads a cube and carries it out to its scale plate in the
// null territory. The blue robot is modeled slightly slower, so with both
// position 2 robots heading for the scale, red owns it for a second before
// blue matches the cube.
func scaleRunner(m *game.Match, r *game.Robot) sim.Decider {
	a := r.Alliance()
	side := m.Scale.PlateFor(a)
	return sim.NewSteps(
		func() string {
			if a == sim.Blue {
				r.PlaceTime++
			}
			r.Preload()
			r.DriveTo(game.OuterZone(a))
			return "auto-run"
		},
		func() string {
			r.DriveTo(game.InnerZone(a, side))
			return "auto-run"
		},
		func() string {
			r.DriveTo(game.NullTerritory(side))
			return "go to my Scale plate"
		},
		func() string {
			r.Place()
			return "place a Cube on the Scale"
		},
	)
}

// exchangeRunner drops its preload in the exchange, auto-runs, then spends
// teleop moving up to eight more cubes from the power cube zone into the
// exchange for the station human.
func exchangeRunner(m *game.Match, r *game.Robot) sim.Decider {
	a := r.Alliance()
	const maxMoves = 8

	const (
		stToExchange = iota
		stPlacePreload
		stAutoRunOuter
		stAutoRunInner
		stWaitTeleop
		stLoopHead
		stToCubes
		stPickup
		stToExchangeLoaded
		stPlaceLoop
		stDone
	)
	state := stToExchange
	moved := 0

	return sim.DeciderFunc(func() string {
		switch state {
		case stToExchange:
			state = stPlacePreload
			r.Preload()
			r.DriveTo(game.ExchangeZone(a))
			return "to Exchange"
		case stPlacePreload:
			state = stAutoRunOuter
			r.Place()
			return "place a Cube in the Exchange"
		case stAutoRunOuter:
			state = stAutoRunInner
			r.DriveTo(game.OuterZone(a))
			return "auto-run"
		case stAutoRunInner:
			state = stWaitTeleop
			r.DriveTo(game.InnerZone(a, game.Front))
			return "auto-run"
		case stWaitTeleop:
			state = stLoopHead
			r.WaitForTeleop()
			return "wait for Teleop"
		case stLoopHead:
			if moved >= maxMoves || m.CubesAt(game.PowerCubeZone(a)) == 0 {
				state = stDone
				return sim.DoneLabel
			}
			state = stToCubes
			r.DriveTo(game.OuterZone(a))
			return "go get a Power Cube"
		case stToCubes:
			state = stPickup
			r.DriveTo(game.PowerCubeZone(a))
			return "go get a Power Cube"
		case stPickup:
			state = stToExchangeLoaded
			r.Pickup()
			return "pickup a Power Cube"
		case stToExchangeLoaded:
			state = stPlaceLoop
			r.DriveTo(game.ExchangeZone(a))
			return "bring it to the Exchange"
		case stPlaceLoop:
			state = stLoopHead
			moved++
			r.Place()
			return "place a Cube in the Exchange"
		}
		return sim.DoneLabel
	})
}

// slowRunner models a slower machine: it handicaps its own timings, drops
// the preload in the exchange and finishes its auto-run in teleop.
func slowRunner(m *game.Match, r *game.Robot) sim.Decider {
	a := r.Alliance()
	return sim.NewSteps(
		func() string {
			r.ExtraDriveTime++
			r.PickupTime += 2
			r.DropTime++
			r.ClimbTime += 2
			r.Preload()
			r.DriveTo(game.ExchangeZone(a))
			return "to Exchange"
		},
		func() string {
			r.Place()
			return "place a Cube in the Exchange"
		},
		func() string {
			r.DriveTo(game.OuterZone(a))
			return "auto-run"
		},
		func() string {
			r.DriveTo(game.InnerZone(a, game.Front))
			return "auto-run"
		},
	)
}

// stationPlayer moves cubes from the exchange into the vault, filling and
// playing one column at a time: levitate first, then boost, then force. An
// empty exchange just means trying again on the next resumption.
func stationPlayer(m *game.Match, h *game.Human) sim.Decider {
	plan := []game.PowerUp{game.Levitate, game.Boost, game.Force}
	idx := 0
	waited := false

	return sim.DeciderFunc(func() string {
		if !waited {
			waited = true
			h.WaitForTeleop()
			return "wait for Teleop"
		}
		if idx >= len(plan) {
			return sim.DoneLabel
		}
		kind := plan[idx]
		col := m.Vaults[h.Alliance()].Column(kind)
		switch {
		case col.Played():
			idx++
			return fmt.Sprintf("%s is away", kind)
		case col.Full():
			h.PlayPowerUp(kind)
			return fmt.Sprintf("play %s", kind)
		case h.Cubes() == 0:
			h.FetchFromExchange()
			return "fetch a Cube from the Exchange"
		default:
			h.PutInVault(kind)
			return fmt.Sprintf("bank a Cube in the %s column", kind)
		}
	})
}

// portalPlayer pushes its portal's reserve onto the field, one cube at a
// time, once teleop starts.
func portalPlayer(m *game.Match, h *game.Human) sim.Decider {
	a := h.Alliance()
	side := game.Front
	if h.Station() == game.BackPortal {
		side = game.Back
	}
	loc := game.Portal(a, side)
	waited := false

	return sim.DeciderFunc(func() string {
		if !waited {
			waited = true
			h.WaitForTeleop()
			return "wait for Teleop"
		}
		if m.PortalReserve(loc) == 0 {
			return sim.DoneLabel
		}
		h.PushThroughPortal()
		return "push a Cube through the Portal"
	})
}
