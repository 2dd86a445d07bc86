// Package game holds the Power Up domain content: the field layout, the
// concrete agents (robots, humans, seesaws, vaults, the power-up queue) and
// the match driver that composes them. All of it plugs into the core via the
// sim.Agent contract.
package game

import (
	"fmt"

	"powerupsim/internal/sim"
)

// Side distinguishes the two plates of a seesaw and the two halves of the
// field along its long axis.
type Side int

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	if s == Front {
		return "FRONT"
	}
	return "BACK"
}

// Location is a named field zone. Travel between zones takes the time given
// by the layout's travel table; pairs absent from the table are not adjacent.
type Location string

const (
	RedWall  Location = "RED_WALL"
	BlueWall Location = "BLUE_WALL"

	RedExchangeZone  Location = "RED_EXCHANGE_ZONE"
	BlueExchangeZone Location = "BLUE_EXCHANGE_ZONE"

	RedPowerCubeZone  Location = "RED_POWER_CUBE_ZONE"
	BluePowerCubeZone Location = "BLUE_POWER_CUBE_ZONE"

	RedOuterZone  Location = "RED_OUTER_ZONE"
	BlueOuterZone Location = "BLUE_OUTER_ZONE"

	RedFrontInnerZone  Location = "RED_FRONT_INNER_ZONE"
	RedBackInnerZone   Location = "RED_BACK_INNER_ZONE"
	BlueFrontInnerZone Location = "BLUE_FRONT_INNER_ZONE"
	BlueBackInnerZone  Location = "BLUE_BACK_INNER_ZONE"

	FrontNullTerritory Location = "FRONT_NULL_TERRITORY"
	BackNullTerritory  Location = "BACK_NULL_TERRITORY"

	RedPlatformZone  Location = "RED_PLATFORM_ZONE"
	BluePlatformZone Location = "BLUE_PLATFORM_ZONE"

	RedFrontPortal  Location = "RED_FRONT_PORTAL"
	RedBackPortal   Location = "RED_BACK_PORTAL"
	BlueFrontPortal Location = "BLUE_FRONT_PORTAL"
	BlueBackPortal  Location = "BLUE_BACK_PORTAL"
)

func Wall(a sim.Alliance) Location {
	return pickLoc(a, RedWall, BlueWall)
}

func ExchangeZone(a sim.Alliance) Location {
	return pickLoc(a, RedExchangeZone, BlueExchangeZone)
}

func PowerCubeZone(a sim.Alliance) Location {
	return pickLoc(a, RedPowerCubeZone, BluePowerCubeZone)
}

func OuterZone(a sim.Alliance) Location {
	return pickLoc(a, RedOuterZone, BlueOuterZone)
}

func InnerZone(a sim.Alliance, side Side) Location {
	if side == Front {
		return pickLoc(a, RedFrontInnerZone, BlueFrontInnerZone)
	}
	return pickLoc(a, RedBackInnerZone, BlueBackInnerZone)
}

func NullTerritory(side Side) Location {
	if side == Front {
		return FrontNullTerritory
	}
	return BackNullTerritory
}

func PlatformZone(a sim.Alliance) Location {
	return pickLoc(a, RedPlatformZone, BluePlatformZone)
}

func Portal(a sim.Alliance, side Side) Location {
	if side == Front {
		return pickLoc(a, RedFrontPortal, BlueFrontPortal)
	}
	return pickLoc(a, RedBackPortal, BlueBackPortal)
}

func pickLoc(a sim.Alliance, red, blue Location) Location {
	switch a {
	case sim.Red:
		return red
	case sim.Blue:
		return blue
	}
	panic(fmt.Sprintf("game: no location for alliance %q", a))
}

// IsInnerZone reports whether the location is one of the four inner zones
// beside the switches.
func (l Location) IsInnerZone() bool {
	switch l {
	case RedFrontInnerZone, RedBackInnerZone, BlueFrontInnerZone, BlueBackInnerZone:
		return true
	}
	return false
}

// CrossesAutoLine reports whether a robot standing here has crossed its
// alliance's auto line. The wall, exchange and power cube zones are behind
// the line.
func (l Location) CrossesAutoLine() bool {
	switch l {
	case RedWall, BlueWall, RedExchangeZone, BlueExchangeZone,
		RedPowerCubeZone, BluePowerCubeZone,
		RedFrontPortal, RedBackPortal, BlueFrontPortal, BlueBackPortal:
		return false
	}
	return true
}

type travelKey struct {
	from, to Location
}

// FieldLayout is the static travel-time table. It is immutable configuration
// built at match setup; agents only read it.
type FieldLayout struct {
	travel map[travelKey]int
}

// TravelTime returns the seconds needed to drive between two adjacent zones.
// Asking for a pair the field does not connect is a decider bug and panics.
func (f *FieldLayout) TravelTime(from, to Location) int {
	if from == to {
		return 0
	}
	secs, ok := f.travel[travelKey{from, to}]
	if !ok {
		panic(fmt.Sprintf("game: no route %s -> %s", from, to))
	}
	return secs
}

// Connected reports whether the layout has a direct route between two zones.
func (f *FieldLayout) Connected(from, to Location) bool {
	if from == to {
		return true
	}
	_, ok := f.travel[travelKey{from, to}]
	return ok
}

func (f *FieldLayout) set(a, b Location, secs int) {
	f.travel[travelKey{a, b}] = secs
	f.travel[travelKey{b, a}] = secs
}

// DefaultLayout builds the standard field travel table. Routes are symmetric
// and stay on one alliance's half except through the null territories and
// portals.
func DefaultLayout() *FieldLayout {
	f := &FieldLayout{travel: map[travelKey]int{}}
	for _, a := range []sim.Alliance{sim.Red, sim.Blue} {
		wall := Wall(a)
		exchange := ExchangeZone(a)
		cubes := PowerCubeZone(a)
		outer := OuterZone(a)
		platform := PlatformZone(a)
		frontInner := InnerZone(a, Front)
		backInner := InnerZone(a, Back)

		f.set(wall, exchange, 2)
		f.set(wall, outer, 4)
		f.set(exchange, outer, 3)
		f.set(exchange, cubes, 3)
		f.set(cubes, outer, 2)
		f.set(outer, frontInner, 3)
		f.set(outer, backInner, 3)
		f.set(outer, platform, 2)
		f.set(platform, frontInner, 2)
		f.set(platform, backInner, 2)
		f.set(frontInner, FrontNullTerritory, 4)
		f.set(backInner, BackNullTerritory, 4)
		f.set(outer, Portal(a, Front), 5)
		f.set(outer, Portal(a, Back), 5)
	}
	return f
}

// ApplyTravelOverride replaces one symmetric route time. Used when the match
// configuration tunes the table.
func (f *FieldLayout) ApplyTravelOverride(from, to Location, secs int) {
	if secs <= 0 {
		panic(fmt.Sprintf("game: travel override %s -> %s must be positive", from, to))
	}
	f.set(from, to, secs)
}
