package game

import (
	"fmt"
	"strconv"

	"powerupsim/internal/sim"
)

// Robot is one alliance robot. It holds at most one cube, drives between
// zones on the travel table, and earns the auto-run bonus and endgame
// park/climb points. Deciders tune the timing fields to model faster or
// slower machines.
type Robot struct {
	sim.Actor
	match    *Match
	position int

	location Location
	cubes    int

	// Seconds each behavior takes. Exported so deciders can handicap a
	// robot before its first action.
	ExtraDriveTime int
	PickupTime     int
	DropTime       int
	PlaceTime      int
	ClimbTime      int

	crossedLine bool
	climbed     bool
	levitated   bool
}

func NewRobot(m *Match, a sim.Alliance, position int) *Robot {
	if position < 1 || position > 3 {
		panic(fmt.Sprintf("game: robot position %d out of range", position))
	}
	return &Robot{
		Actor:      sim.NewActor(fmt.Sprintf("%s %d Robot", a, position), a),
		match:      m,
		position:   position,
		location:   Wall(a),
		PickupTime: 2,
		DropTime:   1,
		PlaceTime:  2,
		ClimbTime:  5,
	}
}

func (r *Robot) Position() int      { return r.position }
func (r *Robot) Location() Location { return r.location }
func (r *Robot) Cubes() int         { return r.cubes }
func (r *Robot) CrossedLine() bool  { return r.crossedLine }
func (r *Robot) Climbed() bool      { return r.climbed || r.levitated }

// Preload places the pre-match cube in the robot. Setup only.
func (r *Robot) Preload() { r.cubes = 1 }

// DriveTo schedules a drive to an adjacent zone. Arrival during autonomous
// past the auto line banks the one-time auto-run bonus.
func (r *Robot) DriveTo(dest Location) {
	secs := r.match.layout.TravelTime(r.location, dest) + r.ExtraDriveTime
	r.ScheduleAction(secs, func() { r.arrive(dest) }, fmt.Sprintf("drive to %s", dest))
}

func (r *Robot) arrive(dest Location) {
	r.location = dest
	if r.Autonomous() && !r.crossedLine && dest.CrossesAutoLine() {
		r.crossedLine = true
		r.AddPoints(sim.Pick(r.Alliance(), r.match.rules.CrossLineAuto))
	}
}

// Pickup schedules grabbing a cube from the supply at the robot's location.
// Nothing there, or already holding one, is a benign no-op.
func (r *Robot) Pickup() {
	r.ScheduleAction(r.PickupTime, func() {
		if r.cubes == 0 && r.match.TakeCube(r.location) {
			r.cubes = 1
		}
	}, "pickup a Power Cube")
}

// Drop schedules setting the held cube down at the current location.
func (r *Robot) Drop() {
	r.ScheduleAction(r.DropTime, func() {
		if r.cubes == 1 {
			r.cubes = 0
			r.match.ReturnCube(r.location)
		}
	}, "drop the Cube")
}

// Place schedules depositing the held cube into whatever scoring structure
// the current zone touches: a switch plate from an inner zone, a scale plate
// from a null territory, the exchange from the exchange zone. No cube, or a
// zone with nothing to place into, is a benign no-op.
func (r *Robot) Place() {
	r.ScheduleAction(r.PlaceTime, func() {
		if r.cubes == 0 {
			return
		}
		if r.placeAt(r.location) {
			r.cubes = 0
		}
	}, "place the Cube")
}

func (r *Robot) placeAt(loc Location) bool {
	switch loc {
	case RedFrontInnerZone:
		r.match.Switches[sim.Red].AddCube(Front)
	case RedBackInnerZone:
		r.match.Switches[sim.Red].AddCube(Back)
	case BlueFrontInnerZone:
		r.match.Switches[sim.Blue].AddCube(Front)
	case BlueBackInnerZone:
		r.match.Switches[sim.Blue].AddCube(Back)
	case FrontNullTerritory:
		r.match.Scale.AddCube(Front)
	case BackNullTerritory:
		r.match.Scale.AddCube(Back)
	case ExchangeZone(r.Alliance()):
		r.match.addToExchange(r.Alliance())
	default:
		return false
	}
	return true
}

// Climb schedules climbing the tower. Only works from the platform zone;
// anywhere else the effect is a benign no-op.
func (r *Robot) Climb() {
	r.ScheduleAction(r.ClimbTime, func() {
		if r.location == PlatformZone(r.Alliance()) {
			r.climbed = true
		}
	}, "climb")
}

// WaitForTeleop schedules an idle wait until the teleop phase begins.
func (r *Robot) WaitForTeleop() {
	delay := r.Sim().AutonomousSeconds() + 1 - r.Time()
	r.ScheduleAction(delay, func() {}, "wait for Teleop")
}

// Levitate marks this robot as climbed by the levitate power-up.
func (r *Robot) Levitate() { r.levitated = true }

// EndgameScore awards the climb, or the park consolation for a robot that
// ended on the platform without climbing.
func (r *Robot) EndgameScore() sim.Score {
	switch {
	case r.climbed || r.levitated:
		return sim.Pick(r.Alliance(), r.match.rules.Climb)
	case r.location == PlatformZone(r.Alliance()):
		return sim.Pick(r.Alliance(), r.match.rules.Park)
	}
	return sim.Score{}
}

func (r *Robot) Cells() []sim.Cell {
	return []sim.Cell{
		{Label: "action", Value: r.ActionLabel()},
		{Label: "location", Value: string(r.location)},
		{Label: "cubes", Value: strconv.Itoa(r.cubes)},
	}
}
