package game

import (
	"fmt"
	"strconv"

	"powerupsim/internal/sim"
)

// HumanStation places a human player behind the exchange or at one of the
// two portals.
type HumanStation string

const (
	Station     HumanStation = "STATION"
	FrontPortal HumanStation = "FRONT_PORTAL"
	BackPortal  HumanStation = "BACK_PORTAL"
)

// Human is one alliance human player. The station human moves cubes from the
// exchange into vault columns; portal humans feed their portal's cube
// reserve onto the field.
type Human struct {
	sim.Actor
	match   *Match
	station HumanStation

	cubes int

	FetchTime int
	PutTime   int
	PushTime  int
}

func NewHuman(m *Match, a sim.Alliance, station HumanStation) *Human {
	return &Human{
		Actor:     sim.NewActor(fmt.Sprintf("%s %s Human", a, station), a),
		match:     m,
		station:   station,
		FetchTime: 2,
		PutTime:   2,
		PushTime:  2,
	}
}

func (h *Human) Station() HumanStation { return h.station }
func (h *Human) Cubes() int            { return h.cubes }

// FetchFromExchange schedules taking a cube out of the exchange. Only the
// station human is next to the exchange; an empty exchange, holding a cube
// already, or the wrong station, are benign no-ops.
func (h *Human) FetchFromExchange() {
	h.ScheduleAction(h.FetchTime, func() {
		if h.station == Station && h.cubes == 0 && h.match.takeFromExchange(h.Alliance()) {
			h.cubes = 1
		}
	}, "fetch a Cube from the Exchange")
}

// PutInVault schedules banking the held cube in the named vault column. A
// full or played column leaves the cube in hand (benign no-op).
func (h *Human) PutInVault(kind PowerUp) {
	h.ScheduleAction(h.PutTime, func() {
		if h.cubes == 0 {
			return
		}
		col := h.match.Vaults[h.Alliance()].Column(kind)
		if col.Full() || col.Played() {
			return
		}
		h.match.Vaults[h.Alliance()].AddCube(kind)
		h.cubes = 0
	}, fmt.Sprintf("bank a Cube in the %s column", kind))
}

// PlayPowerUp schedules pressing the named column's play button.
func (h *Human) PlayPowerUp(kind PowerUp) {
	h.ScheduleAction(1, func() {
		h.match.Vaults[h.Alliance()].Play(kind)
	}, fmt.Sprintf("play %s", kind))
}

// PushThroughPortal schedules feeding one cube from the portal reserve onto
// the field beside the portal. Station humans and drained reserves are
// benign no-ops.
func (h *Human) PushThroughPortal() {
	h.ScheduleAction(h.PushTime, func() {
		side := Front
		if h.station == BackPortal {
			side = Back
		}
		if h.station == Station {
			return
		}
		loc := Portal(h.Alliance(), side)
		if h.match.takePortalReserve(loc) {
			h.match.ReturnCube(loc)
		}
	}, "push a Cube through the Portal")
}

// WaitForTeleop schedules an idle wait until the teleop phase begins.
func (h *Human) WaitForTeleop() {
	delay := h.Sim().AutonomousSeconds() + 1 - h.Time()
	h.ScheduleAction(delay, func() {}, "wait for Teleop")
}

func (h *Human) Cells() []sim.Cell {
	return []sim.Cell{
		{Label: "action", Value: h.ActionLabel()},
		{Label: "cubes", Value: strconv.Itoa(h.cubes)},
	}
}
