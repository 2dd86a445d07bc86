package game

import (
	"fmt"
	"strings"

	"powerupsim/internal/sim"
)

// PowerUpRequest is one played power-up waiting for its turn.
type PowerUpRequest struct {
	Alliance sim.Alliance
	Kind     PowerUp
	Level    int // banked cubes, 1..3
}

func (r PowerUpRequest) String() string {
	return fmt.Sprintf("%s %s level %d", r.Alliance, strings.ToLower(string(r.Kind)), r.Level)
}

// PowerUpQueue serializes power-up activation: at most one force or boost is
// live at a time, match-wide; later plays queue behind it and start when it
// expires. Levitate resolves instantly and never occupies the queue. The
// expiry is an ordinary scheduled action on this agent.
type PowerUpQueue struct {
	sim.Actor
	match   *Match
	active  *PowerUpRequest
	pending []PowerUpRequest
}

func NewPowerUpQueue(m *Match) *PowerUpQueue {
	return &PowerUpQueue{
		Actor: sim.NewActor("Power-Up Queue", sim.None),
		match: m,
	}
}

// Enqueue accepts a played power-up. Power-ups are a teleop action; a play
// reaching the queue during autonomous is a decider bug and panics.
func (q *PowerUpQueue) Enqueue(req PowerUpRequest) {
	if q.Autonomous() {
		panic(fmt.Sprintf("game: %s played during autonomous", req))
	}
	if req.Kind == Levitate {
		q.match.levitate(req.Alliance)
		return
	}
	if q.active != nil {
		q.pending = append(q.pending, req)
		return
	}
	q.activate(req)
}

func (q *PowerUpQueue) activate(req PowerUpRequest) {
	q.active = &req

	secs := q.match.rules.ForceSeconds
	if req.Kind == Boost {
		secs = q.match.rules.BoostSeconds
	}
	for _, s := range q.targets(req) {
		switch req.Kind {
		case Force:
			s.Force(req.Alliance)
		case Boost:
			s.Boost(req.Alliance)
		}
	}
	q.ScheduleAction(secs, q.expire, req.String())
}

// targets maps the power-up level to the seesaws it affects: one cube for
// the alliance's switch, two for the scale, three for both.
func (q *PowerUpQueue) targets(req PowerUpRequest) []*Seesaw {
	switch req.Level {
	case 1:
		return []*Seesaw{q.match.Switches[req.Alliance]}
	case 2:
		return []*Seesaw{q.match.Scale}
	default:
		return []*Seesaw{q.match.Switches[req.Alliance], q.match.Scale}
	}
}

func (q *PowerUpQueue) expire() {
	q.active = nil
	if len(q.pending) > 0 {
		next := q.pending[0]
		q.pending = q.pending[1:]
		q.activate(next)
	}
}

func (q *PowerUpQueue) Active() *PowerUpRequest { return q.active }
func (q *PowerUpQueue) QueueLen() int           { return len(q.pending) }

func (q *PowerUpQueue) Cells() []sim.Cell {
	active := ""
	if q.active != nil {
		active = q.active.String()
	}
	return []sim.Cell{
		{Label: "active", Value: active},
		{Label: "queued", Value: fmt.Sprintf("%d", len(q.pending))},
	}
}
