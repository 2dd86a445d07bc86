// Package sim is the discrete-event core of the match simulator: an integer
// one-second clock, an ordered registry of agents, and the scheduled-action
// protocol every agent builds on. The simulation is single-threaded and
// step-synchronous; "suspension" is an agent's decider yielding control, not
// a goroutine blocking.
package sim

import (
	"errors"
	"fmt"
)

// ErrMatchOver is returned by Tick when advancing time would exceed the match
// duration. It signals the natural end of the simulation, not a failure;
// callers must stop ticking when they see it.
var ErrMatchOver = errors.New("match over")

type Config struct {
	MatchSeconds      int
	AutonomousSeconds int
}

func (c *Config) applyDefaults() {
	if c.MatchSeconds <= 0 {
		c.MatchSeconds = 150
	}
	if c.AutonomousSeconds <= 0 {
		c.AutonomousSeconds = 15
	}
}

// Simulation owns the clock and the registered agent set. Registration order
// is the update order and the score-aggregation order; both passes walk the
// same slice.
type Simulation struct {
	cfg    Config
	time   int
	agents []Agent
	byName map[string]Agent
}

func New(cfg Config) *Simulation {
	cfg.applyDefaults()
	return &Simulation{
		cfg:    cfg,
		byName: map[string]Agent{},
	}
}

func (s *Simulation) Time() int { return s.time }

// Autonomous reports whether the match is still in the autonomous phase.
// Derived from the clock on every call; agents query it each tick.
func (s *Simulation) Autonomous() bool { return s.time <= s.cfg.AutonomousSeconds }

func (s *Simulation) MatchSeconds() int      { return s.cfg.MatchSeconds }
func (s *Simulation) AutonomousSeconds() int { return s.cfg.AutonomousSeconds }

// Add registers an agent. Agents belong to exactly one simulation for their
// lifetime and names must be unique; violating either is a setup bug and
// panics.
func (s *Simulation) Add(a Agent) {
	name := a.Name()
	if _, ok := s.byName[name]; ok {
		panic(fmt.Sprintf("sim: duplicate agent %q", name))
	}
	a.bind(s)
	s.byName[name] = a
	s.agents = append(s.agents, a)
}

// Agents returns the registered agents in registration order. Callers must
// not mutate the returned slice.
func (s *Simulation) Agents() []Agent { return s.agents }

func (s *Simulation) Agent(name string) Agent { return s.byName[name] }

// Tick advances time by exactly one second and updates every agent in
// registration order. Returns ErrMatchOver once advancing would pass the
// match duration.
func (s *Simulation) Tick() error {
	next := s.time + 1
	if next > s.cfg.MatchSeconds {
		return ErrMatchOver
	}
	s.time = next
	for _, a := range s.agents {
		a.Update(next)
	}
	return nil
}
