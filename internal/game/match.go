package game

import (
	"errors"
	"fmt"

	"powerupsim/internal/sim"
)

// Setup is the immutable match configuration: durations, rules, the travel
// table, the FMS plate color assignment and the starting cube supply.
type Setup struct {
	Sim    sim.Config
	Rules  Rules
	Layout *FieldLayout

	SwitchFrontColor sim.Alliance
	ScaleFrontColor  sim.Alliance

	PowerCubeZoneCubes int
	PortalCubes        int
}

func (s *Setup) applyDefaults() {
	if s.Layout == nil {
		s.Layout = DefaultLayout()
	}
	if s.Rules == (Rules{}) {
		s.Rules = DefaultRules()
	}
	if s.SwitchFrontColor == sim.None {
		s.SwitchFrontColor = sim.Red
	}
	if s.ScaleFrontColor == sim.None {
		s.ScaleFrontColor = sim.Red
	}
	if s.PowerCubeZoneCubes <= 0 {
		s.PowerCubeZoneCubes = 10
	}
	if s.PortalCubes <= 0 {
		s.PortalCubes = 7
	}
}

// Row is one per-tick report record. Sinks receive it after every tick.
type Row struct {
	Tick       int
	Autonomous bool
	Cells      []sim.Cell
	TickScore  sim.Score
	Total      sim.Score
}

// RowSink consumes per-tick report rows. Implementations live outside the
// game package (CSV, tick log, results index).
type RowSink interface {
	WriteRow(Row) error
}

// Result is the end-of-match report.
type Result struct {
	Score         sim.Score
	RankingPoints sim.Score
}

// Match composes the full agent set and drives the tick loop. All agents are
// created and registered at setup and live for the whole match.
type Match struct {
	sim    *sim.Simulation
	rules  Rules
	layout *FieldLayout

	Robots   []*Robot
	Humans   []*Human
	Switches map[sim.Alliance]*Seesaw
	Scale    *Seesaw
	Vaults   map[sim.Alliance]*Vault
	Queue    *PowerUpQueue

	cubes    map[Location]int
	portals  map[Location]int
	exchange map[sim.Alliance]int

	total     sim.Score
	autoQuest map[sim.Alliance]bool
}

func NewMatch(setup Setup) *Match {
	setup.applyDefaults()

	m := &Match{
		sim:       sim.New(setup.Sim),
		rules:     setup.Rules,
		layout:    setup.Layout,
		Switches:  map[sim.Alliance]*Seesaw{},
		Vaults:    map[sim.Alliance]*Vault{},
		cubes:     map[Location]int{},
		portals:   map[Location]int{},
		exchange:  map[sim.Alliance]int{},
		autoQuest: map[sim.Alliance]bool{},
	}

	for _, a := range []sim.Alliance{sim.Red, sim.Blue} {
		m.cubes[PowerCubeZone(a)] = setup.PowerCubeZoneCubes
		m.portals[Portal(a, Front)] = setup.PortalCubes
		m.portals[Portal(a, Back)] = setup.PortalCubes

		for pos := 1; pos <= 3; pos++ {
			m.Robots = append(m.Robots, NewRobot(m, a, pos))
		}
		for _, st := range []HumanStation{Station, FrontPortal, BackPortal} {
			m.Humans = append(m.Humans, NewHuman(m, a, st))
		}
		m.Switches[a] = NewSwitch(a, setup.SwitchFrontColor, &m.rules)
		m.Vaults[a] = NewVault(m, a)
	}
	m.Scale = NewScale(setup.ScaleFrontColor, &m.rules)
	m.Queue = NewPowerUpQueue(m)

	for _, r := range m.Robots {
		m.sim.Add(r)
	}
	for _, h := range m.Humans {
		m.sim.Add(h)
	}
	m.sim.Add(m.Switches[sim.Red])
	m.sim.Add(m.Switches[sim.Blue])
	m.sim.Add(m.Scale)
	m.sim.Add(m.Vaults[sim.Red])
	m.sim.Add(m.Vaults[sim.Blue])
	m.sim.Add(m.Queue)

	return m
}

func (m *Match) Sim() *sim.Simulation { return m.sim }
func (m *Match) Layout() *FieldLayout { return m.layout }
func (m *Match) Rules() Rules         { return m.rules }
func (m *Match) Total() sim.Score     { return m.total }

// Robot returns the robot for an alliance and position 1-3.
func (m *Match) Robot(a sim.Alliance, position int) *Robot {
	for _, r := range m.Robots {
		if r.Alliance() == a && r.Position() == position {
			return r
		}
	}
	panic(fmt.Sprintf("game: no %s robot %d", a, position))
}

// Human returns the human player for an alliance and station.
func (m *Match) Human(a sim.Alliance, station HumanStation) *Human {
	for _, h := range m.Humans {
		if h.Alliance() == a && h.Station() == station {
			return h
		}
	}
	panic(fmt.Sprintf("game: no %s human at %s", a, station))
}

// CubesAt returns the loose cube count at a field location.
func (m *Match) CubesAt(loc Location) int { return m.cubes[loc] }

// TakeCube removes one loose cube from a location. False when none there.
func (m *Match) TakeCube(loc Location) bool {
	if m.cubes[loc] == 0 {
		return false
	}
	m.cubes[loc]--
	return true
}

func (m *Match) ReturnCube(loc Location) { m.cubes[loc]++ }

func (m *Match) addToExchange(a sim.Alliance) { m.exchange[a]++ }

func (m *Match) takeFromExchange(a sim.Alliance) bool {
	if m.exchange[a] == 0 {
		return false
	}
	m.exchange[a]--
	return true
}

// ExchangeCount returns the cubes waiting in an alliance's exchange.
func (m *Match) ExchangeCount(a sim.Alliance) int { return m.exchange[a] }

// PortalReserve returns the cubes still waiting behind a portal.
func (m *Match) PortalReserve(loc Location) int { return m.portals[loc] }

func (m *Match) takePortalReserve(loc Location) bool {
	if m.portals[loc] == 0 {
		return false
	}
	m.portals[loc]--
	return true
}

// levitate grants a free climb to the first robot of the alliance that has
// not climbed. All robots already up is a benign no-op.
func (m *Match) levitate(a sim.Alliance) {
	for _, r := range m.Robots {
		if r.Alliance() == a && !r.Climbed() {
			r.Levitate()
			return
		}
	}
}

// Run drives the tick loop to the end of the match, aggregating per-tick
// scores and emitting one report row per tick to every sink. It returns the
// final score and ranking points.
func (m *Match) Run(sinks ...RowSink) (Result, error) {
	for {
		err := m.sim.Tick()
		if errors.Is(err, sim.ErrMatchOver) {
			break
		}
		if err != nil {
			return Result{}, err
		}

		tickScore := sim.Score{}
		for _, ag := range m.sim.Agents() {
			tickScore = tickScore.Add(ag.Score())
		}
		m.total = m.total.Add(tickScore)

		if m.sim.Time() == m.sim.AutonomousSeconds() {
			m.checkAutoQuest()
		}

		row := m.buildRow(tickScore)
		for _, s := range sinks {
			if err := s.WriteRow(row); err != nil {
				return Result{}, fmt.Errorf("report row: %w", err)
			}
		}
	}

	for _, ag := range m.sim.Agents() {
		m.total = m.total.Add(ag.EndgameScore())
	}

	return Result{Score: m.total, RankingPoints: m.rankingPoints()}, nil
}

// checkAutoQuest snapshots the auto-quest condition at the end of the
// autonomous phase: every robot crossed the line and the alliance owns its
// switch.
func (m *Match) checkAutoQuest() {
	for _, a := range []sim.Alliance{sim.Red, sim.Blue} {
		crossed := true
		for _, r := range m.Robots {
			if r.Alliance() == a && !r.CrossedLine() {
				crossed = false
				break
			}
		}
		m.autoQuest[a] = crossed && m.Switches[a].Owner() == a
	}
}

func (m *Match) rankingPoints() sim.Score {
	rp := m.total.WinLossTie()
	for _, a := range []sim.Alliance{sim.Red, sim.Blue} {
		if m.autoQuest[a] {
			rp = rp.Add(sim.Pick(a, m.rules.AutoQuestRP))
		}
		climbs := 0
		for _, r := range m.Robots {
			if r.Alliance() == a && r.Climbed() {
				climbs++
			}
		}
		if climbs == 3 {
			rp = rp.Add(sim.Pick(a, m.rules.FaceTheBossRP))
		}
	}
	return rp
}

func (m *Match) buildRow(tickScore sim.Score) Row {
	row := Row{
		Tick:       m.sim.Time(),
		Autonomous: m.sim.Autonomous(),
		TickScore:  tickScore,
		Total:      m.total,
	}
	for _, ag := range m.sim.Agents() {
		cells := []sim.Cell{{Label: "action", Value: ""}}
		if rr, ok := ag.(sim.RowReporter); ok {
			cells = rr.Cells()
		}
		for _, c := range cells {
			row.Cells = append(row.Cells, sim.Cell{
				Label: ag.Name() + " " + c.Label,
				Value: c.Value,
			})
		}
	}
	return row
}
