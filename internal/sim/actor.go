package sim

// Agent is anything with time-based behavior in a Simulation. Concrete agents
// embed Actor, which supplies the scheduled-action protocol and the default
// Score/EndgameScore behavior.
type Agent interface {
	Name() string
	Update(time int)

	// Score returns the points earned strictly within the tick just
	// completed. The match driver calls it exactly once per agent per tick,
	// after every agent's Update for that tick has run.
	Score() Score

	// EndgameScore is called exactly once, after the final tick, for
	// state-dependent bonuses not tied to a specific second.
	EndgameScore() Score

	bind(s *Simulation)
}

// Cell is one labeled value an agent contributes to the per-tick report row.
type Cell struct {
	Label string
	Value string
}

// RowReporter is implemented by agents that contribute cells to the per-tick
// report row beyond the default action label.
type RowReporter interface {
	Cells() []Cell
}

type scheduledAction struct {
	eta    int
	effect func()
	label  string
}

// Actor is the embeddable agent base. It holds at most one scheduled action
// at a time: scheduling a new one unconditionally replaces the previous one,
// whose effect then never runs. That is the only cancellation mechanism.
type Actor struct {
	sim      *Simulation
	name     string
	alliance Alliance

	pending *scheduledAction
	decider Decider

	// OnActionDone, if set, runs after a scheduled action's effect fires.
	OnActionDone func()

	earned Score
}

func NewActor(name string, alliance Alliance) Actor {
	return Actor{name: name, alliance: alliance}
}

func (a *Actor) bind(s *Simulation) {
	if a.sim != nil {
		panic("sim: agent " + a.name + " already registered")
	}
	a.sim = s
}

func (a *Actor) Name() string       { return a.name }
func (a *Actor) Alliance() Alliance { return a.alliance }
func (a *Actor) Sim() *Simulation   { return a.sim }
func (a *Actor) Time() int          { return a.sim.Time() }
func (a *Actor) Autonomous() bool   { return a.sim.Autonomous() }

// ScheduleAction stores (eta, effect, label) where eta = now + delay,
// discarding any previously stored action without running it. Delays below
// one second are coerced to one so every action makes forward progress.
func (a *Actor) ScheduleAction(delay int, effect func(), label string) {
	if delay < 1 {
		delay = 1
	}
	a.pending = &scheduledAction{
		eta:    a.sim.Time() + delay,
		effect: effect,
		label:  label,
	}
}

// ActionLabel returns the pending action's label, or "" when idle.
func (a *Actor) ActionLabel() string {
	if a.pending == nil {
		return ""
	}
	return a.pending.label
}

func (a *Actor) Idle() bool { return a.pending == nil }

// SetDecider attaches the decider that chooses this actor's behaviors and
// drives it once so the first action is scheduled immediately rather than on
// the first tick. An actor owns its decider exclusively thereafter.
func (a *Actor) SetDecider(d Decider) {
	a.decider = d
	a.runDecider()
}

// Update resolves the pending action when its time arrives and then, if the
// actor is idle, drives the decider exactly once. The pending fields are
// cleared before the effect runs so the effect (or the decider it triggers)
// may schedule a follow-on action without it being clobbered.
func (a *Actor) Update(time int) {
	if a.pending != nil && time == a.pending.eta {
		effect := a.pending.effect
		a.pending = nil
		effect()
		if a.OnActionDone != nil {
			a.OnActionDone()
		}
	}
	if a.pending == nil {
		a.runDecider()
	}
}

// runDecider asks the decider for the next instruction. A step normally
// schedules an action itself; when it does not (a terminal "done" step, or a
// step that only mutates state), the actor schedules the canonical one-second
// wait under the step's label so it resumes the decider next tick.
func (a *Actor) runDecider() {
	if a.decider == nil {
		return
	}
	label := a.decider.NextStep()
	if a.pending == nil {
		a.ScheduleAction(1, func() {}, label)
	}
}

// AddPoints banks one-time points (bonuses, banked cubes) for this tick's
// score report.
func (a *Actor) AddPoints(sc Score) {
	a.earned = a.earned.Add(sc)
}

// Score reports and resets the banked one-time points. Agents with per-second
// scoring override this and fold TakeEarned into their own value.
func (a *Actor) Score() Score { return a.TakeEarned() }

// TakeEarned drains the banked points. The driver polls each agent exactly
// once per tick, so a drain here attributes every point to exactly one tick.
func (a *Actor) TakeEarned() Score {
	sc := a.earned
	a.earned = Score{}
	return sc
}

func (a *Actor) EndgameScore() Score { return Score{} }

func (a *Actor) Cells() []Cell {
	return []Cell{{Label: "action", Value: a.ActionLabel()}}
}
