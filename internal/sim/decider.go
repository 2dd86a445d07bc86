package sim

// Decider chooses an agent's next behavior. The owning actor calls NextStep
// exactly once each time it goes idle; the step issues its instruction
// (usually by scheduling an action on the actor) and returns a behavior
// label. A decider that has finished its strategy keeps returning the same
// no-op label; it is never restarted.
type Decider interface {
	NextStep() string
}

// DeciderFunc adapts a function to the Decider interface. Strategies with
// loops are written as explicit state machines closed over their own state.
type DeciderFunc func() string

func (f DeciderFunc) NextStep() string { return f() }

// DoneLabel is the conventional label of a finished strategy's steady state.
const DoneLabel = "done"

// Step is one step of a linear script: issue an instruction, return its
// label.
type Step func() string

// Steps is a linear script with an explicit cursor. Each resumption runs the
// next step; past the end it stays in the terminal "done" state forever.
type Steps struct {
	steps []Step
	pos   int
}

func NewSteps(steps ...Step) *Steps {
	return &Steps{steps: steps}
}

func (s *Steps) NextStep() string {
	if s.pos >= len(s.steps) {
		return DoneLabel
	}
	step := s.steps[s.pos]
	s.pos++
	return step()
}

// Done reports whether the script has reached its terminal state.
func (s *Steps) Done() bool { return s.pos >= len(s.steps) }
