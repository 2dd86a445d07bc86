package sim

import (
	"errors"
	"testing"
)

type testAgent struct {
	Actor
}

func newTestAgent(name string) *testAgent {
	return &testAgent{Actor: NewActor(name, Red)}
}

func TestTick_MonotonicUntilMatchOver(t *testing.T) {
	s := New(Config{})
	for want := 1; want <= 150; want++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick %d: %v", want, err)
		}
		if s.Time() != want {
			t.Fatalf("time = %d, want %d", s.Time(), want)
		}
	}
	if err := s.Tick(); !errors.Is(err, ErrMatchOver) {
		t.Fatalf("tick past duration: err = %v, want ErrMatchOver", err)
	}
	if s.Time() != 150 {
		t.Fatalf("time advanced past match end: %d", s.Time())
	}
}

func TestAutonomous_PhaseBoundary(t *testing.T) {
	s := New(Config{})
	for s.Time() < 15 {
		if !s.Autonomous() {
			t.Fatalf("autonomous false at t=%d", s.Time())
		}
		if err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if !s.Autonomous() {
		t.Fatal("autonomous false at t=15")
	}
	if err := s.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if s.Autonomous() {
		t.Fatal("autonomous true at t=16")
	}
}

func TestAdd_DuplicateNamePanics(t *testing.T) {
	s := New(Config{})
	s.Add(newTestAgent("A"))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate name")
		}
	}()
	s.Add(newTestAgent("A"))
}

func TestAdd_ReboundAgentPanics(t *testing.T) {
	s1 := New(Config{})
	s2 := New(Config{})
	a := newTestAgent("A")
	s1.Add(a)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second registration")
		}
	}()
	s2.Add(a)
}

func TestScheduleAction_ReplacementDiscardsPrior(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	s.Add(a)

	var first, second int
	a.ScheduleAction(1, func() { first++ }, "first")
	a.ScheduleAction(2, func() { second++ }, "second")
	if got := a.ActionLabel(); got != "second" {
		t.Fatalf("label = %q, want %q", got, "second")
	}

	for i := 0; i < 5; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if first != 0 {
		t.Fatalf("superseded effect ran %d times", first)
	}
	if second != 1 {
		t.Fatalf("replacement effect ran %d times, want 1", second)
	}
}

func TestScheduleAction_MinDelayCoercion(t *testing.T) {
	for _, delay := range []int{0, -3} {
		s := New(Config{})
		a := newTestAgent("A")
		s.Add(a)

		fired := -1
		a.ScheduleAction(delay, func() { fired = a.Time() }, "wait")
		if err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
		if fired != 1 {
			t.Fatalf("delay %d: fired at t=%d, want 1", delay, fired)
		}
	}
}

func TestScheduleAction_FiresExactlyAtETA(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	s.Add(a)

	// Delay spans the autonomous/teleop boundary.
	for s.Time() < 14 {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	fired := -1
	a.ScheduleAction(3, func() { fired = a.Time() }, "cross boundary")
	for s.Time() < 20 {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
		if s.Time() < 17 && fired != -1 {
			t.Fatalf("fired early at t=%d", fired)
		}
	}
	if fired != 17 {
		t.Fatalf("fired at t=%d, want 17", fired)
	}
}

func TestUpdate_ClearThenRunAllowsReentrantScheduling(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	s.Add(a)

	var followOn int
	a.ScheduleAction(1, func() {
		a.ScheduleAction(1, func() { followOn++ }, "follow-on")
	}, "first")

	if err := s.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	// The follow-on scheduled inside the effect must survive the clearing
	// step and still be pending.
	if got := a.ActionLabel(); got != "follow-on" {
		t.Fatalf("label = %q, want %q", got, "follow-on")
	}
	if err := s.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if followOn != 1 {
		t.Fatalf("follow-on ran %d times, want 1", followOn)
	}
}

func TestDecider_ScheduleThenResume(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	s.Add(a)

	counter := 0
	hooks := 0
	a.OnActionDone = func() { hooks++ }
	a.SetDecider(NewSteps(func() string {
		a.ScheduleAction(2, func() { counter++ }, "inc")
		return "inc"
	}))

	// Attachment drives the decider immediately: the first action is
	// scheduled at t=0 with eta 2.
	if got := a.ActionLabel(); got != "inc" {
		t.Fatalf("label after attach = %q, want %q", got, "inc")
	}

	if err := s.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if counter != 0 {
		t.Fatalf("counter = %d after first tick, want 0", counter)
	}

	if err := s.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if counter != 1 {
		t.Fatalf("counter = %d after second tick, want 1", counter)
	}
	if hooks != 1 {
		t.Fatalf("action-done hook fired %d times, want 1", hooks)
	}
	// The script is exhausted, so the terminal step left the canonical wait.
	if got := a.ActionLabel(); got != DoneLabel {
		t.Fatalf("label = %q, want %q", got, DoneLabel)
	}
}

func TestDecider_TerminalStepIsIdempotent(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	s.Add(a)

	resumes := 0
	a.SetDecider(DeciderFunc(func() string {
		resumes++
		return DoneLabel
	}))

	for i := 0; i < 10; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
		if got := a.ActionLabel(); got != DoneLabel {
			t.Fatalf("label = %q, want %q", got, DoneLabel)
		}
	}
	// Driven once at attach, then once per tick as each canonical wait
	// completes.
	if resumes != 11 {
		t.Fatalf("decider resumed %d times, want 11", resumes)
	}
}

func TestAgent_NoDeciderStaysIdleAndScoreless(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	s.Add(a)

	total := Score{}
	for {
		err := s.Tick()
		if errors.Is(err, ErrMatchOver) {
			break
		}
		if err != nil {
			t.Fatalf("tick: %v", err)
		}
		total = total.Add(a.Score())
	}
	total = total.Add(a.EndgameScore())
	if total != (Score{}) {
		t.Fatalf("total = %+v, want zero", total)
	}
	if !a.Idle() {
		t.Fatalf("agent has pending action %q", a.ActionLabel())
	}
}

func TestSharedCounter_SameTickContention(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	b := newTestAgent("B")
	s.Add(a)
	s.Add(b)

	supply := 1
	removed := 0
	take := func() {
		if supply > 0 {
			supply--
			removed++
		}
	}
	a.ScheduleAction(1, take, "take")
	b.ScheduleAction(1, take, "take")

	if err := s.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	// A runs first in registration order and drains the supply; B's effect
	// is a benign no-op.
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if supply != 0 {
		t.Fatalf("supply = %d, want 0", supply)
	}
}

func TestScore_PerTickSumEqualsTotal(t *testing.T) {
	s := New(Config{})
	a := newTestAgent("A")
	s.Add(a)

	// Bank one point per second for five seconds.
	var schedule func()
	schedule = func() {
		a.ScheduleAction(1, func() {
			a.AddPoints(Score{Red: 1})
			if a.Time() < 5 {
				schedule()
			}
		}, "bank")
	}
	schedule()

	total := Score{}
	for i := 0; i < 5; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
		sc := a.Score()
		if sc != (Score{Red: 1}) {
			t.Fatalf("tick %d score = %+v, want {Red:1}", i+1, sc)
		}
		total = total.Add(sc)
	}
	if total != (Score{Red: 5}) {
		t.Fatalf("total = %+v, want {Red:5}", total)
	}
}
