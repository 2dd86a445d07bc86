package game

import (
	"fmt"
	"strconv"

	"powerupsim/internal/sim"
)

// Plate is one side of a seesaw, holding a nonnegative cube count.
type Plate struct {
	cubes int
}

func (p *Plate) AddCube() { p.cubes++ }

// RemoveCube takes a cube back off the plate. Removing from an empty plate
// is a benign no-op.
func (p *Plate) RemoveCube() {
	if p.cubes > 0 {
		p.cubes--
	}
}

func (p *Plate) Cubes() int { return p.cubes }

// OwnershipPolicy restricts who may own a seesaw. The switch at an alliance
// end can only be owned by that alliance or nobody; the scale is
// unrestricted.
type OwnershipPolicy func(owner sim.Alliance) sim.Alliance

func Unrestricted(owner sim.Alliance) sim.Alliance { return owner }

func RestrictTo(end sim.Alliance) OwnershipPolicy {
	return func(owner sim.Alliance) sim.Alliance {
		if owner == end {
			return owner
		}
		return sim.None
	}
}

// Seesaw is a two-plate ownership structure: a switch or the scale. The
// owner is derived every tick from the plate tilt, unless a time-boxed force
// overrides it. Boost doubles the owner's per-second value while active;
// force and boost are never active together (the power-up queue serializes
// activations).
type Seesaw struct {
	sim.Actor
	kind       string
	frontColor sim.Alliance
	policy     OwnershipPolicy
	rules      *Rules

	plates [2]*Plate

	forced      sim.Alliance
	forcedUntil int
	boosted     sim.Alliance
	boostUntil  int

	prevOwner sim.Alliance
}

// NewSwitch builds the switch at the given alliance end. frontColor is the
// plate color assignment announced at match start.
func NewSwitch(end, frontColor sim.Alliance, rules *Rules) *Seesaw {
	return &Seesaw{
		Actor:      sim.NewActor(fmt.Sprintf("%s Switch", end), end),
		kind:       "Switch",
		frontColor: frontColor,
		policy:     RestrictTo(end),
		rules:      rules,
		plates:     [2]*Plate{{}, {}},
	}
}

func NewScale(frontColor sim.Alliance, rules *Rules) *Seesaw {
	return &Seesaw{
		Actor:      sim.NewActor("Scale", sim.None),
		kind:       "Scale",
		frontColor: frontColor,
		policy:     Unrestricted,
		rules:      rules,
		plates:     [2]*Plate{{}, {}},
	}
}

func (s *Seesaw) Plate(side Side) *Plate { return s.plates[side] }

// PlateFor returns the side whose plate belongs to the given alliance.
func (s *Seesaw) PlateFor(a sim.Alliance) Side {
	if a == s.frontColor {
		return Front
	}
	return Back
}

func (s *Seesaw) AddCube(side Side) { s.plates[side].AddCube() }

// Owner derives the controlling alliance: a live force wins, otherwise the
// tilt of the plate counts decides, filtered through the ownership policy.
func (s *Seesaw) Owner() sim.Alliance {
	if s.forced != sim.None {
		return s.forced
	}
	var owner sim.Alliance
	front, back := s.plates[Front].cubes, s.plates[Back].cubes
	switch {
	case front > back:
		owner = s.frontColor
	case front < back:
		owner = sim.Opposite(s.frontColor)
	default:
		owner = sim.None
	}
	return s.policy(owner)
}

// Force overrides ownership for the rule-book duration. Forcing a seesaw the
// alliance could never own is a benign no-op; forcing while a boost is live
// is a queue bug and panics.
func (s *Seesaw) Force(a sim.Alliance) {
	if s.policy(a) == sim.None {
		return
	}
	if s.boosted != sim.None {
		panic(fmt.Sprintf("game: force on %s while boosted", s.Name()))
	}
	s.forced = a
	s.forcedUntil = s.Time() + s.rules.ForceSeconds
}

// Boost doubles the per-second value for the rule-book duration.
func (s *Seesaw) Boost(a sim.Alliance) {
	if s.forced != sim.None {
		panic(fmt.Sprintf("game: boost on %s while forced", s.Name()))
	}
	s.boosted = a
	s.boostUntil = s.Time() + s.rules.BoostSeconds
}

func (s *Seesaw) Forced() bool  { return s.forced != sim.None }
func (s *Seesaw) Boosted() bool { return s.boosted != sim.None }

func (s *Seesaw) Update(time int) {
	if s.boosted != sim.None && time >= s.boostUntil {
		s.boosted = sim.None
	}
	if s.forced != sim.None && time >= s.forcedUntil {
		s.forced = sim.None
	}
	s.Actor.Update(time)
}

// Score awards the owner its per-second value (doubled in autonomous,
// doubled again under boost) plus the one-time gain bonus when ownership
// changed hands this tick during autonomous.
func (s *Seesaw) Score() sim.Score {
	owner := s.Owner()

	value := s.perSecond()
	if s.Autonomous() {
		value *= 2
	}
	if s.boosted != sim.None {
		value *= 2
	}

	sc := sim.Pick(owner, value)
	if owner != s.prevOwner && owner != sim.None && s.Autonomous() {
		sc = sc.Add(sim.Pick(owner, s.gainBonus()))
	}
	s.prevOwner = owner
	return sc.Add(s.TakeEarned())
}

func (s *Seesaw) perSecond() int {
	if s.kind == "Scale" {
		return s.rules.ScalePerSecond
	}
	return s.rules.SwitchPerSecond
}

func (s *Seesaw) gainBonus() int {
	if s.kind == "Scale" {
		return s.rules.GainScaleAuto
	}
	return s.rules.GainSwitchAuto
}

func (s *Seesaw) Cells() []sim.Cell {
	return []sim.Cell{
		{Label: "owner", Value: string(s.Owner())},
		{Label: "front", Value: strconv.Itoa(s.plates[Front].cubes)},
		{Label: "back", Value: strconv.Itoa(s.plates[Back].cubes)},
		{Label: "forced", Value: strconv.FormatBool(s.forced != sim.None)},
		{Label: "boosted", Value: strconv.FormatBool(s.boosted != sim.None)},
	}
}
