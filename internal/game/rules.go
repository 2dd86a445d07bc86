package game

// Rules carries the point values and power-up timings for one match. The
// driver treats it as read-only after setup; competing rule iterations are
// expressed by loading different values, not by branching in the agents.
type Rules struct {
	CrossLineAuto int // auto-run bonus per robot
	GainSwitchAuto int
	GainScaleAuto  int

	SwitchPerSecond int
	ScalePerSecond  int

	VaultCube int

	Park  int
	Climb int

	BoostSeconds int
	ForceSeconds int

	// Bonus ranking points.
	AutoQuestRP    int // all robots cross the line and own the switch in auto
	FaceTheBossRP  int // three climbs
}

func DefaultRules() Rules {
	return Rules{
		CrossLineAuto:   5,
		GainSwitchAuto:  2,
		GainScaleAuto:   2,
		SwitchPerSecond: 1,
		ScalePerSecond:  1,
		VaultCube:       5,
		Park:            5,
		Climb:           30,
		BoostSeconds:    10,
		ForceSeconds:    10,
		AutoQuestRP:     1,
		FaceTheBossRP:   1,
	}
}
