package sim

// Alliance identifies a side of the match. None is the neutral value used
// for unowned structures.
type Alliance string

const (
	Red  Alliance = "RED"
	Blue Alliance = "BLUE"
	None Alliance = ""
)

func Opposite(a Alliance) Alliance {
	switch a {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return None
}

// Score is an immutable pair of alliance point totals. The zero value is the
// additive identity.
type Score struct {
	Red  int
	Blue int
}

func (s Score) Add(o Score) Score {
	return Score{Red: s.Red + o.Red, Blue: s.Blue + o.Blue}
}

// Pick awards n points to the given alliance; None earns nobody anything.
func Pick(a Alliance, n int) Score {
	switch a {
	case Red:
		return Score{Red: n}
	case Blue:
		return Score{Blue: n}
	}
	return Score{}
}

// WinLossTie maps a final score to win/loss/tie ranking points: 2 to the
// winner, 0 to the loser, 1 each on a tie.
func (s Score) WinLossTie() Score {
	switch {
	case s.Red > s.Blue:
		return Score{Red: 2}
	case s.Blue > s.Red:
		return Score{Blue: 2}
	}
	return Score{Red: 1, Blue: 1}
}
