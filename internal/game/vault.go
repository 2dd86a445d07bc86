package game

import (
	"fmt"
	"strconv"

	"powerupsim/internal/sim"
)

// PowerUp identifies one vault column and the effect it plays.
type PowerUp string

const (
	Force    PowerUp = "FORCE"
	Levitate PowerUp = "LEVITATE"
	Boost    PowerUp = "BOOST"
)

var powerUps = [...]PowerUp{Force, Levitate, Boost}

// VaultColumn is a bounded counter of banked cubes for one power-up. Once
// played it is terminal: no more cubes go in and it cannot play again.
type VaultColumn struct {
	kind   PowerUp
	cubes  int
	played bool
}

const vaultColumnCap = 3

// AddCube banks a cube. Overfilling the column or banking into a played
// column is a hard capacity violation, so it panics; callers guard with Full
// and Played to get the benign no-op behavior instead.
func (c *VaultColumn) AddCube() {
	if c.played {
		panic(fmt.Sprintf("game: cube into played %s column", c.kind))
	}
	if c.cubes >= vaultColumnCap {
		panic(fmt.Sprintf("game: %s column over capacity", c.kind))
	}
	c.cubes++
}

func (c *VaultColumn) Cubes() int   { return c.cubes }
func (c *VaultColumn) Full() bool   { return c.cubes >= vaultColumnCap }
func (c *VaultColumn) Played() bool { return c.played }

// Vault is one alliance's three power-up columns. Banked cubes score once;
// playing a column hands the power-up to the match queue rather than taking
// effect immediately.
type Vault struct {
	sim.Actor
	match   *Match
	columns map[PowerUp]*VaultColumn
}

func NewVault(m *Match, a sim.Alliance) *Vault {
	v := &Vault{
		Actor:   sim.NewActor(fmt.Sprintf("%s Vault", a), a),
		match:   m,
		columns: map[PowerUp]*VaultColumn{},
	}
	for _, k := range powerUps {
		v.columns[k] = &VaultColumn{kind: k}
	}
	return v
}

func (v *Vault) Column(kind PowerUp) *VaultColumn {
	c, ok := v.columns[kind]
	if !ok {
		panic(fmt.Sprintf("game: unknown power-up %q", kind))
	}
	return c
}

// AddCube banks a cube in the named column and scores it.
func (v *Vault) AddCube(kind PowerUp) {
	v.Column(kind).AddCube()
	v.AddPoints(sim.Pick(v.Alliance(), v.match.rules.VaultCube))
}

// Play activates a column. An empty or already-played column is a benign
// no-op. The power-up level equals the banked cube count.
func (v *Vault) Play(kind PowerUp) {
	c := v.Column(kind)
	if c.played || c.cubes == 0 {
		return
	}
	c.played = true
	v.match.Queue.Enqueue(PowerUpRequest{
		Alliance: v.Alliance(),
		Kind:     kind,
		Level:    c.cubes,
	})
}

func (v *Vault) Cells() []sim.Cell {
	cells := make([]sim.Cell, 0, len(powerUps))
	for _, k := range powerUps {
		c := v.columns[k]
		val := strconv.Itoa(c.cubes)
		if c.played {
			val += " played"
		}
		cells = append(cells, sim.Cell{Label: string(k), Value: val})
	}
	return cells
}
