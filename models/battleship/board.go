package battleship

import (
	"sort"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// IsHit is true for both Hit and Sunk. Only a miss passes the turn.
func (o ShotOutcome) IsHit() bool {
	return o != ShotMiss
}

var neighbourhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is one side of the sea. It keeps two sets apart: reserved cells
// (ship cells plus their contour) which reject placements, and targeted
// cells which reject shots. Until ResetShotHistory is called the board is
// still being laid out and reserved cells reject shots as well.
type Board struct {
	size      int
	grid      Grid
	ships     []*Ship
	reserved  cellSet
	targeted  cellSet
	inPlay    bool
	sunkShips int
	hidden    bool
}

func NewBoard(size int) *Board {
	return &Board{
		size:     size,
		grid:     NewGrid(size),
		ships:    make([]*Ship, 0, len(Fleet)),
		reserved: make(cellSet),
		targeted: make(cellSet),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Grid() Grid {
	return b.grid.Copy()
}

// View is the grid as the other side may see it: ship cells of a hidden
// board read as empty.
func (b *Board) View() Grid {
	view := b.grid.Copy()
	if !b.hidden {
		return view
	}
	for i := range view {
		for j := range view[i] {
			if view[i][j] == PositionStateShip {
				view[i][j] = PositionStateEmpty
			}
		}
	}
	return view
}

func (b *Board) CellState(c Coordinates) uint8 {
	return b.grid.At(c)
}

func (b *Board) Ships() []*Ship {
	return append([]*Ship(nil), b.ships...)
}

func (b *Board) SunkShips() int {
	return b.sunkShips
}

// RemainingHealth is the number of ship cells not yet hit.
func (b *Board) RemainingHealth() int {
	total := 0
	for _, sh := range b.ships {
		total += sh.Health()
	}
	return total
}

func (b *Board) IsHidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Board) InPlay() bool {
	return b.inPlay
}

// contour returns the in-bounds cells around the ship, the ship's own
// cells included.
func (b *Board) contour(sh *Ship) []Coordinates {
	seen := make(cellSet)
	cells := make([]Coordinates, 0, (sh.Length()+2)*3)
	for _, c := range sh.OccupiedCells() {
		for _, d := range neighbourhood {
			cur := c.Add(d[0], d[1])
			if cur.IsOutside(b.size) || seen.has(cur) {
				continue
			}
			seen.add(cur)
			cells = append(cells, cur)
		}
	}
	return cells
}

// PlaceShip adds the ship if every one of its cells is on the grid and
// outside the reserved area of the ships already placed. The board is
// left untouched on failure.
func (b *Board) PlaceShip(sh *Ship) error {
	cells := sh.OccupiedCells()
	for _, c := range cells {
		if c.IsOutside(b.size) || b.reserved.has(c) {
			return cerr.ErrShipPlacement(c.X, c.Y)
		}
	}

	for _, c := range cells {
		b.grid.set(c, PositionStateShip)
		b.reserved.add(c)
	}
	b.ships = append(b.ships, sh)

	for _, c := range b.contour(sh) {
		b.reserved.add(c)
	}
	return nil
}

// ResetShotHistory ends the layout phase. The reserved area is rebuilt
// from the placed ships and no cell counts as targeted anymore.
func (b *Board) ResetShotHistory() {
	b.reserved = make(cellSet)
	for _, sh := range b.ships {
		for _, c := range b.contour(sh) {
			b.reserved.add(c)
		}
	}
	b.targeted = make(cellSet)
	b.inPlay = true
}

func (b *Board) isBlocked(c Coordinates) bool {
	if b.targeted.has(c) {
		return true
	}
	return !b.inPlay && b.reserved.has(c)
}

// BlockedCells lists the cells a shot is currently refused on, sorted by
// row then column.
func (b *Board) BlockedCells() []Coordinates {
	cells := make([]Coordinates, 0, len(b.targeted)+len(b.reserved))
	for c := range b.targeted {
		cells = append(cells, c)
	}
	if !b.inPlay {
		for c := range b.reserved {
			if !b.targeted.has(c) {
				cells = append(cells, c)
			}
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
	return cells
}

func (b *Board) Shoot(c Coordinates) (ShotOutcome, error) {
	if c.IsOutside(b.size) {
		return ShotMiss, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if b.isBlocked(c) {
		return ShotMiss, cerr.ErrPositionAlreadyTargeted(c.X, c.Y)
	}
	b.targeted.add(c)

	// Ships never touch, so at most one can cover c.
	for _, sh := range b.ships {
		if !sh.Covers(c) {
			continue
		}

		sh.GotHit()
		b.grid.set(c, PositionStateHit)
		if !sh.IsSunk() {
			return ShotHit, nil
		}

		b.sunkShips++
		b.revealContour(sh)
		return ShotSunk, nil
	}

	b.grid.set(c, PositionStateMiss)
	return ShotMiss, nil
}

func (b *Board) revealContour(sh *Ship) {
	for _, c := range b.contour(sh) {
		if b.grid.At(c) == PositionStateEmpty {
			b.grid.set(c, PositionStateContour)
		}
		b.targeted.add(c)
	}
}
