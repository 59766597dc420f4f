package battleship

import "fmt"

const GridSize = 6

const (
	PositionStateEmpty uint8 = iota
	PositionStateShip
	PositionStateHit
	PositionStateMiss

	// Cells around a sunk ship. They are revealed to both players
	// because no ship can be there.
	PositionStateContour
)

// Coordinates is a 0-indexed cell position. X is the row, Y the column.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) Equals(other Coordinates) bool {
	return c == other
}

func (c Coordinates) IsOutside(size int) bool {
	return c.X < 0 || c.X >= size || c.Y < 0 || c.Y >= size
}

func (c Coordinates) Add(dx, dy int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}

// String prints the coordinates 1-indexed, the way players type them.
func (c Coordinates) String() string {
	return fmt.Sprintf("%d %d", c.X+1, c.Y+1)
}

type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

func (g Grid) At(c Coordinates) uint8 {
	return g[c.X][c.Y]
}

func (g Grid) set(c Coordinates, state uint8) {
	g[c.X][c.Y] = state
}

// Copy returns a deep copy that can be handed to renderers.
func (g Grid) Copy() Grid {
	out := make(Grid, len(g))
	for i := range g {
		out[i] = append([]uint8(nil), g[i]...)
	}
	return out
}

type cellSet map[Coordinates]struct{}

func (s cellSet) has(c Coordinates) bool {
	_, ok := s[c]
	return ok
}

func (s cellSet) add(c Coordinates) {
	s[c] = struct{}{}
}
