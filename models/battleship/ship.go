package battleship

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// Fleet is the set of ship lengths every board carries.
var Fleet = []int{3, 2, 2, 1, 1, 1, 1}

func FleetCells(fleet []int) int {
	total := 0
	for _, l := range fleet {
		total += l
	}
	return total
}

type Ship struct {
	origin      Coordinates
	length      int
	orientation Orientation
	health      int
}

func NewShip(origin Coordinates, length int, orientation Orientation) *Ship {
	return &Ship{
		origin:      origin,
		length:      length,
		orientation: orientation,
		health:      length,
	}
}

func (sh *Ship) Origin() Coordinates {
	return sh.origin
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Health() int {
	return sh.health
}

// OccupiedCells walks from the origin, down the rows for a vertical
// ship and along the columns otherwise.
func (sh *Ship) OccupiedCells() []Coordinates {
	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationVertical {
			cells = append(cells, sh.origin.Add(i, 0))
		} else {
			cells = append(cells, sh.origin.Add(0, i))
		}
	}
	return cells
}

func (sh *Ship) Covers(c Coordinates) bool {
	for _, cell := range sh.OccupiedCells() {
		if cell.Equals(c) {
			return true
		}
	}
	return false
}

func (sh *Ship) GotHit() {
	if sh.health > 0 {
		sh.health--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}
