package console

import (
	"fmt"
	"strings"

	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
)

const (
	symbolEmpty = "□"
	symbolShip  = "■"
	symbolHit   = "X"
	symbolMiss  = "."
)

func symbol(state uint8, hidden bool) string {
	switch state {
	case mb.PositionStateShip:
		if hidden {
			return symbolEmpty
		}
		return symbolShip
	case mb.PositionStateHit:
		return symbolHit
	case mb.PositionStateMiss, mb.PositionStateContour:
		return symbolMiss
	default:
		return symbolEmpty
	}
}

// RenderBoard draws the grid with 1-indexed row and column labels. Ships of
// a hidden board are drawn as empty water.
func RenderBoard(b *mb.Board) string {
	var sb strings.Builder

	sb.WriteString("   |")
	for col := 1; col <= b.Size(); col++ {
		fmt.Fprintf(&sb, " %d |", col)
	}

	for i, row := range b.Grid() {
		cells := make([]string, len(row))
		for j, state := range row {
			cells[j] = symbol(state, b.IsHidden())
		}
		fmt.Fprintf(&sb, "\n%d  | %s |", i+1, strings.Join(cells, " | "))
	}
	return sb.String()
}
