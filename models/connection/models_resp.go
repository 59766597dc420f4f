package connection

import (
	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
	GameUuid  string `json:"game_uuid"`
}

// GridInt is a Grid that marshals to nested JSON arrays instead of
// base64 rows.
type GridInt [][]int

func NewGridInt(g mb.Grid) GridInt {
	out := make(GridInt, len(g))
	for i, row := range g {
		out[i] = make([]int, len(row))
		for j, cell := range row {
			out[i][j] = int(cell)
		}
	}
	return out
}

type RespBoards struct {
	UserGrid     GridInt `json:"user_grid"`
	ComputerGrid GridInt `json:"computer_grid"`
	UserSunk     int     `json:"user_sunk"`
	ComputerSunk int     `json:"computer_sunk"`
	IsTurn       bool    `json:"is_turn"`
}

// NewRespBoards shows the computer board through its hidden view.
func NewRespBoards(g *mb.Game, turn mb.Side) RespBoards {
	return RespBoards{
		UserGrid:     NewGridInt(g.Human().Board().View()),
		ComputerGrid: NewGridInt(g.Computer().Board().View()),
		UserSunk:     g.Human().Board().SunkShips(),
		ComputerSunk: g.Computer().Board().SunkShips(),
		IsTurn:       turn == mb.SideHuman,
	}
}

type RespShotResult struct {
	Side    string `json:"side"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Outcome string `json:"outcome"`
}

type RespEndGame struct {
	GameState string     `json:"game_state"`
	Boards    RespBoards `json:"boards"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
