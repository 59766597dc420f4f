package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
)

var separator = strings.Repeat("-", 20)

// Printer shows the game on a terminal.
type Printer struct {
	out io.Writer
}

var _ mb.Observer = (*Printer)(nil)

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Greet() {
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, "  Welcome to the   ")
	fmt.Fprintln(p.out, "     sea battle    ")
	fmt.Fprintln(p.out, "       game        ")
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, " Input format: x y ")
	fmt.Fprintln(p.out, " x - row number    ")
	fmt.Fprintln(p.out, " y - column number ")
}

func (p *Printer) boards(g *mb.Game) {
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, "User board:")
	fmt.Fprintln(p.out, RenderBoard(g.Human().Board()))
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out, "Computer board:")
	fmt.Fprintln(p.out, RenderBoard(g.Computer().Board()))
	fmt.Fprintln(p.out, separator)
}

func (p *Printer) TurnStarted(g *mb.Game, side mb.Side) {
	p.boards(g)
	if side == mb.SideComputer {
		fmt.Fprintln(p.out, "Computer moves!")
		return
	}
	fmt.Fprintln(p.out, "User moves!")
}

func (p *Printer) TargetChosen(side mb.Side, target mb.Coordinates) {
	if side == mb.SideComputer {
		fmt.Fprintf(p.out, "Computer move: %s\n", target)
	}
}

func (p *Printer) ShotRejected(_ mb.Side, _ mb.Coordinates, err error) {
	var boardErr cerr.BoardErr
	if errors.As(err, &boardErr) {
		fmt.Fprintln(p.out, boardErr.Message())
		return
	}
	fmt.Fprintln(p.out, err)
}

func (p *Printer) ShotResolved(_ mb.Side, _ mb.Coordinates, outcome mb.ShotOutcome) {
	switch outcome {
	case mb.ShotSunk:
		fmt.Fprintln(p.out, "Ship destroyed!")
	case mb.ShotHit:
		fmt.Fprintln(p.out, "Ship damaged!")
	default:
		fmt.Fprintln(p.out, "Missed!")
	}
}

func (p *Printer) GameOver(g *mb.Game) {
	p.boards(g)
	if g.State() == mb.GameStatePlayerWon {
		fmt.Fprintln(p.out, "You won!")
		return
	}
	fmt.Fprintln(p.out, "Computer won!")
}
