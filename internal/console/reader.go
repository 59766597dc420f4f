package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
)

// Reader prompts for "x y" (row then column, counted from 1) until the
// line holds exactly two numbers. Range checks are left to the board.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ mb.CoordinateSource = (*Reader)(nil)

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

func (r *Reader) ReadCoordinates(ctx context.Context) (mb.Coordinates, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mb.Coordinates{}, err
		}

		fmt.Fprint(r.out, "Your move: ")
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return mb.Coordinates{}, err
			}
			return mb.Coordinates{}, io.EOF
		}

		fields := strings.Fields(r.scanner.Text())
		if len(fields) != 2 {
			fmt.Fprintln(r.out, " Enter 2 coordinates! ")
			continue
		}

		if !isDigits(fields[0]) || !isDigits(fields[1]) {
			fmt.Fprintln(r.out, " Enter numbers! ")
			continue
		}

		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			fmt.Fprintln(r.out, " Enter numbers! ")
			continue
		}
		return mb.NewCoordinates(x-1, y-1), nil
	}
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return s != ""
}
