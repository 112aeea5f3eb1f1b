package engine

import (
	"io"
	"os"

	"github.com/lgbarn/chessposition-go/internal/chess"
)

// Render returns a text diagram of the board: eight lines of eight
// characters, rank 8 first. Occupied squares show the piece letter and
// empty squares a space. This is a debug view, not a wire format.
func (p Position) Render() string {
	buf := make([]byte, 0, chess.BoardSize*(chess.BoardSize+1))
	for y := chess.BoardSize - 1; y >= 0; y-- {
		for x := 0; x < chess.BoardSize; x++ {
			buf = append(buf, p.Board[y][x].Letter())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Print writes the rendered diagram to w.
func (p Position) Print(w io.Writer) error {
	_, err := io.WriteString(w, p.Render())
	return err
}

// PrintStdout writes the rendered diagram to standard output.
func (p Position) PrintStdout() error {
	return p.Print(os.Stdout)
}
