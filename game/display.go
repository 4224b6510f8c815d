package game

import (
	"strings"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
)

// ToDisplayText renders the board the way it is shown in the shell: black
// discs as X, white as O, with file letters across the top and rank numbers
// down the side.
func ToDisplayText(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for y := 1; y <= board.BoardSize; y++ {
		sb.WriteByte(byte('0' + y))
		for x := 1; x <= board.BoardSize; x++ {
			sb.WriteByte(' ')
			switch b.ColorAt(move.Point{X: x, Y: y}) {
			case board.Black:
				sb.WriteByte('X')
			case board.White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
