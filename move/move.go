package move

import (
	"fmt"
)

// A Point is a board coordinate. Columns and rows are 1-indexed from the
// top-left corner, so a1 is (1, 1) and h8 is (8, 8). The zero value is not a
// playable cell; it sits inside the board's sentinel wall.
type Point struct {
	X int
	Y int
}

// Parse parses reversi-style coordinates such as "f5": a lowercase column
// letter a-h followed by a row digit 1-8. Trailing characters are ignored so
// that callers can decode the head of a longer move-sequence string.
func Parse(coords string) (Point, error) {
	if len(coords) < 2 {
		return Point{}, fmt.Errorf("coordinates too short: %q", coords)
	}
	col := coords[0]
	row := coords[1]
	if col < 'a' || col > 'h' || row < '1' || row > '8' {
		return Point{}, fmt.Errorf("not valid reversi coordinates: %q", coords[:2])
	}
	return Point{X: int(col-'a') + 1, Y: int(row-'1') + 1}, nil
}

func (p Point) String() string {
	return string([]byte{byte('a' + p.X - 1), byte('1' + p.Y - 1)})
}
