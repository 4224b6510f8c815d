package book

import (
	"bufio"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/move"
)

const boardSize = board.BoardSize

// noNode marks an absent child or sibling link.
const noNode = int32(-1)

// A trie node. Children of a node are the continuations one ply deeper,
// reached through firstChild and then chained by nextSibling. Nodes live in
// a flat arena and refer to each other by index, so the trie has no pointer
// cycles to worry about.
type node struct {
	point       move.Point
	firstChild  int32
	nextSibling int32
}

// A Book is the opening database: a trie of known move sequences in the
// canonical f5-anchored coordinate system. It is built once and read-only
// afterwards.
type Book struct {
	nodes []node

	// intn picks the random continuation; injectable so tests can pin the
	// draw.
	intn func(n int) int
}

// New returns an empty book holding only the canonical first move.
func New() *Book {
	bk := &Book{intn: frand.Intn}
	bk.nodes = append(bk.nodes, node{
		point:       move.Point{X: 6, Y: 5}, // f5
		firstChild:  noNode,
		nextSibling: noNode,
	})
	return bk
}

// Load reads a book database file: one move sequence per line as
// consecutive two-character coordinates (e.g. "f5d6c3"), lines starting
// with '#' skipped. A malformed token truncates its line but keeps the
// prefix. A missing file simply yields an empty book.
func Load(path string) (*Book, error) {
	bk := New()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("no book file; using empty book")
			return bk, nil
		}
		return nil, err
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		seq := decodeLine(line)
		if len(seq) > 0 {
			bk.AddLine(seq)
			lines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("lines", lines).Int("nodes", len(bk.nodes)).
		Msg("loaded opening book")
	return bk, nil
}

func decodeLine(line string) []move.Point {
	seq := make([]move.Point, 0, len(line)/2)
	for i := 0; i+2 <= len(line); i += 2 {
		p, err := move.Parse(line[i:])
		if err != nil {
			break
		}
		seq = append(seq, p)
	}
	return seq
}

// SetRandSource replaces the book's random picker. fn receives the number
// of candidate continuations and must return an index in [0, n).
func (bk *Book) SetRandSource(fn func(n int) int) {
	bk.intn = fn
}

func (bk *Book) newNode(p move.Point) int32 {
	bk.nodes = append(bk.nodes, node{point: p, firstChild: noNode, nextSibling: noNode})
	return int32(len(bk.nodes) - 1)
}

// AddLine inserts one canonical move sequence. seq[0] is the first move of
// the game, which the root already represents; insertion starts at its
// children, extending the sibling chain at each depth only when no existing
// sibling matches.
func (bk *Book) AddLine(seq []move.Point) {
	n := int32(0)
	for _, p := range seq[1:] {
		if bk.nodes[n].firstChild == noNode {
			child := bk.newNode(p)
			bk.nodes[n].firstChild = child
			n = child
			continue
		}
		n = bk.nodes[n].firstChild
		for bk.nodes[n].point != p {
			if bk.nodes[n].nextSibling == noNode {
				sibling := bk.newNode(p)
				bk.nodes[n].nextSibling = sibling
				n = sibling
				break
			}
			n = bk.nodes[n].nextSibling
		}
	}
}

// Lookup walks the trie along the game's move history and suggests the next
// book move, denormalized back to real-board coordinates. It returns false
// when the book has no guidance: an empty history, a history that left the
// book, or a fully matched line with no continuations.
func (bk *Book) Lookup(history []move.Point) (move.Point, bool) {
	if len(history) == 0 {
		return move.Point{}, false
	}
	transformer := NewTransformer(history[0])
	if transformer.Normalize(history[0]) != bk.nodes[0].point {
		return move.Point{}, false
	}
	n := int32(0)
	for _, p := range history[1:] {
		q := transformer.Normalize(p)
		n = bk.nodes[n].firstChild
		for n != noNode && bk.nodes[n].point != q {
			n = bk.nodes[n].nextSibling
		}
		if n == noNode {
			return move.Point{}, false
		}
	}
	if bk.nodes[n].firstChild == noNode {
		return move.Point{}, false
	}
	candidates := []move.Point{}
	for c := bk.nodes[n].firstChild; c != noNode; c = bk.nodes[c].nextSibling {
		candidates = append(candidates, bk.nodes[c].point)
	}
	pick := candidates[bk.intn(len(candidates))]
	return transformer.Denormalize(pick), true
}
