package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/move"
)

func writeBookFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reversi.book")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmptyHistoryHasNoBookMove(t *testing.T) {
	is := is.New(t)
	bk := New()
	bk.AddLine([]move.Point{parse(t, "f5"), parse(t, "d6")})
	_, ok := bk.Lookup(nil)
	is.True(!ok)
}

func TestLookupFollowsStoredLine(t *testing.T) {
	is := is.New(t)
	bk := New()
	bk.AddLine([]move.Point{parse(t, "f5"), parse(t, "d6"), parse(t, "c3")})

	p, ok := bk.Lookup([]move.Point{parse(t, "f5")})
	is.True(ok)
	is.Equal(p, parse(t, "d6"))

	p, ok = bk.Lookup([]move.Point{parse(t, "f5"), parse(t, "d6")})
	is.True(ok)
	is.Equal(p, parse(t, "c3"))

	// The full line is matched; the leaf has no continuation to offer.
	_, ok = bk.Lookup([]move.Point{parse(t, "f5"), parse(t, "d6"), parse(t, "c3")})
	is.True(!ok)

	// Off-book histories get no suggestion.
	_, ok = bk.Lookup([]move.Point{parse(t, "f5"), parse(t, "f4")})
	is.True(!ok)
}

func TestLookupDenormalizesForSymmetricOpening(t *testing.T) {
	is := is.New(t)
	bk := New()
	bk.AddLine([]move.Point{parse(t, "f5"), parse(t, "d6")})

	// A game opened with d3 lives in the rotate+mirror coordinate system;
	// the canonical continuation d6 maps back to c5 on the real board.
	p, ok := bk.Lookup([]move.Point{parse(t, "d3")})
	is.True(ok)
	is.Equal(p, parse(t, "c5"))
}

func TestRandomChildSelectionIsInjectable(t *testing.T) {
	is := is.New(t)
	bk := New()
	bk.AddLine([]move.Point{parse(t, "f5"), parse(t, "d6")})
	bk.AddLine([]move.Point{parse(t, "f5"), parse(t, "f4")})
	bk.AddLine([]move.Point{parse(t, "f5"), parse(t, "f6")})

	history := []move.Point{parse(t, "f5")}

	bk.SetRandSource(func(n int) int {
		is.Equal(n, 3)
		return 0
	})
	p, ok := bk.Lookup(history)
	is.True(ok)
	is.Equal(p, parse(t, "d6"))

	bk.SetRandSource(func(n int) int { return 2 })
	p, ok = bk.Lookup(history)
	is.True(ok)
	is.Equal(p, parse(t, "f6"))
}

func TestLoadBookFile(t *testing.T) {
	is := is.New(t)
	path := writeBookFile(t, "# a comment line\nf5d6c3\nf5f4e3\n")
	bk, err := Load(path)
	is.NoErr(err)

	bk.SetRandSource(func(n int) int { return 0 })
	p, ok := bk.Lookup([]move.Point{parse(t, "f5"), parse(t, "d6")})
	is.True(ok)
	is.Equal(p, parse(t, "c3"))

	p, ok = bk.Lookup([]move.Point{parse(t, "f5"), parse(t, "f4")})
	is.True(ok)
	is.Equal(p, parse(t, "e3"))
}

func TestMalformedTokenTruncatesLine(t *testing.T) {
	is := is.New(t)
	// "z9" is not a board cell; the line is kept up to that token.
	path := writeBookFile(t, "f5d6z9c3\n")
	bk, err := Load(path)
	is.NoErr(err)

	p, ok := bk.Lookup([]move.Point{parse(t, "f5")})
	is.True(ok)
	is.Equal(p, parse(t, "d6"))

	// Nothing was stored past the malformed token.
	_, ok = bk.Lookup([]move.Point{parse(t, "f5"), parse(t, "d6")})
	is.True(!ok)
}

func TestMissingBookFileYieldsEmptyBook(t *testing.T) {
	is := is.New(t)
	bk, err := Load(filepath.Join(t.TempDir(), "does-not-exist.book"))
	is.NoErr(err)
	_, ok := bk.Lookup([]move.Point{parse(t, "f5")})
	is.True(!ok)
}
