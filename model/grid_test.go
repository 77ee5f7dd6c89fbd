package model

import (
	"errors"
	"testing"
)

func TestNewGridInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if _, err := NewRandomGrid(dims[0], dims[1], NewRNG(1)); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewRandomGrid(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestIndexPositionBijection(t *testing.T) {
	g, err := NewGrid(7, 4)
	if err != nil {
		t.Fatal(err)
	}

	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			idx := g.IndexOf(x, y)
			if idx != x+y*7 {
				t.Fatalf("IndexOf(%d,%d) = %d", x, y, idx)
			}
			if pos := g.PositionOf(idx); pos != (Position{X: x, Y: y}) {
				t.Fatalf("PositionOf(IndexOf(%d,%d)) = %v", x, y, pos)
			}
		}
	}
	for i := range g.Len() {
		pos := g.PositionOf(i)
		if g.IndexOf(pos.X, pos.Y) != i {
			t.Fatalf("IndexOf(PositionOf(%d)) = %d", i, g.IndexOf(pos.X, pos.Y))
		}
	}
}

func TestCellsRowMajor(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	cells := g.Cells()
	if len(cells) != len(want) {
		t.Fatalf("%d cells, want %d", len(cells), len(want))
	}
	for i, c := range cells {
		if c.Position != want[i] {
			t.Errorf("cell %d at %v, want %v", i, c.Position, want[i])
		}
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, idx := range []int{-1, 12, 100} {
		if _, err := g.Get(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d) err = %v, want ErrOutOfRange", idx, err)
		}
		if err := g.Set(idx, Alive); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d) err = %v, want ErrOutOfRange", idx, err)
		}
	}
	if g.CountLivingCells() != 0 {
		t.Fatal("out of range Set changed the grid")
	}

	if err := g.Set(11, Alive); err != nil {
		t.Fatal(err)
	}
	state, err := g.Get(11)
	if err != nil || state != Alive {
		t.Fatalf("Get(11) = %v, %v", state, err)
	}
	if pos := g.Cells()[11].Position; pos != (Position{X: 3, Y: 2}) {
		t.Fatalf("Set moved the cell to %v", pos)
	}
}

func TestNewRandomGridReproducible(t *testing.T) {
	a, err := NewRandomGrid(50, 40, NewRNG(1234))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRandomGrid(50, 40, NewRNG(1234))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatal("same seed produced different grids")
	}

	c, err := NewRandomGrid(50, 40, NewRNG(4321))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Fatal("different seeds produced identical grids")
	}

	// Roughly half alive
	if n := a.CountLivingCells(); n < 800 || n > 1200 {
		t.Fatalf("%d of 2000 cells alive", n)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := ParseGrid("#.", ".#")
	if err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	if err := c.Set(1, Alive); err != nil {
		t.Fatal(err)
	}
	if g.CountLivingCells() != 2 || c.CountLivingCells() != 3 {
		t.Fatalf("clone shares state with original")
	}
	if g.Equal(c) {
		t.Fatal("Equal ignored a state difference")
	}
}

func TestHashDistinguishesShape(t *testing.T) {
	a, _ := ParseGrid("##..")
	b, _ := ParseGrid("##", "..")
	if a.Hash() == b.Hash() {
		t.Fatal("grids of different shape share a hash")
	}
	if a.Equal(b) {
		t.Fatal("grids of different shape are equal")
	}
}

func TestParseGridString(t *testing.T) {
	rows := []string{".#.", "..#", "###"}
	g, err := ParseGrid(rows...)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.String(), ".#.\n..#\n###\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	if _, err := ParseGrid("##", "#"); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("ragged rows err = %v", err)
	}
	if _, err := ParseGrid(); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("empty err = %v", err)
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Stamp(1, 1, Glider)
	want, _ := ParseGrid(
		"...",
		"..#",
		"...",
	)
	if !g.Equal(want) {
		t.Fatalf("got\n%s\nwant\n%s", g, want)
	}

	g.Stamp(-1, -1, Block)
	if !g.IsAlive(0, 0) || g.IsAlive(-1, -1) {
		t.Fatal("Stamp did not clip the block")
	}
}

func TestGridPoolReset(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(4, 4)
	g.Stamp(0, 0, Block)
	GridToPool(g, pool)
	GridToPool(g, nil)

	h := pool.Get(5, 2)
	if h.GetWidth() != 5 || h.GetHeight() != 2 || h.Len() != 10 {
		t.Fatalf("pooled grid is %dx%d with %d cells", h.GetWidth(), h.GetHeight(), h.Len())
	}
	if h.CountLivingCells() != 0 {
		t.Fatal("pooled grid not cleared")
	}
	for i, c := range h.Cells() {
		if c.Position != h.PositionOf(i) {
			t.Fatalf("cell %d at %v", i, c.Position)
		}
	}
}
