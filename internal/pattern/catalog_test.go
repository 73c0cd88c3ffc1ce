package pattern

import (
	"testing"

	"github.com/garrettladley/constellation/internal/star"
)

func TestCatalog_Shape(t *testing.T) {
	t.Parallel()

	stars := Catalog()
	if len(stars) != Len() {
		t.Fatalf("len(Catalog()) = %d, want %d", len(stars), Len())
	}
	if Len() != 83 {
		t.Errorf("Len() = %d, want 83", Len())
	}

	if errs := star.ValidateList(stars); errs != nil {
		t.Errorf("catalog has invalid stars: %v", errs)
	}
}

func TestCatalog_OrderedByTwinkleDelay(t *testing.T) {
	t.Parallel()

	// delays were assigned in stroke order, so they must strictly increase
	stars := Catalog()
	for i := 1; i < len(stars); i++ {
		if stars[i].TwinkleDelay <= stars[i-1].TwinkleDelay {
			t.Fatalf("star %d delay %v <= star %d delay %v", i, stars[i].TwinkleDelay, i-1, stars[i-1].TwinkleDelay)
		}
	}
}

func TestCatalog_GlyphsLeftToRight(t *testing.T) {
	t.Parallel()

	stars := Catalog()
	if first, last := stars[0], stars[len(stars)-1]; first.X >= last.X {
		t.Errorf("first star x=%v should be left of last star x=%v", first.X, last.X)
	}
	for i, s := range stars {
		if s.X < 0 || s.X > 500 || s.Y < 0 || s.Y > 300 {
			t.Errorf("star %d (%v,%v) outside the 500x300 surface", i, s.X, s.Y)
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Catalog()
	a[0].X = -1

	if b := Catalog(); b[0].X == -1 {
		t.Error("mutating the returned slice changed the catalog")
	}
}
