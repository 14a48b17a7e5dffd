package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(3, 7)
	if !c.Get(3, 7) {
		t.Error("pixel (3,7) should be lit")
	}
	if c.Get(3, 6) {
		t.Error("pixel (3,6) should be dark")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(4, 4)

	// Out-of-range writes must be dropped, not panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(c.PixelWidth(), 0)
	c.Set(0, c.PixelHeight())

	if c.Get(-1, 0) || c.Get(0, c.PixelHeight()) {
		t.Error("out-of-range pixels should read as dark")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(6, 3)
	c.Set(1, 1)
	c.Clear()

	if c.Get(1, 1) {
		t.Error("clear should unset all pixels")
	}
	for _, line := range strings.Split(strings.TrimRight(c.String(), "\n"), "\n") {
		for _, r := range line {
			if r != 0x2800 {
				t.Fatalf("expected empty braille cell, got %U", r)
			}
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Line(0, 0, 15, 9)

	if !c.Get(0, 0) || !c.Get(15, 9) {
		t.Error("line should include both endpoints")
	}
}

func TestLineHorizontal(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Line(2, 5, 10, 5)

	for x := 2; x <= 10; x++ {
		if !c.Get(x, 5) {
			t.Errorf("pixel (%d,5) missing from horizontal line", x)
		}
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(12, 7)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")

	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 12 {
			t.Errorf("line %d has %d cells, expected 12", i, len([]rune(line)))
		}
	}
}
