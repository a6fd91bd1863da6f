package grid

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	w, err := Parse("@$")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	width, height := w.Size()
	if width != 2 || height != 1 {
		t.Errorf("Size() = (%d, %d), want (2, 1)", width, height)
	}
}

func TestParseStart(t *testing.T) {
	w, err := Parse("####\n#.@#\n####")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if w.Start() != (Position{2, 1}) {
		t.Errorf("Start() = %v, want (2, 1)", w.Start())
	}
	if w.At(w.Start()) != Floor {
		t.Errorf("At(Start()) = %v, want Floor", w.At(w.Start()))
	}
}

func TestParseTerrain(t *testing.T) {
	w, err := Parse("#@.^$ ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []Terrain{Wall, Floor, Floor, Trap, Goal, Wall}
	for x, terrain := range want {
		if got := w.At(Position{x, 0}); got != terrain {
			t.Errorf("At((%d, 0)) = %v, want %v", x, got, terrain)
		}
	}
}

func TestParseSkipsEmptyLines(t *testing.T) {
	w, err := Parse("\n@$\n\n.#\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if w.Height() != 2 {
		t.Errorf("Height() = %d, want 2", w.Height())
	}
}

func TestParseFailures(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmptyWorld},
		{"only newlines", "\n\n", ErrEmptyWorld},
		{"ragged", "@.\n...", ErrRaggedLine},
		{"invalid symbol", "@x", ErrInvalidSymbol},
		{"no start", "#.", ErrNoStart},
		{"two starts", "@@", ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.in); !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.in, err, tc.want)
			}
		})
	}
}

func TestWorldString(t *testing.T) {
	in := "#@.#\n#^$#"
	w, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got, want := w.String(), "#..#\n#^$#"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInBounds(t *testing.T) {
	w, err := Parse("@$\n..")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for _, p := range []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if !w.InBounds(p) {
			t.Errorf("InBounds(%v) = false, want true", p)
		}
	}
	for _, p := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if w.InBounds(p) {
			t.Errorf("InBounds(%v) = true, want false", p)
		}
	}
}
