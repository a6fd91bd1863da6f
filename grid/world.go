package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Worlds are written a bit like NetHack maps:
//
//	#	wall, impassable
//	.	floor
//	@	where the agent starts, on ordinary floor
//	^	a trap, with a large negative reward
//	$	the goal
//
// A space counts as impassable ground, the same as a wall.

// Terrain classifies one cell of a world.
type Terrain int

const (
	Floor Terrain = iota
	Wall
	Trap
	Goal
)

// Rune returns the map symbol for the terrain.
func (t Terrain) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Trap:
		return '^'
	case Goal:
		return '$'
	}
	return '.'
}

// Position is an (x, y) cell coordinate, origin at the top left.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Errors returned by Parse. Parse wraps them with the offending line and
// coordinates, so match with errors.Is.
var (
	ErrEmptyWorld     = errors.New("grid: no content")
	ErrRaggedLine     = errors.New("grid: lines differ in length")
	ErrInvalidSymbol  = errors.New("grid: invalid symbol")
	ErrNoStart        = errors.New(`grid: no start position, use "@"`)
	ErrMultipleStarts = errors.New("grid: multiple start positions")
)

// World is an immutable rectangular grid of terrain with a single start
// position.
type World struct {
	cells [][]Terrain
	start Position
}

// Parse builds a World from a map string. Lines are rows; empty lines are
// skipped, so maps may carry leading or trailing newlines. Every remaining
// line must be the same length and every symbol must be one of the map
// symbols, with "@" appearing exactly once.
func Parse(s string) (*World, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyWorld
	}

	cells := make([][]Terrain, len(lines))
	start := Position{-1, -1}
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("%w: line %d is %d long, want %d", ErrRaggedLine, y, len(line), len(lines[0]))
		}
		cells[y] = make([]Terrain, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#', ' ':
				cells[y][x] = Wall
			case '.':
				cells[y][x] = Floor
			case '^':
				cells[y][x] = Trap
			case '$':
				cells[y][x] = Goal
			case '@':
				if start.X >= 0 {
					return nil, fmt.Errorf("%w: at %v and %v", ErrMultipleStarts, start, Position{x, y})
				}
				start = Position{x, y}
				cells[y][x] = Floor
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidSymbol, line[x], Position{x, y})
			}
		}
	}
	if start.X < 0 {
		return nil, ErrNoStart
	}
	return &World{cells: cells, start: start}, nil
}

func (w *World) Width() int {
	return len(w.cells[0])
}

func (w *World) Height() int {
	return len(w.cells)
}

// Size returns the width and height of the world in cells.
func (w *World) Size() (width, height int) {
	return w.Width(), w.Height()
}

// Start is the position the agent begins at. The cell under it is Floor.
func (w *World) Start() Position {
	return w.start
}

// InBounds reports whether p lies on the grid.
func (w *World) InBounds(p Position) bool {
	return p.X >= 0 && p.X < w.Width() && p.Y >= 0 && p.Y < w.Height()
}

// At returns the terrain at p, which must be in bounds.
func (w *World) At(p Position) Terrain {
	return w.cells[p.Y][p.X]
}

// String renders the world back into map symbols, without the agent.
func (w *World) String() string {
	var b strings.Builder
	for y, row := range w.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, t := range row {
			b.WriteRune(t.Rune())
		}
	}
	return b.String()
}
