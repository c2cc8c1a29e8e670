package maze

import (
	"io"
	"strings"
)

// Render writes an ASCII drawing of the maze to w:
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
//
// Each cell row is drawn as its north walls followed by its west walls and
// the closing east wall; the last line is the south boundary.
func (m *Maze) Render(w io.Writer) error {
	var b strings.Builder
	b.Grow((m.height*2 + 1) * (m.width*4 + 2))

	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			if m.cells[m.index(r, c)].Walls[North] {
				b.WriteString("+---")
			} else {
				b.WriteString("+   ")
			}
		}
		b.WriteString("+\n")

		for c := 0; c < m.width; c++ {
			if m.cells[m.index(r, c)].Walls[West] {
				b.WriteString("|   ")
			} else {
				b.WriteString("    ")
			}
		}
		if m.cells[m.index(r, m.width-1)].Walls[East] {
			b.WriteString("|\n")
		} else {
			b.WriteString(" \n")
		}
	}

	for c := 0; c < m.width; c++ {
		if m.cells[m.index(m.height-1, c)].Walls[South] {
			b.WriteString("+---")
		} else {
			b.WriteString("+   ")
		}
	}
	b.WriteString("+\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the Render drawing.
func (m *Maze) String() string {
	var b strings.Builder
	_ = m.Render(&b)
	return b.String()
}
