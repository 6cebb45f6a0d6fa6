package tetris

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Sprite is one filled rectangle a renderer should draw.
type Sprite struct {
	X, Y   float64
	Color  Color
	Kind   ShapeKind
	Filled bool
	Active bool // part of the falling piece
}

// Sprites lists every grid cell followed by the four cells of the falling
// piece, positioned with the given layout.
func (b *Board) Sprites(l Layout) []Sprite {
	out := make([]Sprite, 0, len(b.cells)+4)
	for _, c := range b.cells {
		x, y := l.Pixel(c.Row, c.Col)
		s := Sprite{X: x, Y: y, Color: ColorEmpty}
		if c.Occupied {
			s.Color = ShapeOf(c.Kind).Color
			s.Kind = c.Kind
			s.Filled = true
		}
		out = append(out, s)
	}

	shape := b.current.Shape()
	for _, index := range b.current.Cells {
		row, col := b.RowCol(index)
		x, y := l.Pixel(row, col)
		out = append(out, Sprite{X: x, Y: y, Color: shape.Color, Kind: shape.Kind, Filled: true, Active: true})
	}
	return out
}

// TerminalRenderer draws a board as text, two characters per cell.
type TerminalRenderer struct {
	Color bool
}

// NewTerminalRenderer picks colour output when the terminal supports it.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Color: supportsColor()}
}

func supportsColor() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

var gridLayout = Layout{CellWidth: 1, CellHeight: 1}

// Render writes one full frame to w.
func (r *TerminalRenderer) Render(w io.Writer, mode string, b *Board) error {
	screen := make([][]string, b.height)
	for i := range screen {
		screen[i] = make([]string, b.width)
	}
	for _, s := range b.Sprites(gridLayout) {
		screen[int(s.Y)][int(s.X)] = r.cell(s)
	}

	var sb strings.Builder
	sb.WriteString("\033[2J\033[H")

	stats := b.Stats()
	fmt.Fprintf(&sb, "TETRIS [%s] | Score: %d | Lines: %d | Level: %d | Best: %d\n",
		mode, stats.Score, stats.Lines, stats.Level, stats.BestScore)
	sb.WriteString("╔" + strings.Repeat("═", b.width*2) + "╗\n")
	for _, row := range screen {
		sb.WriteString("║")
		for _, cell := range row {
			sb.WriteString(cell)
		}
		sb.WriteString("║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", b.width*2) + "╝\n")

	sb.WriteString("\nNext Piece:\n")
	next := b.Next()
	for _, row := range next.Pattern() {
		sb.WriteString("  ")
		for _, set := range row {
			if set {
				sb.WriteString(r.cell(Sprite{Color: next.Shape().Color, Kind: next.Kind(), Filled: true}))
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nControls: A/D=Move, S=Down, W=Rotate, P=Agent on/off, Q=Quit\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *TerminalRenderer) cell(s Sprite) string {
	if !s.Filled {
		if r.Color {
			return "  "
		}
		return ".."
	}
	if r.Color {
		return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", s.Color.R, s.Color.G, s.Color.B)
	}
	name := ShapeOf(s.Kind).Name
	return name + name
}
