// Package effect assigns a color to every glyph of an ASCII block according to a named
// visual theme. Colors depend only on a cell's position and the block's dimensions.
package effect

import "strings"

// Block is rendered ASCII art, one string per row. Rows may differ in length.
type Block []string

// BlockFromText splits multi-line text into rows. A trailing newline does not add a row.
func BlockFromText(s string) Block {
	if s == "" {
		return Block{}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return Block(strings.Split(s, "\n"))
}

// String joins rows with newlines.
func (b Block) String() string {
	return strings.Join(b, "\n")
}

// Cell is one rune of a colorized block. Blank cells carry no color.
type Cell struct {
	Char   rune
	Color  Color
	Styled bool
}

// Colorized has the same shape as the Block it was produced from.
type Colorized [][]Cell

// Plain returns the underlying characters.
func (c Colorized) Plain() Block {
	out := make(Block, len(c))
	for y, row := range c {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteRune(cell.Char)
		}
		out[y] = sb.String()
	}
	return out
}

// IsBlank reports whether r is passed through without a color.
func IsBlank(r rune) bool {
	return r == ' ' || r == 0
}

// Colorize pairs every non-blank rune in block with the color the named effect computes
// for its position. base is honored only by "none" (or an empty name) when set.
func Colorize(block Block, name Name, base Color) Colorized {
	fn := resolve(name, base)
	totalRows := len(block)

	out := make(Colorized, totalRows)
	for y, row := range block {
		runes := []rune(row)
		cells := make([]Cell, len(runes))
		for x, r := range runes {
			cells[x].Char = r
			if IsBlank(r) {
				continue
			}
			cells[x].Color = fn(x, y, len(runes), totalRows)
			cells[x].Styled = true
		}
		out[y] = cells
	}
	return out
}

func resolve(name Name, base Color) Func {
	name = Normalize(string(name))
	if name == None || name == "" {
		if !base.IsZero() {
			return fixed(base)
		}
		return fixed(Fallback())
	}
	if fn, ok := registry[name]; ok {
		return fn
	}
	return fixed(Fallback())
}

func fixed(c Color) Func {
	return func(int, int, int, int) Color { return c }
}
