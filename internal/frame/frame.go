// Package frame draws decorative borders around ASCII blocks.
package frame

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/glyph"
)

// None leaves the block untouched.
const None = "none"

type Style struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                       string
}

var styles = map[string]Style{
	"single":  {TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘", Horizontal: "─", Vertical: "│"},
	"double":  {TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝", Horizontal: "═", Vertical: "║"},
	"rounded": {TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯", Horizontal: "─", Vertical: "│"},
	"heavy":   {TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛", Horizontal: "━", Vertical: "┃"},
	"ascii":   {TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+", Horizontal: "-", Vertical: "|"},
	"stars":   {TopLeft: "✦", TopRight: "✦", BottomLeft: "✦", BottomRight: "✦", Horizontal: "·", Vertical: "✧"},
}

// Styles lists the accepted style names, "none" first.
func Styles() []string {
	names := make([]string, 0, len(styles)+1)
	for n := range styles {
		names = append(names, n)
	}
	sort.Strings(names)
	return append([]string{None}, names...)
}

// Frame surrounds block with the named border and one column of padding on each side.
// Rows are padded to the widest row by display width. An unknown style returns the
// block unchanged with a *glyph.RenderFailure.
func Frame(block effect.Block, style string) (effect.Block, error) {
	name := strings.ToLower(strings.TrimSpace(style))
	if name == "" || name == None {
		return block, nil
	}
	s, ok := styles[name]
	if !ok {
		return block, &glyph.RenderFailure{
			Stage:    "frame",
			Name:     style,
			Fallback: None,
			Err:      glyph.ErrUnknownStyle,
		}
	}
	return s.Apply(block), nil
}

// Apply draws s around block.
func (s Style) Apply(block effect.Block) effect.Block {
	width := 0
	for _, row := range block {
		if w := runewidth.StringWidth(row); w > width {
			width = w
		}
	}

	edge := strings.Repeat(s.Horizontal, width+2)
	out := make(effect.Block, 0, len(block)+2)
	out = append(out, s.TopLeft+edge+s.TopRight)
	for _, row := range block {
		out = append(out, s.Vertical+" "+runewidth.FillRight(row, width)+" "+s.Vertical)
	}
	out = append(out, s.BottomLeft+edge+s.BottomRight)
	return out
}
