package glyph

import "unicode"

// Font maps runes to glyphs. Every glyph has exactly Height rows of equal width.
type Font interface {
	Height() int
	Glyph(r rune) ([]string, bool)
}

type mapFont struct {
	height int
	fold   bool
	glyphs map[rune][]string
}

func (f *mapFont) Height() int { return f.height }

func (f *mapFont) Glyph(r rune) ([]string, bool) {
	if f.fold {
		r = unicode.ToUpper(r)
	}
	g, ok := f.glyphs[r]
	return g, ok
}

type plainFont struct{}

func (plainFont) Height() int { return 1 }

func (plainFont) Glyph(r rune) ([]string, bool) {
	if r == '\t' {
		return []string{"    "}, true
	}
	if !unicode.IsPrint(r) {
		return nil, false
	}
	return []string{string(r)}, true
}

// normalize pads every row of every glyph to the glyph's widest row.
func normalize(glyphs map[rune][]string, height int) {
	for r, rows := range glyphs {
		for len(rows) < height {
			rows = append(rows, "")
		}
		width := 0
		for _, row := range rows {
			if n := len([]rune(row)); n > width {
				width = n
			}
		}
		for i, row := range rows {
			if pad := width - len([]rune(row)); pad > 0 {
				rows[i] = row + spaces(pad)
			}
		}
		glyphs[r] = rows
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
