package glyph

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
)

// DefaultFont is used when a requested font is unknown.
const DefaultFont = "block"

// Renderer turns text into an ASCII block with a named font.
type Renderer interface {
	Render(text, font string) (effect.Block, error)
	Fonts() []string
}

// Library is a set of named fonts. It is safe for concurrent use.
type Library struct {
	mu          sync.RWMutex
	fonts       map[string]Font
	defaultFont string
}

// NewLibrary returns a library holding the built-in "block" and "plain" fonts.
func NewLibrary() *Library {
	return &Library{
		fonts: map[string]Font{
			"block": BlockFont(),
			"plain": PlainFont(),
		},
		defaultFont: DefaultFont,
	}
}

// Register adds or replaces a font.
func (l *Library) Register(name string, f Font) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fonts[strings.ToLower(name)] = f
}

// LoadDir registers every *.flf font in dir under its base name.
func (l *Library) LoadDir(dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.flf"))
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return loaded, err
		}
		font, err := LoadFIGlet(f)
		f.Close()
		if err != nil {
			return loaded, fmt.Errorf("load %s: %w", p, err)
		}
		l.Register(strings.TrimSuffix(filepath.Base(p), ".flf"), font)
		loaded++
	}
	return loaded, nil
}

// Fonts lists registered font names.
func (l *Library) Fonts() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.fonts))
	for n := range l.fonts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Render draws text with the named font. An unknown font falls back to the default
// font; the fallback block is returned together with a *RenderFailure.
func (l *Library) Render(text, font string) (effect.Block, error) {
	name := strings.ToLower(strings.TrimSpace(font))
	if name == "" {
		name = l.defaultFont
	}

	l.mu.RLock()
	f, ok := l.fonts[name]
	fallback := l.fonts[l.defaultFont]
	l.mu.RUnlock()

	if !ok {
		return renderWith(fallback, text), &RenderFailure{
			Stage:    "font",
			Name:     font,
			Fallback: l.defaultFont,
			Err:      ErrUnknownFont,
		}
	}
	return renderWith(f, text), nil
}

func renderWith(f Font, text string) effect.Block {
	if text == "" {
		return effect.Block{}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var out effect.Block
	for _, line := range strings.Split(text, "\n") {
		out = append(out, renderLine(f, line)...)
	}
	return out
}

func renderLine(f Font, line string) effect.Block {
	h := f.Height()
	rows := make([]strings.Builder, h)
	for _, r := range line {
		g, ok := f.Glyph(r)
		if !ok {
			g = blankGlyph(f)
		}
		for i := 0; i < h; i++ {
			if i < len(g) {
				rows[i].WriteString(g[i])
			}
		}
	}
	out := make(effect.Block, h)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

func blankGlyph(f Font) []string {
	if g, ok := f.Glyph(' '); ok {
		return g
	}
	g := make([]string, f.Height())
	for i := range g {
		g[i] = " "
	}
	return g
}
