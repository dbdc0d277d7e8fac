package generate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/config"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/frame"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/glyph"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/logging"
)

var (
	ErrEmptyText     = errors.New("text is empty")
	ErrTextTooLong   = errors.New("text is too long")
	ErrUnknownEffect = errors.New("unknown effect")
	ErrInvalidColor  = errors.New("invalid color")
)

// NoColor as Request.Color renders "none" with the fallback color even when a
// default color is configured.
const NoColor = "none"

// Request describes one render. Empty fields take the configured defaults.
type Request struct {
	Text   string
	Font   string
	Effect string
	Border string
	Color  string
	Strict bool
}

// Result carries the plain and colorized forms of the same art.
type Result struct {
	Plain     effect.Block
	Colorized effect.Colorized
	Effect    string
	Font      string
	Border    string
	Warnings  []string
}

// Generator runs text through the glyph renderer, the framer and the effect engine.
type Generator struct {
	Glyphs   glyph.Renderer
	Settings config.Settings
}

func New(glyphs glyph.Renderer, settings config.Settings) *Generator {
	return &Generator{Glyphs: glyphs, Settings: settings}
}

func (g *Generator) Generate(req Request) (Result, error) {
	req = g.withDefaults(req)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Result{}, ErrEmptyText
	}
	if limit := g.Settings.MaxTextLength; limit > 0 && utf8.RuneCountInString(text) > limit {
		return Result{}, fmt.Errorf("%w: %d runes, limit %d", ErrTextTooLong, utf8.RuneCountInString(text), limit)
	}

	name := effect.Normalize(req.Effect)
	if (req.Strict || g.Settings.StrictEffects) && !effect.Valid(name) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownEffect, req.Effect)
	}

	res := Result{Effect: string(name), Font: req.Font, Border: req.Border}

	var base effect.Color
	switch color := strings.TrimSpace(req.Color); {
	case strings.EqualFold(color, NoColor):
	case color != "":
		c, err := effect.FromHex(color)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		base = c
	case g.Settings.DefaultColor != "":
		c, err := effect.FromHex(g.Settings.DefaultColor)
		if err != nil {
			logging.Warn("default color: %v", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("default color ignored: %v", err))
			break
		}
		base = c
	}

	block, err := g.Glyphs.Render(text, req.Font)
	if err != nil {
		var rf *glyph.RenderFailure
		if !errors.As(err, &rf) {
			return Result{}, fmt.Errorf("render text: %w", err)
		}
		logging.Warn("glyph render: %v", rf)
		res.Warnings = append(res.Warnings, rf.Error())
		res.Font = rf.Fallback
	}

	framed, err := frame.Frame(block, req.Border)
	if err != nil {
		var rf *glyph.RenderFailure
		if !errors.As(err, &rf) {
			return Result{}, fmt.Errorf("frame art: %w", err)
		}
		logging.Warn("frame: %v", rf)
		res.Warnings = append(res.Warnings, rf.Error())
		res.Border = rf.Fallback
	}

	res.Plain = framed
	res.Colorized = effect.Colorize(framed, name, base)
	logging.Debug("generated %dx%d block effect=%s font=%s border=%s", len(framed), width(framed), res.Effect, res.Font, res.Border)
	return res, nil
}

func (g *Generator) withDefaults(req Request) Request {
	if strings.TrimSpace(req.Font) == "" {
		req.Font = g.Settings.DefaultFont
	}
	if strings.TrimSpace(req.Effect) == "" {
		req.Effect = g.Settings.DefaultEffect
	}
	if strings.TrimSpace(req.Border) == "" {
		req.Border = g.Settings.DefaultBorder
	}
	return req
}

func width(b effect.Block) int {
	w := 0
	for _, row := range b {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}
