package generate

import (
	"errors"
	"strings"
	"testing"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/config"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/glyph"
)

func newTestGenerator() *Generator {
	return New(glyph.NewLibrary(), config.DefaultSettings())
}

func TestGenerateDefaults(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(Request{Text: "  Leo  "})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if res.Effect != "cyberpunk" || res.Font != "block" || res.Border != "none" {
		t.Fatalf("unexpected defaults: effect=%s font=%s border=%s", res.Effect, res.Font, res.Border)
	}
	if len(res.Plain) != 5 {
		t.Fatalf("expected 5 rows from the block font, got %d", len(res.Plain))
	}
	if res.Colorized.Plain().String() != res.Plain.String() {
		t.Fatalf("colorized block does not match plain block")
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestGenerateFramesBeforeColoring(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(Request{Text: "ok", Font: "plain", Border: "ascii", Effect: "fire"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	want := "+----+\n| ok |\n+----+"
	if res.Plain.String() != want {
		t.Fatalf("Plain = %q, want %q", res.Plain.String(), want)
	}
	// the border itself is colored: top row uses y=0 of a 3-row block
	top := res.Colorized[0][0]
	if !top.Styled || top.Color.H != 60 {
		t.Fatalf("top-left border cell = %+v", top)
	}
	if res.Colorized[1][1].Styled {
		t.Fatalf("padding space inside the frame should be unstyled")
	}
}

func TestGenerateFallbacksAreWarnings(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(Request{Text: "A", Font: "gothic", Border: "zigzag", Effect: "fire"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", res.Warnings)
	}
	if res.Font != glyph.DefaultFont || res.Border != "none" {
		t.Fatalf("fallbacks not recorded: font=%s border=%s", res.Font, res.Border)
	}
}

func TestGenerateValidation(t *testing.T) {
	settings := config.DefaultSettings()
	settings.MaxTextLength = 4
	g := New(glyph.NewLibrary(), settings)

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{name: "empty", req: Request{Text: "   "}, want: ErrEmptyText},
		{name: "too long", req: Request{Text: "Sagittarius"}, want: ErrTextTooLong},
		{name: "strict unknown effect", req: Request{Text: "Leo", Effect: "sparkle", Strict: true}, want: ErrUnknownEffect},
		{name: "bad color", req: Request{Text: "Leo", Effect: "none", Color: "zz"}, want: ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Generate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateLenientUnknownEffectUsesFallbackColor(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(Request{Text: "XY", Font: "plain", Effect: "unknown-theme", Color: "#FF00AA"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	for _, cell := range res.Colorized[0] {
		if cell.Color.Hex() != effect.FallbackHex {
			t.Fatalf("cell color = %s, want %s", cell.Color.Hex(), effect.FallbackHex)
		}
	}
}

func TestGenerateNoneWithColor(t *testing.T) {
	g := newTestGenerator()
	res, err := g.Generate(Request{Text: "Aries", Font: "plain", Effect: "none", Color: "ff00aa"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := res.Colorized[0][0].Color.Hex(); got != "#FF00AA" {
		t.Fatalf("color = %s", got)
	}
	if !strings.EqualFold(res.Effect, "none") {
		t.Fatalf("effect = %s", res.Effect)
	}
}

func TestGenerateInvalidDefaultColorIsIgnored(t *testing.T) {
	settings := config.DefaultSettings()
	settings.DefaultColor = "zz"
	g := New(glyph.NewLibrary(), settings)

	res, err := g.Generate(Request{Text: "Leo", Font: "plain", Effect: "fire"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := res.Colorized[0][0].Color.Hex(); got != effect.HSL(60, 100, 50).Hex() {
		t.Fatalf("fire color = %s", got)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "default color") {
		t.Fatalf("expected a default color warning, got %v", res.Warnings)
	}

	res, err = g.Generate(Request{Text: "Leo", Font: "plain", Effect: "none"})
	if err != nil {
		t.Fatalf("Generate(none) error: %v", err)
	}
	if got := res.Colorized[0][0].Color.Hex(); got != effect.FallbackHex {
		t.Fatalf("none color = %s, want %s", got, effect.FallbackHex)
	}
}

func TestGenerateDefaultColorAndNoColor(t *testing.T) {
	settings := config.DefaultSettings()
	settings.DefaultColor = "#FF00AA"
	g := New(glyph.NewLibrary(), settings)

	res, err := g.Generate(Request{Text: "Leo", Font: "plain", Effect: "none"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := res.Colorized[0][0].Color.Hex(); got != "#FF00AA" {
		t.Fatalf("color = %s, want the configured default", got)
	}

	res, err = g.Generate(Request{Text: "Leo", Font: "plain", Effect: "none", Color: NoColor})
	if err != nil {
		t.Fatalf("Generate(NoColor) error: %v", err)
	}
	if got := res.Colorized[0][0].Color.Hex(); got != effect.FallbackHex {
		t.Fatalf("color = %s, want %s", got, effect.FallbackHex)
	}
}
