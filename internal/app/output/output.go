package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/generate"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
)

type Format string

const (
	FormatANSI  Format = "ansi"
	FormatHTML  Format = "html"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ParseFormat accepts the --format values; "" and "auto" select by terminal.
func ParseFormat(s string, out *os.File) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectFormat(out), nil
	case "ansi":
		return FormatANSI, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "plain", "text":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// DetectFormat picks ANSI for terminals and plain text otherwise.
func DetectFormat(out *os.File) Format {
	if out != nil && term.IsTerminal(int(out.Fd())) {
		return FormatANSI
	}
	return FormatPlain
}

// TerminalProfile returns the color profile lipgloss detects for out.
func TerminalProfile(out *os.File) termenv.Profile {
	return termenv.NewOutput(out).EnvColorProfile()
}

// ANSI renders the colorized block with terminal escapes for the given profile.
// Consecutive cells sharing a color are written as one styled run.
func ANSI(c effect.Colorized, profile termenv.Profile) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	styles := make(map[string]lipgloss.Style)

	styleFor := func(hex string) lipgloss.Style {
		st, ok := styles[hex]
		if !ok {
			st = r.NewStyle().Foreground(lipgloss.Color(hex))
			styles[hex] = st
		}
		return st
	}

	var sb strings.Builder
	for y, row := range c {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		runHex := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(runHex).Render(run.String()))
			}
			run.Reset()
		}
		for _, cell := range row {
			hex := ""
			if cell.Styled {
				hex = cell.Color.Hex()
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(cell.Char)
		}
		flush()
	}
	return sb.String()
}

// Plain joins the rows of b.
func Plain(b effect.Block) string {
	return b.String()
}

type JSONResult struct {
	ASCII    string   `json:"ascii"`
	HTML     string   `json:"html"`
	Effect   string   `json:"effect"`
	Font     string   `json:"font"`
	Border   string   `json:"border"`
	Warnings []string `json:"warnings,omitempty"`
}

func NewJSONResult(res generate.Result) JSONResult {
	return JSONResult{
		ASCII:    Plain(res.Plain),
		HTML:     HTMLFragment(res.Colorized),
		Effect:   res.Effect,
		Font:     res.Font,
		Border:   res.Border,
		Warnings: res.Warnings,
	}
}

func WriteJSON(w io.Writer, res generate.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewJSONResult(res))
}

// Write serializes res to w in the given format.
func Write(w io.Writer, res generate.Result, format Format, profile termenv.Profile) error {
	switch format {
	case FormatANSI:
		_, err := fmt.Fprintln(w, ANSI(res.Colorized, profile))
		return err
	case FormatHTML:
		return WriteHTMLDocument(w, NewPageData("", res))
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		_, err := fmt.Fprintln(w, Plain(res.Plain))
		return err
	}
}

// SaveJSON writes res to a timestamped file in dir and returns its path.
func SaveJSON(dir, text string, res generate.Result) (string, error) {
	filename := reportName(dir, text, "json")
	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := WriteJSON(file, res); err != nil {
		return "", err
	}

	return filename, nil
}

func reportName(dir, text, ext string) string {
	timestamp := time.Now().Format("20060102_150405")
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(text))
	if len(sanitized) > 32 {
		sanitized = sanitized[:32]
	}
	if sanitized == "" {
		sanitized = "art"
	}
	return filepath.Join(dir, fmt.Sprintf("cosmic_%s_%s.%s", sanitized, timestamp, ext))
}
