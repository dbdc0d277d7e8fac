package output

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/generate"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
	msges "github.com/pibulus/cosmic-horoscope-sub001/internal/messages"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/version"
)

// HTMLFragment returns one <span> per styled rune; blanks are written as-is and rows
// are joined with newlines so the result can sit inside a <pre>.
func HTMLFragment(c effect.Colorized) string {
	var sb strings.Builder
	for y, row := range c {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			ch := html.EscapeString(string(cell.Char))
			if !cell.Styled {
				sb.WriteString(ch)
				continue
			}
			fmt.Fprintf(&sb, `<span style="color:%s">%s</span>`, cell.Color.CSS(), ch)
		}
	}
	return sb.String()
}

// HTML page
type PageData struct {
	Title     string
	Text      string
	Effect    string
	Font      string
	Border    string
	Art       template.HTML
	Plain     string
	Warnings  []string
	Effects   []string
	Fonts     []string
	Borders   []string
	Generated string
	Version   string

	UIEffect   string
	UIFont     string
	UIBorder   string
	UIPlain    string
	UIWarnings string
	UIRender   string
}

func NewPageData(text string, res generate.Result) PageData {
	return PageData{
		Title:      msges.GetUIMessage("HTMLTitle"),
		Text:       text,
		Effect:     res.Effect,
		Font:       res.Font,
		Border:     res.Border,
		Art:        template.HTML(HTMLFragment(res.Colorized)),
		Plain:      Plain(res.Plain),
		Warnings:   res.Warnings,
		Generated:  time.Now().Format("2006-01-02 15:04:05"),
		Version:    version.Value,
		UIEffect:   msges.GetUIMessage("HTMLEffect"),
		UIFont:     msges.GetUIMessage("HTMLFont"),
		UIBorder:   msges.GetUIMessage("HTMLBorder"),
		UIPlain:    msges.GetUIMessage("HTMLPlain"),
		UIWarnings: msges.GetUIMessage("HTMLWarnings"),
		UIRender:   msges.GetUIMessage("HTMLRender"),
	}
}

var pageTemplate = template.Must(template.New("page").Parse(htmlTemplate))

func WriteHTMLDocument(w io.Writer, data PageData) error {
	return pageTemplate.Execute(w, data)
}

// SaveHTMLDocument writes a standalone page for res into dir and returns its path.
func SaveHTMLDocument(dir, text string, res generate.Result) (string, error) {
	filename := reportName(dir, text, "html")

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHTMLDocument(f, NewPageData(text, res)); err != nil {
		return "", err
	}
	return filename, nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}{{if .Text}} - {{.Text}}{{end}}</title>
    <style>
        :root {
            --bg: #05010d;
            --surface: #0d0620;
            --text: #d8d0f0;
            --muted: #7c6fa0;
            --line: #2a1d4a;
            --radius: 12px;
        }
        * { box-sizing: border-box; }
        body {
            font-family: "Segoe UI", "Inter", "Helvetica Neue", Arial, sans-serif;
            color: var(--text);
            margin: 0;
            padding: 28px 16px 40px;
            background: var(--bg);
        }
        .page { max-width: 1100px; margin: 0 auto; }
        h1 { margin: 0 0 12px; font-weight: 600; letter-spacing: .04em; }
        .meta { color: var(--muted); margin-bottom: 16px; }
        .meta span { margin-right: 16px; }
        .art {
            background: var(--surface);
            border: 1px solid var(--line);
            border-radius: var(--radius);
            padding: 20px;
            overflow-x: auto;
        }
        pre {
            margin: 0;
            font-family: "JetBrains Mono", Consolas, Monaco, monospace;
            font-size: 14px;
            line-height: 1.1;
        }
        form { margin-bottom: 20px; display: flex; flex-wrap: wrap; gap: 8px; }
        input, select, button {
            background: var(--surface);
            color: var(--text);
            border: 1px solid var(--line);
            border-radius: 8px;
            padding: 6px 10px;
        }
        .warnings { color: #e6a900; margin-top: 12px; }
        details { margin-top: 16px; }
        details summary { cursor: pointer; color: var(--muted); }
        footer { margin-top: 24px; color: var(--muted); font-size: .85rem; }
    </style>
</head>
<body>
<div class="page">
    <h1>{{.Title}}</h1>
    {{if .Effects}}
    <form method="get" action="/">
        <input name="text" value="{{.Text}}" maxlength="64">
        <select name="effect">{{range .Effects}}<option value="{{.}}"{{if eq . $.Effect}} selected{{end}}>{{.}}</option>{{end}}</select>
        <select name="font">{{range .Fonts}}<option value="{{.}}"{{if eq . $.Font}} selected{{end}}>{{.}}</option>{{end}}</select>
        <select name="border">{{range .Borders}}<option value="{{.}}"{{if eq . $.Border}} selected{{end}}>{{.}}</option>{{end}}</select>
        <button type="submit">{{.UIRender}}</button>
    </form>
    {{end}}
    <div class="meta">
        <span>{{.UIEffect}}: <strong>{{.Effect}}</strong></span>
        <span>{{.UIFont}}: <strong>{{.Font}}</strong></span>
        <span>{{.UIBorder}}: <strong>{{.Border}}</strong></span>
    </div>
    <div class="art"><pre>{{.Art}}</pre></div>
    {{if .Warnings}}
    <div class="warnings">
        <strong>{{.UIWarnings}}</strong>
        <ul>{{range .Warnings}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}
    <details>
        <summary>{{.UIPlain}}</summary>
        <pre>{{.Plain}}</pre>
    </details>
    <footer>cosmic {{.Version}} &middot; {{.Generated}}</footer>
</div>
</body>
</html>
`
