package glyph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	figletSignature = "flf2a"
	firstRequired   = 32
	lastRequired    = 126
)

type figletFont struct {
	mapFont
	hardblank rune
}

// LoadFIGlet parses a FIGlet .flf font. Glyphs are rendered full width; hardblanks
// become spaces.
func LoadFIGlet(r io.Reader) (Font, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidFont)
	}
	header := strings.Fields(sc.Text())
	if len(header) < 6 || !strings.HasPrefix(header[0], figletSignature) {
		return nil, fmt.Errorf("%w: bad header %q", ErrInvalidFont, sc.Text())
	}
	sig := []rune(header[0])
	if len(sig) <= len(figletSignature) {
		return nil, fmt.Errorf("%w: missing hardblank", ErrInvalidFont)
	}
	hardblank := sig[len(figletSignature)]

	height, err := strconv.Atoi(header[1])
	if err != nil || height <= 0 {
		return nil, fmt.Errorf("%w: bad height %q", ErrInvalidFont, header[1])
	}
	comments, err := strconv.Atoi(header[5])
	if err != nil || comments < 0 {
		return nil, fmt.Errorf("%w: bad comment count %q", ErrInvalidFont, header[5])
	}
	for i := 0; i < comments; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated comments", ErrInvalidFont)
		}
	}

	f := &figletFont{
		mapFont:   mapFont{height: height, glyphs: make(map[rune][]string)},
		hardblank: hardblank,
	}

	for code := firstRequired; code <= lastRequired; code++ {
		rows, err := f.readGlyph(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: glyph %q: %v", ErrInvalidFont, rune(code), err)
		}
		f.glyphs[rune(code)] = rows
	}

	// code-tagged glyphs are optional
	for sc.Scan() {
		tag := strings.Fields(sc.Text())
		if len(tag) == 0 {
			continue
		}
		code, err := strconv.ParseInt(tag[0], 0, 32)
		if err != nil {
			break
		}
		rows, err := f.readGlyph(sc)
		if err != nil {
			break
		}
		if code >= 0 {
			f.glyphs[rune(code)] = rows
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	normalize(f.glyphs, height)
	return f, nil
}

func (f *figletFont) readGlyph(sc *bufio.Scanner) ([]string, error) {
	rows := make([]string, 0, f.height)
	for i := 0; i < f.height; i++ {
		if !sc.Scan() {
			return nil, io.ErrUnexpectedEOF
		}
		rows = append(rows, f.cleanRow(sc.Text()))
	}
	return rows, nil
}

func (f *figletFont) cleanRow(line string) string {
	line = strings.TrimRight(line, "\r")
	runes := []rune(line)
	if len(runes) == 0 {
		return ""
	}
	endmark := runes[len(runes)-1]
	line = strings.TrimRight(line, string(endmark))
	return strings.ReplaceAll(line, string(f.hardblank), " ")
}
