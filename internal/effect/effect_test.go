package effect

import (
	"math"
	"testing"
)

func TestColorizePreservesShapeForEveryEffect(t *testing.T) {
	blocks := []Block{
		{},
		{""},
		{"A"},
		{"AB", "", "C D", "  EFG  "},
		{"██╗  ██╗", "╚═╝", "ragged rows of different length"},
	}
	names := append(Names(), "unknown-theme", "")

	for _, name := range names {
		for _, b := range blocks {
			got := Colorize(b, name, Color{})
			if len(got) != len(b) {
				t.Fatalf("%s: row count = %d, want %d", name, len(got), len(b))
			}
			for y, row := range b {
				runes := []rune(row)
				if len(got[y]) != len(runes) {
					t.Fatalf("%s: row %d has %d cells, want %d", name, y, len(got[y]), len(runes))
				}
				for x, r := range runes {
					cell := got[y][x]
					if cell.Char != r {
						t.Fatalf("%s: cell (%d,%d) = %q, want %q", name, x, y, cell.Char, r)
					}
					if r == ' ' && cell.Styled {
						t.Fatalf("%s: blank cell (%d,%d) is styled", name, x, y)
					}
					if r != ' ' && !cell.Styled {
						t.Fatalf("%s: cell (%d,%d) %q is unstyled", name, x, y, r)
					}
				}
			}
			if got.Plain().String() != b.String() {
				t.Fatalf("%s: Plain() = %q, want %q", name, got.Plain().String(), b.String())
			}
		}
	}
}

func TestEffectFuncsAreDeterministicAndFinite(t *testing.T) {
	for _, name := range Names() {
		if name == None {
			continue
		}
		fn, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		for _, dims := range [][2]int{{0, 0}, {1, 1}, {10, 4}, {80, 30}} {
			rowLength, totalRows := dims[0], dims[1]
			for y := 0; y < max(totalRows, 1); y++ {
				for x := 0; x < max(rowLength, 1); x++ {
					a := fn(x, y, rowLength, totalRows)
					b := fn(x, y, rowLength, totalRows)
					if a != b {
						t.Fatalf("%s(%d,%d,%d,%d) not deterministic: %+v vs %+v", name, x, y, rowLength, totalRows, a, b)
					}
					for _, v := range []float64{a.H, a.S, a.L} {
						if math.IsNaN(v) || math.IsInf(v, 0) {
							t.Fatalf("%s(%d,%d,%d,%d) produced non-finite %+v", name, x, y, rowLength, totalRows, a)
						}
					}
				}
			}
		}
	}
}

func TestColorizeFireSingleRow(t *testing.T) {
	got := Colorize(Block{"AB"}, Fire, Color{})
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("unexpected shape: %+v", got)
	}
	for x, cell := range got[0] {
		if !cell.Styled {
			t.Fatalf("cell %d unstyled", x)
		}
		if cell.Color.H != 60 || cell.Color.S != 100 {
			t.Fatalf("cell %d color = %+v, want H=60 S=100", x, cell.Color)
		}
	}
}

func TestColorizeUnicornSpaceIsUnstyled(t *testing.T) {
	got := Colorize(Block{" "}, Unicorn, Color{})
	if len(got) != 1 || len(got[0]) != 1 {
		t.Fatalf("unexpected shape: %+v", got)
	}
	if got[0][0].Styled || !got[0][0].Color.IsZero() {
		t.Fatalf("space cell should be unstyled, got %+v", got[0][0])
	}
}

func TestColorizeUnknownEffectUsesFallback(t *testing.T) {
	base, err := FromHex("#123456")
	if err != nil {
		t.Fatalf("FromHex() error: %v", err)
	}
	got := Colorize(Block{"XY", "ZW"}, "unknown-theme", base)
	for y, row := range got {
		for x, cell := range row {
			if cell.Color.Hex() != FallbackHex {
				t.Fatalf("cell (%d,%d) = %s, want %s", x, y, cell.Color.Hex(), FallbackHex)
			}
		}
	}
}

func TestColorizeChromeOrigin(t *testing.T) {
	got := Colorize(Block{"A"}, Chrome, Color{})
	c := got[0][0].Color
	if c.H != 200 || c.L != 70 {
		t.Fatalf("chrome origin = %+v, want H=200 L=70", c)
	}
}

func TestColorizeNoneHonorsBaseColor(t *testing.T) {
	base, err := FromHex("ff00aa")
	if err != nil {
		t.Fatalf("FromHex() error: %v", err)
	}
	for _, name := range []Name{None, "", "  NONE "} {
		got := Colorize(Block{"A"}, name, base)
		if got[0][0].Color.Hex() != "#FF00AA" {
			t.Fatalf("%q: color = %s, want #FF00AA", name, got[0][0].Color.Hex())
		}
	}
	got := Colorize(Block{"A"}, None, Color{})
	if got[0][0].Color.Hex() != FallbackHex {
		t.Fatalf("none without base = %s, want %s", got[0][0].Color.Hex(), FallbackHex)
	}
}

func TestColorizeNamedEffectIgnoresBaseColor(t *testing.T) {
	base, err := FromHex("ff00aa")
	if err != nil {
		t.Fatalf("FromHex() error: %v", err)
	}
	got := Colorize(Block{"A"}, Fire, base)
	c := got[0][0].Color
	if c.Fixed != "" || c.H != 60 || c.S != 100 || c.L != 50 {
		t.Fatalf("fire with base = %+v, want H=60 S=100 L=50", c)
	}
	for _, name := range Names() {
		if name == None {
			continue
		}
		fn, _ := Lookup(name)
		want := fn(0, 0, 1, 1)
		if got := Colorize(Block{"A"}, name, base)[0][0].Color; got != want {
			t.Fatalf("%s with base = %+v, want %+v", name, got, want)
		}
	}
}

func TestColorizeBoundaryBlocks(t *testing.T) {
	if got := Colorize(Block{""}, Rainbow, Color{}); len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("empty row: %+v", got)
	}
	if got := Colorize(Block{"#"}, Cyberpunk, Color{}); len(got) != 1 || len(got[0]) != 1 || !got[0][0].Styled {
		t.Fatalf("single cell: %+v", got)
	}
	if got := Colorize(nil, Fire, Color{}); len(got) != 0 {
		t.Fatalf("nil block: %+v", got)
	}
}

func TestEffectFamilies(t *testing.T) {
	// horizontal effects ignore y
	fn, _ := Lookup(Unicorn)
	if fn(3, 0, 10, 5) != fn(3, 4, 10, 5) {
		t.Fatalf("unicorn should not vary with y")
	}
	if fn(0, 0, 10, 5) == fn(5, 0, 10, 5) {
		t.Fatalf("unicorn should vary with x")
	}

	// vertical effects ignore x
	for _, name := range []Name{Fire, Ocean, Sunrise, Vaporwave, Matrix} {
		fn, _ := Lookup(name)
		if fn(0, 2, 10, 5) != fn(9, 2, 10, 5) {
			t.Fatalf("%s should not vary with x", name)
		}
		if fn(0, 0, 10, 5) == fn(0, 4, 10, 5) {
			t.Fatalf("%s should vary with y", name)
		}
	}

	// diagonal effects depend on x+y
	for _, name := range []Name{Cyberpunk, Angel, Neon, Poison} {
		fn, _ := Lookup(name)
		if fn(2, 1, 10, 5) != fn(1, 2, 10, 5) {
			t.Fatalf("%s should depend only on x+y", name)
		}
	}
}

func TestFireGradient(t *testing.T) {
	fn, _ := Lookup(Fire)
	c := fn(0, 2, 4, 4)
	if c.H != 30 || c.S != 100 || c.L != 50 {
		t.Fatalf("fire mid row = %+v", c)
	}
}

func TestValidAndNames(t *testing.T) {
	names := Names()
	if len(names) != 14 {
		t.Fatalf("Names() returned %d entries, want 14", len(names))
	}
	if names[len(names)-1] != None {
		t.Fatalf("Names() should end with none, got %v", names)
	}
	for _, n := range names {
		if !Valid(n) {
			t.Fatalf("Valid(%q) = false", n)
		}
	}
	if Valid("unknown-theme") {
		t.Fatalf("Valid(unknown-theme) = true")
	}
	if !Valid(" FIRE ") {
		t.Fatalf("Valid should normalize names")
	}
}
