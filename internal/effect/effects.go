package effect

import (
	"math"
	"sort"
	"strings"
)

// Name selects one of the registered effects.
type Name string

const (
	Rainbow   Name = "rainbow"
	Unicorn   Name = "unicorn"
	Fire      Name = "fire"
	Angel     Name = "angel"
	Chrome    Name = "chrome"
	Sunrise   Name = "sunrise"
	Cyberpunk Name = "cyberpunk"
	Vaporwave Name = "vaporwave"
	Ocean     Name = "ocean"
	Neon      Name = "neon"
	Poison    Name = "poison"
	Metal     Name = "metal"
	Matrix    Name = "matrix"
	None      Name = "none"
)

// Func maps a cell position to a color. rowLength is the rune count of row y and
// totalRows the number of rows in the block.
type Func func(x, y, rowLength, totalRows int) Color

var registry = map[Name]Func{
	Rainbow: func(x, y, rowLength, totalRows int) Color {
		return HSL(360*horizontal(x, rowLength), 100, 50)
	},
	Unicorn: func(x, y, rowLength, totalRows int) Color {
		return HSL(360*horizontal(x, rowLength), 100, 75)
	},
	Fire: func(x, y, rowLength, totalRows int) Color {
		p := vertical(y, totalRows)
		return HSL(60-60*p, 100, 50)
	},
	Ocean: func(x, y, rowLength, totalRows int) Color {
		p := vertical(y, totalRows)
		return HSL(180+40*p, 80+20*p, 60-20*p)
	},
	Sunrise: func(x, y, rowLength, totalRows int) Color {
		p := vertical(y, totalRows)
		return HSL(math.Mod(330+60*p, 360), 100, 65-10*p)
	},
	Vaporwave: func(x, y, rowLength, totalRows int) Color {
		p := vertical(y, totalRows)
		return HSL(300-120*p, 70, 70)
	},
	Matrix: func(x, y, rowLength, totalRows int) Color {
		p := vertical(y, totalRows)
		return HSL(120, 100, 70-40*p)
	},
	Cyberpunk: func(x, y, rowLength, totalRows int) Color {
		p := diagonal(x, y, rowLength, totalRows)
		return HSL(300-120*p, 100, 50+math.Sin(p*math.Pi*4)*10)
	},
	Angel: func(x, y, rowLength, totalRows int) Color {
		p := diagonal(x, y, rowLength, totalRows)
		return HSL(45+15*p, 30+40*p, 85+math.Sin(p*math.Pi*2)*10)
	},
	Neon: func(x, y, rowLength, totalRows int) Color {
		p := diagonal(x, y, rowLength, totalRows)
		return HSL(90+math.Sin(p*math.Pi*2)*90, 100, 55)
	},
	Poison: func(x, y, rowLength, totalRows int) Color {
		p := diagonal(x, y, rowLength, totalRows)
		return HSL(100+math.Sin(p*math.Pi*3)*40, 90, 45+math.Sin(p*math.Pi*6)*10)
	},
	Chrome: func(x, y, rowLength, totalRows int) Color {
		return HSL(200+math.Sin(float64(x)*0.3)*60, 20, 70+math.Sin(float64(y)*0.5)*20)
	},
	Metal: func(x, y, rowLength, totalRows int) Color {
		l := 55 + math.Sin(float64(y)*0.8)*15 + math.Sin(float64(x)*0.2)*5
		return HSL(210, 10, l)
	},
}

// Normalize lowercases and trims an effect name.
func Normalize(s string) Name {
	return Name(strings.ToLower(strings.TrimSpace(s)))
}

// Lookup returns the color function for name. "none" and unknown names report false.
func Lookup(name Name) (Func, bool) {
	fn, ok := registry[Normalize(string(name))]
	return fn, ok
}

// Valid reports whether name is a registered effect or "none".
func Valid(name Name) bool {
	n := Normalize(string(name))
	if n == None {
		return true
	}
	_, ok := registry[n]
	return ok
}

// Names lists every accepted effect name, "none" last.
func Names() []Name {
	out := make([]Name, 0, len(registry)+1)
	for n := range registry {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return append(out, None)
}

// Zero dimensions are treated as 1.
func denom(n int) float64 {
	if n <= 0 {
		return 1
	}
	return float64(n)
}

func horizontal(x, rowLength int) float64 {
	return float64(x) / denom(rowLength)
}

func vertical(y, totalRows int) float64 {
	return float64(y) / denom(totalRows)
}

func diagonal(x, y, rowLength, totalRows int) float64 {
	return float64(x+y) / denom(rowLength+totalRows)
}
