package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/output"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
)

const AsciiArt = `
 ██████╗ ██████╗ ███████╗███╗   ███╗██╗ ██████╗
██╔════╝██╔═══██╗██╔════╝████╗ ████║██║██╔════╝
██║     ██║   ██║███████╗██╔████╔██║██║██║
██║     ██║   ██║╚════██║██║╚██╔╝██║██║██║
╚██████╗╚██████╔╝███████║██║ ╚═╝ ██║██║╚██████╗
 ╚═════╝ ╚═════╝ ╚══════╝╚═╝     ╚═╝╚═╝ ╚═════╝
`

const (
	ColorReset  = "\033[0m"
	ColorGray   = "\033[90m" // Light gray
	ColorWhite  = "\033[97m" // White
	ColorRed    = "\033[91m" // Bright Red
	ColorGreen  = "\033[92m" // Bright Green
	ColorYellow = "\033[93m" // Bright Yellow
)

// BannerBlock returns the banner without its surrounding blank lines.
func BannerBlock() effect.Block {
	return effect.Block(strings.Split(strings.Trim(AsciiArt, "\n"), "\n"))
}

// PrintGradientAsciiArt prints the banner colored with the given effect.
func PrintGradientAsciiArt(name effect.Name) {
	c := effect.Colorize(BannerBlock(), name, effect.Color{})
	fmt.Println(output.ANSI(c, output.TerminalProfile(os.Stdout)))
}
