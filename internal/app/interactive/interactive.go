package interactive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/generate"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/output"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/ui"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/frame"
	msges "github.com/pibulus/cosmic-horoscope-sub001/internal/messages"
)

// Session holds the render settings the prompt's commands change.
type Session struct {
	Gen    *generate.Generator
	Out    io.Writer
	Effect string
	Font   string
	Border string
	Color  string
}

func NewSession(gen *generate.Generator, out io.Writer) *Session {
	return &Session{
		Gen:    gen,
		Out:    out,
		Effect: gen.Settings.DefaultEffect,
		Font:   gen.Settings.DefaultFont,
		Border: gen.Settings.DefaultBorder,
		Color:  gen.Settings.DefaultColor,
	}
}

// RunInteractiveMode starts the line editor on stdin.
func RunInteractiveMode(cmdObj *cobra.Command, gen *generate.Generator) {
	s := NewSession(gen, os.Stdout)
	ui.PrintGradientAsciiArt(effect.Normalize(s.Effect))

	helpText := strings.Replace(cmdObj.Long, ui.AsciiArt, "", 1)
	fmt.Println(helpText)

	fmt.Println()
	fmt.Printf("%s%s%s\n", ui.ColorGray, msges.GetUIMessage("InteractiveWelcome"), ui.ColorReset)

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Println("Failed to enter raw mode:", err)
		return
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	var cmdBuffer []rune
	var cursorPos int
	history := []string{}
	historyIndex := 0
	readBuf := make([]byte, 1024)

Loop:
	for {
		prompt := s.prompt()

		moveBack := runewidth.StringWidth(string(cmdBuffer[cursorPos:]))

		fmt.Print("\r\033[K" + prompt + string(cmdBuffer))
		if moveBack > 0 {
			fmt.Printf("\033[%dD", moveBack)
		}

		n, err := os.Stdin.Read(readBuf)
		if err != nil {
			break
		}

		// arrow keys
		if n >= 3 && readBuf[0] == 27 && readBuf[1] == 91 {
			switch readBuf[2] {
			case 65: // Up Arrow
				if historyIndex > 0 {
					historyIndex--
					cmdBuffer = []rune(history[historyIndex])
					cursorPos = len(cmdBuffer)
				}
			case 66: // Down Arrow
				if historyIndex < len(history)-1 {
					historyIndex++
					cmdBuffer = []rune(history[historyIndex])
					cursorPos = len(cmdBuffer)
				} else {
					historyIndex = len(history)
					cmdBuffer = []rune{}
					cursorPos = 0
				}
			case 68: // Left Arrow
				if cursorPos > 0 {
					cursorPos--
				}
			case 67: // Right Arrow
				if cursorPos < len(cmdBuffer) {
					cursorPos++
				}
			}
			continue
		}

		inputRunes := []rune(string(readBuf[:n]))
		for _, char := range inputRunes {
			switch char {
			case 3: // Ctrl+C
				term.Restore(int(os.Stdin.Fd()), oldState)
				fmt.Println()
				return
			case 13, 10: // Enter
				term.Restore(int(os.Stdin.Fd()), oldState)
				fmt.Println()
				input := strings.TrimSpace(string(cmdBuffer))
				if len(input) > 0 {
					history = append(history, input)
					historyIndex = len(history)
				}
				cmdBuffer = []rune{}
				cursorPos = 0

				if s.ProcessLine(input) {
					return
				}
				oldState, _ = term.MakeRaw(int(os.Stdin.Fd()))
				continue Loop
			case 127, 8: // Backspace
				if cursorPos > 0 {
					cmdBuffer = append(cmdBuffer[:cursorPos-1], cmdBuffer[cursorPos:]...)
					cursorPos--
				}
			default:
				if char >= 32 {
					cmdBuffer = append(cmdBuffer, 0)
					copy(cmdBuffer[cursorPos+1:], cmdBuffer[cursorPos:])
					cmdBuffer[cursorPos] = char
					cursorPos++
				}
			}
		}
	}
}

func (s *Session) prompt() string {
	return fmt.Sprintf("%s[%s] > %s", ui.ColorGray, s.Effect, ui.ColorReset)
}

// ProcessLine renders text lines and applies ':' commands. It reports whether the
// session should end.
func (s *Session) ProcessLine(input string) bool {
	if input == "" {
		return false
	}
	if !strings.HasPrefix(input, ":") {
		s.render(input)
		return false
	}

	parts := strings.Fields(strings.TrimPrefix(input, ":"))
	if len(parts) == 0 {
		return false
	}
	command := strings.ToLower(parts[0])
	cmdArgs := parts[1:]

	switch command {
	case "quit", "exit", "q":
		s.printf(ui.ColorGray, msges.GetUIMessage("InteractiveExit"))
		return true
	case "clear", "cls":
		fmt.Fprint(s.Out, "\033[H\033[2J")
	case "help":
		s.printHelp()
	case "effects":
		for _, n := range effect.Names() {
			d := msges.GetEffectMessage(string(n))
			fmt.Fprintf(s.Out, "%s  %-10s %s%s\n", ui.ColorGray, n, d.Description, ui.ColorReset)
		}
	case "settings":
		s.printf(ui.ColorWhite, msges.GetUIMessage("InteractiveSettings", s.Effect, s.Font, s.Border, s.Color))
	case "effect":
		if len(cmdArgs) != 1 {
			s.printf(ui.ColorRed, msges.GetUIMessage("InteractiveErrorUsage", ":effect NAME"))
			return false
		}
		if !effect.Valid(effect.Name(cmdArgs[0])) {
			s.printf(ui.ColorRed, msges.GetUIMessage("InteractiveErrorValue", "effect", cmdArgs[0]))
			return false
		}
		s.Effect = string(effect.Normalize(cmdArgs[0]))
		s.printf(ui.ColorGreen, msges.GetUIMessage("InteractiveSet", "effect", s.Effect))
	case "font":
		if len(cmdArgs) != 1 {
			s.printf(ui.ColorRed, msges.GetUIMessage("InteractiveErrorUsage", ":font NAME"))
			return false
		}
		if !contains(s.Gen.Glyphs.Fonts(), strings.ToLower(cmdArgs[0])) {
			s.printf(ui.ColorRed, msges.GetUIMessage("InteractiveErrorValue", "font", cmdArgs[0]))
			return false
		}
		s.Font = strings.ToLower(cmdArgs[0])
		s.printf(ui.ColorGreen, msges.GetUIMessage("InteractiveSet", "font", s.Font))
	case "border":
		if len(cmdArgs) != 1 {
			s.printf(ui.ColorRed, msges.GetUIMessage("InteractiveErrorUsage", ":border NAME"))
			return false
		}
		if !contains(frame.Styles(), strings.ToLower(cmdArgs[0])) {
			s.printf(ui.ColorRed, msges.GetUIMessage("InteractiveErrorValue", "border", cmdArgs[0]))
			return false
		}
		s.Border = strings.ToLower(cmdArgs[0])
		s.printf(ui.ColorGreen, msges.GetUIMessage("InteractiveSet", "border", s.Border))
	case "color":
		if len(cmdArgs) == 0 {
			s.Color = ""
			def := s.Gen.Settings.DefaultColor
			if def == "" {
				def = effect.FallbackHex
			}
			s.printf(ui.ColorGreen, msges.GetUIMessage("InteractiveColorReset", def))
			return false
		}
		if strings.EqualFold(cmdArgs[0], generate.NoColor) {
			s.Color = generate.NoColor
			s.printf(ui.ColorGreen, msges.GetUIMessage("InteractiveSet", "color", effect.FallbackHex))
			return false
		}
		c, err := effect.FromHex(cmdArgs[0])
		if err != nil {
			s.printf(ui.ColorRed, err.Error())
			return false
		}
		s.Color = c.Hex()
		s.printf(ui.ColorGreen, msges.GetUIMessage("InteractiveSet", "color", s.Color))
	default:
		s.printf(ui.ColorRed, msges.GetUIMessage("InteractiveErrorUnknown", command))
	}
	return false
}

func (s *Session) render(text string) {
	res, err := s.Gen.Generate(generate.Request{
		Text:   text,
		Font:   s.Font,
		Effect: s.Effect,
		Border: s.Border,
		Color:  s.Color,
	})
	if err != nil {
		s.printf(ui.ColorRed, msges.GetUIMessage("RenderFailed", err))
		return
	}
	for _, w := range res.Warnings {
		s.printf(ui.ColorYellow, msges.GetUIMessage("RenderWarning", w))
	}
	profile := output.TerminalProfile(os.Stdout)
	fmt.Fprintln(s.Out, output.ANSI(res.Colorized, profile))
}

func (s *Session) printHelp() {
	s.printf(ui.ColorWhite, msges.GetUIMessage("InteractiveHelp"))
	for _, line := range []string{
		"<text>              render text with the current settings",
		":effect NAME        set the color effect",
		":font NAME          set the font",
		":border NAME        set the border style",
		":color [HEX|none]   set the base color for 'none'; no argument restores the configured one",
		":effects            list effects",
		":settings           show current settings",
		":clear              clear the screen",
		":quit               exit",
	} {
		s.printf(ui.ColorGray, "  "+line)
	}
}

func (s *Session) printf(color, msg string) {
	fmt.Fprintf(s.Out, "%s%s%s\n", color, msg, ui.ColorReset)
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
