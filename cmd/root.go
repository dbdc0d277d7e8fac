/*
Copyright (c) 2026 pibulus
*/

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/generate"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/interactive"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/output"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/ui"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/config"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/glyph"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/logging"
	msges "github.com/pibulus/cosmic-horoscope-sub001/internal/messages"
	appver "github.com/pibulus/cosmic-horoscope-sub001/internal/version"
)

var (
	version = appver.Value

	configPath string
	effectName string
	fontName   string
	borderName string
	baseColor  string
	format     string
	saveDir    string
	outPath    string
	strict     bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "cosmic [text...]",
	Short: "cosmic turns horoscope text into colorized ASCII art for terminals and web pages.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings(cmd)
		gen := generate.New(loadFonts(settings), settings)

		if len(args) == 0 {
			interactive.RunInteractiveMode(cmd, gen)
			return nil
		}
		return renderOnce(gen, strings.Join(args, " "))
	},
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s%v%s\n", ui.ColorRed, err, ui.ColorReset)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.Flags().StringVarP(&effectName, "effect", "e", "", "Color effect (see 'cosmic effects')")
	rootCmd.Flags().StringVarP(&fontName, "font", "f", "", "Font name (see 'cosmic fonts')")
	rootCmd.Flags().StringVarP(&borderName, "border", "b", "", "Border style (see 'cosmic borders')")
	rootCmd.Flags().StringVarP(&baseColor, "color", "c", "", "Hex color used by the 'none' effect")
	rootCmd.Flags().StringVar(&format, "format", "auto", "Output format: auto, ansi, html, json, plain")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the rendered output to this file instead of stdout")
	rootCmd.Flags().StringVar(&saveDir, "save", "", "Also save HTML and JSON copies into this directory")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Reject unknown effect names instead of using the fallback color")

	rootCmd.Long = ui.AsciiArt + `
cosmic renders text with a block or FIGlet font, frames it, and colors every glyph
with a positional effect such as fire, ocean or cyberpunk.

Usage:
   cosmic [text...] [flags]
   cosmic serve
   cosmic effects | fonts | borders

Example:
  cosmic Aries --effect fire
  cosmic "Today the stars align" --font plain --border stars --effect unicorn
  cosmic Leo --format html > leo.html
  cosmic serve --listen 127.0.0.1:8420

Run without arguments for the interactive prompt.
`
}

func loadSettings(cmd *cobra.Command) config.Settings {
	settings := config.LoadSettings(configPath)
	level := settings.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logging.Initialize(os.Stderr, logging.ParseLevel(level))
	return settings
}

func loadFonts(settings config.Settings) *glyph.Library {
	lib := glyph.NewLibrary()
	for _, dir := range settings.FontDirs {
		n, err := lib.LoadDir(dir)
		if err != nil {
			logging.Warn("%s", msges.GetUIMessage("FontsLoadFailed", dir, err))
			continue
		}
		logging.Debug("%s", msges.GetUIMessage("FontsLoaded", n, dir))
	}
	return lib
}

func renderOnce(gen *generate.Generator, text string) error {
	res, err := gen.Generate(generate.Request{
		Text:   text,
		Font:   fontName,
		Effect: effectName,
		Border: borderName,
		Color:  baseColor,
		Strict: strict,
	})
	if err != nil {
		return errors.New(msges.GetUIMessage("RenderFailed", err))
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", ui.ColorYellow, msges.GetUIMessage("RenderWarning", w), ui.ColorReset)
	}

	dest := os.Stdout
	if outPath != "" {
		if _, err := os.Stat(outPath); err == nil {
			ok, err := ui.Confirm(msges.GetUIMessage("OverwritePrompt", outPath))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(msges.GetUIMessage("WriteAborted", outPath))
				return nil
			}
		}
		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		dest = file
	}

	f, err := output.ParseFormat(format, dest)
	if err != nil {
		return err
	}

	profile := output.TerminalProfile(dest)
	if f == output.FormatANSI && profile == termenv.Ascii {
		profile = termenv.TrueColor
	}
	if dest == os.Stdout {
		warnIfTooWide(res)
	}

	if err := output.Write(dest, res, f, profile); err != nil {
		return err
	}

	if saveDir != "" {
		htmlPath, err := output.SaveHTMLDocument(saveDir, text, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s%s%s\n", ui.ColorGreen, msges.GetUIMessage("HTMLSaved", htmlPath), ui.ColorReset)
		jsonPath, err := output.SaveJSON(saveDir, text, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s%s%s\n", ui.ColorGreen, msges.GetUIMessage("JSONSaved", jsonPath), ui.ColorReset)
	}
	return nil
}

func warnIfTooWide(res generate.Result) {
	width := ui.TerminalWidth()
	if width == 0 {
		return
	}
	for _, row := range res.Plain {
		if w := runewidth.StringWidth(row); w > width {
			logging.Warn("rendered art is %d columns wide, terminal has %d", w, width)
			return
		}
	}
}
