package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/generate"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/output"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/ui"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/frame"
	msges "github.com/pibulus/cosmic-horoscope-sub001/internal/messages"
)

var previewText string

var effectsCmd = &cobra.Command{
	Use:   "effects",
	Short: "List color effects with a preview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings(cmd)
		gen := generate.New(loadFonts(settings), settings)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("EffectsTitle"), ui.ColorReset)
		for _, name := range effect.Names() {
			d := msges.GetEffectMessage(string(name))
			res, err := gen.Generate(generate.Request{Text: previewText, Font: "plain", Effect: string(name), Border: "none"})
			if err != nil {
				return err
			}
			preview := output.ANSI(res.Colorized, output.TerminalProfile(os.Stdout))
			fmt.Fprintf(out, " %-10s %s  %s(%s) %s%s\n", name, preview, ui.ColorGray, d.Family, d.Description, ui.ColorReset)
		}
		return nil
	},
}

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List available fonts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings(cmd)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("FontsTitle"), ui.ColorReset)
		for _, name := range loadFonts(settings).Fonts() {
			fmt.Fprintf(out, " - %s\n", name)
		}
	},
}

var bordersCmd = &cobra.Command{
	Use:   "borders",
	Short: "List border styles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("BordersTitle"), ui.ColorReset)
		for _, name := range frame.Styles() {
			fmt.Fprintf(out, " - %s\n", name)
		}
	},
}

func init() {
	effectsCmd.Flags().StringVar(&previewText, "preview", "cosmic stars", "Text used for the previews")
	rootCmd.AddCommand(effectsCmd, fontsCmd, bordersCmd)
}
