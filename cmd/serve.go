package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/ui"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/logging"
	msges "github.com/pibulus/cosmic-horoscope-sub001/internal/messages"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/server"
)

var (
	listenAddr  string
	watchConfig bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the render pipeline over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings(cmd)
		if listenAddr != "" {
			settings.ListenAddr = listenAddr
		}
		srv := server.New(loadFonts(settings), settings)

		ctx, cancel := ui.WaitForCancel(context.Background())
		defer cancel()

		if watchConfig {
			go func() {
				if err := srv.WatchConfig(ctx, configPath); err != nil && ctx.Err() == nil {
					logging.WithError(err, "watch config")
				}
			}()
		}

		logging.Info("%s", msges.GetUIMessage("ServeListening", settings.ListenAddr))
		if err := srv.ListenAndServe(ctx); err != nil {
			return err
		}
		logging.Info("%s", msges.GetUIMessage("ServeStopped"))
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides listen_addr)")
	serveCmd.Flags().BoolVar(&watchConfig, "watch", true, "Reload settings when the config file changes")
	rootCmd.AddCommand(serveCmd)
}
