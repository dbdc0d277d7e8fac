package server

import (
	"context"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/config"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/logging"
	msges "github.com/pibulus/cosmic-horoscope-sub001/internal/messages"
)

type fontLoader interface {
	LoadDir(dir string) (int, error)
}

// WatchConfig reloads settings from path whenever it changes, until ctx is done.
// Fonts under font_dirs are loaded again on each reload; fonts already registered
// stay available even if their directory is removed from the list.
func (s *Server) WatchConfig(ctx context.Context, path string) error {
	w, err := config.NewWatcher(path, func(settings config.Settings) {
		s.applySettings(settings)
		logging.Info("%s", msges.GetUIMessage("ConfigReloaded", path))
	})
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx)
}

func (s *Server) applySettings(settings config.Settings) {
	if loader, ok := s.glyphs.(fontLoader); ok {
		for _, dir := range settings.FontDirs {
			n, err := loader.LoadDir(dir)
			if err != nil {
				logging.Warn("%s", msges.GetUIMessage("FontsLoadFailed", dir, err))
				continue
			}
			logging.Debug("%s", msges.GetUIMessage("FontsLoaded", n, dir))
		}
	}
	s.SetSettings(settings)
	logging.SetLevel(logging.ParseLevel(settings.LogLevel))
}
