package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
)

// DefaultPath is read when no explicit config path is given.
const DefaultPath = ".cosmic.yaml"

type Settings struct {
	DefaultEffect  string
	DefaultFont    string
	DefaultBorder  string
	DefaultColor   string
	MaxTextLength  int
	ListenAddr     string
	MaxConnections int
	LogLevel       string
	StrictEffects  bool
	FontDirs       []string
}

var settingsCache struct {
	mu       sync.RWMutex
	path     string
	exists   bool
	modTime  int64
	settings Settings
}

func DefaultSettings() Settings {
	return Settings{
		DefaultEffect:  "cyberpunk",
		DefaultFont:    "block",
		DefaultBorder:  "none",
		DefaultColor:   "",
		MaxTextLength:  64,
		ListenAddr:     "127.0.0.1:8420",
		MaxConnections: 64,
		LogLevel:       "info",
		StrictEffects:  false,
	}
}

// LoadSettings reads optional top-level keys from the config file at path
// (DefaultPath when empty):
// default_effect: fire
// default_font: block
// default_border: double
// default_color: '#00FF41'
// max_text_length: 64
// listen_addr: 127.0.0.1:8420
// max_connections: 64
// log_level: debug|info|warn|error
// strict_effects: true
// font_dirs:
//   - ./fonts
func LoadSettings(path string) Settings {
	s := DefaultSettings()
	if path == "" {
		path = DefaultPath
	}
	absPath, err := filepath.Abs(path)
	if err == nil {
		path = absPath
	}

	st, statErr := os.Stat(path)
	if statErr != nil {
		settingsCache.mu.RLock()
		if settingsCache.path == path && !settingsCache.exists {
			cached := settingsCache.settings
			settingsCache.mu.RUnlock()
			return cached
		}
		settingsCache.mu.RUnlock()
		settingsCache.mu.Lock()
		settingsCache.path = path
		settingsCache.exists = false
		settingsCache.modTime = 0
		settingsCache.settings = s
		settingsCache.mu.Unlock()
		return s
	}

	modTime := st.ModTime().UnixNano()
	settingsCache.mu.RLock()
	if settingsCache.path == path && settingsCache.exists && settingsCache.modTime == modTime {
		cached := settingsCache.settings
		settingsCache.mu.RUnlock()
		return cached
	}
	settingsCache.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.Trim(strings.TrimSpace(kv[1]), `"'`)

		switch key {
		case "default_effect":
			if val != "" {
				s.DefaultEffect = strings.ToLower(val)
			}
		case "default_font":
			if val != "" {
				s.DefaultFont = val
			}
		case "default_border":
			if val != "" {
				s.DefaultBorder = strings.ToLower(val)
			}
		case "default_color":
			if val == "" {
				break
			}
			if c, err := effect.FromHex(val); err == nil {
				s.DefaultColor = c.Hex()
			}
		case "max_text_length":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				s.MaxTextLength = n
			}
		case "listen_addr":
			if val != "" {
				s.ListenAddr = val
			}
		case "max_connections":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				s.MaxConnections = n
			}
		case "log_level":
			level := strings.ToLower(val)
			if level == "debug" || level == "info" || level == "warn" || level == "error" {
				s.LogLevel = level
			}
		case "strict_effects":
			if b, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
				s.StrictEffects = b
			}
		}
	}
	if s.StrictEffects && !effect.Valid(effect.Name(s.DefaultEffect)) {
		s.DefaultEffect = DefaultSettings().DefaultEffect
	}
	s.FontDirs = LoadFontDirs(path)

	settingsCache.mu.Lock()
	settingsCache.path = path
	settingsCache.exists = true
	settingsCache.modTime = modTime
	settingsCache.settings = s
	settingsCache.mu.Unlock()

	return s
}
