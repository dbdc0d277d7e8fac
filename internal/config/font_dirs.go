package config

import (
	"bufio"
	"os"
	"strings"
)

// LoadFontDirs reads the config file at path and returns the directories listed under:
// font_dirs:
//   - './fonts'
func LoadFontDirs(path string) []string {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var dirs []string
	inSection := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "font_dirs:") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.HasPrefix(line, "- ") {
			d := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			d = strings.Trim(d, `"'`)
			if d != "" {
				dirs = append(dirs, d)
			}
			continue
		}
		// leave section if another top-level key starts
		if strings.Contains(line, ":") && !strings.HasPrefix(line, "-") {
			inSection = false
		}
	}
	return dirs
}
