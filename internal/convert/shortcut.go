package convert

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// shortcutSections are the INI sections that carry a URL key, checked in
// order. Windows .url files use InternetShortcut, freedesktop .desktop
// links use Desktop Entry.
var shortcutSections = []string{"InternetShortcut", "Desktop Entry"}

// ReadShortcut extracts the link from a browser shortcut file.
func ReadShortcut(path string) (string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shortcut file %s: %w", path, err)
	}
	for _, name := range shortcutSections {
		section := file.Section(name)
		if section.HasKey("URL") {
			return section.Key("URL").String(), nil
		}
	}
	return "", fmt.Errorf("no URL found in shortcut file %s", path)
}
