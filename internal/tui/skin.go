package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/pulse/internal/logparse"
	"github.com/tinytelemetry/pulse/internal/model"
)

// Skin controls the chart palette. Colors are ANSI 256 codes or hex
// strings, keyed by status class.
type Skin struct {
	Name    string            `yaml:"name"`
	Classes map[string]string `yaml:"classes"`
	Axis    string            `yaml:"axis"`
	Label   string            `yaml:"label"`
}

var defaultSkin = Skin{
	Name: model.DefaultSkin,
	Classes: map[string]string{
		"1xx": "244", // gray
		"2xx": "40",  // green
		"3xx": "39",  // blue
		"4xx": "208", // orange
		"5xx": "196", // red
	},
	Axis:  "240",
	Label: "244",
}

var currentSkin = defaultSkin

// InitializeSkin loads the named skin from configDir/skins/<name>.yml and
// makes it active. The builtin default is used for the default name or
// when no skin file exists for the name.
func InitializeSkin(name, configDir string) error {
	if name == "" || name == model.DefaultSkin {
		currentSkin = defaultSkin
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		currentSkin = defaultSkin
		return fmt.Errorf("reading skin file %s: %w", path, err)
	}

	skin := defaultSkin
	skin.Name = name
	if err := yaml.Unmarshal(data, &skin); err != nil {
		currentSkin = defaultSkin
		return fmt.Errorf("parsing skin file %s: %w", path, err)
	}
	if skin.Classes == nil {
		skin.Classes = defaultSkin.Classes
	}

	currentSkin = skin
	return nil
}

func (s Skin) colorFor(code int) string {
	if color, ok := s.Classes[logparse.StatusClass(code)]; ok && color != "" {
		return color
	}
	return defaultSkin.Classes[logparse.StatusClass(code)]
}
