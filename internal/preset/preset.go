package preset

import (
	"fmt"
	"sort"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
)

// Preset is a named starting style configuration.
type Preset interface {
	// GetName returns the preset name used on the command line.
	GetName() string

	// GetStyle returns the preset's style record.
	GetStyle() config.Style
}

var presets = make(map[string]Preset)

// Register adds a preset to the registry
func Register(p Preset) {
	presets[p.GetName()] = p
}

// Get returns a preset by name
func Get(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unsupported preset: %s", name)
	}
	return p, nil
}

// GetSupportedPresets returns a sorted list of registered preset names
func GetSupportedPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
