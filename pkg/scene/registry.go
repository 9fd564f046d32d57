package scene

import (
	"fmt"
	"sort"
	"strings"
)

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]func() *Scene{
	"cornell":       NewCornellScene,
	"cornell-metal": NewCornellMetalScene,
}

// New creates a built-in scene by name
func New(name string) (*Scene, error) {
	constructor, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return constructor(), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
