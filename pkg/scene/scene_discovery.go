package scene

import (
	"fmt"
	"sort"
)

// builders maps scene names to their constructors. New demo scenes
// register here and become available to both the CLI and the web server.
var builders = map[string]func() (*Scene, error){
	"default": NewDefaultScene,
	"ortho":   NewOrthographicScene,
}

// ByName constructs the named demo scene
func ByName(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder()
}

// Names returns the available demo scene names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
