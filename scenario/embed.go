package scenario

import (
	"embed"
	"fmt"
	"os"
)

//go:embed *.yaml
var scenariosFS embed.FS

// DefaultName is the scenario used when none is given on the command line.
const DefaultName = "default.yaml"

// Load reads a scenario by path. A file on disk wins over an embedded copy
// of the same name, so shipped scenarios can be tweaked without rebuilding.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		data, err = scenariosFS.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDefault loads the embedded default scenario.
func LoadDefault() (*Scenario, error) {
	return Load(DefaultName)
}
