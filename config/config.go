// Package config loads optional project settings from an .autoi18n.yaml
// file at the scan root. Everything in it can also be given on the
// command line; explicit flags win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up under the scan
// root.
const FileName = ".autoi18n.yaml"

// Project holds per-project configuration.
type Project struct {
	// Out is the output directory for the generated modules.
	Out string `yaml:"out"`
	// Languages is the output language list for the generated runtime
	// module.
	Languages []string `yaml:"languages"`
	// Style is an extra style directive appended to every translation
	// prompt.
	Style string `yaml:"style"`
}

// Load reads the project file under root. A missing file is not an
// error: the zero Project is returned and flag/env defaults apply.
func Load(root string) (*Project, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Project{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var proj Project
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &proj, nil
}
