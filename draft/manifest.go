// Package draft reads the optional per-directory appdraft.yaml manifest,
// which pins the project and endpoint a working directory belongs to.
package draft

import (
	"os"
	"path/filepath"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pathlib"
	yaml "gopkg.in/yaml.v2"
)

const ManifestName = "appdraft.yaml"

type Manifest struct {
	Project     string `yaml:"project"`
	AppName     string `yaml:"app_name,omitempty"`
	PackageName string `yaml:"package_name,omitempty"`
	Endpoint    string `yaml:"endpoint,omitempty"`
}

// Load parses one manifest file.
func Load(filename string) (*Manifest, error) {
	blob, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	manifest := &Manifest{}
	err = yaml.UnmarshalStrict(blob, manifest)
	if err != nil {
		return nil, err
	}
	return manifest, nil
}

// Save writes the manifest where Discover will find it.
func Save(filename string, manifest *Manifest) error {
	blob, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}
	return pathlib.WriteFile(filename, blob, 0o644)
}

// Discover walks from the directory upward looking for appdraft.yaml,
// the same way build tools find their per-tree configuration. A missing
// manifest is not an error; the result is just nil.
func Discover(directory string) *Manifest {
	here, err := filepath.Abs(directory)
	if err != nil {
		return nil
	}
	for {
		candidate := filepath.Join(here, ManifestName)
		if pathlib.IsFile(candidate) {
			manifest, err := Load(candidate)
			if err != nil {
				common.Uncritical("draft.discover", err)
				return nil
			}
			common.Trace("Using manifest %q", candidate)
			return manifest
		}
		parent := filepath.Dir(here)
		if parent == here {
			return nil
		}
		here = parent
	}
}
