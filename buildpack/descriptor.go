// Buildpack descriptor file (https://github.com/buildpacks/spec/blob/main/buildpack.md#buildpacktoml-toml).

package buildpack

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Descriptor struct {
	API       string                 `toml:"api"`
	Buildpack Info                   `toml:"buildpack"`
	Stacks    []Stack                `toml:"stacks"`
	Order     Order                  `toml:"order"`
	Metadata  map[string]interface{} `toml:"metadata"`
}

// Info is the buildpack identity block. Shimmed buildpacks carry no
// homepage, and clear_env is always written explicitly.
type Info struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	ClearEnv bool   `toml:"clear_env"`
}

type Order []Group

type Group struct {
	Group []GroupElement `toml:"group"`
}

type GroupElement struct {
	ID       string `toml:"id"`
	Version  string `toml:"version"`
	Optional bool   `toml:"optional,omitempty"`
}

func (d *Descriptor) String() string {
	return d.Buildpack.Name + " " + d.Buildpack.Version
}

func ReadDescriptor(path string) (*Descriptor, error) {
	var descriptor *Descriptor
	if _, err := toml.DecodeFile(path, &descriptor); err != nil {
		return &Descriptor{}, err
	}
	return descriptor, nil
}

func WriteDescriptor(path string, d *Descriptor) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(d)
}
