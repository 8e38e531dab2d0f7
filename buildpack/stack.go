package buildpack

import "github.com/pkg/errors"

// Stack declares compatibility of a buildpack with a platform image.
// Shimmed buildpacks never declare mixins, but the key is always written
// so the served document carries an explicit empty list.
type Stack struct {
	ID     string   `toml:"id"`
	Mixins []string `toml:"mixins"`
}

func ParseStack(id string) (Stack, error) {
	if !idRegex.MatchString(id) {
		return Stack{}, errors.Errorf("invalid stack '%s'", id)
	}
	return Stack{ID: id, Mixins: []string{}}, nil
}
