package buildpack

import (
	"regexp"

	"github.com/pkg/errors"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9./-]+$`)

// ID is a namespaced buildpack identifier, e.g. "heroku/java".
type ID struct {
	Namespace string
	Name      string
}

func ParseID(namespace, name string) (ID, error) {
	if namespace == "" || name == "" {
		return ID{}, errors.Errorf("invalid buildpack id '%s/%s'", namespace, name)
	}
	if !idRegex.MatchString(namespace + "/" + name) {
		return ID{}, errors.Errorf("invalid buildpack id '%s/%s'", namespace, name)
	}
	return ID{Namespace: namespace, Name: name}, nil
}

func (id ID) String() string {
	return id.Namespace + "/" + id.Name
}
