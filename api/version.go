package api

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var regex = regexp.MustCompile(`^(\d+)\.(\d+)$`)

// Version is a buildpack API version of the form <major>.<minor>.
type Version struct {
	Major,
	Minor uint64
}

func MustParse(v string) *Version {
	version, err := NewVersion(v)
	if err != nil {
		panic(err)
	}
	return version
}

func NewVersion(v string) (*Version, error) {
	matches := regex.FindStringSubmatch(v)
	if len(matches) != 3 {
		return nil, errors.Errorf("could not parse '%s' as api version", v)
	}
	major, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing Major '%s'", matches[1])
	}
	minor, err := strconv.ParseUint(matches[2], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing Minor '%s'", matches[2])
	}
	return &Version{Major: major, Minor: minor}, nil
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v *Version) Equal(other *Version) bool {
	if other == nil {
		return false
	}
	return v.Major == other.Major && v.Minor == other.Minor
}
