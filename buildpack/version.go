package buildpack

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z.-]+))?$`)

// Version is a semantic version of a buildpack.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   string
}

func ParseVersion(v string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(v)
	if len(matches) != 5 {
		return Version{}, errors.Errorf("invalid buildpack version '%s'", v)
	}
	major, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return Version{}, errors.Wrapf(err, "parsing Major '%s'", matches[1])
	}
	minor, err := strconv.ParseUint(matches[2], 10, 64)
	if err != nil {
		return Version{}, errors.Wrapf(err, "parsing Minor '%s'", matches[2])
	}
	patch, err := strconv.ParseUint(matches[3], 10, 64)
	if err != nil {
		return Version{}, errors.Wrapf(err, "parsing Patch '%s'", matches[3])
	}
	return Version{Major: major, Minor: minor, Patch: patch, Pre: matches[4]}, nil
}

func (v Version) String() string {
	if v.Pre == "" {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Pre)
}
