package shim

import (
	"github.com/heroku/cnb-shim/api"
	"github.com/heroku/cnb-shim/buildpack"
)

const (
	DefaultVersion = "0.1.0"
	DefaultAPI     = "0.4"
)

var DefaultStacks = []string{"heroku-18", "heroku-20"}

// Options carries the raw, still unvalidated query parameters of a shim
// request.
type Options struct {
	Version string
	Name    string
	API     string
	Stacks  []string
}

// Request is a fully resolved shim request. Every field is validated and
// defaulted by ParseRequest.
type Request struct {
	ID      buildpack.ID
	Version buildpack.Version
	Name    string
	API     *api.Version
	Stacks  []buildpack.Stack
}

// ParseRequest validates the buildpack identifier and opts, resolving
// defaults for anything absent. All failures are bad-request errors.
func ParseRequest(namespace, name string, opts Options) (Request, error) {
	id, err := buildpack.ParseID(namespace, name)
	if err != nil {
		return Request{}, NewBadRequestError(err)
	}

	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	version, err := buildpack.ParseVersion(opts.Version)
	if err != nil {
		return Request{}, NewBadRequestError(err)
	}

	displayName := opts.Name
	if displayName == "" {
		displayName = id.Name
	}

	if opts.API == "" {
		opts.API = DefaultAPI
	}
	apiVersion, err := api.NewVersion(opts.API)
	if err != nil {
		return Request{}, NewBadRequestError(err)
	}

	stackIDs := opts.Stacks
	if len(stackIDs) == 0 {
		stackIDs = DefaultStacks
	}
	var stacks []buildpack.Stack
	for _, stackID := range stackIDs {
		stack, err := buildpack.ParseStack(stackID)
		if err != nil {
			return Request{}, NewBadRequestError(err)
		}
		stacks = append(stacks, stack)
	}

	return Request{
		ID:      id,
		Version: version,
		Name:    displayName,
		API:     apiVersion,
		Stacks:  stacks,
	}, nil
}

// Descriptor synthesizes the buildpack.toml manifest served for r.
func (r *Request) Descriptor() *buildpack.Descriptor {
	return &buildpack.Descriptor{
		API: r.API.String(),
		Buildpack: buildpack.Info{
			ID:      r.ID.String(),
			Name:    r.Name,
			Version: r.Version.String(),
		},
		Stacks:   r.Stacks,
		Order:    buildpack.Order{},
		Metadata: map[string]interface{}{},
	}
}
