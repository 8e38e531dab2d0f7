package shim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	cp "github.com/otiai10/copy"
	"github.com/pkg/errors"

	"github.com/heroku/cnb-shim/archive"
	"github.com/heroku/cnb-shim/buildpack"
	"github.com/heroku/cnb-shim/log"
)

// DefaultRegistry is the package registry shimmed buildpacks are fetched
// from. <registry>/<namespace>/<name>.tgz must serve a gzip-compressed tar.
const DefaultRegistry = "https://buildpack-registry.s3.amazonaws.com/buildpacks"

// binFiles are the entry points staged into every shimmed package.
var binFiles = []string{"detect", "build", "release", "exports"}

// Package is a fully assembled CNB package, buffered and ready to serve.
type Package struct {
	Filename string
	Data     []byte
}

// Shimmer converts legacy buildpack packages into CNB packages on demand.
// Fields are read-only after construction, so a single Shimmer is safe for
// concurrent use.
type Shimmer struct {
	BuildpackDir string
	Registry     string
	Downloader   Downloader
	Logger       log.Logger
}

func NewShimmer(buildpackDir, registry string, logger log.Logger) *Shimmer {
	return &Shimmer{
		BuildpackDir: buildpackDir,
		Registry:     registry,
		Downloader:   &PackageDownloader{},
		Logger:       logger,
	}
}

// Shim resolves the request, stages the shim entry points and the
// synthesized buildpack.toml, fetches the legacy package, unpacks it under
// target/, and packs the whole staging tree. All intermediate files live
// under one temp directory that is removed on every exit path.
func (s *Shimmer) Shim(namespace, name string, opts Options) (*Package, error) {
	req, err := ParseRequest(namespace, name, opts)
	if err != nil {
		return nil, err
	}
	s.Logger.Infof("shimming %s", req.ID)

	tmpDir, err := os.MkdirTemp("", "cnb-shim")
	if err != nil {
		return nil, NewServiceError(errors.Wrap(err, "creating staging directory"))
	}
	defer os.RemoveAll(tmpDir)

	stagingDir := filepath.Join(tmpDir, "buildpack")
	if err := s.prepare(&req, stagingDir); err != nil {
		return nil, NewServiceError(err)
	}

	archivePath := filepath.Join(tmpDir, "buildpack.tgz")
	uri := fmt.Sprintf("%s/%s.tgz", s.Registry, req.ID)
	s.Logger.Debugf("fetching %s", uri)
	if err := s.Downloader.Download(uri, archivePath); err != nil {
		if IsTransportError(err) {
			return nil, NewBadRequestError(err)
		}
		return nil, NewServiceError(err)
	}

	if err := archive.Unpack(archivePath, filepath.Join(stagingDir, "target")); err != nil {
		return nil, NewServiceError(err)
	}

	filename := uuid.New().String() + ".tgz"
	shimmedPath := filepath.Join(tmpDir, filename)
	if err := archive.Pack(stagingDir, shimmedPath); err != nil {
		return nil, NewServiceError(err)
	}
	s.Logger.Debugf("packed %s as %s", req.ID, filename)

	data, err := os.ReadFile(shimmedPath)
	if err != nil {
		return nil, NewServiceError(errors.Wrapf(err, "reading %s", shimmedPath))
	}
	return &Package{Filename: filename, Data: data}, nil
}

func (s *Shimmer) prepare(req *Request, stagingDir string) error {
	binDir := filepath.Join(stagingDir, "bin")
	if err := os.MkdirAll(binDir, 0777); err != nil {
		return errors.Wrapf(err, "creating %s", binDir)
	}
	for _, bin := range binFiles {
		src := filepath.Join(s.BuildpackDir, "bin", bin)
		if err := cp.Copy(src, filepath.Join(binDir, bin)); err != nil {
			return errors.Wrapf(err, "copying %s", src)
		}
	}
	return buildpack.WriteDescriptor(filepath.Join(stagingDir, "buildpack.toml"), req.Descriptor())
}
