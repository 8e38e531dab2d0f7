package shim

import (
	"io"
	"net/http"
	"os"

	"github.com/pkg/errors"
)

//go:generate mockgen -package testmock -destination testmock/downloader.go github.com/heroku/cnb-shim Downloader
type Downloader interface {
	Download(uri, dest string) error
}

type DownloadErrorType string

const DownloadErrTransport DownloadErrorType = "ERR_TRANSPORT"
const DownloadErrIO DownloadErrorType = "ERR_IO"

// DownloadError distinguishes failures reaching the remote side from
// failures writing the fetched bytes locally. The caller decides who is at
// fault based on Type.
type DownloadError struct {
	Err  error
	Type DownloadErrorType
}

func (de *DownloadError) Error() string {
	return de.Err.Error()
}

func newTransportError(err error) *DownloadError {
	return &DownloadError{Err: err, Type: DownloadErrTransport}
}

func newIOError(err error) *DownloadError {
	return &DownloadError{Err: err, Type: DownloadErrIO}
}

// IsTransportError reports whether err was a failure reaching the remote
// side, including a non-2xx response and a body stream that errored mid-read.
func IsTransportError(err error) bool {
	if de, ok := err.(*DownloadError); ok {
		return de.Type == DownloadErrTransport
	}
	return false
}

// PackageDownloader fetches packages over HTTP with the default transport.
type PackageDownloader struct{}

// Download issues a single GET for uri and streams the response body to a
// new file at dest. The file is only created after a usable response
// arrives. The copy loop is unrolled so read failures can be reported as
// transport errors and write failures as IO errors.
func (d *PackageDownloader) Download(uri, dest string) error {
	resp, err := http.Get(uri)
	if err != nil {
		return newTransportError(errors.Wrapf(err, "requesting %s", uri))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newTransportError(errors.Errorf("unexpected status '%s' requesting %s", resp.Status, uri))
	}

	f, err := os.Create(dest)
	if err != nil {
		return newIOError(errors.Wrapf(err, "creating %s", dest))
	}
	defer f.Close()

	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := f.Write(buf[:n]); err != nil {
				return newIOError(errors.Wrapf(err, "writing %s", dest))
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return newTransportError(errors.Wrapf(readErr, "reading %s", uri))
		}
	}
}
