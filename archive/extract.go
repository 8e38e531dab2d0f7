package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type PathMode struct {
	Path string
	Mode os.FileMode
}

// Extract writes the entries of tr to disk. Modes are applied explicitly so
// the process umask never alters what the archive declares; directory modes
// are applied last so read-only directories can still be populated.
func Extract(tr TarReader) error {
	buf := make([]byte, 32*32*1024)
	dirsFound := make(map[string]bool)

	var pathModes []PathMode
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			for _, pathMode := range pathModes {
				if err := os.Chmod(pathMode.Path, pathMode.Mode); err != nil {
					return err
				}
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if _, err := os.Stat(hdr.Name); os.IsNotExist(err) {
				pathModes = append(pathModes, PathMode{hdr.Name, hdr.FileInfo().Mode()})
			}
			if err := os.MkdirAll(hdr.Name, os.ModePerm); err != nil {
				return err
			}
			dirsFound[hdr.Name] = true

		case tar.TypeReg:
			dirPath := filepath.Dir(hdr.Name)
			if !dirsFound[dirPath] {
				if _, err := os.Stat(dirPath); os.IsNotExist(err) {
					if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
						return err
					}
					dirsFound[dirPath] = true
				}
			}

			if err := writeFile(tr, hdr.Name, hdr.FileInfo().Mode(), buf); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.Symlink(hdr.Linkname, hdr.Name); err != nil {
				return err
			}
		default:
			return errors.Errorf("unknown file type in tar %d", hdr.Typeflag)
		}
	}
}

func writeFile(in io.Reader, path string, mode os.FileMode, buf []byte) error {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer fh.Close()
	if _, err := io.CopyBuffer(fh, in, buf); err != nil {
		return err
	}
	return fh.Chmod(mode)
}
