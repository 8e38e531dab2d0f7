package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
)

// AddDirToArchive writes every entry under srcDir to tw with paths relative
// to srcDir; srcDir itself is written as ".".
func AddDirToArchive(tw TarWriter, srcDir string) error {
	srcDir = filepath.Clean(srcDir)

	return filepath.Walk(srcDir, func(file string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(srcDir, file)
		if err != nil {
			return err
		}
		return AddFileToArchive(tw, relPath, file, fi)
	})
}

func AddFileToArchive(tw TarWriter, name, path string, fi os.FileInfo) error {
	if fi.Mode()&os.ModeSocket != 0 {
		return nil
	}
	var target string
	if fi.Mode()&os.ModeSymlink != 0 {
		var err error
		target, err = os.Readlink(path)
		if err != nil {
			return err
		}
	}
	header, err := tar.FileInfoHeader(fi, target)
	if err != nil {
		return err
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if fi.Mode().IsRegular() {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
	}
	return nil
}
