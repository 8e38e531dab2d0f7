package archive

import (
	"archive/tar"
	"compress/gzip"
	"os"

	"github.com/pkg/errors"
)

// Unpack decompresses and extracts a gzip-compressed tar file into dest,
// creating dest if needed.
func Unpack(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "decompressing %s", src)
	}
	defer zr.Close()

	if err := os.MkdirAll(dest, 0777); err != nil {
		return err
	}
	tr := NewNormalizingTarReader(tar.NewReader(zr))
	tr.PrependDir(dest)
	return Extract(tr)
}

// Pack writes the contents of srcDir, rooted at ".", to a new gzip-compressed
// tar file at dest. Entry ownership is normalized to root.
func Pack(srcDir, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dest)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	tw := NewNormalizingTarWriter(tar.NewWriter(zw))
	tw.WithUID(0)
	tw.WithGID(0)

	if err := AddDirToArchive(tw, srcDir); err != nil {
		return errors.Wrapf(err, "archiving %s", srcDir)
	}
	if err := tw.Close(); err != nil {
		return err
	}
	return zw.Close()
}
