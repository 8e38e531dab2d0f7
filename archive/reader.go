package archive

import (
	"archive/tar"
	"path/filepath"
)

type TarReader interface {
	Next() (*tar.Header, error)
	Read(b []byte) (int, error)
}

type NormalizingTarReader struct {
	TarReader
	headerOpts []HeaderOpt
}

func NewNormalizingTarReader(tr TarReader) *NormalizingTarReader {
	return &NormalizingTarReader{TarReader: tr}
}

func (tr *NormalizingTarReader) PrependDir(dir string) {
	tr.headerOpts = append(tr.headerOpts, func(hdr *tar.Header) *tar.Header {
		hdr.Name = filepath.Join(dir, hdr.Name)
		return hdr
	})
}

func (tr *NormalizingTarReader) Next() (*tar.Header, error) {
	hdr, err := tr.TarReader.Next()
	if err != nil {
		return nil, err
	}
	for _, opt := range tr.headerOpts {
		hdr = opt(hdr)
	}
	return hdr, nil
}
