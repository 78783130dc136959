// Package utils provides file loading helpers for the emulator.
package utils

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile reads the given file into memory, transparently decompressing
// zip, gzip and 7z archives. For archives, the first file in the archive
// is returned.
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		decoder, err = gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
	case ".zip":
		zipReader, err := zip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, errors.New("utils: empty zip archive")
		}
		decoder, err = zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
	case ".7z":
		r, err := sevenzip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, errors.New("utils: empty 7z archive")
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, err
		}
	default:
		// not an archive, return the data as is
		return data, nil
	}

	return io.ReadAll(decoder)
}
