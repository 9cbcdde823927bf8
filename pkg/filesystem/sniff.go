package filesystem

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/spf13/afero"
)

// DetectMediaType sniffs the content of path and returns its media type
// without parameters, e.g. "application/pdf"
func DetectMediaType(fsys afero.Fs, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMetadata, "cannot open %s", path)
	}
	defer func() { _ = f.Close() }()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMetadata, "cannot read %s", path)
	}
	return MediaType(mt.String())
}

// MediaType strips parameters from a media type string and lowers it
func MediaType(s string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid media type %q", s)
	}
	return mediaType, nil
}
