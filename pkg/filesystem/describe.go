package filesystem

import (
	"os"
	"path/filepath"

	"github.com/djherbis/times"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/spf13/afero"
)

// NewOS returns the production filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// Lstat stats path without following a final symlink when the backend
// supports it, and falls back to Stat otherwise
func Lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// Describe builds an Entry for path
func Describe(fsys afero.Fs, path string) (types.Entry, error) {
	info, err := Lstat(fsys, path)
	if err != nil {
		return types.Entry{}, errors.Wrapf(err, errors.ErrMetadata, "cannot stat %s", path).
			WithDetail("path", path)
	}
	return FromInfo(fsys, path, info), nil
}

// FromInfo builds an Entry from an already obtained FileInfo
func FromInfo(fsys afero.Fs, path string, info os.FileInfo) types.Entry {
	e := types.Entry{
		Path:     path,
		Name:     filepath.Base(path),
		Type:     fileType(info.Mode()),
		Modified: info.ModTime(),
	}
	if e.Type != types.Dir {
		e.Size = info.Size()
	}

	if _, ok := fsys.(*afero.OsFs); ok {
		if ts, err := times.Lstat(path); err == nil {
			e.Accessed = ts.AccessTime()
			if ts.HasBirthTime() {
				e.Created = ts.BirthTime()
			}
		}
	}
	return e
}

func fileType(mode os.FileMode) types.FileType {
	switch {
	case mode&os.ModeSymlink != 0:
		return types.Symlink
	case mode.IsDir():
		return types.Dir
	default:
		return types.File
	}
}

// IsEmpty reports whether a file has zero bytes or a directory has no
// immediate children
func IsEmpty(fsys afero.Fs, e types.Entry) (bool, error) {
	switch e.Type {
	case types.Dir:
		empty, err := afero.IsEmpty(fsys, e.Path)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrMetadata, "cannot read directory %s", e.Path)
		}
		return empty, nil
	case types.File:
		return e.Size == 0, nil
	default:
		return false, nil
	}
}
