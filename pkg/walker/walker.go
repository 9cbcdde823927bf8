// Package walker produces the entries of a Location as a lazy sequence and
// can move that sequence onto its own goroutine behind a bounded channel.
package walker

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"

	orgerrors "github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filesystem"
	"github.com/organize-rs/organize-sub000/pkg/logging"
	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// errStop ends a walk when the consumer stops ranging
var errStop = errors.New("walk stopped")

// Walker lists entries below locations on a filesystem
type Walker struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a walker over fs
func New(fs afero.Fs) *Walker {
	return &Walker{
		fs:     fs,
		logger: logging.GetLogger("walker"),
	}
}

// Entries returns the entries of loc, filtered by its target. The location
// itself is never yielded. Each call walks the filesystem again.
func (w *Walker) Entries(loc types.Location) (iter.Seq[types.Entry], error) {
	info, err := w.fs.Stat(loc.Path)
	if err != nil {
		return nil, orgerrors.Wrapf(err, orgerrors.ErrLocationAccess, "cannot access location %s", loc.Path).
			WithDetail("path", loc.Path)
	}
	if !info.IsDir() {
		return nil, orgerrors.Newf(orgerrors.ErrLocationAccess, "location %s is not a directory", loc.Path).
			WithDetail("path", loc.Path)
	}

	if !loc.Recursive {
		return w.children(loc), nil
	}
	return w.walk(loc), nil
}

func (w *Walker) children(loc types.Location) iter.Seq[types.Entry] {
	return func(yield func(types.Entry) bool) {
		infos, err := afero.ReadDir(w.fs, loc.Path)
		if err != nil {
			w.logger.Warn().Err(err).Str("location", loc.Path).Msg("Failed to read location")
			return
		}

		for _, info := range infos {
			e := filesystem.FromInfo(w.fs, filepath.Join(loc.Path, info.Name()), info)
			if !loc.Target.Accepts(e.Type) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (w *Walker) walk(loc types.Location) iter.Seq[types.Entry] {
	root := filepath.Clean(loc.Path)

	return func(yield func(types.Entry) bool) {
		err := afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				w.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
				return nil
			}
			if path == root {
				return nil
			}

			d := depth(root, path)
			if loc.MaxDepth > 0 && d > loc.MaxDepth {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			e := filesystem.FromInfo(w.fs, path, info)
			if loc.Target.Accepts(e.Type) && !yield(e) {
				return errStop
			}
			// Children of a directory at the depth limit are never yielded
			if loc.MaxDepth > 0 && d == loc.MaxDepth && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			w.logger.Warn().Err(err).Str("location", loc.Path).Msg("Walk ended early")
		}
	}
}

// depth counts path components below root; immediate children are depth 1
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}
