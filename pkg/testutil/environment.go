package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/organize-rs/organize-sub000/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero.MemMapFs, no real filesystem
	EnvIsolated                  // Real filesystem in a temp directory
)

// FixedNow is the clock reading of every test environment
var FixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// TestEnvironment is a filesystem root with a fixed clock
type TestEnvironment struct {
	FS   afero.Fs
	Root string
	Now  time.Time
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates an empty root directory of the given type
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType, Now: FixedNow}
	switch envType {
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.Root = t.TempDir()
	default:
		env.FS = afero.NewMemMapFs()
		env.Root = "/tmp/organize-test"
	}

	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("Failed to create test root %s: %v", env.Root, err)
	}
	return env
}

// Clock returns the environment's fixed time
func (env *TestEnvironment) Clock() time.Time {
	return env.Now
}

// Path joins rel onto the root. Paths already below the root are returned
// unchanged.
func (env *TestEnvironment) Path(rel string) string {
	if filepath.IsAbs(rel) && strings.HasPrefix(rel, env.Root) {
		return rel
	}
	return filepath.Join(env.Root, rel)
}

// File creates a file of size bytes, with parents, modified at Now
func (env *TestEnvironment) File(rel string, size int) string {
	env.t.Helper()
	return env.FileAged(rel, size, 0)
}

// FileAged creates a file of size bytes last modified age before Now
func (env *TestEnvironment) FileAged(rel string, size int, age time.Duration) string {
	env.t.Helper()

	path := env.Path(rel)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(env.FS, path, []byte(strings.Repeat("x", size)), 0644); err != nil {
		env.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	env.Age(rel, age)
	return path
}

// Content creates a file with the given content
func (env *TestEnvironment) Content(rel string, content []byte) string {
	env.t.Helper()

	path := env.Path(rel)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(env.FS, path, content, 0644); err != nil {
		env.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// Dir creates a directory with parents
func (env *TestEnvironment) Dir(rel string) string {
	env.t.Helper()

	path := env.Path(rel)
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// Age sets the access and modification times of rel to age before Now
func (env *TestEnvironment) Age(rel string, age time.Duration) {
	env.t.Helper()

	path := env.Path(rel)
	ts := env.Now.Add(-age)
	if err := env.FS.Chtimes(path, ts, ts); err != nil {
		env.t.Fatalf("Failed to set times on %s: %v", path, err)
	}
}

// Symlink creates a symbolic link at rel pointing to target. It needs a
// filesystem that supports links, so it skips on EnvMemoryOnly.
func (env *TestEnvironment) Symlink(target, rel string) string {
	env.t.Helper()

	linker, ok := env.FS.(afero.Linker)
	if !ok || env.Type == EnvMemoryOnly {
		env.t.Skip("symlinks need an isolated environment")
	}
	path := env.Path(rel)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent directory for symlink %s: %v", path, err)
	}
	if err := linker.SymlinkIfPossible(target, path); err != nil {
		env.t.Fatalf("Failed to create symlink %s: %v", path, err)
	}
	return path
}

// Remove deletes rel and everything below it
func (env *TestEnvironment) Remove(rel string) {
	env.t.Helper()

	if err := env.FS.RemoveAll(env.Path(rel)); err != nil && !os.IsNotExist(err) {
		env.t.Fatalf("Failed to remove %s: %v", rel, err)
	}
}
