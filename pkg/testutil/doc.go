// Package testutil provides fixtures for testing organize components.
//
// Key components:
//   - TestEnvironment: a filesystem root with a fixed clock
//   - File, Dir, Symlink: declarative fixture setup with sizes and ages
//   - EntryNames, EntryPaths: compact views of walker and runner output
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly (afero.MemMapFs) for speed and
//     isolation
//   - Tests that read OS timestamps or symlinks use EnvIsolated, which is a
//     real directory under t.TempDir
//   - Fixture ages are relative to TestEnvironment.Now, never to time.Now
package testutil
