// Package paths resolves the directories organize reads from and writes to.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/organize (settings.toml, default rule files)
//   - State:  $XDG_STATE_HOME/organize (organize.log)
//
// # Environment Variables
//
//   - ORGANIZE_CONFIG_DIR: override the config directory
//   - ORGANIZE_STATE_DIR: override the state directory
//
// Paths in rule files may start with "~", which ExpandHome resolves.
package paths
