package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/organize-rs/organize-sub000/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for organize
	EnvConfigDir = "ORGANIZE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for organize
	EnvStateDir = "ORGANIZE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under every XDG base
	AppDirName = "organize"

	// SettingsFile is the user settings file inside the config dir
	SettingsFile = "settings.toml"

	// DefaultRulesFile is the rule file used when none is given on the command line
	DefaultRulesFile = "rules.yaml"

	// LogFileName is the name of the log file
	LogFileName = "organize.log"
)

// Paths provides the directories organize uses
type Paths interface {
	ConfigDir() string
	StateDir() string
	SettingsPath() string
	DefaultRulesPath() string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance, respecting environment overrides
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	switch {
	case os.Getenv(EnvStateDir) != "":
		p.xdgState = expandHome(os.Getenv(EnvStateDir))
	case os.Getenv("XDG_STATE_HOME") != "":
		p.xdgState = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

// SettingsPath returns the path of the user settings file
func (p *paths) SettingsPath() string {
	return filepath.Join(p.xdgConfig, SettingsFile)
}

// DefaultRulesPath returns the rule file used when no path is passed
func (p *paths) DefaultRulesPath() string {
	return filepath.Join(p.xdgConfig, DefaultRulesFile)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath expands home, makes the path absolute and cleans it
func (p *paths) NormalizePath(path string) (string, error) {
	return NormalizePath(path)
}

// NormalizePath expands home, makes the path absolute and cleans it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
