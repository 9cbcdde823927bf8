package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/logging"
)

// EnvPrefix marks environment variables that override settings
const EnvPrefix = "ORGANIZE_"

// Settings is the application configuration outside of rule files
type Settings struct {
	Walker WalkerSettings `koanf:"walker"`
	Output OutputSettings `koanf:"output"`
	Rules  RulesSettings  `koanf:"rules"`
}

// WalkerSettings tunes directory traversal
type WalkerSettings struct {
	// ChannelCapacity bounds the entries buffered between walk and evaluation
	ChannelCapacity int `koanf:"channel_capacity"`
}

// OutputSettings selects how reports are rendered
type OutputSettings struct {
	Format string `koanf:"format"`
}

// RulesSettings names the rule files and tags used by default
type RulesSettings struct {
	Paths []string `koanf:"paths"`
	Tags  []string `koanf:"tags"`
}

// DefaultSettings returns the embedded defaults without user overrides
func DefaultSettings() (*Settings, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}
	return unmarshalSettings(k)
}

// LoadSettings layers the embedded defaults, the settings file at path,
// the environment and finally overrides, whose keys are dotted paths such
// as "output.format". A missing file is not an error; an empty path skips it.
func LoadSettings(path string, overrides ...map[string]any) (*Settings, error) {
	logger := logging.GetLogger("config.settings")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}

	// 2. User settings file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded settings file")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read settings file %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Command line
	for _, o := range overrides {
		if err := k.Load(confmap.Provider(o, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply setting overrides")
		}
	}

	return unmarshalSettings(k)
}

// envKey maps ORGANIZE_WALKER__CHANNEL_CAPACITY to walker.channel_capacity.
// Variables without a section separator belong to other packages.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.Contains(key, "__") {
		return ""
	}
	return strings.ReplaceAll(key, "__", ".")
}

func unmarshalSettings(k *koanf.Koanf) (*Settings, error) {
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks value ranges that the decoder cannot
func (s *Settings) Validate() error {
	if s.Walker.ChannelCapacity < 1 {
		return errors.Newf(errors.ErrConfigInvalid, "walker.channel_capacity must be at least 1, got %d", s.Walker.ChannelCapacity)
	}
	return nil
}
