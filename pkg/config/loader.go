package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/logging"
	"github.com/organize-rs/organize-sub000/pkg/rules"
)

// LoadRules loads every rule file in order and returns their rules. Any
// error aborts the whole set. Rule names must be unique across files.
func LoadRules(paths ...string) ([]rules.Rule, error) {
	logger := logging.GetLogger("config.loader")

	var all []rules.Rule
	seen := make(map[string]string)
	for _, path := range paths {
		loaded, err := LoadRuleFile(path)
		if err != nil {
			return nil, err
		}
		for _, r := range loaded {
			if prev, dup := seen[r.Name]; dup {
				return nil, errors.Newf(errors.ErrConfigInvalid, "rule '%s' in %s is already defined in %s", r.Name, path, prev).
					WithDetail("rule", r.Name).
					WithDetail("path", path)
			}
			seen[r.Name] = path
		}
		all = append(all, loaded...)
		logger.Debug().Str("path", path).Int("rules", len(loaded)).Msg("Loaded rule file")
	}
	return all, nil
}

// LoadRuleFile reads one YAML or TOML rule file
func LoadRuleFile(path string) ([]rules.Rule, error) {
	f, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return f.ToRules()
}

// DecodeFile reads a rule file into its schema form without building rules
func DecodeFile(path string) (*File, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read rule file %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse rule file %s", path).
			WithDetail("path", path)
	}

	var f File
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &f,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				wordListHookFunc(),
				shorthandHookFunc(reflect.TypeOf(LocationSpec{}), "path"),
				shorthandHookFunc(reflect.TypeOf(ActionSpec{}), "action"),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &f, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid rule file %s", path).
			WithDetail("path", path)
	}
	return &f, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported rule file format %q, use .yaml or .toml", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// wordListHookFunc splits the comma separated form of in_name and in_path.
// Other list fields take a lone string as a single element.
func wordListHookFunc() mapstructure.DecodeHookFuncType {
	wordList := reflect.TypeOf(filters.WordList{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != wordList {
			return data, nil
		}
		return filters.ParseWordList(data.(string)), nil
	}
}

// shorthandHookFunc turns a plain string into a one-key map so that it decodes
// into a struct of type to
func shorthandHookFunc(to reflect.Type, key string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != to {
			return data, nil
		}
		return map[string]interface{}{key: data}, nil
	}
}
