// Package config loads organize settings and rule files.
//
// Settings are layered with koanf: the embedded defaults.toml first, then the
// user's settings.toml, then ORGANIZE_* environment variables. Nested keys in
// the environment use a double underscore, so ORGANIZE_WALKER__CHANNEL_CAPACITY
// sets walker.channel_capacity.
//
// Rule files are YAML or TOML, chosen by file extension. Each file holds a
// top level "rules" list which is decoded into a File and converted into
// rules.Rule values. Ranges, patterns and kinds are parsed at load time, so a
// loaded rule never fails on configuration during a run.
package config
