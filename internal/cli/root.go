package cli

import (
	"embed"

	"github.com/organize-rs/organize-sub000/internal/version"
	"github.com/organize-rs/organize-sub000/pkg/cobrax/topics"
	"github.com/organize-rs/organize-sub000/pkg/config"
	"github.com/organize-rs/organize-sub000/pkg/display"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/logging"
	"github.com/organize-rs/organize-sub000/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

const topicsDir = "topics"

// rootOptions holds the global flags shared by every command
type rootOptions struct {
	verbosity  int
	configPath string
	format     string
	paths      paths.Paths
}

// loadSettings reads the settings file named by --config, or the default
// one in the config directory. Flags given on the command line are layered
// on top through overrides.
func (o *rootOptions) loadSettings(overrides map[string]any) (*config.Settings, error) {
	path := o.configPath
	if path == "" {
		path = o.paths.SettingsPath()
	}
	if overrides == nil {
		overrides = map[string]any{}
	}
	if o.format != "" {
		overrides["output.format"] = o.format
	}
	return config.LoadSettings(path, overrides)
}

// renderer builds the renderer for output.format
func (o *rootOptions) renderer(cmd *cobra.Command, settings *config.Settings) (display.Renderer, error) {
	format, err := display.ParseFormat(settings.Output.Format)
	if err != nil {
		return nil, err
	}
	return display.NewRenderer(format, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{paths: paths.New()}

	rootCmd := &cobra.Command{
		Use:     "organize",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return display.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "Configuration:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newParseRangeCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topics are embedded, so a scan error can only come from a broken build
	topicOpts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, afero.FromIOFS{FS: topicFiles}, topicsDir, topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
