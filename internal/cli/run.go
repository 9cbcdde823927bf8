package cli

import (
	"os"

	"github.com/organize-rs/organize-sub000/pkg/config"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/logging"
	"github.com/organize-rs/organize-sub000/pkg/paths"
	"github.com/organize-rs/organize-sub000/pkg/rules"
	"github.com/organize-rs/organize-sub000/pkg/runner"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:     "run [rule files...]",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.run")

			overrides := map[string]any{}
			if cmd.Flags().Changed("tags") {
				overrides["rules.tags"] = tags
			}
			settings, err := opts.loadSettings(overrides)
			if err != nil {
				return err
			}
			files, err := opts.ruleFiles(args, settings)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd, settings)
			if err != nil {
				return err
			}

			requested := settings.Rules.Tags

			logger.Info().
				Strs("files", files).
				Strs("tags", requested).
				Int("channel_capacity", settings.Walker.ChannelCapacity).
				Msg("Starting run")

			start, err := runner.New(runner.WithCapacity(settings.Walker.ChannelCapacity)).LoadConfigs(files...)
			if err != nil {
				return err
			}

			inspect, err := start.ApplyFilters(cmd.Context(), rules.ParseTags(requested))
			if err != nil {
				return err
			}

			report := inspect.HandleConflicts().Report()
			logger.Info().
				Str("run", report.ID).
				Int("entries", report.Total()).
				Int("skipped", len(report.Skipped)).
				Int("conflicts", len(report.Conflicts)).
				Dur("duration", report.Duration()).
				Msg("Run finished")

			return renderer.RenderReport(report)
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, MsgFlagTags)
	return cmd
}

// ruleFiles picks the rule files of a run: arguments first, then
// rules.paths from settings, then the default rule file
func (o *rootOptions) ruleFiles(args []string, settings *config.Settings) ([]string, error) {
	candidates := args
	if len(candidates) == 0 {
		candidates = settings.Rules.Paths
	}

	if len(candidates) == 0 {
		def := o.paths.DefaultRulesPath()
		if _, err := os.Stat(def); err != nil {
			return nil, errors.Newf(errors.ErrConfigLoad, MsgNoRuleFiles, def, def).
				WithDetail("path", def)
		}
		return []string{def}, nil
	}

	files := make([]string, 0, len(candidates))
	for _, c := range candidates {
		p, err := paths.NormalizePath(c)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "invalid rule file path %s", c)
		}
		files = append(files, p)
	}
	return files, nil
}
