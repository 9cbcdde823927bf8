package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/config"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/rules"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "check [rule files...]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.loadSettings(nil)
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

			loaded, err := config.LoadRules(files...)
			if err != nil {
				return err
			}

			unsupported := 0
			for _, r := range loaded {
				if describeRule(cmd.OutOrStdout(), r) {
					unsupported++
				}
			}

			summary := fmt.Sprintf(MsgCheckSummary,
				len(loaded), pluralize(len(loaded), "rule", "rules"),
				len(files), pluralize(len(files), "file", "files"))
			if err := renderer.RenderMessage(summary); err != nil {
				return err
			}

			if unsupported == 0 {
				return nil
			}
			if strict {
				return errors.Newf(errors.ErrNotImplemented, MsgErrUnsupported,
					unsupported, pluralize(unsupported, "rule", "rules"))
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgCheckUnsupported,
				unsupported, pluralize(unsupported, "rule", "rules")))
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

// describeRule writes one rule's summary and reports whether it uses
// filters that cannot be evaluated
func describeRule(w io.Writer, r rules.Rule) bool {
	marker := "✓"
	if reason := r.SkipReason(); reason != "" {
		marker = "○"
		_, _ = fmt.Fprintf(w, MsgCheckRule, marker, r.Name+" ("+reason+")")
	} else {
		_, _ = fmt.Fprintf(w, MsgCheckRule, marker, r.Name)
	}

	if len(r.Tags) > 0 {
		_, _ = fmt.Fprintf(w, MsgCheckDetail, "tags", strings.Join(r.Tags.Strings(), ", "))
	}
	for _, loc := range r.Locations {
		_, _ = fmt.Fprintf(w, MsgCheckDetail, "location", loc.String())
	}
	for _, g := range r.Groups {
		_, _ = fmt.Fprintf(w, MsgCheckDetail, "filters", g.String())
	}
	for _, a := range r.Actions {
		_, _ = fmt.Fprintf(w, MsgCheckDetail, "action", a.String())
	}

	stubs := r.Unsupported()
	if len(stubs) == 0 {
		return false
	}
	kinds := make([]string, len(stubs))
	for i, p := range stubs {
		kinds[i] = p.Kind().String()
	}
	_, _ = fmt.Fprintf(w, MsgCheckDetail, "not implemented", strings.Join(kinds, ", "))
	return true
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
