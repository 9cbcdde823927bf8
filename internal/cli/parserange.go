package cli

import (
	"fmt"
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/ranges"
	"github.com/spf13/cobra"
)

func parseDomain(s string) (ranges.Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "size":
		return ranges.DomainSize, nil
	case "time", "age":
		return ranges.DomainTime, nil
	default:
		return ranges.DomainSize, errors.Newf(errors.ErrInvalidInput, MsgErrUnknownDomain, s)
	}
}

func newParseRangeCmd() *cobra.Command {
	var domainName string

	cmd := &cobra.Command{
		Use:     "parse-range <expression>",
		Short:   MsgParseRangeShort,
		Long:    MsgParseRangeLong,
		Example: MsgParseRangeExample,
		GroupID: "config",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := parseDomain(domainName)
			if err != nil {
				return err
			}

			r, err := ranges.Parse(args[0], domain)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgRangeCanonical, r)
			if domain == ranges.DomainTime {
				_, _ = fmt.Fprintf(out, MsgRangeHuman, r.HumanDuration())
			} else {
				_, _ = fmt.Fprintf(out, MsgRangeHuman, r.HumanSize())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainName, "domain", "d", "size", MsgFlagDomain)
	_ = cmd.RegisterFlagCompletionFunc("domain", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"size", "time"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
