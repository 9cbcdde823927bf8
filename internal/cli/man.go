package cli

import (
	"os"

	"github.com/organize-rs/organize-sub000/internal/version"
	"github.com/organize-rs/organize-sub000/pkg/display"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// ManHeader is shared by the man command and the standalone generator
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "ORGANIZE",
		Section: "1",
		Source:  "organize " + version.Version,
		Manual:  "organize manual",
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Long:    MsgManLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := paths.NormalizePath(dir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "cannot create %s", target)
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), target); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "man page generation failed")
			}
			return display.NewTextRenderer(cmd.ErrOrStderr()).RenderMessage("Wrote man pages to " + target)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}
