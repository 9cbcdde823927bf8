package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/config"
	"github.com/organize-rs/organize-sub000/pkg/display"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/paths"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		formatName string
		output     string
		force      bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// An output file without --rules-format picks the format from its extension
			if output != "" && !cmd.Flags().Changed("rules-format") {
				if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
					formatName = ext
				}
			}
			format, err := config.ParseFormat(formatName)
			if err != nil {
				return err
			}

			content, err := config.GenerateSample(format)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			path, err := paths.NormalizePath(output)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrFileExists, path).
					WithDetail("path", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", filepath.Dir(path))
			}
			if err := os.WriteFile(path, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path)
			}

			return display.NewTextRenderer(cmd.ErrOrStderr()).RenderMessage(fmt.Sprintf(MsgGenConfigWritten, path))
		},
	}

	cmd.Flags().StringVar(&formatName, "rules-format", "yaml", MsgFlagGenFormat)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
