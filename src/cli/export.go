package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"connect-export/src/connectapi"
	"connect-export/src/export"
	"connect-export/src/runlog"
	"connect-export/src/safety"
)

func newExportCmd(stdout, stderr io.Writer) *cobra.Command {
	var force, yes, skipOnError bool
	var ignorePrefix string
	cmd := &cobra.Command{
		Use:   "export DEST [PROFILE] [INCLUDE-PREFIX]",
		Short: "Export one instance's prompts, hours, queues, routing profiles, and flows",
		Long: `Export the configuration of the Amazon Connect instance whose alias is
DEST (or the basename of DEST, when DEST is a path) into that directory.

PROFILE selects a shared AWS config profile; empty uses the default
credential chain. INCLUDE-PREFIX restricts contact flows and flow modules to
names starting with the prefix ("Default "-named items always pass).`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 3 {
				return &usageError{err: fmt.Errorf("expected DEST [PROFILE] [INCLUDE-PREFIX], got %d arguments", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := args[0]
			var profile, includePrefix string
			if len(args) > 1 {
				profile = args[1]
			}
			if len(args) > 2 {
				includePrefix = args[2]
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			dir, _ := export.SplitDest(dest)
			if force {
				if _, err := os.Stat(dir); err == nil {
					ok, err := safety.Confirm(safety.Options{Yes: yes}, cmd.InOrStdin(), stdout,
						fmt.Sprintf("Replace existing export directory %s?", dir))
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("aborted")
					}
				}
			}

			client, err := connectapi.Connect(ctx, profile)
			if err != nil {
				return err
			}
			if parent := filepath.Dir(dir); parent != "." {
				if err := os.MkdirAll(parent, 0o755); err != nil {
					return err
				}
			}
			log, err := runlog.Open(export.LogPath(dir))
			if err != nil {
				return err
			}
			defer log.Close()

			return export.Run(ctx, client, log, stdout, export.Options{
				Dest:        dest,
				Force:       force,
				SkipOnError: skipOnError,
				Filter: export.NameFilter{
					IncludePrefix: includePrefix,
					ExcludePrefix: ignorePrefix,
				},
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing output directory")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Assume 'yes' to prompts and run non-interactively")
	cmd.Flags().BoolVar(&skipOnError, "skip-on-error", false, "Skip flows and modules that fail to describe or are unpublished")
	cmd.Flags().StringVar(&ignorePrefix, "ignore-prefix", "", "Exclude resources whose name starts with this prefix")
	return cmd
}
