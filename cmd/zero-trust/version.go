package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	zerotrust "github.com/zero-trust-ai/framework"
	"github.com/zero-trust-ai/framework/pkg/cli"
)

// versionReport is the output of the version command.
type versionReport zerotrust.BuildInfo

// WriteText implements cli.TextWriter.
func (r versionReport) WriteText(w io.Writer, styles *cli.Styles) error {
	rows := []struct{ label, value string }{
		{"Git Commit", r.GitCommit},
		{"Build Date", r.BuildDate},
		{"Go Version", r.GoVersion},
		{"OS/Arch", r.Platform},
		{"Status", r.Status},
	}

	if _, err := fmt.Fprintf(w, "%s %s\n", styles.Title.Render("Zero-Trust AI"), r.Version); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s %s\n", styles.Label.Render(row.label+":"), row.value); err != nil {
			return err
		}
	}
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including Git commit and build date.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.DebugContext(cmd.Context(), "printing version", "short", short)

			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), zerotrust.Version)
				return err
			}
			return a.print(cmd, versionReport(zerotrust.Info()))
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")
	return cmd
}
