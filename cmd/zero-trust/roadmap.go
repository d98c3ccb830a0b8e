package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zero-trust-ai/framework/internal/roadmap"
	"github.com/zero-trust-ai/framework/pkg/cli"
)

// roadmapReport is the output of the roadmap command.
type roadmapReport struct {
	Current    roadmap.Stage       `json:"current" yaml:"current"`
	Milestones []roadmap.Milestone `json:"milestones" yaml:"milestones"`
}

// WriteText implements cli.TextWriter.
func (r roadmapReport) WriteText(w io.Writer, styles *cli.Styles) error {
	if len(r.Milestones) > 1 {
		header := fmt.Sprintf("Roadmap (current: %s)", r.Current)
		if _, err := fmt.Fprintf(w, "%s\n\n", styles.Title.Render(header)); err != nil {
			return err
		}
	}

	for i, m := range r.Milestones {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		status := styles.Pending.Render(string(m.Status))
		if m.Implemented() {
			status = styles.Success.Render(string(m.Status))
		}

		if _, err := fmt.Fprintf(w, "%s  %s  [%s]\n", styles.Heading.Render(m.Stage.String()), m.Title, status); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", styles.Muted.Render(m.Summary)); err != nil {
			return err
		}
		for _, f := range m.Features {
			if _, err := fmt.Fprintf(w, "  - %s\n", f); err != nil {
				return err
			}
		}
	}
	return nil
}

func newRoadmapCmd(a *app) *cobra.Command {
	var stage int

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "List the delivery stages and their status",
		Long: `List the roadmap stages of the framework.

Stage 0 is the foundation shipped today. Stages 1 to 4 (Guardian core, MCP
security, RAG integration, multi-agent security) are planned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := roadmapReport{Current: roadmap.Current().Stage}

			if cmd.Flags().Changed("stage") {
				m, ok := roadmap.Lookup(roadmap.Stage(stage))
				if !ok {
					return cli.NewCommandError("roadmap", fmt.Errorf("unknown stage %d", stage))
				}
				report.Milestones = []roadmap.Milestone{m}
			} else {
				report.Milestones = roadmap.Milestones()
			}

			a.logger.DebugContext(cmd.Context(), "listing roadmap", "milestones", len(report.Milestones))
			return a.print(cmd, report)
		},
	}

	cmd.Flags().IntVar(&stage, "stage", 0, "show a single stage")
	return cmd
}
