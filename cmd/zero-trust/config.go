package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zero-trust-ai/framework/pkg/cli"
	"github.com/zero-trust-ai/framework/pkg/config"
)

// configReport is the output of config show.
type configReport struct {
	Source string         `json:"source" yaml:"source"`
	Config *config.Config `json:"config" yaml:"config"`
}

// WriteText implements cli.TextWriter.
func (r configReport) WriteText(w io.Writer, styles *cli.Styles) error {
	data, err := yaml.Marshal(r.Config)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", styles.Muted.Render("# source: "+r.Source)); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// validationReport is the output of config validate.
type validationReport struct {
	Path   string   `json:"path" yaml:"path"`
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// WriteText implements cli.TextWriter.
func (r validationReport) WriteText(w io.Writer, styles *cli.Styles) error {
	if r.Valid {
		_, err := fmt.Fprintf(w, "%s %s is valid\n", styles.Success.Render("✓"), r.Path)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %s is invalid\n", styles.Failure.Render("✗"), r.Path); err != nil {
		return err
	}
	for _, e := range r.Errors {
		if _, err := fmt.Fprintf(w, "  - %s\n", e); err != nil {
			return err
		}
	}
	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate configuration",
	}

	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigValidateCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after defaults, the .env file and environment
overrides have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, configReport{Source: a.configSource, Config: a.cfg})
		},
	}
}

func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Long: `Load and validate a configuration file, reporting every invalid field.
The file must exist.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.loadOptions(cmd)
			opts.Required = true

			report := validationReport{Path: a.cfgFile, Valid: true}

			_, err := config.Load(opts)
			if err != nil {
				report.Valid = false

				var verr config.ValidationError
				if errors.As(err, &verr) {
					for _, fe := range verr.Errors {
						report.Errors = append(report.Errors, fe.Error())
					}
				} else {
					report.Errors = []string{err.Error()}
				}
			}

			a.logger.DebugContext(cmd.Context(), "configuration validated",
				"path", report.Path,
				"valid", report.Valid,
				"errors", len(report.Errors),
			)

			if printErr := a.print(cmd, report); printErr != nil {
				return printErr
			}
			if !report.Valid {
				return cli.NewCommandError("config validate", fmt.Errorf("configuration %s is invalid", report.Path))
			}
			return nil
		},
	}
}
