/*
Package cli provides command-line interface utilities for the zero-trust command.

Output Formatting:

Command results can be printed as styled text, JSON or YAML:

	formatter := cli.NewFormatter(cli.FormatJSON, styles)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Values that implement TextWriter control their own text rendering; anything
else is printed with %v.

Styles:

Styles wraps lipgloss styles bound to one output stream. Color is dropped
automatically when the stream is not a terminal, and can be turned off
explicitly:

	styles := cli.NewStyles(os.Stdout, !cfg.Output.NoColor)
	fmt.Fprintln(os.Stdout, styles.Title.Render("Roadmap"))

Signal Handling:

For cancellation on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
*/
package cli
