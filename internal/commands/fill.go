package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

func newFillCmd(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fill <form-structure.json|yaml>",
		Short: "Fill a form in the terminal and print the submitted values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			renderer := tui.New(
				// prompts go to stderr so stdout carries only the values
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr(), survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))),
				tui.WithOutputFormat(tui.OutputFormat(format)),
			)
			out, err := renderer.Render(cmd.Context(), doc, render.RenderOptions{})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(tui.OutputFormatJSON), "Output format (json, form or pretty)")
	return cmd
}
