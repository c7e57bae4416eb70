package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/internal/watch"
	"github.com/goliatone/go-formbuilder/pkg/codec"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/standalone"
)

type renderOptions struct {
	output  string
	title   string
	theme   string
	variant string
	action  string
	watch   bool
}

func newRenderCmd(opts *globalOptions) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <form-structure.json|yaml>",
		Short: "Render a structural document as a standalone HTML page",
		Example: `  formbuilder render form-structure.json -o form.html
  formbuilder render form-structure.yaml -o form.html --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()
			return runRender(cmd, a, args[0], ro)
		},
	}
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&ro.title, "title", "", "Page title (overrides config)")
	cmd.Flags().StringVar(&ro.theme, "theme", "", "Theme name (overrides config)")
	cmd.Flags().StringVar(&ro.variant, "variant", "", "Theme variant (overrides config)")
	cmd.Flags().StringVar(&ro.action, "action", "", "Form action URL")
	cmd.Flags().BoolVarP(&ro.watch, "watch", "w", false, "Re-render whenever the input changes (requires --output)")
	return cmd
}

func runRender(cmd *cobra.Command, a *app, input string, ro *renderOptions) error {
	if ro.watch && ro.output == "" {
		return errors.New("--watch requires --output")
	}
	themeName, variant := a.cfg.Theme.Name, a.cfg.Theme.Variant
	if ro.theme != "" {
		themeName = ro.theme
	}
	if ro.variant != "" {
		variant = ro.variant
	}
	title := a.cfg.Title
	if ro.title != "" {
		title = ro.title
	}

	sel, err := a.selector()
	if err != nil {
		return err
	}
	renderer, err := standalone.New(standalone.WithThemeSelector(sel, themeName, variant))
	if err != nil {
		return err
	}
	renderOpts := render.RenderOptions{Title: title, Action: ro.action}

	once := func(ctx context.Context) error {
		doc, err := readDocument(input)
		if err != nil {
			return err
		}
		page, err := codec.EncodeStandaloneMarkup(ctx, doc, renderer, renderOpts)
		if err != nil {
			return err
		}
		if ro.output == "" {
			_, err = cmd.OutOrStdout().Write(page)
			return err
		}
		if err := os.WriteFile(ro.output, page, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", ro.output, err)
		}
		a.logger.Info("form rendered", zap.String("input", input), zap.String("output", ro.output), zap.Int("fields", len(doc)))
		fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", ro.output)
		return nil
	}

	if err := once(cmd.Context()); err != nil {
		return err
	}
	if !ro.watch {
		return nil
	}
	return watch.File(cmd.Context(), input, once, watch.Options{Logger: a.logger})
}
