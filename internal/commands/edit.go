package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/dialog"
	"github.com/goliatone/go-formbuilder/internal/editor"
	"github.com/goliatone/go-formbuilder/pkg/delivery"
	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

func newEditCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Build a form interactively in the terminal",
		Example: `  formbuilder edit
  FORMBUILDER_STORAGE_DRIVER=sqlite FORMBUILDER_STORAGE_PATH=forms.db formbuilder edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			store, err := storage.Open(a.cfg.Storage)
			if err != nil {
				return err
			}
			defer storage.Close(store)

			sink, err := delivery.NewDirSink(a.cfg.ExportDir)
			if err != nil {
				return err
			}
			sel, err := a.selector()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styles := editor.DefaultStyles()
			driver := tui.NewSurveyDriver(out)
			dlg := dialog.New(driver, dialog.WithLogger(a.logger))
			center := notify.NewCenter(
				notify.WithTTL(a.cfg.NoticeTTL),
				notify.WithListener(editor.NoticePrinter(out, styles)),
			)

			orch := orchestrator.New(
				orchestrator.WithStore(store),
				orchestrator.WithStorageKey(a.cfg.StorageKey),
				orchestrator.WithSink(sink),
				orchestrator.WithNotifier(center),
				orchestrator.WithEditor(dlg),
				orchestrator.WithConfirmer(dlg),
				orchestrator.WithLogger(a.logger),
				orchestrator.WithThemeSelector(sel, a.cfg.Theme.Name, a.cfg.Theme.Variant),
				orchestrator.WithExportOptions(render.RenderOptions{Title: a.cfg.Title}),
			)
			if err := orch.Err(); err != nil {
				return err
			}

			session := editor.New(orch, driver,
				editor.WithOutput(out),
				editor.WithStyles(styles),
				editor.WithTitle(a.cfg.Title),
				editor.WithLogger(a.logger),
			)
			return session.Run(cmd.Context())
		},
	}
}
