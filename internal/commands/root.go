// Package commands contains the formbuilder CLI command definitions.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/renderers/standalone"
)

type globalOptions struct {
	configPath string
	envFile    string
	lookup     config.LookupFunc
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(lookup config.LookupFunc) *cobra.Command {
	opts := &globalOptions{lookup: lookup}
	rootCmd := &cobra.Command{
		Use:           "formbuilder",
		Short:         "Build forms from a field palette and export them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to formbuilder.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file with FORMBUILDER_* overrides")

	rootCmd.AddCommand(
		newEditCmd(opts),
		newServeCmd(opts),
		newRenderCmd(opts),
		newFillCmd(opts),
		newInitConfigCmd(),
	)
	return rootCmd
}

// app is the per-invocation runtime shared by commands.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func loadApp(opts *globalOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath, opts.envFile, opts.lookup)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func (a *app) selector() (*standalone.Selector, error) {
	sel, err := standalone.NewSelector()
	if err != nil {
		return nil, err
	}
	return sel.WithDefaults(a.cfg.Theme.Name, a.cfg.Theme.Variant), nil
}

// readDocument decodes a structural document, choosing YAML by extension.
func readDocument(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return formbuilder.DecodeDocument(path, data)
}
