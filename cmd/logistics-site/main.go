package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/preachit/logistics-site/internal/appstate"
	"github.com/preachit/logistics-site/internal/config"
	"github.com/preachit/logistics-site/internal/i18n"
	"github.com/preachit/logistics-site/internal/theme"
	"github.com/preachit/logistics-site/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "Preach It Enterprise"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	verbose bool
	appID   string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "logistics-site",
		Short:        "Preach It Enterprise logistics site",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg, opts.verbose)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.appID, "app-id", "", "application ID that scopes the stored preferences")
	return cmd
}

// loadConfig reads the environment; flags given on the command line win
func loadConfig(cmd *cobra.Command, opts options) (config.Env, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return config.Env{}, err
	}
	if cmd.Flags().Changed("app-id") {
		if opts.appID == "" {
			return config.Env{}, fmt.Errorf("--app-id must not be empty")
		}
		cfg.AppID = opts.appID
	}
	return cfg, nil
}

func run(cfg config.Env, verbose bool) error {
	logger, err := config.NewLogger(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting", zap.String("version", version), zap.String("app_id", cfg.AppID))

	myApp := app.NewWithID(cfg.AppID)
	window := myApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	scheme := theme.NewFyneScheme(myApp.Settings())
	defer scheme.Close()

	state := appstate.New(appstate.Options{
		Store:   config.NewSettings(myApp),
		Scheme:  scheme,
		Catalog: i18n.DefaultCatalog(),
		Logger:  logger,
	})
	defer state.Close()

	root := ui.NewRootUI(window, myApp, state, logger.Named("ui"))
	defer root.Close()

	window.ShowAndRun()
	logger.Info("Window closed")
	return nil
}
