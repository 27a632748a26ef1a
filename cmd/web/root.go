package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thumbforge.studio/site/internal/config"
	"thumbforge.studio/site/internal/observability"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"addr":      "server.addr",
	"out":       "build.output_dir",
}

type app struct {
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "thumbforge-web",
		Short: "ThumbForge Studio marketing site",
		Long: `thumbforge-web serves the ThumbForge Studio landing page over HTTP
or exports it, together with its assets, as a static site.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./thumbforge.yaml)")
	root.PersistentFlags().String("log-level", "", "minimum log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd(a), newBuildCmd(a), newVersionCmd())
	return root
}

func (a *app) initialize(cmd *cobra.Command) error {
	overrides := map[string]any{}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(config.WithConfigFile(a.cfgFile), config.WithOverrides(overrides))
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}
