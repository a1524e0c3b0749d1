package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/rentbuy-go/internal/config"
	"github.com/cloud-ru/rentbuy-go/internal/logging"
	"github.com/cloud-ru/rentbuy-go/internal/scenario"
)

type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "rentbuy",
		Short:         "Rent vs buy projection engine and service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newProjectCmd(a),
		newBreakEvenCmd(a),
	)
	return root
}

// loadScenario читает сценарий из файла или возвращает встроенный
func (a *app) loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path, a.cfg)
}
