package commands

import (
	"github.com/spf13/cobra"

	"kentkonut/config"
	"kentkonut/pkg/logger"
)

// Register adds every sub-command to root
func Register(root *cobra.Command) {
	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newCreateAdminCmd(),
		newCacheCmd(),
	)
}

// env configuration and a console logger shared by the commands
type env struct {
	cfg    *config.Config
	logger *logger.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger.NewLogger(cfg.LogLevel)}, nil
}
