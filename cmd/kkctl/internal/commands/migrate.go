package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kentkonut/pkg/database"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.logger.Close()
			if err := database.MigrateDown(e.cfg.Database, steps); err != nil {
				return err
			}
			e.logger.Info("migrations rolled back", "steps", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				e, err := loadEnv()
				if err != nil {
					return err
				}
				defer e.logger.Close()
				if err := database.MigrateUp(e.cfg.Database); err != nil {
					return err
				}
				e.logger.Info("migrations applied", "driver", e.cfg.Database.Driver)
				return nil
			},
		},
		down,
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Set the schema version and clear the dirty flag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q", args[0])
				}
				e, err := loadEnv()
				if err != nil {
					return err
				}
				defer e.logger.Close()
				return database.MigrateForce(e.cfg.Database, version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				e, err := loadEnv()
				if err != nil {
					return err
				}
				defer e.logger.Close()
				version, dirty, err := database.MigrationVersion(e.cfg.Database)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			},
		},
	)
	return cmd
}
