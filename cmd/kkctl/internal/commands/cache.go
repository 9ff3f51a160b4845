package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kentkonut/internal/service"
	"kentkonut/pkg/database"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Response cache maintenance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Delete every cached API response from redis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.logger.Close()

			client, err := database.NewRedisClient(e.cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()

			n, err := service.FlushCache(cmd.Context(), client, service.CachePrefix+"*")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d keys\n", n)
			return nil
		},
	})
	return cmd
}
