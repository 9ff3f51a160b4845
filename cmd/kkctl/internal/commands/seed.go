package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kentkonut/internal/repository"
	"kentkonut/internal/seed"
	"kentkonut/internal/service"
	"kentkonut/pkg/database"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the corporate content and footer skeleton",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.logger.Close()

			db, err := database.Open(e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := seed.Run(cmd.Context(),
				service.NewCorporateService(repository.NewCorporateContentRepository(db), nil, e.logger),
				service.NewFooterService(repository.NewFooterRepository(db), nil, e.logger),
				e.logger,
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d corporate blocks, %d footer sections\n", res.CorporateBlocks, res.FooterSections)
			if res.CorporateBlocks+res.FooterSections > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "run `kkctl cache flush` if the API is running")
			}
			return nil
		},
	}
}
