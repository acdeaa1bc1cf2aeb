package cli

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/config"
	"github.com/cmlabs-hris/biztime-backend-go/internal/fixtures"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample companies and invoices into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			repos, err := openRepositories(cmd.Context(), cfg, storePostgres)
			if err != nil {
				return err
			}
			defer repos.close()

			seeded, err := fixtures.Seed(cmd.Context(), repos.companies, repos.invoices, time.Now())
			if err != nil {
				return err
			}
			for _, code := range seeded.CompanyCodes {
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %s with invoices %v\n", code, seeded.InvoiceIDs[code])
			}
			return nil
		},
	}
}
