package cli

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/biztime-backend-go/internal/config"
	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/biztime-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/biztime-backend-go/internal/repository/postgresql"
)

const (
	storePostgres = "postgres"
	storeMemory   = "memory"
)

type repositories struct {
	companies company.CompanyRepository
	invoices  invoice.InvoiceRepository
	close     func()
}

func openRepositories(ctx context.Context, cfg *config.Config, kind string) (repositories, error) {
	switch kind {
	case storePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			companies: postgresql.NewCompanyRepository(db),
			invoices:  postgresql.NewInvoiceRepository(db),
			close:     db.Close,
		}, nil
	case storeMemory:
		store := memory.NewStore()
		return repositories{
			companies: memory.NewCompanyRepository(store),
			invoices:  memory.NewInvoiceRepository(store),
			close:     func() {},
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown store %q, want %q or %q", kind, storePostgres, storeMemory)
	}
}
