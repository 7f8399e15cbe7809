package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider assembles all pgx-backed repositories. The sale and
// transaction repositories receive sibling repositories so their units of
// work can lock and update the dependent rows inside their own transaction.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	customerRepo := newPgxCustomerRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool, productRepo)
	transactionRepo := newPgxTransactionRepository(dbPool, customerRepo)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CustomerRepo:    customerRepo,
		ProductRepo:     productRepo,
		SaleRepo:        saleRepo,
		TransactionRepo: transactionRepo,
		UserRepo:        userRepo,
		ReportingRepo:   reportingRepo,
	}
}
