package services

import (
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	portssvc "github.com/storekhata/storekhata_backend/internal/core/ports/services"
	"github.com/storekhata/storekhata_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.ProductRepo, repos.CustomerRepo, cfg.AllowNegativeStock)
	container.Credit = NewCreditService(repos.TransactionRepo, repos.CustomerRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
