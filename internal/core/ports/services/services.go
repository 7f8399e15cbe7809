package services

// ServiceContainer bundles all service facades for injection into the
// HTTP layer.
type ServiceContainer struct {
	Customer  CustomerSvcFacade
	Product   ProductSvcFacade
	Sale      SaleSvcFacade
	Credit    CreditSvcFacade
	User      UserSvcFacade
	Reporting ReportingSvcFacade
}
