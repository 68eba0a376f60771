package http

import (
	"insure-backend/internal/handlers"
	"insure-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	quoteHandler *handlers.QuoteHandler,
	leadHandler *handlers.LeadHandler,
	customerHandler *handlers.CustomerHandler,
	companyHandler *handlers.CompanyHandler,
	policyHandler *handlers.PolicyHandler,
	dashboardHandler *handlers.DashboardHandler,
	renewalHandler *handlers.RenewalHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes - no authentication
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// The public website posts quote-form submissions and reads the
	// partner-company strip without a session.
	r.HandleFunc("/api/quotes", quoteHandler.SubmitQuote).Methods("POST")
	r.HandleFunc("/api/public/companies", companyHandler.ListCompanies).Methods("GET")

	// Protected API routes - Leads
	leadsAPI := r.PathPrefix("/api/leads").Subrouter()
	leadsAPI.Use(authMiddleware.Authenticate)
	leadsAPI.HandleFunc("", leadHandler.ListLeads).Methods("GET")
	leadsAPI.HandleFunc("/{id}", leadHandler.GetLead).Methods("GET")
	leadsAPI.HandleFunc("/{id}", leadHandler.UpdateLead).Methods("PUT")
	leadsAPI.HandleFunc("/{id}", leadHandler.DeleteLead).Methods("DELETE")
	leadsAPI.HandleFunc("/{id}/convert", customerHandler.ConvertLead).Methods("POST")

	// Protected API routes - Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/policies", customerHandler.GetCustomerPolicies).Methods("GET")

	// Protected API routes - Insurance Companies
	companiesAPI := r.PathPrefix("/api/companies").Subrouter()
	companiesAPI.Use(authMiddleware.Authenticate)
	companiesAPI.HandleFunc("", companyHandler.ListCompanies).Methods("GET")
	companiesAPI.HandleFunc("", companyHandler.CreateCompany).Methods("POST")
	companiesAPI.HandleFunc("/{id}", companyHandler.GetCompany).Methods("GET")
	companiesAPI.HandleFunc("/{id}", companyHandler.UpdateCompany).Methods("PUT")
	companiesAPI.HandleFunc("/{id}", companyHandler.DeleteCompany).Methods("DELETE")
	companiesAPI.HandleFunc("/{id}/logo", companyHandler.UploadLogo).Methods("POST")

	// Protected API routes - Policies
	policiesAPI := r.PathPrefix("/api/policies").Subrouter()
	policiesAPI.Use(authMiddleware.Authenticate)
	policiesAPI.HandleFunc("", policyHandler.ListPolicies).Methods("GET")
	policiesAPI.HandleFunc("", policyHandler.CreatePolicy).Methods("POST")
	policiesAPI.HandleFunc("/{id}", policyHandler.GetPolicy).Methods("GET")
	policiesAPI.HandleFunc("/{id}", policyHandler.UpdatePolicy).Methods("PUT")
	policiesAPI.HandleFunc("/{id}", policyHandler.DeletePolicy).Methods("DELETE")

	// Protected API routes - Dashboard & Renewals
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("", dashboardHandler.GetDashboard).Methods("GET")

	renewalsAPI := r.PathPrefix("/api/renewals").Subrouter()
	renewalsAPI.Use(authMiddleware.Authenticate)
	renewalsAPI.HandleFunc("", renewalHandler.ListRenewals).Methods("GET")
	renewalsAPI.HandleFunc("/export", renewalHandler.ExportRenewals).Methods("GET")

	return r
}
