package models

// DistributionEntry is one bucket of a grouped policy count.
type DistributionEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MonthlyTrend is one month's worth of policy starts for the current year.
type MonthlyTrend struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Premium float64 `json:"premium"`
}

// RenewalEntry is a policy enriched for the renewals tracker.
type RenewalEntry struct {
	PolicyID      string  `json:"id"`
	PolicyNumber  string  `json:"policy_number"`
	CustomerName  string  `json:"customer_name"`
	CompanyName   string  `json:"company_name"`
	ProductType   string  `json:"product_type"`
	PremiumAmount float64 `json:"premium_amount"`
	EndDate       string  `json:"policy_end_date"`
	Status        string  `json:"status"`
	DaysRemaining int     `json:"days_remaining"`
}

// DashboardStats is the aggregate card data for the admin dashboard.
type DashboardStats struct {
	TotalCustomers      int                 `json:"total_customers"`
	ActivePolicies      int                 `json:"active_policies"`
	ExpiringSoon        int                 `json:"expiring_soon"`
	TotalPremium        float64             `json:"total_premium"`
	ProductDistribution []DistributionEntry `json:"product_distribution"`
	CompanyDistribution []DistributionEntry `json:"company_distribution"`
	MonthlyTrends       []MonthlyTrend      `json:"monthly_trends"`
}

// DashboardSnapshot bundles everything the dashboard page renders in one call.
type DashboardSnapshot struct {
	Stats            DashboardStats `json:"stats"`
	RecentLeads      []*Lead        `json:"recent_leads"`
	UpcomingRenewals []RenewalEntry `json:"upcoming_renewals"`
}
