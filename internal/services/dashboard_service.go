package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
	"insure-backend/internal/timeutil"
)

// ExpiringSoonWindowDays is the rolling renewal window shown on the
// dashboard: active policies ending within [today, today+30] inclusive.
const ExpiringSoonWindowDays = 30

const (
	recentLeadsLimit      = 5
	upcomingRenewalsLimit = 5
)

// DistributionScope selects which policies feed the product/company
// distributions. Active-only is the default; counting all policies is kept
// as an explicit option because the admin UI historically did both.
type DistributionScope int

const (
	DistributionActiveOnly DistributionScope = iota
	DistributionAllPolicies
)

type DashboardService struct {
	Policies  *repositories.PolicyRepository
	Customers *repositories.CustomerRepository
	Companies *repositories.CompanyRepository
	Leads     *repositories.LeadRepository
	Scope     DistributionScope
}

func NewDashboardService(
	policies *repositories.PolicyRepository,
	customers *repositories.CustomerRepository,
	companies *repositories.CompanyRepository,
	leads *repositories.LeadRepository,
) *DashboardService {
	return &DashboardService{
		Policies:  policies,
		Customers: customers,
		Companies: companies,
		Leads:     leads,
		Scope:     DistributionActiveOnly,
	}
}

// Snapshot loads every collection once and computes the full dashboard in
// one pass. Any read failure aborts the whole snapshot so the caller never
// renders partial data.
func (s *DashboardService) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	policies, err := s.Policies.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	customerCount, err := s.Customers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	customers, err := s.Customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	companies, err := s.Companies.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	recentLeads, err := s.Leads.ListRecent(ctx, recentLeadsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	today := timeutil.Today()
	active := ActivePolicies(policies)
	expiring := ExpiringSoon(policies, today)

	distSource := active
	if s.Scope == DistributionAllPolicies {
		distSource = policies
	}

	entries := BuildRenewalEntries(policies, customers, companies, today)

	return &models.DashboardSnapshot{
		Stats: models.DashboardStats{
			TotalCustomers:      customerCount,
			ActivePolicies:      len(active),
			ExpiringSoon:        len(expiring),
			TotalPremium:        TotalPremium(active),
			ProductDistribution: ProductDistribution(distSource),
			CompanyDistribution: CompanyDistribution(distSource, companies),
			MonthlyTrends:       MonthlyTrends(policies, today),
		},
		RecentLeads:      recentLeads,
		UpcomingRenewals: UpcomingRenewals(entries),
	}, nil
}

// DaysRemaining computes ceil((end date - today) in whole days). Both sides
// are normalized to midnight, so the result is a calendar-day difference.
// Negative means the policy already expired.
func DaysRemaining(endDate, today time.Time) int {
	diff := timeutil.StartOfDay(endDate).Sub(timeutil.StartOfDay(today))
	return int(math.Ceil(diff.Hours() / 24))
}

// ActivePolicies filters to policies whose status is "active". Nothing
// else affects the classification; a past end date alone does not.
func ActivePolicies(policies []*models.Policy) []*models.Policy {
	var active []*models.Policy
	for _, p := range policies {
		if p.Status == models.PolicyStatusActive {
			active = append(active, p)
		}
	}
	return active
}

// TotalPremium sums premiums over the given policies. Callers pass the
// active set; malformed amounts count as zero.
func TotalPremium(policies []*models.Policy) float64 {
	var total float64
	for _, p := range policies {
		amount := p.PremiumAmount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}
		total += amount
	}
	return total
}

// ExpiringSoon returns active policies ending within the rolling 30-day
// window, inclusive on both ends. Already-expired policies (negative
// days-remaining) are excluded even if still marked active.
func ExpiringSoon(policies []*models.Policy, today time.Time) []*models.Policy {
	var expiring []*models.Policy
	for _, p := range policies {
		if p.Status != models.PolicyStatusActive {
			continue
		}
		days := DaysRemaining(p.EndDate, today)
		if days >= 0 && days <= ExpiringSoonWindowDays {
			expiring = append(expiring, p)
		}
	}
	return expiring
}

// ProductDistribution counts policies per product type, sorted by count
// descending. The sort is stable so ties keep first-encounter order.
func ProductDistribution(policies []*models.Policy) []models.DistributionEntry {
	return distribution(policies, func(p *models.Policy) string {
		if p.ProductType == "" {
			return "Other"
		}
		return p.ProductType
	})
}

// CompanyDistribution counts policies per carrier, resolving ids to display
// names. A policy whose company id has no match lands under "Unknown".
func CompanyDistribution(policies []*models.Policy, companies []*models.InsuranceCompany) []models.DistributionEntry {
	names := make(map[string]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}
	return distribution(policies, func(p *models.Policy) string {
		if name, ok := names[p.InsuranceCompanyID]; ok {
			return name
		}
		return "Unknown"
	})
}

func distribution(policies []*models.Policy, key func(*models.Policy) string) []models.DistributionEntry {
	counts := make(map[string]int)
	var order []string
	for _, p := range policies {
		k := key(p)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]models.DistributionEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, models.DistributionEntry{Name: k, Count: counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// MonthlyTrends buckets current-year policy starts by month, accumulating
// count and premium. Months with no policies are omitted; the result is
// ordered Jan through Dec.
func MonthlyTrends(policies []*models.Policy, today time.Time) []models.MonthlyTrend {
	currentYear := timeutil.ToIST(today).Year()

	type bucket struct {
		count   int
		premium float64
	}
	buckets := make(map[time.Month]*bucket)

	for _, p := range policies {
		start := timeutil.ToIST(p.StartDate)
		if start.Year() != currentYear {
			continue
		}
		b := buckets[start.Month()]
		if b == nil {
			b = &bucket{}
			buckets[start.Month()] = b
		}
		b.count++
		amount := p.PremiumAmount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}
		b.premium += amount
	}

	var trends []models.MonthlyTrend
	for m := time.January; m <= time.December; m++ {
		b, ok := buckets[m]
		if !ok {
			continue
		}
		trends = append(trends, models.MonthlyTrend{
			Month:   m.String()[:3],
			Count:   b.count,
			Premium: b.premium,
		})
	}
	return trends
}

// BuildRenewalEntries enriches every policy with its customer and carrier
// names plus computed days-remaining. Unresolvable references become
// "Unknown" rather than an error.
func BuildRenewalEntries(
	policies []*models.Policy,
	customers []*models.Customer,
	companies []*models.InsuranceCompany,
	today time.Time,
) []models.RenewalEntry {
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}
	companyNames := make(map[string]string, len(companies))
	for _, c := range companies {
		companyNames[c.ID] = c.Name
	}

	entries := make([]models.RenewalEntry, 0, len(policies))
	for _, p := range policies {
		customerName, ok := customerNames[p.CustomerID]
		if !ok {
			customerName = "Unknown"
		}
		companyName, ok := companyNames[p.InsuranceCompanyID]
		if !ok {
			companyName = "Unknown"
		}
		entries = append(entries, models.RenewalEntry{
			PolicyID:      p.ID,
			PolicyNumber:  p.PolicyNumber,
			CustomerName:  customerName,
			CompanyName:   companyName,
			ProductType:   p.ProductType,
			PremiumAmount: p.PremiumAmount,
			EndDate:       timeutil.ToIST(p.EndDate).Format(timeutil.DateLayout),
			Status:        p.Status,
			DaysRemaining: DaysRemaining(p.EndDate, today),
		})
	}
	return entries
}

// UpcomingRenewals picks the dashboard's renewal summary: entries in the
// 30-day window for active policies, most urgent first, capped to five.
func UpcomingRenewals(entries []models.RenewalEntry) []models.RenewalEntry {
	var upcoming []models.RenewalEntry
	for _, e := range entries {
		if e.Status != models.PolicyStatusActive {
			continue
		}
		if e.DaysRemaining >= 0 && e.DaysRemaining <= ExpiringSoonWindowDays {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysRemaining < upcoming[j].DaysRemaining
	})
	if len(upcoming) > upcomingRenewalsLimit {
		upcoming = upcoming[:upcomingRenewalsLimit]
	}
	return upcoming
}
