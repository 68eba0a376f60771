package services

import (
	"testing"
	"time"

	"insure-backend/internal/models"
	"insure-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateIST(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, timeutil.IST)
}

func TestDaysRemaining(t *testing.T) {
	today := dateIST(2025, time.June, 10)

	assert.Equal(t, 0, DaysRemaining(dateIST(2025, time.June, 10), today))
	assert.Equal(t, 5, DaysRemaining(dateIST(2025, time.June, 15), today))
	assert.Equal(t, -3, DaysRemaining(dateIST(2025, time.June, 7), today))
	assert.Equal(t, 30, DaysRemaining(dateIST(2025, time.July, 10), today))
}

func TestDaysRemainingNormalizesTimeOfDay(t *testing.T) {
	// A reference time late in the day must give the same answer as midnight
	lateToday := time.Date(2025, time.June, 10, 23, 45, 0, 0, timeutil.IST)
	end := time.Date(2025, time.June, 15, 1, 0, 0, 0, timeutil.IST)

	assert.Equal(t, 5, DaysRemaining(end, lateToday))
}

func TestDaysRemainingAcrossTimezones(t *testing.T) {
	// Dates stored as UTC midnight must still count as calendar days in IST
	today := dateIST(2025, time.June, 10)
	endUTC := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysRemaining(endUTC, today))
}

func TestActivePoliciesFiltersByStatusOnly(t *testing.T) {
	policies := []*models.Policy{
		{ID: "a", Status: models.PolicyStatusActive},
		{ID: "b", Status: models.PolicyStatusExpired},
		{ID: "c", Status: models.PolicyStatusActive, EndDate: dateIST(2020, time.January, 1)},
		{ID: "d", Status: models.PolicyStatusCancelled},
		{ID: "e", Status: models.PolicyStatusPending},
	}

	active := ActivePolicies(policies)
	require.Len(t, active, 2)
	// A past end date does not remove a policy from the active set
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)
}

func TestTotalPremium(t *testing.T) {
	assert.Equal(t, 0.0, TotalPremium(nil))

	policies := []*models.Policy{
		{PremiumAmount: 1200.50},
		{PremiumAmount: 800},
		{PremiumAmount: 0},
	}
	assert.InDelta(t, 2000.50, TotalPremium(policies), 0.001)
}

func TestExpiringSoonWindow(t *testing.T) {
	today := dateIST(2025, time.June, 10)

	policies := []*models.Policy{
		{ID: "today", Status: models.PolicyStatusActive, EndDate: dateIST(2025, time.June, 10)},
		{ID: "in5", Status: models.PolicyStatusActive, EndDate: dateIST(2025, time.June, 15)},
		{ID: "day30", Status: models.PolicyStatusActive, EndDate: dateIST(2025, time.July, 10)},
		{ID: "day31", Status: models.PolicyStatusActive, EndDate: dateIST(2025, time.July, 11)},
		{ID: "past", Status: models.PolicyStatusActive, EndDate: dateIST(2025, time.June, 7)},
		{ID: "expired-status", Status: models.PolicyStatusExpired, EndDate: dateIST(2025, time.June, 15)},
	}

	expiring := ExpiringSoon(policies, today)
	ids := make([]string, len(expiring))
	for i, p := range expiring {
		ids[i] = p.ID
	}
	// Inclusive on both ends: day 0 and day 30 are in, day 31 and
	// already-expired policies are out.
	assert.Equal(t, []string{"today", "in5", "day30"}, ids)
}

func TestProductDistributionSortedByCountDesc(t *testing.T) {
	policies := []*models.Policy{
		{ProductType: "Car"},
		{ProductType: "Health"},
		{ProductType: "Car"},
		{ProductType: "Two-Wheeler"},
		{ProductType: "Car"},
		{ProductType: "Health"},
	}

	dist := ProductDistribution(policies)
	require.Len(t, dist, 3)
	assert.Equal(t, models.DistributionEntry{Name: "Car", Count: 3}, dist[0])
	assert.Equal(t, models.DistributionEntry{Name: "Health", Count: 2}, dist[1])
	assert.Equal(t, models.DistributionEntry{Name: "Two-Wheeler", Count: 1}, dist[2])
}

func TestProductDistributionStableOnTies(t *testing.T) {
	policies := []*models.Policy{
		{ProductType: "Travel"},
		{ProductType: "Life Insurance"},
		{ProductType: "Health"},
	}

	dist := ProductDistribution(policies)
	require.Len(t, dist, 3)
	// Equal counts keep first-encounter order
	assert.Equal(t, "Travel", dist[0].Name)
	assert.Equal(t, "Life Insurance", dist[1].Name)
	assert.Equal(t, "Health", dist[2].Name)
}

func TestCompanyDistributionUnknownFallback(t *testing.T) {
	companies := []*models.InsuranceCompany{
		{ID: "c1", Name: "Bajaj Allianz General Insurance"},
	}
	policies := []*models.Policy{
		{InsuranceCompanyID: "c1"},
		{InsuranceCompanyID: "c1"},
		{InsuranceCompanyID: "missing"},
	}

	dist := CompanyDistribution(policies, companies)
	require.Len(t, dist, 2)
	assert.Equal(t, models.DistributionEntry{Name: "Bajaj Allianz General Insurance", Count: 2}, dist[0])
	assert.Equal(t, models.DistributionEntry{Name: "Unknown", Count: 1}, dist[1])
}

func TestMonthlyTrendsCurrentYearOnly(t *testing.T) {
	today := dateIST(2025, time.June, 10)

	policies := []*models.Policy{
		{StartDate: dateIST(2025, time.January, 5), PremiumAmount: 1000},
		{StartDate: dateIST(2025, time.January, 20), PremiumAmount: 500},
		{StartDate: dateIST(2025, time.March, 1), PremiumAmount: 700},
		{StartDate: dateIST(2024, time.June, 1), PremiumAmount: 9999}, // previous year
		{StartDate: dateIST(2025, time.November, 12), PremiumAmount: 300},
	}

	trends := MonthlyTrends(policies, today)
	require.Len(t, trends, 3)
	assert.Equal(t, models.MonthlyTrend{Month: "Jan", Count: 2, Premium: 1500}, trends[0])
	assert.Equal(t, models.MonthlyTrend{Month: "Mar", Count: 1, Premium: 700}, trends[1])
	assert.Equal(t, models.MonthlyTrend{Month: "Nov", Count: 1, Premium: 300}, trends[2])
}

func TestBuildRenewalEntriesResolvesNames(t *testing.T) {
	today := dateIST(2025, time.June, 10)
	customers := []*models.Customer{{ID: "cu1", Name: "Asha Patel"}}
	companies := []*models.InsuranceCompany{{ID: "co1", Name: "Tata AIG General Insurance"}}
	policies := []*models.Policy{
		{
			ID: "p1", CustomerID: "cu1", InsuranceCompanyID: "co1",
			PolicyNumber: "POL-100", ProductType: "Car", PremiumAmount: 4500,
			EndDate: dateIST(2025, time.June, 15), Status: models.PolicyStatusActive,
		},
		{
			ID: "p2", CustomerID: "ghost", InsuranceCompanyID: "ghost",
			PolicyNumber: "POL-101",
			EndDate:      dateIST(2025, time.June, 7), Status: models.PolicyStatusActive,
		},
	}

	entries := BuildRenewalEntries(policies, customers, companies, today)
	require.Len(t, entries, 2)

	assert.Equal(t, "Asha Patel", entries[0].CustomerName)
	assert.Equal(t, "Tata AIG General Insurance", entries[0].CompanyName)
	assert.Equal(t, 5, entries[0].DaysRemaining)
	assert.Equal(t, "2025-06-15", entries[0].EndDate)

	assert.Equal(t, "Unknown", entries[1].CustomerName)
	assert.Equal(t, "Unknown", entries[1].CompanyName)
	assert.Equal(t, -3, entries[1].DaysRemaining)
}

func TestUpcomingRenewalsSortedAndCapped(t *testing.T) {
	entries := []models.RenewalEntry{
		{PolicyID: "p20", Status: models.PolicyStatusActive, DaysRemaining: 20},
		{PolicyID: "p3", Status: models.PolicyStatusActive, DaysRemaining: 3},
		{PolicyID: "expired", Status: models.PolicyStatusActive, DaysRemaining: -1},
		{PolicyID: "p0", Status: models.PolicyStatusActive, DaysRemaining: 0},
		{PolicyID: "p31", Status: models.PolicyStatusActive, DaysRemaining: 31},
		{PolicyID: "cancelled", Status: models.PolicyStatusCancelled, DaysRemaining: 2},
		{PolicyID: "p10", Status: models.PolicyStatusActive, DaysRemaining: 10},
		{PolicyID: "p25", Status: models.PolicyStatusActive, DaysRemaining: 25},
		{PolicyID: "p30", Status: models.PolicyStatusActive, DaysRemaining: 30},
		{PolicyID: "p15", Status: models.PolicyStatusActive, DaysRemaining: 15},
	}

	upcoming := UpcomingRenewals(entries)
	require.Len(t, upcoming, 5)
	ids := make([]string, len(upcoming))
	for i, e := range upcoming {
		ids[i] = e.PolicyID
	}
	assert.Equal(t, []string{"p0", "p3", "p10", "p15", "p20"}, ids)
}

func TestFilterRenewalRanges(t *testing.T) {
	entries := []models.RenewalEntry{
		{PolicyID: "m5", DaysRemaining: -5},
		{PolicyID: "d0", DaysRemaining: 0},
		{PolicyID: "d7", DaysRemaining: 7},
		{PolicyID: "d8", DaysRemaining: 8},
		{PolicyID: "d30", DaysRemaining: 30},
		{PolicyID: "d45", DaysRemaining: 45},
		{PolicyID: "d60", DaysRemaining: 60},
		{PolicyID: "d61", DaysRemaining: 61},
	}

	ids := func(in []models.RenewalEntry) []string {
		out := make([]string, len(in))
		for i, e := range in {
			out[i] = e.PolicyID
		}
		return out
	}

	assert.Equal(t, []string{"m5"}, ids(FilterRenewals(entries, RangeExpired)))
	assert.Equal(t, []string{"d0", "d7"}, ids(FilterRenewals(entries, RangeWeek)))
	assert.Equal(t, []string{"d0", "d7", "d8", "d30"}, ids(FilterRenewals(entries, RangeMonth)))
	assert.Equal(t, []string{"d0", "d7", "d8", "d30", "d45", "d60"}, ids(FilterRenewals(entries, RangeTwoMonths)))
	assert.Len(t, FilterRenewals(entries, RangeAll), 8)
}

func TestParseRenewalRange(t *testing.T) {
	rng, ok := ParseRenewalRange("")
	assert.True(t, ok)
	assert.Equal(t, RangeAll, rng)

	rng, ok = ParseRenewalRange("week")
	assert.True(t, ok)
	assert.Equal(t, RangeWeek, rng)

	_, ok = ParseRenewalRange("fortnight")
	assert.False(t, ok)
}
