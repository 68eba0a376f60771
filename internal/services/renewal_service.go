package services

import (
	"context"
	"fmt"
	"sort"

	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
	"insure-backend/internal/timeutil"
)

// RenewalRange names the day-window filters offered by the renewals
// tracker. Filtering is purely days-based over all policies regardless of
// status, so an expired-but-still-active record shows up under "expired".
type RenewalRange string

const (
	RangeAll       RenewalRange = "all"
	RangeExpired   RenewalRange = "expired"
	RangeWeek      RenewalRange = "week"
	RangeMonth     RenewalRange = "month"
	RangeTwoMonths RenewalRange = "twomonths"
)

func ParseRenewalRange(s string) (RenewalRange, bool) {
	switch RenewalRange(s) {
	case "", RangeAll:
		return RangeAll, true
	case RangeExpired, RangeWeek, RangeMonth, RangeTwoMonths:
		return RenewalRange(s), true
	}
	return "", false
}

type RenewalService struct {
	Policies  *repositories.PolicyRepository
	Customers *repositories.CustomerRepository
	Companies *repositories.CompanyRepository
}

func NewRenewalService(
	policies *repositories.PolicyRepository,
	customers *repositories.CustomerRepository,
	companies *repositories.CompanyRepository,
) *RenewalService {
	return &RenewalService{Policies: policies, Customers: customers, Companies: companies}
}

// List builds renewal entries for every policy, filters them by the given
// range and returns them most urgent first.
func (s *RenewalService) List(ctx context.Context, rng RenewalRange) ([]models.RenewalEntry, error) {
	policies, err := s.Policies.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load renewals: %w", err)
	}
	customers, err := s.Customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load renewals: %w", err)
	}
	companies, err := s.Companies.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load renewals: %w", err)
	}

	entries := BuildRenewalEntries(policies, customers, companies, timeutil.Today())
	entries = FilterRenewals(entries, rng)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysRemaining < entries[j].DaysRemaining
	})
	return entries, nil
}

// FilterRenewals applies a day-window filter. The windows overlap:
// anything due this week also matches the month and two-month ranges.
func FilterRenewals(entries []models.RenewalEntry, rng RenewalRange) []models.RenewalEntry {
	if rng == RangeAll {
		return entries
	}
	var out []models.RenewalEntry
	for _, e := range entries {
		d := e.DaysRemaining
		switch rng {
		case RangeExpired:
			if d < 0 {
				out = append(out, e)
			}
		case RangeWeek:
			if d >= 0 && d <= 7 {
				out = append(out, e)
			}
		case RangeMonth:
			if d >= 0 && d <= 30 {
				out = append(out, e)
			}
		case RangeTwoMonths:
			if d >= 0 && d <= 60 {
				out = append(out, e)
			}
		}
	}
	return out
}
