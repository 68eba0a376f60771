package services

import (
	"bytes"
	"context"
	"fmt"

	"insure-backend/internal/models"
	"insure-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders the renewals tracker as a printable PDF for
// follow-up calls.
type ReportService struct {
	Renewals *RenewalService
}

func NewReportService(renewals *RenewalService) *ReportService {
	return &ReportService{Renewals: renewals}
}

func rangeTitle(rng RenewalRange) string {
	switch rng {
	case RangeExpired:
		return "Expired Policies"
	case RangeWeek:
		return "Renewals Due This Week"
	case RangeMonth:
		return "Renewals Due This Month"
	case RangeTwoMonths:
		return "Renewals Due in 60 Days"
	}
	return "All Policy Renewals"
}

// GenerateRenewalsPDF builds the renewals report for the given range.
func (s *ReportService) GenerateRenewalsPDF(ctx context.Context, rng RenewalRange) ([]byte, error) {
	entries, err := s.Renewals.List(ctx, rng)
	if err != nil {
		return nil, err
	}
	return renderRenewalsPDF(entries, rng)
}

func renderRenewalsPDF(entries []models.RenewalEntry, rng RenewalRange) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "GK Insurance - "+rangeTitle(rng), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Summary Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(277, 8, "Summary", "1", 1, "L", true, 0, "")

	var expired, dueSoon int
	var totalPremium float64
	for _, e := range entries {
		if e.DaysRemaining < 0 {
			expired++
		} else if e.DaysRemaining <= 30 {
			dueSoon++
		}
		totalPremium += e.PremiumAmount
	}
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(69, 8, fmt.Sprintf("Policies: %d", len(entries)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(69, 8, fmt.Sprintf("Expired: %d", expired), "1", 0, "C", false, 0, "")
	pdf.CellFormat(69, 8, fmt.Sprintf("Due in 30 days: %d", dueSoon), "1", 0, "C", false, 0, "")
	pdf.CellFormat(70, 8, fmt.Sprintf("Premium at stake: Rs. %.2f", totalPremium), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Policy No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Customer", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Company", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Premium", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "End Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(27, 7, "Days Left", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 9)
	for i, e := range entries {
		if e.DaysRemaining < 0 {
			pdf.SetFillColor(255, 200, 200) // Expired
		} else if e.DaysRemaining <= 7 {
			pdf.SetFillColor(255, 235, 200) // Due this week
		} else if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}

		customer := e.CustomerName
		if len(customer) > 30 {
			customer = customer[:27] + "..."
		}
		company := e.CompanyName
		if len(company) > 28 {
			company = company[:25] + "..."
		}

		daysLabel := fmt.Sprintf("%d", e.DaysRemaining)
		if e.DaysRemaining < 0 {
			daysLabel = fmt.Sprintf("expired %dd", -e.DaysRemaining)
		}

		pdf.CellFormat(12, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 6, e.PolicyNumber, "1", 0, "C", true, 0, "")
		pdf.CellFormat(55, 6, customer, "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 6, company, "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 6, e.ProductType, "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", e.PremiumAmount), "1", 0, "R", true, 0, "")
		pdf.CellFormat(28, 6, e.EndDate, "1", 0, "C", true, 0, "")
		pdf.CellFormat(27, 6, daysLabel, "1", 1, "C", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
