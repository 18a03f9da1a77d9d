package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetReport    = "report generated successfully"
	MessageSuccessGetDashboard = "dashboard statistics retrieved successfully"
	MessageSuccessExportReport = "report exported successfully"

	MessageFailedGetReport    = "failed to generate report"
	MessageFailedGetDashboard = "failed to retrieve dashboard statistics"
	MessageFailedExportReport = "failed to export report"

	ErrUnknownGroupView = errors.New("unknown group view")
	ErrUnknownSortKey   = errors.New("unknown sort criterion")
)

type (
	// ReportRow is one flattened line of a generated report.
	ReportRow struct {
		Name        string `json:"name"`
		SubCategory string `json:"sub_category"`
		Program     string `json:"program,omitempty"`
		Quantity    int    `json:"quantity"`
		Amount      string `json:"amount"`
		Date        string `json:"date"`
		Supplier    string `json:"supplier"`
		ItemType    string `json:"item_type"`
	}

	Report struct {
		Title      string          `json:"title"`
		Rows       []ReportRow     `json:"rows"`
		GrandTotal decimal.Decimal `json:"grand_total"`
	}

	DashboardResponse struct {
		TotalItems       int64            `json:"total_items"`
		ItemsPerCollege  map[string]int64 `json:"items_per_college"`
		ApprovedQuantity map[string]int64 `json:"approved_quantity_per_college"`
		TotalApprovedQty int64            `json:"total_approved_quantity"`
		PendingRequests  int64            `json:"pending_requests"`
		ApprovedRequests int64            `json:"approved_requests"`
	}
)
