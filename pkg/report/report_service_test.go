package report

import (
	"context"
	"testing"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubItemService serves a fixed item list; the report service only reads.
type stubItemService struct {
	items []domain.ItemResponse
}

func (s *stubItemService) AddItem(context.Context, domain.AddItemRequest) (domain.ItemResponse, error) {
	panic("not used")
}

func (s *stubItemService) UpdateItem(context.Context, string, domain.UpdateItemRequest) error {
	panic("not used")
}

func (s *stubItemService) DeleteItem(context.Context, string) error {
	panic("not used")
}

func (s *stubItemService) GetItems(context.Context) ([]domain.ItemResponse, error) {
	return s.items, nil
}

func (s *stubItemService) GetItemByID(context.Context, string) (domain.ItemResponse, error) {
	panic("not used")
}

func (s *stubItemService) FindByBarcode(context.Context, string) (domain.ItemResponse, error) {
	panic("not used")
}

func (s *stubItemService) DecrementQuantity(context.Context, string, int) (domain.DecrementOutcome, error) {
	panic("not used")
}

func (s *stubItemService) UploadItemImage(context.Context, domain.UploadItemImageRequest) (string, error) {
	panic("not used")
}

type stubRequestService struct {
	requests []domain.RequestResponse
}

func (s *stubRequestService) CreateRequest(context.Context, domain.CreateRequestRequest) (domain.RequestResponse, error) {
	panic("not used")
}

func (s *stubRequestService) UpdateRequest(context.Context, string, domain.UpdateRequestRequest) (domain.RequestResponse, error) {
	panic("not used")
}

func (s *stubRequestService) DeleteRequest(context.Context, string) error {
	panic("not used")
}

func (s *stubRequestService) GetRequests(context.Context) ([]domain.RequestResponse, error) {
	return s.requests, nil
}

func (s *stubRequestService) GetRequestByID(context.Context, string) (domain.RequestResponse, error) {
	panic("not used")
}

func (s *stubRequestService) MarkItemOutcome(context.Context, string, domain.MarkOutcomeRequest) (domain.RequestResponse, error, error) {
	panic("not used")
}

func TestReportServiceGroupedItems(t *testing.T) {
	service := NewReportService(&stubItemService{items: sampleItems()}, &stubRequestService{})

	grouped, err := service.GroupedItems(context.Background(), ViewCategory, FilterOptions{Text: "college"}, SortHighestAmount)
	require.NoError(t, err)

	// Highest amount first, so the computer studies folder leads.
	assert.Equal(t, []string{"COLLEGE OF COMPUTER STUDIES", "COLLEGE OF ENGINEERING"}, grouped.Order)

	_, err = service.GroupedItems(context.Background(), "bogus", FilterOptions{}, SortDateAdded)
	assert.ErrorIs(t, err, domain.ErrUnknownGroupView)
}

func TestReportServiceBuild(t *testing.T) {
	service := NewReportService(&stubItemService{items: sampleItems()}, &stubRequestService{})

	report, err := service.Build(context.Background(), ViewCategory, FilterOptions{}, SortDateAdded, "ACCOUNTING", "")
	require.NoError(t, err)

	assert.Equal(t, "Report Summary for ACCOUNTING", report.Title)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "$12.25", report.Rows[0].Amount)
	assert.Equal(t, "12.25", report.GrandTotal.StringFixed(2))
}

func TestReportServiceDashboard(t *testing.T) {
	items := sampleItems()
	requests := []domain.RequestResponse{
		{
			Approved:    true,
			SubCategory: "COLLEGE OF ENGINEERING",
			Items: []domain.RequestItemResponse{
				{Label: "Multimeter", Outcome: entities.OutcomeFulfilled},
				{Label: "Soldering iron", Outcome: entities.OutcomeFulfilled},
				{Label: "Fuse box", Outcome: entities.OutcomeOutOfStock},
			},
		},
		{Approved: false, SubCategory: "ACCOUNTING"},
		{Approved: false, SubCategory: "COLLEGE OF ENGINEERING"},
	}

	service := NewReportService(&stubItemService{items: items}, &stubRequestService{requests: requests})

	stats, err := service.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalItems)
	assert.Equal(t, int64(2), stats.ItemsPerCollege["COLLEGE OF COMPUTER STUDIES"])
	assert.Equal(t, int64(1), stats.ApprovedRequests)
	assert.Equal(t, int64(2), stats.PendingRequests)
	// Only fulfilled lines count toward the approved quantity.
	assert.Equal(t, int64(2), stats.ApprovedQuantity["COLLEGE OF ENGINEERING"])
	assert.Equal(t, int64(2), stats.TotalApprovedQty)
}
