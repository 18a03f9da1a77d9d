package report

import (
	"context"
	"fmt"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"
	"Campus-Inventory-System/pkg/item"
	"Campus-Inventory-System/pkg/request"
)

type (
	// ReportService derives grouped views and reports from the current
	// ledger state. All mutation goes through the ledgers; this service
	// only reads.
	ReportService interface {
		GroupedItems(ctx context.Context, view View, opts FilterOptions, sortKey SortKey) (*GroupedItems, error)
		GroupedRequests(ctx context.Context) (*GroupedRequests, error)
		Build(ctx context.Context, view View, opts FilterOptions, sortKey SortKey, topKey, leafKey string) (domain.Report, error)
		Export(ctx context.Context, view View, opts FilterOptions, sortKey SortKey, topKey, leafKey string) ([]byte, error)
		Dashboard(ctx context.Context) (domain.DashboardResponse, error)
	}

	reportService struct {
		itemService    item.ItemService
		requestService request.RequestService
	}
)

func NewReportService(itemService item.ItemService, requestService request.RequestService) ReportService {
	return &reportService{
		itemService:    itemService,
		requestService: requestService,
	}
}

func (s *reportService) GroupedItems(ctx context.Context, view View, opts FilterOptions, sortKey SortKey) (*GroupedItems, error) {
	items, err := s.itemService.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	// Filtering, then sorting, then grouping.
	filtered := Filter(items, opts)
	sorted, err := Sort(filtered, sortKey)
	if err != nil {
		return nil, err
	}
	return GroupItems(view, sorted)
}

func (s *reportService) GroupedRequests(ctx context.Context) (*GroupedRequests, error) {
	requests, err := s.requestService.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	return GroupRequests(requests), nil
}

func (s *reportService) Build(ctx context.Context, view View, opts FilterOptions, sortKey SortKey, topKey, leafKey string) (domain.Report, error) {
	grouped, err := s.GroupedItems(ctx, view, opts, sortKey)
	if err != nil {
		return domain.Report{}, err
	}
	return BuildReport(grouped, reportTitle(topKey, leafKey), topKey, leafKey), nil
}

func (s *reportService) Export(ctx context.Context, view View, opts FilterOptions, sortKey SortKey, topKey, leafKey string) ([]byte, error) {
	report, err := s.Build(ctx, view, opts, sortKey, topKey, leafKey)
	if err != nil {
		return nil, err
	}
	return ExportXLSX(report)
}

func (s *reportService) Dashboard(ctx context.Context) (domain.DashboardResponse, error) {
	items, err := s.itemService.GetItems(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	requests, err := s.requestService.GetRequests(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	stats := domain.DashboardResponse{
		TotalItems:       int64(len(items)),
		ItemsPerCollege:  map[string]int64{},
		ApprovedQuantity: map[string]int64{},
	}

	for _, it := range items {
		stats.ItemsPerCollege[string(it.SubCategory)]++
	}

	for _, req := range requests {
		if req.Approved {
			stats.ApprovedRequests++
			fulfilled := int64(0)
			for _, line := range req.Items {
				if line.Outcome == entities.OutcomeFulfilled {
					fulfilled++
				}
			}
			stats.ApprovedQuantity[string(req.SubCategory)] += fulfilled
			stats.TotalApprovedQty += fulfilled
		} else {
			stats.PendingRequests++
		}
	}
	return stats, nil
}

func reportTitle(topKey, leafKey string) string {
	switch {
	case topKey == "":
		return "Report Summary"
	case leafKey == "":
		return fmt.Sprintf("Report Summary for %s", topKey)
	default:
		return fmt.Sprintf("Report Summary for %s - %s", topKey, leafKey)
	}
}
