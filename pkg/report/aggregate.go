package report

import (
	"sort"
	"strings"
	"time"

	"Campus-Inventory-System/domain"

	"github.com/shopspring/decimal"
)

// View selects the top-level grouping key for items.
type View string

const (
	ViewCategory View = "category" // sub-category folder, then item type
	ViewItemType View = "itemType" // item type folder, then sub-category
)

// SortKey orders items before grouping.
type SortKey string

const (
	SortDateAdded     SortKey = "dateAdded"
	SortYear          SortKey = "year"
	SortHighestAmount SortKey = "highestAmount"
)

type (
	// LeafGroup is an ordered run of items under one second-level key.
	LeafGroup struct {
		Items         []domain.ItemResponse `json:"items"`
		Count         int                   `json:"count"`
		TotalQuantity int                   `json:"total_quantity"`
		TotalAmount   decimal.Decimal       `json:"total_amount"`
	}

	// TopGroup is one top-level folder with its leaves in first-seen order.
	TopGroup struct {
		Order         []string              `json:"order"`
		Leaves        map[string]*LeafGroup `json:"leaves"`
		TotalQuantity int                   `json:"total_quantity"`
	}

	// GroupedItems is the two-level derived view. It is rebuilt from ledger
	// state on every read and never mutated independently.
	GroupedItems struct {
		Order  []string             `json:"order"`
		Groups map[string]*TopGroup `json:"groups"`
	}

	// GroupedRequests partitions requests by category folder then item type.
	GroupedRequests struct {
		Order  []string                                       `json:"order"`
		Groups map[string]map[string][]domain.RequestResponse `json:"groups"`
	}

	// FilterOptions compose as a conjunction; a zero field never excludes.
	FilterOptions struct {
		Text      string
		Year      int
		StartDate *time.Time
		EndDate   *time.Time
	}
)

// GroupItems partitions items into the two-level grouped view. Group and
// leaf order follow first appearance in the input, so callers sort first.
func GroupItems(view View, items []domain.ItemResponse) (*GroupedItems, error) {
	if view != ViewCategory && view != ViewItemType {
		return nil, domain.ErrUnknownGroupView
	}

	grouped := &GroupedItems{Groups: map[string]*TopGroup{}}
	for _, item := range items {
		topKey, leafKey := groupKeys(view, item)

		top, ok := grouped.Groups[topKey]
		if !ok {
			top = &TopGroup{Leaves: map[string]*LeafGroup{}}
			grouped.Groups[topKey] = top
			grouped.Order = append(grouped.Order, topKey)
		}

		leaf, ok := top.Leaves[leafKey]
		if !ok {
			leaf = &LeafGroup{TotalAmount: decimal.Zero}
			top.Leaves[leafKey] = leaf
			top.Order = append(top.Order, leafKey)
		}

		leaf.Items = append(leaf.Items, item)
		leaf.Count++
		leaf.TotalQuantity += item.Quantity
		leaf.TotalAmount = leaf.TotalAmount.Add(item.Amount)
		top.TotalQuantity += item.Quantity
	}
	return grouped, nil
}

func groupKeys(view View, item domain.ItemResponse) (string, string) {
	if view == ViewItemType {
		return string(item.ItemType), string(item.SubCategory)
	}
	return string(item.SubCategory), string(item.ItemType)
}

// GroupRequests partitions requests by category folder (Non-Academic /
// Academic) then by item type, for the approval workflow's folder view.
func GroupRequests(requests []domain.RequestResponse) *GroupedRequests {
	grouped := &GroupedRequests{Groups: map[string]map[string][]domain.RequestResponse{}}
	for _, request := range requests {
		topKey := string(request.Category)
		leafKey := string(request.ItemType)

		if _, ok := grouped.Groups[topKey]; !ok {
			grouped.Groups[topKey] = map[string][]domain.RequestResponse{}
			grouped.Order = append(grouped.Order, topKey)
		}
		grouped.Groups[topKey][leafKey] = append(grouped.Groups[topKey][leafKey], request)
	}
	return grouped
}

// Filter keeps items passing every supplied predicate. Omitted predicates
// pass everything, so filtering with a zero FilterOptions is the identity.
func Filter(items []domain.ItemResponse, opts FilterOptions) []domain.ItemResponse {
	filtered := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		if matches(item, opts) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matches(item domain.ItemResponse, opts FilterOptions) bool {
	if opts.Text != "" {
		query := strings.ToLower(opts.Text)
		if !strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(string(item.Category)), query) &&
			!strings.Contains(strings.ToLower(string(item.SubCategory)), query) &&
			!strings.Contains(strings.ToLower(string(item.ItemType)), query) {
			return false
		}
	}
	if opts.Year != 0 && item.RequestedDate.Year() != opts.Year {
		return false
	}
	if opts.StartDate != nil && item.RequestedDate.Before(*opts.StartDate) {
		return false
	}
	if opts.EndDate != nil && item.RequestedDate.After(*opts.EndDate) {
		return false
	}
	return true
}

// Sort orders items descending by the chosen criterion. The sort is stable:
// ties keep their original order.
func Sort(items []domain.ItemResponse, key SortKey) ([]domain.ItemResponse, error) {
	sorted := append([]domain.ItemResponse(nil), items...)
	switch key {
	case SortDateAdded:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortYear:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RequestedDate.Year() > sorted[j].RequestedDate.Year()
		})
	case SortHighestAmount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Amount.GreaterThan(sorted[j].Amount)
		})
	default:
		return nil, domain.ErrUnknownSortKey
	}
	return sorted, nil
}

// BuildReport flattens grouped items into ordered report rows plus a grand
// total. An empty topKey includes every group; an empty leafKey includes the
// whole top-level group. Empty input yields an empty report with a zero total.
func BuildReport(grouped *GroupedItems, title, topKey, leafKey string) domain.Report {
	report := domain.Report{Title: title, Rows: []domain.ReportRow{}, GrandTotal: decimal.Zero}

	for _, top := range grouped.Order {
		if topKey != "" && top != topKey {
			continue
		}
		group := grouped.Groups[top]
		for _, leaf := range group.Order {
			if leafKey != "" && leaf != leafKey {
				continue
			}
			for _, item := range group.Leaves[leaf].Items {
				report.Rows = append(report.Rows, toReportRow(item))
				report.GrandTotal = report.GrandTotal.Add(item.Amount)
			}
		}
	}
	return report
}

func toReportRow(item domain.ItemResponse) domain.ReportRow {
	return domain.ReportRow{
		Name:        item.Name,
		SubCategory: string(item.SubCategory),
		Program:     string(item.Program),
		Quantity:    item.Quantity,
		Amount:      "$" + item.Amount.StringFixed(2),
		Date:        item.RequestedDate.Format("01/02/2006"),
		Supplier:    item.Supplier,
		ItemType:    string(item.ItemType),
	}
}
