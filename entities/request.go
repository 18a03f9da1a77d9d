package entities

import (
	"time"

	"Campus-Inventory-System/pkg/taxonomy"

	"github.com/google/uuid"
)

// ItemOutcome is the per-item mark inside a purchase request.
type ItemOutcome string

const (
	OutcomePending    ItemOutcome = "Pending"
	OutcomeFulfilled  ItemOutcome = "Fulfilled"
	OutcomeOutOfStock ItemOutcome = "Out of Stock"
)

// Terminal reports whether the outcome closes the item.
func (o ItemOutcome) Terminal() bool {
	return o == OutcomeFulfilled || o == OutcomeOutOfStock
}

type Request struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UniqueID       string               `gorm:"uniqueIndex" json:"unique_id"`
	Purpose        string               `json:"purpose"`
	ItemType       taxonomy.ItemType    `json:"item_type"`
	Category       taxonomy.Category    `json:"category"`
	SubCategory    taxonomy.SubCategory `json:"sub_category"`
	Program        taxonomy.Program     `json:"program,omitempty"`
	RequestDate    time.Time            `json:"request_date"`
	Approved       bool                 `json:"approved"`
	ApprovedDate   *time.Time           `json:"approved_date,omitempty"`
	RequestorEmail string               `json:"requestor_email,omitempty"`
	RequestorPhone string               `json:"requestor_phone,omitempty"`
	ImageURL       string               `json:"image_url,omitempty"`

	Items []RequestItem `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"items"`
	Timestamp
}

// RequestItem is one named item line inside a request, ordered by Position.
type RequestItem struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequestID uuid.UUID   `gorm:"index" json:"request_id"`
	Position  int         `json:"position"`
	Label     string      `json:"label"`
	Outcome   ItemOutcome `json:"outcome"`
}
