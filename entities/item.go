package entities

import (
	"time"

	"Campus-Inventory-System/pkg/taxonomy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string               `json:"name"`
	Quantity      int                  `json:"quantity"`
	Amount        decimal.Decimal      `gorm:"type:decimal(12,2)" json:"amount"`
	Supplier      string               `json:"supplier"`
	ItemType      taxonomy.ItemType    `json:"item_type"`
	Category      taxonomy.Category    `json:"category"`
	SubCategory   taxonomy.SubCategory `json:"sub_category"`
	Program       taxonomy.Program     `json:"program,omitempty"`
	Barcode       string               `gorm:"uniqueIndex" json:"barcode"`
	ImageURL      string               `json:"image_url,omitempty"`
	RequestedDate time.Time            `json:"requested_date"`

	Timestamp
}
