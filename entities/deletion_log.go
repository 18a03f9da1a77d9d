package entities

import (
	"time"

	"github.com/google/uuid"
)

// DeletionLog records an item removed by a consuming scan that drove its
// quantity to zero.
type DeletionLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	Barcode   string    `json:"barcode"`
	DeletedAt time.Time `json:"deleted_at"`
}
