package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"Campus-Inventory-System/pkg/taxonomy"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessAddItem         = "item added successfully"
	MessageSuccessUpdateItem      = "item updated successfully"
	MessageSuccessDeleteItem      = "item deleted successfully"
	MessageSuccessGetItems        = "items retrieved successfully"
	MessageSuccessUploadItemImage = "item image uploaded successfully"

	MessageFailedAddItem         = "failed to add item"
	MessageFailedUpdateItem      = "failed to update item"
	MessageFailedDeleteItem      = "failed to delete item"
	MessageFailedGetItems        = "failed to retrieve items"
	MessageFailedUploadItemImage = "failed to upload item image"

	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrInvalidDate       = errors.New("invalid date")
	ErrBarcodeGeneration = errors.New("could not generate a unique barcode")
	ErrDuplicateBarcode  = errors.New("barcode already assigned")
)

type (
	AddItemRequest struct {
		Name          string `json:"name" validate:"required"`
		Quantity      int    `json:"quantity" validate:"required,min=1"`
		Amount        string `json:"amount" validate:"required"`
		Supplier      string `json:"supplier" validate:"required"`
		ItemType      string `json:"item_type" validate:"required"`
		Category      string `json:"category" validate:"required"`
		SubCategory   string `json:"sub_category" validate:"required"`
		Program       string `json:"program"`
		RequestedDate string `json:"requested_date" validate:"required"`
		ImageURL      string `json:"image_url"`
	}

	UpdateItemRequest struct {
		Name          string `json:"name" validate:"required"`
		Quantity      int    `json:"quantity" validate:"required,min=1"`
		Amount        string `json:"amount" validate:"required"`
		Supplier      string `json:"supplier" validate:"required"`
		ItemType      string `json:"item_type" validate:"required"`
		Category      string `json:"category" validate:"required"`
		SubCategory   string `json:"sub_category" validate:"required"`
		Program       string `json:"program"`
		RequestedDate string `json:"requested_date" validate:"required"`
	}

	DecrementRequest struct {
		Amount int `json:"amount" validate:"required,min=1"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ItemResponse struct {
		ID            string               `json:"id"`
		Name          string               `json:"name"`
		Quantity      int                  `json:"quantity"`
		Amount        decimal.Decimal      `json:"amount"`
		Supplier      string               `json:"supplier"`
		ItemType      taxonomy.ItemType    `json:"item_type"`
		Category      taxonomy.Category    `json:"category"`
		SubCategory   taxonomy.SubCategory `json:"sub_category"`
		Program       taxonomy.Program     `json:"program,omitempty"`
		Barcode       string               `json:"barcode"`
		ImageURL      string               `json:"image_url,omitempty"`
		RequestedDate time.Time            `json:"requested_date"`
		CreatedAt     time.Time            `json:"created_at"`
	}

	// DecrementOutcome is the result of the consume-scan primitive.
	DecrementOutcome struct {
		Depleted    bool `json:"depleted"`
		NewQuantity int  `json:"new_quantity"`
	}
)
