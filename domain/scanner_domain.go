package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessStartSession = "scan session started"
	MessageSuccessCancelScan   = "scan session cancelled"
	MessageSuccessGetLogs      = "deletion logs retrieved successfully"
	MessageSuccessBarcodeLabel = "barcode label rendered successfully"

	MessageFailedStartSession = "failed to start scan session"
	MessageFailedDecode       = "failed to process scanned barcode"
	MessageFailedGetLogs      = "failed to retrieve deletion logs"
	MessageFailedBarcodeLabel = "failed to render barcode label"

	ErrScannerBusy    = errors.New("a scan session is already active")
	ErrScannerIdle    = errors.New("no active scan session")
	ErrInvalidScanQty = errors.New("scan quantity must be positive")
	ErrUnknownMode    = errors.New("unknown scan mode")
)

type (
	StartSessionRequest struct {
		Mode     string `json:"mode" validate:"required,oneof=search consume"`
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	}

	DecodeRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	// ScanResult is what one decode resolves to. Exactly one of Item,
	// Decrement, or the not-found message is meaningful.
	ScanResult struct {
		Status   string        `json:"status"` // "resolved", "updated", "depleted", "not_found"
		Message  string        `json:"message"`
		Item     *ItemResponse `json:"item,omitempty"`
		Quantity int           `json:"quantity,omitempty"`
	}

	DeletionLogResponse struct {
		ItemID    string    `json:"item_id"`
		Name      string    `json:"name"`
		Barcode   string    `json:"barcode"`
		DeletedAt time.Time `json:"deleted_at"`
	}

	BarcodeLabelRequest struct {
		Barcode string `json:"barcode" validate:"required"`
		Caption string `json:"caption"`
	}
)
