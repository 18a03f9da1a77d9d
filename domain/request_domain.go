package domain

import (
	"errors"
	"time"

	"Campus-Inventory-System/entities"
	"Campus-Inventory-System/pkg/taxonomy"
)

var (
	MessageSuccessCreateRequest = "purchase request submitted successfully"
	MessageSuccessUpdateRequest = "purchase request updated successfully"
	MessageSuccessDeleteRequest = "purchase request deleted successfully"
	MessageSuccessGetRequests   = "purchase requests retrieved successfully"
	MessageSuccessMarkOutcome   = "request items processed successfully"
	MessageMailNotDelivered     = "request items processed, but the notification email could not be delivered"

	MessageFailedCreateRequest = "failed to submit purchase request"
	MessageFailedUpdateRequest = "failed to update purchase request"
	MessageFailedDeleteRequest = "failed to delete purchase request"
	MessageFailedGetRequests   = "failed to retrieve purchase requests"
	MessageFailedMarkOutcome   = "failed to process request items"

	ErrRequestNotFound      = errors.New("purchase request not found")
	ErrDuplicateUniqueID    = errors.New("request number (unique ID) must be unique")
	ErrRequestItemNotFound  = errors.New("request item not found")
	ErrEmptyItemList        = errors.New("request must name at least one item")
	ErrRequestAlreadyClosed = errors.New("purchase request already approved")
	ErrInvalidOutcome       = errors.New("invalid item outcome")
)

type (
	CreateRequestRequest struct {
		UniqueID       string   `json:"unique_id" validate:"required"`
		ItemNames      []string `json:"item_names" validate:"required,min=1,dive,required"`
		Purpose        string   `json:"purpose" validate:"required"`
		ItemType       string   `json:"item_type" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		SubCategory    string   `json:"sub_category" validate:"required"`
		Program        string   `json:"program"`
		RequestDate    string   `json:"request_date" validate:"required"`
		RequestorEmail string   `json:"requestor_email" validate:"omitempty,email"`
		RequestorPhone string   `json:"requestor_phone"`
		ImageURL       string   `json:"image_url"`
	}

	UpdateRequestRequest struct {
		UniqueID       string   `json:"unique_id" validate:"required"`
		ItemNames      []string `json:"item_names" validate:"required,min=1,dive,required"`
		Purpose        string   `json:"purpose" validate:"required"`
		ItemType       string   `json:"item_type" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		SubCategory    string   `json:"sub_category" validate:"required"`
		Program        string   `json:"program"`
		RequestDate    string   `json:"request_date" validate:"required"`
		RequestorEmail string   `json:"requestor_email" validate:"omitempty,email"`
		RequestorPhone string   `json:"requestor_phone"`
	}

	MarkOutcomeRequest struct {
		ItemLabels     []string `json:"item_labels" validate:"required,min=1,dive,required"`
		Outcome        string   `json:"outcome" validate:"required,oneof=Fulfilled 'Out of Stock'"`
		PurchaseDate   string   `json:"purchase_date"`
		RequestorEmail string   `json:"requestor_email" validate:"omitempty,email"`
		RequestorPhone string   `json:"requestor_phone"`
	}

	RequestItemResponse struct {
		Label   string               `json:"label"`
		Outcome entities.ItemOutcome `json:"outcome"`
	}

	RequestResponse struct {
		ID             string                `json:"id"`
		UniqueID       string                `json:"unique_id"`
		Items          []RequestItemResponse `json:"items"`
		Purpose        string                `json:"purpose"`
		ItemType       taxonomy.ItemType     `json:"item_type"`
		Category       taxonomy.Category     `json:"category"`
		SubCategory    taxonomy.SubCategory  `json:"sub_category"`
		Program        taxonomy.Program      `json:"program,omitempty"`
		RequestDate    time.Time             `json:"request_date"`
		Approved       bool                  `json:"approved"`
		ApprovedDate   *time.Time            `json:"approved_date,omitempty"`
		RequestorEmail string                `json:"requestor_email,omitempty"`
		RequestorPhone string                `json:"requestor_phone,omitempty"`
		ImageURL       string                `json:"image_url,omitempty"`
	}

	// OutcomeNotification is the payload handed to the notification
	// dispatcher after request items are marked.
	OutcomeNotification struct {
		Recipient    string
		UniqueID     string
		Items        []RequestItemResponse
		Action       entities.ItemOutcome
		PurchaseDate string
		Purpose      string
		Category     taxonomy.Category
		SubCategory  taxonomy.SubCategory
		RequestDate  time.Time
	}
)
