package request

import (
	"context"
	"errors"
	"time"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"
	"Campus-Inventory-System/pkg/taxonomy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateRequestRequest) (domain.RequestResponse, error)
		UpdateRequest(ctx context.Context, id string, req domain.UpdateRequestRequest) (domain.RequestResponse, error)
		DeleteRequest(ctx context.Context, id string) error
		GetRequests(ctx context.Context) ([]domain.RequestResponse, error)
		GetRequestByID(ctx context.Context, id string) (domain.RequestResponse, error)
		// MarkItemOutcome applies a terminal mark to the named item lines and
		// recomputes the approval flag. A notification failure is returned
		// separately; the ledger write is never rolled back for it.
		MarkItemOutcome(ctx context.Context, id string, req domain.MarkOutcomeRequest) (resp domain.RequestResponse, notifyErr error, err error)
	}

	requestService struct {
		requestRepository RequestRepository
		notifier          Notifier
	}
)

func NewRequestService(requestRepository RequestRepository, notifier Notifier) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		notifier:          notifier,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateRequestRequest) (domain.RequestResponse, error) {
	fields, err := parseRequestFields(req.ItemType, req.Category, req.SubCategory, req.Program, req.RequestDate)
	if err != nil {
		return domain.RequestResponse{}, err
	}
	if len(req.ItemNames) == 0 {
		return domain.RequestResponse{}, domain.ErrEmptyItemList
	}

	exists, err := s.requestRepository.UniqueIDExists(ctx, req.UniqueID, "")
	if err != nil {
		return domain.RequestResponse{}, err
	}
	if exists {
		return domain.RequestResponse{}, domain.ErrDuplicateUniqueID
	}

	requestID := uuid.New()
	items := make([]entities.RequestItem, 0, len(req.ItemNames))
	for i, label := range req.ItemNames {
		items = append(items, entities.RequestItem{
			ID:        uuid.New(),
			RequestID: requestID,
			Position:  i,
			Label:     label,
			Outcome:   entities.OutcomePending,
		})
	}

	request := &entities.Request{
		ID:             requestID,
		UniqueID:       req.UniqueID,
		Purpose:        req.Purpose,
		ItemType:       fields.itemType,
		Category:       fields.category,
		SubCategory:    fields.subCategory,
		Program:        fields.program,
		RequestDate:    fields.requestDate,
		Approved:       false,
		RequestorEmail: req.RequestorEmail,
		RequestorPhone: req.RequestorPhone,
		ImageURL:       req.ImageURL,
		Items:          items,
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return domain.RequestResponse{}, err
	}
	return toRequestResponse(request), nil
}

func (s *requestService) UpdateRequest(ctx context.Context, id string, req domain.UpdateRequestRequest) (domain.RequestResponse, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RequestResponse{}, domain.ErrRequestNotFound
		}
		return domain.RequestResponse{}, err
	}
	if request.Approved {
		return domain.RequestResponse{}, domain.ErrRequestAlreadyClosed
	}

	fields, err := parseRequestFields(req.ItemType, req.Category, req.SubCategory, req.Program, req.RequestDate)
	if err != nil {
		return domain.RequestResponse{}, err
	}
	if len(req.ItemNames) == 0 {
		return domain.RequestResponse{}, domain.ErrEmptyItemList
	}

	// Uniqueness check excludes the record being edited.
	exists, err := s.requestRepository.UniqueIDExists(ctx, req.UniqueID, id)
	if err != nil {
		return domain.RequestResponse{}, err
	}
	if exists {
		return domain.RequestResponse{}, domain.ErrDuplicateUniqueID
	}

	request.UniqueID = req.UniqueID
	request.Purpose = req.Purpose
	request.ItemType = fields.itemType
	request.Category = fields.category
	request.SubCategory = fields.subCategory
	request.Program = fields.program
	request.RequestDate = fields.requestDate
	request.RequestorEmail = req.RequestorEmail
	request.RequestorPhone = req.RequestorPhone

	// Item lines are replaced wholesale; existing marks survive for labels
	// that keep their name.
	previous := make(map[string]entities.ItemOutcome, len(request.Items))
	for _, item := range request.Items {
		previous[item.Label] = item.Outcome
	}

	items := make([]entities.RequestItem, 0, len(req.ItemNames))
	for i, label := range req.ItemNames {
		outcome := entities.OutcomePending
		if prev, ok := previous[label]; ok {
			outcome = prev
		}
		items = append(items, entities.RequestItem{
			ID:        uuid.New(),
			RequestID: request.ID,
			Position:  i,
			Label:     label,
			Outcome:   outcome,
		})
	}
	request.Items = items
	request.Approved = allTerminal(items)

	if err := s.requestRepository.ReplaceRequestItems(ctx, request, items); err != nil {
		return domain.RequestResponse{}, err
	}
	return toRequestResponse(request), nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) error {
	if err := s.requestRepository.DeleteRequest(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}
	return nil
}

func (s *requestService) GetRequests(ctx context.Context) ([]domain.RequestResponse, error) {
	requests, err := s.requestRepository.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, toRequestResponse(request))
	}
	return response, nil
}

func (s *requestService) GetRequestByID(ctx context.Context, id string) (domain.RequestResponse, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RequestResponse{}, domain.ErrRequestNotFound
		}
		return domain.RequestResponse{}, err
	}
	return toRequestResponse(request), nil
}

func (s *requestService) MarkItemOutcome(ctx context.Context, id string, req domain.MarkOutcomeRequest) (domain.RequestResponse, error, error) {
	outcome := entities.ItemOutcome(req.Outcome)
	if !outcome.Terminal() {
		return domain.RequestResponse{}, nil, domain.ErrInvalidOutcome
	}

	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RequestResponse{}, nil, domain.ErrRequestNotFound
		}
		return domain.RequestResponse{}, nil, err
	}

	// A label can appear on more than one line; marking it marks every
	// occurrence.
	for _, label := range req.ItemLabels {
		matched := false
		for i := range request.Items {
			if request.Items[i].Label == label {
				request.Items[i].Outcome = outcome
				matched = true
			}
		}
		if !matched {
			return domain.RequestResponse{}, nil, domain.ErrRequestItemNotFound
		}
	}

	// The approval flag is a pure fold over the item marks.
	request.Approved = allTerminal(request.Items)
	if request.Approved && request.ApprovedDate == nil {
		now := time.Now()
		request.ApprovedDate = &now
	}
	if req.RequestorEmail != "" {
		request.RequestorEmail = req.RequestorEmail
	}
	if req.RequestorPhone != "" {
		request.RequestorPhone = req.RequestorPhone
	}

	if err := s.requestRepository.SaveOutcomes(ctx, request); err != nil {
		return domain.RequestResponse{}, nil, err
	}

	resp := toRequestResponse(request)

	// Notification is best-effort: the ledger write above is the source of
	// truth and is not rolled back when delivery fails.
	notifyErr := s.notifier.NotifyOutcome(domain.OutcomeNotification{
		Recipient:    request.RequestorEmail,
		UniqueID:     request.UniqueID,
		Items:        resp.Items,
		Action:       outcome,
		PurchaseDate: req.PurchaseDate,
		Purpose:      request.Purpose,
		Category:     request.Category,
		SubCategory:  request.SubCategory,
		RequestDate:  request.RequestDate,
	})

	return resp, notifyErr, nil
}

func allTerminal(items []entities.RequestItem) bool {
	for _, item := range items {
		if !item.Outcome.Terminal() {
			return false
		}
	}
	return len(items) > 0
}

type requestFields struct {
	itemType    taxonomy.ItemType
	category    taxonomy.Category
	subCategory taxonomy.SubCategory
	program     taxonomy.Program
	requestDate time.Time
}

func parseRequestFields(itemType, category, subCategory, program, requestDate string) (requestFields, error) {
	parsedDate, err := time.Parse("2006-01-02", requestDate)
	if err != nil {
		return requestFields{}, domain.ErrInvalidDate
	}

	if !taxonomy.ValidItemType(taxonomy.ItemType(itemType)) {
		return requestFields{}, taxonomy.ErrUnknownItemType
	}

	if err := taxonomy.Validate(
		taxonomy.Category(category),
		taxonomy.SubCategory(subCategory),
		taxonomy.Program(program),
	); err != nil {
		return requestFields{}, err
	}

	return requestFields{
		itemType:    taxonomy.ItemType(itemType),
		category:    taxonomy.Category(category),
		subCategory: taxonomy.SubCategory(subCategory),
		program:     taxonomy.Program(program),
		requestDate: parsedDate,
	}, nil
}

func toRequestResponse(request *entities.Request) domain.RequestResponse {
	items := make([]domain.RequestItemResponse, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, domain.RequestItemResponse{
			Label:   item.Label,
			Outcome: item.Outcome,
		})
	}

	return domain.RequestResponse{
		ID:             request.ID.String(),
		UniqueID:       request.UniqueID,
		Items:          items,
		Purpose:        request.Purpose,
		ItemType:       request.ItemType,
		Category:       request.Category,
		SubCategory:    request.SubCategory,
		Program:        request.Program,
		RequestDate:    request.RequestDate,
		Approved:       request.Approved,
		ApprovedDate:   request.ApprovedDate,
		RequestorEmail: request.RequestorEmail,
		RequestorPhone: request.RequestorPhone,
		ImageURL:       request.ImageURL,
	}
}
