package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/entities"
	"Campus-Inventory-System/pkg/barcode"
	"Campus-Inventory-System/pkg/item"

	"github.com/google/uuid"
)

// Mode selects what a decoded barcode does: a read-only lookup or a stock
// decrement.
type Mode string

const (
	ModeSearch  Mode = "search"
	ModeConsume Mode = "consume"
)

const (
	StatusResolved = "resolved"
	StatusUpdated  = "updated"
	StatusDepleted = "depleted"
	StatusNotFound = "not_found"
)

type (
	ScannerService interface {
		StartSession(req domain.StartSessionRequest) error
		Cancel()
		Session() (mode Mode, quantity int, active bool)
		HandleDecode(ctx context.Context, barcode string) (domain.ScanResult, error)
		DeletionLogs(ctx context.Context) ([]domain.DeletionLogResponse, error)
		BarcodeLabel(req domain.BarcodeLabelRequest) ([]byte, error)
	}

	scannerService struct {
		itemService item.ItemService
		logs        DeletionLogRepository

		mu       sync.Mutex
		active   bool
		mode     Mode
		quantity int
	}
)

func NewScannerService(itemService item.ItemService, logs DeletionLogRepository) ScannerService {
	return &scannerService{
		itemService: itemService,
		logs:        logs,
	}
}

func (s *scannerService) StartSession(req domain.StartSessionRequest) error {
	mode := Mode(req.Mode)
	if mode != ModeSearch && mode != ModeConsume {
		return domain.ErrUnknownMode
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return domain.ErrInvalidScanQty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return domain.ErrScannerBusy
	}
	s.active = true
	s.mode = mode
	s.quantity = quantity
	return nil
}

// Cancel deactivates the session with no side effects. Cancelling an idle
// scanner is a no-op.
func (s *scannerService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func (s *scannerService) Session() (Mode, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.quantity, s.active
}

// reopen returns a claimed session to the scanning state after a decode that
// resolved to nothing.
func (s *scannerService) reopen() {
	s.mu.Lock()
	s.active = true
	s.mu.Unlock()
}

// HandleDecode resolves one decoded barcode string against the item ledger.
// An unknown barcode keeps the session open for another scan; a successful
// resolution is one-shot and ends the session. The session is claimed before
// resolution starts, so two overlapping decodes can never both consume.
func (s *scannerService) HandleDecode(ctx context.Context, code string) (domain.ScanResult, error) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return domain.ScanResult{}, domain.ErrScannerIdle
	}
	mode := s.mode
	quantity := s.quantity
	s.active = false
	s.mu.Unlock()

	found, err := s.itemService.FindByBarcode(ctx, code)
	if err != nil {
		s.reopen()
		if errors.Is(err, domain.ErrItemNotFound) {
			return domain.ScanResult{
				Status:  StatusNotFound,
				Message: "Item not found. Please check the barcode and try again.",
			}, nil
		}
		return domain.ScanResult{}, err
	}

	if mode == ModeSearch {
		return domain.ScanResult{
			Status:  StatusResolved,
			Message: fmt.Sprintf("Found item: '%s' - Quantity: %d", found.Name, found.Quantity),
			Item:    &found,
		}, nil
	}

	outcome, err := s.itemService.DecrementQuantity(ctx, found.ID, quantity)
	if err != nil {
		s.reopen()
		return domain.ScanResult{}, err
	}

	if outcome.Depleted {
		itemID, parseErr := uuid.Parse(found.ID)
		if parseErr != nil {
			return domain.ScanResult{}, domain.ErrParseUUID
		}
		if logErr := s.logs.AppendLog(ctx, &entities.DeletionLog{
			ID:        uuid.New(),
			ItemID:    itemID,
			Name:      found.Name,
			Barcode:   found.Barcode,
			DeletedAt: time.Now(),
		}); logErr != nil {
			return domain.ScanResult{}, logErr
		}
		return domain.ScanResult{
			Status:  StatusDepleted,
			Message: fmt.Sprintf("Item '%s' deleted as quantity is now zero.", found.Name),
		}, nil
	}

	return domain.ScanResult{
		Status:   StatusUpdated,
		Message:  fmt.Sprintf("Updated item '%s'. New quantity: %d.", found.Name, outcome.NewQuantity),
		Quantity: outcome.NewQuantity,
	}, nil
}

func (s *scannerService) DeletionLogs(ctx context.Context) ([]domain.DeletionLogResponse, error) {
	logs, err := s.logs.GetLogs(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DeletionLogResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, domain.DeletionLogResponse{
			ItemID:    log.ItemID.String(),
			Name:      log.Name,
			Barcode:   log.Barcode,
			DeletedAt: log.DeletedAt,
		})
	}
	return response, nil
}

func (s *scannerService) BarcodeLabel(req domain.BarcodeLabelRequest) ([]byte, error) {
	if req.Caption == "" {
		return barcode.Encode(req.Barcode)
	}
	return barcode.RenderLabel(req.Barcode, req.Caption)
}
