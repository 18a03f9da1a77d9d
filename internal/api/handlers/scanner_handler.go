package handlers

import (
	"errors"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/internal/api/presenters"
	"Campus-Inventory-System/pkg/scanner"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScannerHandler interface {
		StartSession(c *fiber.Ctx) error
		Cancel(c *fiber.Ctx) error
		Decode(c *fiber.Ctx) error
		GetDeletionLogs(c *fiber.Ctx) error
		BarcodeLabel(c *fiber.Ctx) error
	}

	scannerHandler struct {
		scannerService scanner.ScannerService
		validator      *validator.Validate
	}
)

func NewScannerHandler(scannerService scanner.ScannerService, validator *validator.Validate) ScannerHandler {
	return &scannerHandler{
		scannerService: scannerService,
		validator:      validator,
	}
}

func (h *scannerHandler) StartSession(c *fiber.Ctx) error {
	req := new(domain.StartSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartSession, err)
	}

	if err := h.scannerService.StartSession(*req); err != nil {
		if errors.Is(err, domain.ErrScannerBusy) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedStartSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartSession, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessStartSession)
}

func (h *scannerHandler) Cancel(c *fiber.Ctx) error {
	h.scannerService.Cancel()
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelScan)
}

func (h *scannerHandler) Decode(c *fiber.Ctx) error {
	req := new(domain.DecodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecode, err)
	}

	result, err := h.scannerService.HandleDecode(c.Context(), req.Barcode)
	if err != nil {
		if errors.Is(err, domain.ErrScannerIdle) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDecode, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecode, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, result.Message)
}

func (h *scannerHandler) GetDeletionLogs(c *fiber.Ctx) error {
	logs, err := h.scannerService.DeletionLogs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"logs": logs}, fiber.StatusOK, domain.MessageSuccessGetLogs)
}

func (h *scannerHandler) BarcodeLabel(c *fiber.Ctx) error {
	req := &domain.BarcodeLabelRequest{
		Barcode: c.Query("barcode"),
		Caption: c.Query("caption"),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBarcodeLabel, err)
	}

	image, err := h.scannerService.BarcodeLabel(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBarcodeLabel, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(image)
}
