package handlers

import (
	"errors"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/internal/api/presenters"
	"Campus-Inventory-System/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		CreateRequest(c *fiber.Ctx) error
		UpdateRequest(c *fiber.Ctx) error
		DeleteRequest(c *fiber.Ctx) error
		GetRequests(c *fiber.Ctx) error
		GetRequestDetails(c *fiber.Ctx) error
		MarkItemOutcome(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	req := new(domain.CreateRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	res, err := h.requestService.CreateRequest(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUniqueID) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRequest)
}

func (h *requestHandler) UpdateRequest(c *fiber.Ctx) error {
	requestID := c.Params("id")
	req := new(domain.UpdateRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequest, err)
	}

	res, err := h.requestService.UpdateRequest(c.Context(), requestID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRequest, err)
		case errors.Is(err, domain.ErrDuplicateUniqueID):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUpdateRequest, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequest, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRequest)
}

func (h *requestHandler) DeleteRequest(c *fiber.Ctx) error {
	requestID := c.Params("id")

	if err := h.requestService.DeleteRequest(c.Context(), requestID); err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRequest)
}

func (h *requestHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.requestService.GetRequests(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"requests": requests}, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) GetRequestDetails(c *fiber.Ctx) error {
	requestID := c.Params("id")

	res, err := h.requestService.GetRequestByID(c.Context(), requestID)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRequests, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) MarkItemOutcome(c *fiber.Ctx) error {
	requestID := c.Params("id")
	req := new(domain.MarkOutcomeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkOutcome, err)
	}

	res, notifyErr, err := h.requestService.MarkItemOutcome(c.Context(), requestID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound), errors.Is(err, domain.ErrRequestItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkOutcome, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkOutcome, err)
		}
	}

	// The ledger write already committed; a failed email is reported, not
	// treated as a failure of the operation.
	message := domain.MessageSuccessMarkOutcome
	if notifyErr != nil {
		message = domain.MessageMailNotDelivered
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}
