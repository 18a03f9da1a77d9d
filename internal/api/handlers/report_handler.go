package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/internal/api/presenters"
	"Campus-Inventory-System/pkg/report"

	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetGroupedItems(c *fiber.Ctx) error
		GetGroupedRequests(c *fiber.Ctx) error
		GetReport(c *fiber.Ctx) error
		ExportReport(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

func (h *reportHandler) GetGroupedItems(c *fiber.Ctx) error {
	view, opts, sortKey, err := parseReportQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	grouped, err := h.reportService.GroupedItems(c.Context(), view, opts, sortKey)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownGroupView) || errors.Is(err, domain.ErrUnknownSortKey) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, grouped, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetGroupedRequests(c *fiber.Ctx) error {
	grouped, err := h.reportService.GroupedRequests(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, grouped, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) GetReport(c *fiber.Ctx) error {
	view, opts, sortKey, err := parseReportQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
	}

	res, err := h.reportService.Build(c.Context(), view, opts, sortKey, c.Query("group"), c.Query("leaf"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownGroupView) || errors.Is(err, domain.ErrUnknownSortKey) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) ExportReport(c *fiber.Ctx) error {
	view, opts, sortKey, err := parseReportQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportReport, err)
	}

	file, err := h.reportService.Export(c.Context(), view, opts, sortKey, c.Query("group"), c.Query("leaf"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownGroupView) || errors.Is(err, domain.ErrUnknownSortKey) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportReport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExportReport, err)
	}

	filename := fmt.Sprintf("report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(file)
}

func (h *reportHandler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.reportService.Dashboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func parseReportQuery(c *fiber.Ctx) (report.View, report.FilterOptions, report.SortKey, error) {
	view := report.View(c.Query("view", string(report.ViewCategory)))
	sortKey := report.SortKey(c.Query("sort", string(report.SortDateAdded)))

	opts := report.FilterOptions{Text: c.Query("text")}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return "", report.FilterOptions{}, "", domain.ErrInvalidDate
		}
		opts.Year = year
	}

	if raw := c.Query("start"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return "", report.FilterOptions{}, "", domain.ErrInvalidDate
		}
		opts.StartDate = &start
	}

	if raw := c.Query("end"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return "", report.FilterOptions{}, "", domain.ErrInvalidDate
		}
		opts.EndDate = &end
	}

	return view, opts, sortKey, nil
}
