package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/application/reports"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// ReportsHandler serves the dashboard, the audit log, exports and the
// database reset.
type ReportsHandler struct {
	uc          *reports.UseCase
	maintenance repository.Maintenance
}

// NewReportsHandler builds the handler.
func NewReportsHandler(uc *reports.UseCase, maintenance repository.Maintenance) *ReportsHandler {
	return &ReportsHandler{uc: uc, maintenance: maintenance}
}

// Dashboard godoc
// @Summary      Dashboard summary
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// Transactions godoc
// @Summary      Recent audit log, newest first
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "max entries"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *ReportsHandler) Transactions(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	txs, err := h.uc.Transactions(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.TransactionResponse{
			ID:      tx.ID,
			Type:    tx.Type,
			Date:    tx.Date,
			Details: tx.Details,
			Cost:    tx.Cost,
		})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Full inventory report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryReport
// @Router       /api/reports [get]
func (h *ReportsHandler) Report(c *fiber.Ctx) error {
	report, err := h.uc.Build(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// ExportExcel godoc
// @Summary      Download the inventory report as xlsx
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export/excel [get]
func (h *ReportsHandler) ExportExcel(c *fiber.Ctx) error {
	data, err := h.uc.ExportExcel(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	name := fmt.Sprintf("inventory-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// EmailReport godoc
// @Summary      Mail the inventory report to the configured recipient
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/reports/email [post]
func (h *ReportsHandler) EmailReport(c *fiber.Ctx) error {
	if err := h.uc.EmailReport(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "report sent"})
}

// ResetDatabase godoc
// @Summary      Clear every inventory collection
// @Description  Admin accounts survive the reset.
// @Tags         maintenance
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/reset-database [post]
func (h *ReportsHandler) ResetDatabase(c *fiber.Ctx) error {
	if err := h.maintenance.Reset(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "database reset"})
}
