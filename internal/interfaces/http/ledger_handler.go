package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/application/inventory"
	"github.com/bafnalights-dot/stock/internal/application/production"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// ProductionHandler serves builds and their history. A build that fails on
// parts comes back 200 with success=false and the shortfall list; only
// malformed requests and reversal conflicts are HTTP errors.
type ProductionHandler struct {
	assemble *production.AssembleUseCase
	produce  *production.ProductionUseCase
}

// NewProductionHandler builds the handler.
func NewProductionHandler(assemble *production.AssembleUseCase, produce *production.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{assemble: assemble, produce: produce}
}

// Assemble godoc
// @Summary      Build items from their recipe
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssembleRequest  true  "item_id, quantity"
// @Success      200   {object}  production.BuildResult
// @Router       /api/assemble [post]
func (h *ProductionHandler) Assemble(c *fiber.Ctx) error {
	var in dto.AssembleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.assemble.Assemble(c.Context(), in.ItemID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Create godoc
// @Summary      Build items from their bill of materials
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "item_id, quantity, date"
// @Success      200   {object}  production.BuildResult
// @Router       /api/production [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.produce.Create(c.Context(), in.ItemID, in.Quantity, deref(in.Date))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// List godoc
// @Summary      List production entries
// @Tags         production
// @Produce      json
// @Success      200  {array}  dto.ProductionResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	entries, err := h.produce.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toProductionResponse(e))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit a production entry's quantity
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "entry id"
// @Param        body  body  dto.UpdateProductionRequest  true  "quantity, date"
// @Success      200   {object}  production.BuildResult
// @Router       /api/production/{id} [put]
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.produce.Update(c.Context(), c.Params("id"), in.Quantity, deref(in.Date))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Reverse and remove a production entry
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "entry id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/{id} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.produce.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "production entry reversed"})
}

// SalesHandler serves sale entries.
type SalesHandler struct {
	uc *production.SalesUseCase
}

// NewSalesHandler builds the handler.
func NewSalesHandler(uc *production.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create godoc
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "item_id, quantity, party, date"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.uc.Create(c.Context(), in.ItemID, in.Quantity, in.Party, deref(in.Date))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(entry))
}

// List godoc
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toSaleResponse(e))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "entry id"
// @Param        body  body  dto.UpdateSaleRequest  true  "quantity, party, date"
// @Success      200   {object}  dto.SaleResponse
// @Router       /api/sales/{id} [put]
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.uc.Update(c.Context(), c.Params("id"), in.Quantity, in.Party, deref(in.Date))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSaleResponse(entry))
}

// Delete godoc
// @Summary      Reverse and remove a sale
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "entry id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/sales/{id} [delete]
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sale reversed"})
}

// PurchaseHandler serves part-stock purchases.
type PurchaseHandler struct {
	uc *inventory.PurchaseUseCase
}

// NewPurchaseHandler builds the handler.
func NewPurchaseHandler(uc *inventory.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Record a purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "part_name, quantity, unit_price, date"
// @Success      201   {object}  dto.PurchaseResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPurchaseResponse(entry))
}

// List godoc
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toPurchaseResponse(e))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit a purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "entry id"
// @Param        body  body  dto.UpdatePurchaseRequest  true  "part_name, quantity, unit_price, date"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [put]
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPurchaseResponse(entry))
}

// Delete godoc
// @Summary      Reverse and remove a purchase
// @Tags         purchases
// @Produce      json
// @Param        id  path  string  true  "entry id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "purchase reversed"})
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func toProductionResponse(e *entity.ProductionEntry) dto.ProductionResponse {
	used := make([]dto.UsageLineResponse, 0, len(e.PartsUsed))
	for _, u := range e.PartsUsed {
		used = append(used, dto.UsageLineResponse{PartID: u.PartID, PartName: u.PartName, Quantity: u.Quantity})
	}
	return dto.ProductionResponse{
		ID:        e.ID,
		ItemID:    e.ItemID,
		Quantity:  e.Quantity,
		Source:    e.Source,
		PartsUsed: used,
		Cost:      e.Cost,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}

func toSaleResponse(e *entity.SaleEntry) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        e.ID,
		ItemID:    e.ItemID,
		Quantity:  e.Quantity,
		Party:     e.Party,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}

func toPurchaseResponse(e *entity.PurchaseEntry) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:        e.ID,
		PartName:  e.PartName,
		Quantity:  e.Quantity,
		UnitPrice: e.UnitPrice,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}
