package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/application/inventory"
)

// SupplierHandler serves vendors.
type SupplierHandler struct {
	uc *inventory.SupplierUseCase
}

// NewSupplierHandler builds the handler.
func NewSupplierHandler(uc *inventory.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "supplier"
// @Success      201   {object}  dto.SupplierResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PartHandler serves raw parts.
type PartHandler struct {
	uc *inventory.PartsUseCase
}

// NewPartHandler builds the handler.
func NewPartHandler(uc *inventory.PartsUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Create a part with its opening stock
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "part"
// @Success      201   {object}  dto.PartResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      List parts with supplier names and low-stock flags
// @Tags         parts
// @Produce      json
// @Success      200  {array}  dto.PartResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary      Get one part
// @Tags         parts
// @Produce      json
// @Param        id  path  string  true  "part id"
// @Success      200  {object}  dto.PartResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Update part metadata
// @Description  Quantity is not editable here; stock moves through restock, purchases and builds.
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "part id"
// @Param        body  body  dto.UpdatePartRequest  true  "metadata"
// @Success      200   {object}  dto.PartResponse
// @Router       /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Restock godoc
// @Summary      Credit stock to a part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "part id"
// @Param        body  body  dto.RestockPartRequest  true  "quantity, purchase_price"
// @Success      200   {object}  dto.PartResponse
// @Router       /api/parts/{id}/restock [post]
func (h *PartHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockPartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Restock(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PartStockHandler serves named stock buckets.
type PartStockHandler struct {
	uc *inventory.PartStockUseCase
}

// NewPartStockHandler builds the handler.
func NewPartStockHandler(uc *inventory.PartStockUseCase) *PartStockHandler {
	return &PartStockHandler{uc: uc}
}

// Create godoc
// @Summary      Create a stock bucket
// @Tags         part-stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartStockRequest  true  "bucket"
// @Success      201   {object}  dto.PartStockResponse
// @Router       /api/part-stocks [post]
func (h *PartStockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      List stock buckets
// @Tags         part-stocks
// @Produce      json
// @Success      200  {array}  dto.PartStockResponse
// @Router       /api/part-stocks [get]
func (h *PartStockHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ItemHandler serves finished items and their recipes.
type ItemHandler struct {
	uc *inventory.ItemsUseCase
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *inventory.ItemsUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Create a finished item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "item"
// @Success      201   {object}  dto.ItemResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      List finished items
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary      Get one item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "item id"
// @Success      200  {object}  dto.ItemResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpsertRecipe godoc
// @Summary      Create or replace the recipe of an item
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertRecipeRequest  true  "item id and recipe lines"
// @Success      200   {object}  dto.RecipeResponse
// @Router       /api/recipes [post]
func (h *ItemHandler) UpsertRecipe(c *fiber.Ctx) error {
	var in dto.UpsertRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.UpsertRecipe(c.Context(), in.ItemID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListRecipes godoc
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {array}  dto.RecipeResponse
// @Router       /api/recipes [get]
func (h *ItemHandler) ListRecipes(c *fiber.Ctx) error {
	resp, err := h.uc.ListRecipes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetRecipe godoc
// @Summary      Get the recipe of an item
// @Tags         recipes
// @Produce      json
// @Param        itemID  path  string  true  "item id"
// @Success      200  {object}  dto.RecipeResponse
// @Router       /api/recipes/{itemID} [get]
func (h *ItemHandler) GetRecipe(c *fiber.Ctx) error {
	resp, err := h.uc.GetRecipe(c.Context(), c.Params("itemID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
