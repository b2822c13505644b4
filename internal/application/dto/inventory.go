package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest carries a new supplier.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// SupplierResponse is a supplier as served to clients.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatePartRequest carries a new part with its opening quantity.
type CreatePartRequest struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          decimal.Decimal `json:"quantity"`
	SupplierID        string          `json:"supplier_id"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// UpdatePartRequest carries part metadata edits. Quantity is absent on
// purpose: stock moves only through restock, purchase and build flows.
type UpdatePartRequest struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	SupplierID        string          `json:"supplier_id"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// RestockPartRequest credits quantity to an existing part.
type RestockPartRequest struct {
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// PartResponse is a part as served to clients, enriched with the supplier
// name and the low-stock flag.
type PartResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          decimal.Decimal `json:"quantity"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	SupplierName      string          `json:"supplier_name,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	LastPurchaseDate  *time.Time      `json:"last_purchase_date,omitempty"`
	IsLowStock        bool            `json:"is_low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CreatePartStockRequest carries a new named stock bucket.
type CreatePartStockRequest struct {
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// PartStockResponse is a stock bucket as served to clients.
type PartStockResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BOMLineRequest is one by-name component of an item's bill of materials.
type BOMLineRequest struct {
	PartName       string          `json:"part_name"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
}

// CreateItemRequest carries a new finished item, optionally with an
// embedded bill of materials.
type CreateItemRequest struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Quantity decimal.Decimal  `json:"quantity"`
	BOM      []BOMLineRequest `json:"bom,omitempty"`
}

// ItemResponse is a finished item as served to clients.
type ItemResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	Quantity  decimal.Decimal  `json:"quantity"`
	BOM       []BOMLineRequest `json:"bom,omitempty"`
	HasRecipe bool             `json:"has_recipe"`
	CreatedAt time.Time        `json:"created_at"`
}

// RecipeLineRequest is one by-id component of a recipe.
type RecipeLineRequest struct {
	PartID         string          `json:"part_id"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
}

// UpsertRecipeRequest creates or replaces the recipe of an item.
type UpsertRecipeRequest struct {
	ItemID string              `json:"item_id"`
	Lines  []RecipeLineRequest `json:"lines"`
}

// RecipeResponse is a recipe as served to clients.
type RecipeResponse struct {
	ID        string              `json:"id"`
	ItemID    string              `json:"item_id"`
	Lines     []RecipeLineRequest `json:"lines"`
	CreatedAt time.Time           `json:"created_at"`
}

// CreatePurchaseRequest credits part-stock buckets by name.
type CreatePurchaseRequest struct {
	PartName  string          `json:"part_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Date      *time.Time      `json:"date,omitempty"`
}

// UpdatePurchaseRequest edits a recorded purchase.
type UpdatePurchaseRequest struct {
	PartName  string          `json:"part_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Date      *time.Time      `json:"date,omitempty"`
}

// PurchaseResponse is a purchase entry as served to clients.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	PartName  string          `json:"part_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionResponse is one audit-log record.
type TransactionResponse struct {
	ID      string            `json:"id"`
	Type    string            `json:"type"`
	Date    time.Time         `json:"date"`
	Details map[string]string `json:"details"`
	Cost    decimal.Decimal   `json:"cost"`
}
