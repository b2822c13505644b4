package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssembleRequest builds items from their recipe.
type AssembleRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateProductionRequest builds items from their embedded bill of materials.
type CreateProductionRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Date     *time.Time      `json:"date,omitempty"`
}

// UpdateProductionRequest edits a production entry's quantity.
type UpdateProductionRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Date     *time.Time      `json:"date,omitempty"`
}

// UsageLineResponse is one recorded part consumption.
type UsageLineResponse struct {
	PartID   string          `json:"part_id,omitempty"`
	PartName string          `json:"part_name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ProductionResponse is a production entry as served to clients.
type ProductionResponse struct {
	ID        string              `json:"id"`
	ItemID    string              `json:"item_id"`
	Quantity  decimal.Decimal     `json:"quantity"`
	Source    string              `json:"source"`
	PartsUsed []UsageLineResponse `json:"parts_used"`
	Cost      decimal.Decimal     `json:"cost"`
	Date      time.Time           `json:"date"`
	CreatedAt time.Time           `json:"created_at"`
}

// CreateSaleRequest deducts sold quantity from item stock.
type CreateSaleRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Party    string          `json:"party"`
	Date     *time.Time      `json:"date,omitempty"`
}

// UpdateSaleRequest edits a recorded sale.
type UpdateSaleRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Party    string          `json:"party"`
	Date     *time.Time      `json:"date,omitempty"`
}

// SaleResponse is a sale entry as served to clients.
type SaleResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Party     string          `json:"party"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}
