package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartReportRow is one row of the parts inventory report.
type PartReportRow struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          decimal.Decimal `json:"quantity"`
	Supplier          string          `json:"supplier,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	Status            string          `json:"status"` // "OK" or "LOW STOCK"
	LastPurchaseDate  *time.Time      `json:"last_purchase_date,omitempty"`
}

// ItemReportRow is one row of the finished-products report.
type ItemReportRow struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  decimal.Decimal `json:"quantity"`
	HasRecipe bool            `json:"has_recipe"`
	Created   time.Time       `json:"created"`
}

// TransactionReportRow is one row of the transactions report.
type TransactionReportRow struct {
	Type    string          `json:"type"`
	Date    time.Time       `json:"date"`
	Details string          `json:"details"`
	Cost    decimal.Decimal `json:"cost"`
}

// InventoryReport aggregates the three report tables.
type InventoryReport struct {
	GeneratedAt  time.Time              `json:"generated_at"`
	Parts        []PartReportRow        `json:"parts"`
	Items        []ItemReportRow        `json:"items"`
	Transactions []TransactionReportRow `json:"transactions"`
}

// DashboardStats is the landing-page summary.
type DashboardStats struct {
	TotalParts         int64           `json:"total_parts"`
	TotalItems         int64           `json:"total_items"`
	LowStockParts      int64           `json:"low_stock_parts"`
	InventoryValue     decimal.Decimal `json:"inventory_value"`
	RecentTransactions int             `json:"recent_transactions"`
}
