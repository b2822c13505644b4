package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

const (
	recentTransactionLimit = 10
	dashboardRecentLimit   = 5
)

// Part status labels used across reports and exports.
const (
	StatusOK       = "OK"
	StatusLowStock = "LOW STOCK"
)

// UseCase aggregates inventory state into reports, dashboard stats and
// exported workbooks.
type UseCase struct {
	parts        repository.PartRepository
	suppliers    repository.SupplierRepository
	items        repository.ItemRepository
	recipes      repository.RecipeRepository
	transactions repository.TransactionRepository
	excel        ExcelWriter
	sender       Sender
	reportTo     string
}

// NewUseCase builds the use case. sender may be nil when SMTP is not
// configured; EmailReport then fails with a plain error.
func NewUseCase(
	parts repository.PartRepository,
	suppliers repository.SupplierRepository,
	items repository.ItemRepository,
	recipes repository.RecipeRepository,
	transactions repository.TransactionRepository,
	excel ExcelWriter,
	sender Sender,
	reportTo string,
) *UseCase {
	return &UseCase{
		parts:        parts,
		suppliers:    suppliers,
		items:        items,
		recipes:      recipes,
		transactions: transactions,
		excel:        excel,
		sender:       sender,
		reportTo:     reportTo,
	}
}

// Build assembles the full inventory report.
func (uc *UseCase) Build(ctx context.Context) (*dto.InventoryReport, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := uc.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := uc.transactions.List(ctx, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	suppliers, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	supplierNames := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supplierNames[s.ID] = s.Name
	}

	withRecipe := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		withRecipe[r.ItemID] = true
	}

	report := &dto.InventoryReport{GeneratedAt: time.Now()}
	for _, p := range parts {
		status := StatusOK
		if p.IsLowStock() {
			status = StatusLowStock
		}
		var lastPurchase *time.Time
		if !p.LastPurchaseDate.IsZero() {
			d := p.LastPurchaseDate
			lastPurchase = &d
		}
		report.Parts = append(report.Parts, dto.PartReportRow{
			Name:              p.Name,
			Category:          p.Category,
			Quantity:          p.Quantity,
			Supplier:          supplierNames[p.SupplierID],
			PurchasePrice:     p.PurchasePrice,
			LowStockThreshold: p.LowStockThreshold,
			Status:            status,
			LastPurchaseDate:  lastPurchase,
		})
	}
	for _, it := range items {
		report.Items = append(report.Items, dto.ItemReportRow{
			Name:      it.Name,
			Category:  it.Category,
			Quantity:  it.Quantity,
			HasRecipe: withRecipe[it.ID],
			Created:   it.CreatedAt,
		})
	}
	for _, tx := range txs {
		report.Transactions = append(report.Transactions, dto.TransactionReportRow{
			Type:    tx.Type,
			Date:    tx.Date,
			Details: flattenDetails(tx.Details),
			Cost:    tx.Cost,
		})
	}
	return report, nil
}

// Transactions returns the recent audit log, newest first.
func (uc *UseCase) Transactions(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = recentTransactionLimit
	}
	return uc.transactions.List(ctx, limit)
}

// Dashboard computes the landing-page summary. Inventory value is the sum
// of part quantity times purchase price.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	totalItems, err := uc.items.Count(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := uc.transactions.List(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		TotalParts:         int64(len(parts)),
		TotalItems:         totalItems,
		InventoryValue:     decimal.Zero,
		RecentTransactions: len(txs),
	}
	for _, p := range parts {
		if p.IsLowStock() {
			stats.LowStockParts++
		}
		stats.InventoryValue = stats.InventoryValue.Add(p.Quantity.Mul(p.PurchasePrice))
	}
	return stats, nil
}

// ExportExcel renders the current report as an xlsx workbook.
func (uc *UseCase) ExportExcel(ctx context.Context) ([]byte, error) {
	report, err := uc.Build(ctx)
	if err != nil {
		return nil, err
	}
	return uc.excel.Write(report)
}

// EmailReport renders the report and mails it as an attachment to the
// configured recipient.
func (uc *UseCase) EmailReport(ctx context.Context) error {
	if uc.sender == nil || uc.reportTo == "" {
		return fmt.Errorf("report mailing is not configured")
	}
	report, err := uc.Build(ctx)
	if err != nil {
		return err
	}
	data, err := uc.excel.Write(report)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("inventory-report-%s.xlsx", report.GeneratedAt.Format("2006-01-02"))
	subject := fmt.Sprintf("Inventory report %s", report.GeneratedAt.Format("2006-01-02"))
	body := fmt.Sprintf("Inventory report generated at %s.\nParts: %d, finished products: %d.",
		report.GeneratedAt.Format(time.RFC1123), len(report.Parts), len(report.Items))
	return uc.sender.Send(uc.reportTo, subject, body, name, data)
}

func flattenDetails(details map[string]string) string {
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+details[k])
	}
	return strings.Join(pairs, ", ")
}
