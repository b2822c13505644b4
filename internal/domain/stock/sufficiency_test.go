package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafnalights-dot/stock/internal/domain/stock"
)

func line(name string, perUnit, available int64) stock.Line {
	return stock.Line{
		PartName:  name,
		PerUnit:   decimal.NewFromInt(perUnit),
		Available: decimal.NewFromInt(available),
	}
}

func TestCheck_Sufficient(t *testing.T) {
	lines := []stock.Line{line("Driver", 2, 10), line("Body", 1, 10)}

	shortfalls := stock.Check(lines, decimal.NewFromInt(3))
	assert.Empty(t, shortfalls)
}

// Lamp needs 2x Driver + 1x Body; Driver=5, Body=10. Building 3 requires
// Driver=6 and must report exactly that shortfall.
func TestCheck_ReportsShortfall(t *testing.T) {
	lines := []stock.Line{line("Driver", 2, 5), line("Body", 1, 10)}

	shortfalls := stock.Check(lines, decimal.NewFromInt(3))
	require.Len(t, shortfalls, 1)
	assert.Equal(t, "Driver", shortfalls[0].PartName)
	assert.True(t, shortfalls[0].Required.Equal(decimal.NewFromInt(6)))
	assert.True(t, shortfalls[0].Available.Equal(decimal.NewFromInt(5)))
}

func TestCheck_ReportsEveryFailingLine(t *testing.T) {
	lines := []stock.Line{
		line("Driver", 2, 1),
		line("Body", 1, 100),
		line("Shade", 4, 0),
	}

	shortfalls := stock.Check(lines, decimal.NewFromInt(2))
	require.Len(t, shortfalls, 2)
	assert.Equal(t, "Driver", shortfalls[0].PartName)
	assert.Equal(t, "Shade", shortfalls[1].PartName)
}

func TestCheck_ExactAvailabilityIsSufficient(t *testing.T) {
	lines := []stock.Line{line("Driver", 2, 6)}

	shortfalls := stock.Check(lines, decimal.NewFromInt(3))
	assert.Empty(t, shortfalls)
}
