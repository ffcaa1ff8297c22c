package catering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railbook/railbook/pkg/railway"
)

func TestSeedCatalog(t *testing.T) {
	ledger := NewLedger()

	items := ledger.Items()
	require.Len(t, items, 10)

	assert.Equal(t, "VEG001", items[0].ID)
	assert.Equal(t, "Vegetable Thali", items[0].Name)
	assert.Equal(t, railway.CateringCategoryVeg, items[0].Category)
	assert.Equal(t, 120.0, items[0].Price)
	assert.Equal(t, 50, items[0].Stock)

	coffee, ok := ledger.Item("BEV001")
	require.True(t, ok)
	assert.Equal(t, 100, coffee.Stock)
}

func TestOrderDebitsStock(t *testing.T) {
	ledger := NewLedger()

	order, err := ledger.Order("VEG002", 2)
	require.NoError(t, err)

	assert.Equal(t, 300.0, order.Total)
	assert.Equal(t, "Veg (2x Vegetable Biryani)", order.Descriptor)

	item, _ := ledger.Item("VEG002")
	assert.Equal(t, 28, item.Stock)
}

func TestOrderExactStockLeavesZero(t *testing.T) {
	ledger := NewLedger()

	_, err := ledger.Order("NV003", 25)
	require.NoError(t, err)

	item, _ := ledger.Item("NV003")
	assert.Equal(t, 0, item.Stock)
}

func TestOrderBeyondStockFails(t *testing.T) {
	ledger := NewLedger()

	_, err := ledger.Order("NV003", 26)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	item, _ := ledger.Item("NV003")
	assert.Equal(t, 25, item.Stock, "stock untouched after a failed order")
}

func TestOrderValidation(t *testing.T) {
	ledger := NewLedger()

	_, err := ledger.Order("XXX999", 1)
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = ledger.Order("VEG001", 0)
	assert.Error(t, err)

	_, err = ledger.Order("VEG001", -3)
	assert.Error(t, err)
}

func TestAdjustClampsAtZero(t *testing.T) {
	ledger := NewLedger()

	newStock, clamped, err := ledger.Adjust("SNK001", 20)
	require.NoError(t, err)
	assert.Equal(t, 100, newStock)
	assert.False(t, clamped)

	newStock, clamped, err = ledger.Adjust("SNK001", -500)
	require.NoError(t, err)
	assert.Equal(t, 0, newStock)
	assert.True(t, clamped)

	_, _, err = ledger.Adjust("XXX999", 5)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestResetRestoresSeedStock(t *testing.T) {
	ledger := NewLedger()

	_, err := ledger.Order("VEG001", 50)
	require.NoError(t, err)
	_, _, err = ledger.Adjust("BEV002", -100)
	require.NoError(t, err)

	ledger.Reset()

	seedStock := map[string]int{
		"VEG001": 50, "VEG002": 30, "VEG003": 40, "VEG004": 60,
		"NV001": 35, "NV002": 60, "NV003": 25,
		"BEV001": 100, "BEV002": 100, "SNK001": 80,
	}
	for id, stock := range seedStock {
		item, ok := ledger.Item(id)
		require.True(t, ok, id)
		assert.Equal(t, stock, item.Stock, id)
	}
}

func TestResetIsolatesSeedFromMutation(t *testing.T) {
	ledger := NewLedger()

	_, err := ledger.Order("VEG001", 10)
	require.NoError(t, err)
	ledger.Reset()
	_, err = ledger.Order("VEG001", 10)
	require.NoError(t, err)
	ledger.Reset()

	item, _ := ledger.Item("VEG001")
	assert.Equal(t, 50, item.Stock, "seed must not drift across resets")
}

func TestAvailableInCategory(t *testing.T) {
	ledger := NewLedger()

	assert.Equal(t, 180, ledger.AvailableInCategory(railway.CateringCategoryVeg))
	assert.Equal(t, 120, ledger.AvailableInCategory(railway.CateringCategoryNonVeg))
	assert.Equal(t, 200, ledger.AvailableInCategory(railway.CateringCategoryBeverage))
	assert.Equal(t, 80, ledger.AvailableInCategory(railway.CateringCategorySnack))

	_, err := ledger.Order("VEG004", 60)
	require.NoError(t, err)
	assert.Equal(t, 120, ledger.AvailableInCategory(railway.CateringCategoryVeg))
}
