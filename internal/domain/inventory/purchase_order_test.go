package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
)

func money(t *testing.T, s string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewPurchaseOrderDerivesTotal(t *testing.T) {
	po, err := NewPurchaseOrder(uuid.New(), uuid.New(), 50, money(t, "3.25"), "")
	require.NoError(t, err)
	assert.Equal(t, "162.50", po.TotalCost.StringFixed(2))
	assert.Equal(t, int64(50), po.Quantity)
}

func TestNewPurchaseOrderValidation(t *testing.T) {
	supplier, product := uuid.New(), uuid.New()

	_, err := NewPurchaseOrder(uuid.Nil, product, 10, money(t, "1.00"), "")
	assert.Error(t, err)

	_, err = NewPurchaseOrder(supplier, uuid.Nil, 10, money(t, "1.00"), "")
	assert.Error(t, err)

	_, err = NewPurchaseOrder(supplier, product, 0, money(t, "1.00"), "")
	assert.Error(t, err)

	_, err = NewPurchaseOrder(supplier, product, 10, money(t, "-1.00"), "")
	assert.Error(t, err)
}

func TestNewStockAdjustment(t *testing.T) {
	adj, err := NewStockAdjustment(uuid.New(), 4, ReasonSpoilage, "freezer failure")
	require.NoError(t, err)
	assert.Equal(t, ReasonSpoilage, adj.Reason)
	assert.Equal(t, int64(4), adj.Quantity)
}

func TestNewStockAdjustmentValidation(t *testing.T) {
	_, err := NewStockAdjustment(uuid.Nil, 4, ReasonDamage, "")
	assert.Error(t, err)

	_, err = NewStockAdjustment(uuid.New(), 0, ReasonDamage, "")
	assert.Error(t, err)

	_, err = NewStockAdjustment(uuid.New(), 4, AdjustmentReason("SHRINKAGE"), "")
	assert.Error(t, err)
}

func TestAdjustmentReasonValidity(t *testing.T) {
	for _, r := range []AdjustmentReason{ReasonSpoilage, ReasonDamage, ReasonTheft, ReasonInternalUse, ReasonCorrection} {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, AdjustmentReason("").IsValid())
}
