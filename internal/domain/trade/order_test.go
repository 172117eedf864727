package trade

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

func TestNewOrder(t *testing.T) {
	o, err := NewOrder(uuid.New(), "deliver before noon", "", "")
	require.NoError(t, err)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.Equal(t, DeliveryPending, o.DeliveryStatus)
	assert.True(t, o.TotalAmount.IsZero())
	assert.False(t, o.HasItems())
}

func TestNewOrderRequiresCustomer(t *testing.T) {
	_, err := NewOrder(uuid.Nil, "", "", "")
	assert.Error(t, err)
}

func TestNewOrderCarriesSuppliedStatuses(t *testing.T) {
	o, err := NewOrder(uuid.New(), "", PaymentPaid, DeliveryDelivered)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, o.PaymentStatus)
	assert.Equal(t, DeliveryDelivered, o.DeliveryStatus)
}

func TestNewOrderRejectsUnknownStatuses(t *testing.T) {
	_, err := NewOrder(uuid.New(), "", PaymentStatus("SHIPPED"), "")
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), "", "", DeliveryStatus("LOST"))
	assert.Error(t, err)
}

func TestAddItemRecalculatesTotal(t *testing.T) {
	o, err := NewOrder(uuid.New(), "", "", "")
	require.NoError(t, err)

	require.NoError(t, o.AddItem(uuid.New(), "Rice", 3, money(t, "9.99")))
	assert.Equal(t, "29.97", o.TotalAmount.StringFixed(2))

	require.NoError(t, o.AddItem(uuid.New(), "Oil", 2, money(t, "4.50")))
	assert.Equal(t, "38.97", o.TotalAmount.StringFixed(2))
	assert.True(t, o.HasItems())
}

func TestAddItemValidation(t *testing.T) {
	o, err := NewOrder(uuid.New(), "", "", "")
	require.NoError(t, err)

	assert.Error(t, o.AddItem(uuid.Nil, "Rice", 1, money(t, "1.00")))
	assert.Error(t, o.AddItem(uuid.New(), "Rice", 0, money(t, "1.00")))
	assert.Error(t, o.AddItem(uuid.New(), "Rice", 1, money(t, "-1.00")))
	assert.False(t, o.HasItems())
}

func TestOrderItemSnapshotIsIndependent(t *testing.T) {
	o, err := NewOrder(uuid.New(), "", "", "")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(uuid.New(), "Rice", 2, money(t, "9.99")))

	// Line totals come from the snapshot, not any live product price.
	assert.Equal(t, "19.98", o.Items[0].LineTotal().StringFixed(2))
	assert.Equal(t, "9.99", o.Items[0].UnitPrice.StringFixed(2))
}

func TestUpdateStatuses(t *testing.T) {
	o, err := NewOrder(uuid.New(), "", "", "")
	require.NoError(t, err)

	require.NoError(t, o.UpdatePaymentStatus(PaymentPaid))
	assert.True(t, o.IsPaid())

	require.NoError(t, o.UpdateDeliveryStatus(DeliveryDelivered))
	assert.Equal(t, DeliveryDelivered, o.DeliveryStatus)

	assert.Error(t, o.UpdatePaymentStatus(PaymentStatus("REFUNDED")))
	assert.Error(t, o.UpdateDeliveryStatus(DeliveryStatus("SHIPPED")))
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, PaymentPending.IsValid())
	assert.True(t, PaymentPaid.IsValid())
	assert.False(t, PaymentStatus("OVERDUE").IsValid())

	assert.True(t, DeliveryPending.IsValid())
	assert.True(t, DeliveryDelivered.IsValid())
	assert.True(t, DeliveryCancelled.IsValid())
	assert.False(t, DeliveryStatus("LOST").IsValid())
}
