package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
)

// PaymentStatus tracks whether an order has been paid
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// IsValid reports whether the payment status is a known value
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// DeliveryStatus tracks the fulfilment state of an order
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

// IsValid reports whether the delivery status is a known value
func (s DeliveryStatus) IsValid() bool {
	return s == DeliveryPending || s == DeliveryDelivered || s == DeliveryCancelled
}

// OrderItem is a line on an order. UnitPrice is a snapshot of the
// product price at placement time and never changes afterwards.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"size:200;not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the database table name
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns quantity times the snapshotted unit price
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Order is the aggregate root for a customer sale. TotalAmount is
// derived from the items and recomputed on every mutation.
type Order struct {
	shared.BaseAggregateRoot
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentStatus  PaymentStatus   `gorm:"size:20;not null;default:'PENDING'"`
	DeliveryStatus DeliveryStatus  `gorm:"size:20;not null;default:'PENDING'"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Notes          string          `gorm:"type:text"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an empty order for a customer. Empty statuses
// default to pending; anything else must be a known value.
func NewOrder(customerID uuid.UUID, notes string, payment PaymentStatus, delivery DeliveryStatus) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("order customer is required")
	}
	if payment == "" {
		payment = PaymentPending
	}
	if !payment.IsValid() {
		return nil, shared.NewValidationError("unknown payment status: " + string(payment))
	}
	if delivery == "" {
		delivery = DeliveryPending
	}
	if !delivery.IsValid() {
		return nil, shared.NewValidationError("unknown delivery status: " + string(delivery))
	}
	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		PaymentStatus:     payment,
		DeliveryStatus:    delivery,
		TotalAmount:       decimal.Zero,
		Notes:             notes,
	}, nil
}

// AddItem appends a line with the given price snapshot and recomputes
// the order total.
func (o *Order) AddItem(productID uuid.UUID, productName string, quantity int64, unitPrice valueobject.Money) error {
	if productID == uuid.Nil {
		return shared.NewValidationError("order item product is required")
	}
	if quantity <= 0 {
		return shared.NewValidationError("order item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewValidationError("order item price cannot be negative")
	}

	o.Items = append(o.Items, OrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
	})
	o.recalculateTotal()
	return nil
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}
	o.TotalAmount = total
}

// HasItems reports whether the order carries at least one line
func (o *Order) HasItems() bool {
	return len(o.Items) > 0
}

// UpdatePaymentStatus sets the payment status
func (o *Order) UpdatePaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("unknown payment status: " + string(status))
	}
	o.PaymentStatus = status
	o.IncrementVersion()
	return nil
}

// UpdateDeliveryStatus sets the delivery status
func (o *Order) UpdateDeliveryStatus(status DeliveryStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("unknown delivery status: " + string(status))
	}
	o.DeliveryStatus = status
	o.IncrementVersion()
	return nil
}

// IsPaid reports whether the order has been settled
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentPaid
}
