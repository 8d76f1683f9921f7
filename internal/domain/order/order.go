package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// DeliveryType distinguishes courier delivery from pickup
type DeliveryType string

const (
	DeliveryTypeCourier DeliveryType = "courier"
	DeliveryTypePickup  DeliveryType = "pickup"
)

// IsValid checks if the delivery type is recognized
func (d DeliveryType) IsValid() bool {
	return d == DeliveryTypeCourier || d == DeliveryTypePickup
}

// OrderItem is a line item captured at checkout with the price paid
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrderItem creates an order line item
func NewOrderItem(orderID, productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	qty := decimal.NewFromInt(int64(quantity))

	return &OrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      qty.Mul(unitPrice),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Customer holds the contact and shipping details captured at checkout
type Customer struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

// Order is the aggregate root for a placed storefront order. Payment is a
// recorded label only; no processing happens here.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber   string
	BuyerID       uuid.UUID `gorm:"type:uuid;index"`
	Customer      Customer  `gorm:"embedded;embeddedPrefix:customer_"`
	Items         []OrderItem
	Total         decimal.Decimal
	DeliveryType  DeliveryType `gorm:"type:varchar(10)"`
	PaymentMethod string
	PlacedAt      *time.Time
}

// NewOrder creates an order being assembled at checkout
func NewOrder(orderNumber string, buyerID uuid.UUID, customer Customer, deliveryType DeliveryType, paymentMethod string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if buyerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUYER", "Buyer ID cannot be empty")
	}
	if customer.Name == "" || customer.Phone == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name and phone are required")
	}
	if customer.Address == "" || customer.City == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address and city are required")
	}
	if !deliveryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_TYPE", "Delivery type must be courier or pickup")
	}
	if paymentMethod == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method cannot be empty")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		BuyerID:           buyerID,
		Customer:          customer,
		Items:             make([]OrderItem, 0),
		Total:             decimal.Zero,
		DeliveryType:      deliveryType,
		PaymentMethod:     paymentMethod,
	}, nil
}

// AddItem adds a line item. Only allowed before the order is placed.
func (o *Order) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if o.IsPlaced() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a placed order")
	}

	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists in order")
		}
	}

	item, err := NewOrderItem(o.ID, productID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()

	return item, nil
}

// Place finalizes the order. Requires at least one item.
func (o *Order) Place() error {
	if o.IsPlaced() {
		return shared.NewDomainError("INVALID_STATE", "Order has already been placed")
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot place an order without items")
	}
	if o.Total.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Order total must be positive")
	}

	now := time.Now()
	o.PlacedAt = &now
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return nil
}

// IsPlaced returns true once the order has been finalized
func (o *Order) IsPlaced() bool {
	return o.PlacedAt != nil
}

// ItemCount returns the number of line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// recalculateTotal recomputes the order total from its items
func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.Total = total
}
