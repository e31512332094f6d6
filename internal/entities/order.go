package entities

import "time"

type Order struct {
	ID            string
	WorkspaceID   string
	SiteID        *string
	CustomerID    *string
	Status        OrderStatusType
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	// Items and CustomerName come from joins; realtime change events carry the
	// bare row, so both stay empty there until a detail fetch fills them in.
	Items        []OrderItem
	CustomerName *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItem struct {
	ID                   string
	OrderID              string
	ProductID            *string
	Quantity             int32
	PriceAtPurchaseCents int64
	CreatedAt            time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderConfirmed      OrderStatusType = "confirmed"
	OrderPreparing      OrderStatusType = "preparing"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transitions are accepted from s.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Active reports whether an order in status s belongs on the fulfillment board.
func (s OrderStatusType) Active() bool {
	return s.Valid() && !s.Terminal()
}

// CanTransition applies the terminal-state rule: any transition between
// non-terminal states is accepted, nothing leaves delivered or cancelled.
func CanTransition(from, to OrderStatusType) bool {
	return from.Valid() && to.Valid() && !from.Terminal()
}

// OrderStatuses lists every status in board column order.
func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{
		OrderPending,
		OrderConfirmed,
		OrderPreparing,
		OrderOutForDelivery,
		OrderDelivered,
		OrderCancelled,
	}
}

type OrderModify struct {
	ID        *string
	Status    *OrderStatusType
	UpdatedAt *time.Time
}

type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
)

// OrderChange is the row-level change event pushed to live consumers.
// The embedded order is the bare table row without joined relations.
type OrderChange struct {
	Kind  ChangeKind
	Order Order
}
