package order

import "time"

type OrderDB struct {
	ID            string
	WorkspaceID   string
	SiteID        *string
	CustomerID    *string
	Status        string
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderModifyDB struct {
	ID        *string
	Status    *string
	UpdatedAt *time.Time
}

type OrderItemDB struct {
	ID                   string
	OrderID              string
	ProductID            *string
	Quantity             int32
	PriceAtPurchaseCents int64
	CreatedAt            time.Time
}
