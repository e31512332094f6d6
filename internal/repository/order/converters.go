package order

import (
	"restoralia/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:            o.ID,
		WorkspaceID:   o.WorkspaceID,
		SiteID:        o.SiteID,
		CustomerID:    o.CustomerID,
		Status:        entities.OrderStatusType(o.Status),
		SubtotalCents: o.SubtotalCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.TotalCents,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ToItemDomain(i *OrderItemDB) *entities.OrderItem {
	if i == nil {
		return nil
	}

	return &entities.OrderItem{
		ID:                   i.ID,
		OrderID:              i.OrderID,
		ProductID:            i.ProductID,
		Quantity:             i.Quantity,
		PriceAtPurchaseCents: i.PriceAtPurchaseCents,
		CreatedAt:            i.CreatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderModifyDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderModifyDB.Status = &status
	}
	if orderModify.UpdatedAt != nil {
		orderModifyDB.UpdatedAt = orderModify.UpdatedAt
	}

	return orderModifyDB
}
