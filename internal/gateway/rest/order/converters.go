package order

import (
	"restoralia/internal/entities"
	"restoralia/internal/generated/dto"
)

func toDomain(orderDTO dto.Order) entities.Order {
	orderEntity := entities.Order{
		ID:            orderDTO.Id,
		WorkspaceID:   orderDTO.WorkspaceId,
		SiteID:        orderDTO.SiteId,
		CustomerID:    orderDTO.CustomerId,
		CustomerName:  orderDTO.CustomerName,
		Status:        entities.OrderStatusType(orderDTO.Status),
		SubtotalCents: orderDTO.SubtotalCents,
		TaxCents:      orderDTO.TaxCents,
		TotalCents:    orderDTO.TotalCents,
		Items:         []entities.OrderItem{},
		CreatedAt:     orderDTO.CreatedAt,
		UpdatedAt:     orderDTO.UpdatedAt,
	}

	if orderDTO.Items != nil {
		for _, itemDTO := range *orderDTO.Items {
			orderEntity.Items = append(orderEntity.Items, entities.OrderItem{
				ID:                   itemDTO.Id,
				OrderID:              itemDTO.OrderId,
				ProductID:            itemDTO.ProductId,
				Quantity:             itemDTO.Quantity,
				PriceAtPurchaseCents: itemDTO.PriceAtPurchaseCents,
				CreatedAt:            itemDTO.CreatedAt,
			})
		}
	}

	return orderEntity
}

func toDomainList(listDTO dto.OrderList) []entities.Order {
	orders := make([]entities.Order, 0, len(listDTO.Orders))
	for _, orderDTO := range listDTO.Orders {
		orders = append(orders, toDomain(orderDTO))
	}
	return orders
}
