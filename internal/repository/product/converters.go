package product

import (
	"restoralia/internal/entities"
)

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}

	return &entities.Product{
		ID:         p.ID,
		SiteID:     p.SiteID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Available:  p.Available,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
