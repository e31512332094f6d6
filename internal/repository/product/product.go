package product

import (
	"context"
	"fmt"

	"restoralia/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetByIDs returns the products it finds; missing ids simply produce no row,
// callers decide whether that is an error.
func (r *Repository) GetByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error) {
	query := `SELECT id, site_id, name, price_cents, available, created_at, updated_at
		FROM products
		WHERE id = ANY($1)`

	rows, err := r.querier.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository list error: %w", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0, len(productIDs))
	for rows.Next() {
		var productModel ProductDB
		err := rows.Scan(
			&productModel.ID,
			&productModel.SiteID,
			&productModel.Name,
			&productModel.PriceCents,
			&productModel.Available,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository list error: %w", err)
		}
		products = append(products, *ToDomain(&productModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository list error: %w", err)
	}

	return products, nil
}
