package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"restoralia/internal/entities"
	orderservice "restoralia/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT id, workspace_id, site_id, customer_id, status,
			subtotal_cents, tax_cents, total_cents, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.WorkspaceID,
			&orderModel.SiteID,
			&orderModel.CustomerID,
			&orderModel.Status,
			&orderModel.SubtotalCents,
			&orderModel.TaxCents,
			&orderModel.TotalCents,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.UpdatedAt != nil {
		builder = builder.Set("updated_at", orderModifyModel.UpdatedAt)
	} else {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix(`RETURNING id, workspace_id, site_id, customer_id, status,
			subtotal_cents, tax_cents, total_cents, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.ID,
			&orderModel.WorkspaceID,
			&orderModel.SiteID,
			&orderModel.CustomerID,
			&orderModel.Status,
			&orderModel.SubtotalCents,
			&orderModel.TaxCents,
			&orderModel.TotalCents,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// Create inserts the order row plus its items. Callers run it inside a
// transaction; the querier picks the transaction up from the context.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order, items []entities.OrderItem) (*entities.Order, error) {
	query := `INSERT INTO orders (workspace_id, site_id, customer_id, status, subtotal_cents, tax_cents, total_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, workspace_id, site_id, customer_id, status,
			subtotal_cents, tax_cents, total_cents, created_at, updated_at`

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.WorkspaceID,
		orderEntity.SiteID,
		orderEntity.CustomerID,
		orderEntity.Status.String(),
		orderEntity.SubtotalCents,
		orderEntity.TaxCents,
		orderEntity.TotalCents,
	).Scan(
		&orderModel.ID,
		&orderModel.WorkspaceID,
		&orderModel.SiteID,
		&orderModel.CustomerID,
		&orderModel.Status,
		&orderModel.SubtotalCents,
		&orderModel.TaxCents,
		&orderModel.TotalCents,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	builder := qb.
		Insert("order_items").
		Columns("order_id", "product_id", "quantity", "price_at_purchase_cents")
	for _, item := range items {
		builder = builder.Values(orderModel.ID, item.ProductID, item.Quantity, item.PriceAtPurchaseCents)
	}

	itemsQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, itemsQuery, args...); err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	created := ToDomain(&orderModel)
	created.Items = make([]entities.OrderItem, len(items))
	copy(created.Items, items)
	for i := range created.Items {
		created.Items[i].OrderID = orderModel.ID
	}
	return created, nil
}

func (r *Repository) ListActiveByWorkspace(ctx context.Context, workspaceID string) ([]entities.Order, error) {
	query := `SELECT o.id, o.workspace_id, o.site_id, o.customer_id, o.status,
			o.subtotal_cents, o.tax_cents, o.total_cents, o.created_at, o.updated_at,
			p.full_name
		FROM orders o
		LEFT JOIN profiles p ON p.id = o.customer_id
		WHERE o.workspace_id = $1
		  AND o.status NOT IN ($2, $3)
		ORDER BY o.created_at DESC`

	rows, err := r.querier.Query(ctx, query, workspaceID,
		entities.OrderDelivered.String(), entities.OrderCancelled.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	orderIDs := make([]string, 0)
	byID := make(map[string]int)
	for rows.Next() {
		var orderModel OrderDB
		var fullName *string
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.WorkspaceID,
			&orderModel.SiteID,
			&orderModel.CustomerID,
			&orderModel.Status,
			&orderModel.SubtotalCents,
			&orderModel.TaxCents,
			&orderModel.TotalCents,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
			&fullName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}

		orderEntity := ToDomain(&orderModel)
		orderEntity.CustomerName = fullName
		orderEntity.Items = []entities.OrderItem{}

		byID[orderEntity.ID] = len(orders)
		orders = append(orders, *orderEntity)
		orderIDs = append(orderIDs, orderEntity.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	if len(orderIDs) == 0 {
		return orders, nil
	}

	if err := r.attachItems(ctx, orders, byID, orderIDs); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *Repository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Order, error) {
	query := `SELECT id, workspace_id, site_id, customer_id, status,
			subtotal_cents, tax_cents, total_cents, created_at, updated_at
		FROM orders
		WHERE status = $1
		  AND created_at < $2
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, entities.OrderPending.String(), cutoff)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.WorkspaceID,
			&orderModel.SiteID,
			&orderModel.CustomerID,
			&orderModel.Status,
			&orderModel.SubtotalCents,
			&orderModel.TaxCents,
			&orderModel.TotalCents,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
		}
		orders = append(orders, *ToDomain(&orderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	return orders, nil
}

func (r *Repository) attachItems(ctx context.Context, orders []entities.Order, byID map[string]int, orderIDs []string) error {
	query := `SELECT id, order_id, product_id, quantity, price_at_purchase_cents, created_at
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return fmt.Errorf("unexpected order repository items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemModel OrderItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.OrderID,
			&itemModel.ProductID,
			&itemModel.Quantity,
			&itemModel.PriceAtPurchaseCents,
			&itemModel.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("unexpected order repository items error: %w", err)
		}

		idx, ok := byID[itemModel.OrderID]
		if !ok {
			continue
		}
		orders[idx].Items = append(orders[idx].Items, *ToItemDomain(&itemModel))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("unexpected order repository items error: %w", err)
	}

	return nil
}
