package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"restoralia/internal/entities"
	"restoralia/internal/service/access"
	"restoralia/pkg/logger"
)

const (
	// ActionStatusUpdated and ActionCreated name the audit events this
	// service emits.
	ActionStatusUpdated = "order.status.updated"
	ActionCreated       = "order.created"

	// anonymousActor is recorded when checkout happens without a signed-in
	// customer.
	anonymousActor = "system-anonymous"
	// systemActor is recorded for transitions initiated by background tasks.
	systemActor = "system"
)

// statusUpdateRoles may move orders on the fulfillment board.
var statusUpdateRoles = []entities.WorkspaceRole{
	entities.RoleOwner,
	entities.RoleAdmin,
	entities.RoleMember,
}

type Service struct {
	repository Repository
	products   ProductRepository
	guard      AccessGuard
	audit      AuditSink
	publisher  ChangePublisher
	cache      ViewCache
	txManager  TxManager
	log        logger.Logger
}

func New(
	repository Repository,
	products ProductRepository,
	guard AccessGuard,
	audit AuditSink,
	publisher ChangePublisher,
	cache ViewCache,
	txManager TxManager,
	log logger.Logger,
) *Service {
	return &Service{
		repository: repository,
		products:   products,
		guard:      guard,
		audit:      audit,
		publisher:  publisher,
		cache:      cache,
		txManager:  txManager,
		log:        log.With(),
	}
}

// UpdateStatus transitions one order to a new status on behalf of actorID.
//
// Validation order: structural input check, order lookup, workspace role
// check, terminal-state rule. The status write is the source of truth; the
// audit record, the change event and the cache invalidation that follow are
// best effort and never fail the call.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, actorID string) error {
	if !isValidID(orderID) || !status.Valid() {
		return ErrInvalidInput
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return s.unexpected("get order", orderID, err)
	}

	if _, err := s.guard.RequireWorkspaceRole(ctx, current.WorkspaceID, actorID, statusUpdateRoles...); err != nil {
		// Unauthenticated and forbidden deliberately collapse into one kind so
		// the caller cannot tell which applied.
		if errors.Is(err, access.ErrUnauthenticated) || errors.Is(err, access.ErrForbidden) {
			return ErrPermissionDenied
		}
		return s.unexpected("check workspace role", orderID, err)
	}

	if !entities.CanTransition(current.Status, status) {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, current.Status)
	}

	updated, err := s.repository.UpdateStatus(ctx, entities.OrderModify{
		ID:        pointer.To(orderID),
		Status:    pointer.To(status),
		UpdatedAt: pointer.To(time.Now().UTC()),
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return s.unexpected("update order status", orderID, err)
	}

	s.audit.Record(ctx, entities.AuditEvent{
		Action:           ActionStatusUpdated,
		ActorID:          actorID,
		TargetEntityID:   orderID,
		TargetEntityType: "order",
		Metadata: map[string]any{
			"from":        current.Status.String(),
			"to":          status.String(),
			"workspaceId": current.WorkspaceID,
		},
	})

	s.publishChange(ctx, entities.OrderChange{Kind: entities.ChangeUpdate, Order: *updated})
	s.invalidateOrders(ctx, current.WorkspaceID)

	return nil
}

type CartItem struct {
	ProductID string
	Quantity  int32
}

type CreateOrderInput struct {
	WorkspaceID string
	SiteID      string
	CustomerID  *string
	Items       []CartItem
}

// Create inserts a new pending order with its items in one transaction.
// Totals are recomputed from current product prices; client-supplied amounts
// are never trusted.
func (s *Service) Create(ctx context.Context, input CreateOrderInput) (*entities.Order, error) {
	if !isValidID(input.WorkspaceID) || !isValidID(input.SiteID) {
		return nil, ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if !isValidID(item.ProductID) || item.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
	}

	productIDs := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, s.unexpected("load products", input.WorkspaceID, err)
	}
	priceByID := make(map[string]int64, len(products))
	for _, product := range products {
		priceByID[product.ID] = product.PriceCents
	}

	var subtotal int64
	items := make([]entities.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		price, ok := priceByID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
		}
		subtotal += price * int64(item.Quantity)
		items = append(items, entities.OrderItem{
			ProductID:            pointer.To(item.ProductID),
			Quantity:             item.Quantity,
			PriceAtPurchaseCents: price,
		})
	}

	// Tax handling is not wired up yet; total therefore equals subtotal.
	order := entities.Order{
		WorkspaceID:   input.WorkspaceID,
		SiteID:        pointer.To(input.SiteID),
		CustomerID:    input.CustomerID,
		Status:        entities.OrderPending,
		SubtotalCents: subtotal,
		TaxCents:      0,
		TotalCents:    subtotal,
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.repository.Create(ctx, order, items)
		if txErr != nil {
			return fmt.Errorf("create order with items: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, s.unexpected("create order", input.WorkspaceID, err)
	}

	actor := anonymousActor
	if input.CustomerID != nil && *input.CustomerID != "" {
		actor = *input.CustomerID
	}
	s.audit.Record(ctx, entities.AuditEvent{
		Action:           ActionCreated,
		ActorID:          actor,
		TargetEntityID:   created.ID,
		TargetEntityType: "order",
		Metadata: map[string]any{
			"total":       created.TotalCents,
			"items":       len(items),
			"workspaceId": created.WorkspaceID,
		},
	})

	s.publishChange(ctx, entities.OrderChange{Kind: entities.ChangeInsert, Order: *created})
	s.invalidateOrders(ctx, created.WorkspaceID)

	return created, nil
}

// ActiveOrders returns the board snapshot for a workspace: every order whose
// status is neither delivered nor cancelled, with items and customer name
// joined in. Served cache-aside; cache failures fall through to the database.
func (s *Service) ActiveOrders(ctx context.Context, workspaceID string) ([]entities.Order, error) {
	if !isValidID(workspaceID) {
		return nil, ErrInvalidInput
	}

	cached, hit, err := s.cache.GetOrders(ctx, workspaceID)
	if err != nil {
		s.log.With(
			logger.NewField("workspace", workspaceID),
			logger.NewField("error", err),
		).Warn("order view cache read failed")
	}
	if hit {
		return cached, nil
	}

	orders, err := s.repository.ListActiveByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, s.unexpected("list active orders", workspaceID, err)
	}

	if err := s.cache.SetOrders(ctx, workspaceID, orders); err != nil {
		s.log.With(
			logger.NewField("workspace", workspaceID),
			logger.NewField("error", err),
		).Warn("order view cache write failed")
	}

	return orders, nil
}

// ExpirePending cancels orders that have been sitting in pending longer than
// maxAge. Each cancellation goes through the regular audit and change-event
// paths with the system actor.
func (s *Service) ExpirePending(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, ErrInvalidInput
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	stale, err := s.repository.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stale pending orders: %w", err)
	}

	var cancelled int64
	touched := make(map[string]struct{})
	for _, stuck := range stale {
		updated, err := s.repository.UpdateStatus(ctx, entities.OrderModify{
			ID:        pointer.To(stuck.ID),
			Status:    pointer.To(entities.OrderCancelled),
			UpdatedAt: pointer.To(time.Now().UTC()),
		})
		if err != nil {
			s.log.With(
				logger.NewField("order", stuck.ID),
				logger.NewField("error", err),
			).Error("expire pending order")
			continue
		}

		s.audit.Record(ctx, entities.AuditEvent{
			Action:           ActionStatusUpdated,
			ActorID:          systemActor,
			TargetEntityID:   stuck.ID,
			TargetEntityType: "order",
			Metadata: map[string]any{
				"from":        stuck.Status.String(),
				"to":          entities.OrderCancelled.String(),
				"workspaceId": stuck.WorkspaceID,
				"reason":      "pending_expired",
			},
		})
		s.publishChange(ctx, entities.OrderChange{Kind: entities.ChangeUpdate, Order: *updated})

		touched[stuck.WorkspaceID] = struct{}{}
		cancelled++
	}

	for workspaceID := range touched {
		s.invalidateOrders(ctx, workspaceID)
	}

	return cancelled, nil
}

func (s *Service) publishChange(ctx context.Context, change entities.OrderChange) {
	if err := s.publisher.PublishChange(ctx, change); err != nil {
		s.log.With(
			logger.NewField("order", change.Order.ID),
			logger.NewField("kind", string(change.Kind)),
			logger.NewField("error", err),
		).Error("publish order change event")
	}
}

func (s *Service) invalidateOrders(ctx context.Context, workspaceID string) {
	if err := s.cache.InvalidateOrders(ctx, workspaceID); err != nil {
		s.log.With(
			logger.NewField("workspace", workspaceID),
			logger.NewField("error", err),
		).Warn("invalidate order view cache")
	}
}

func (s *Service) unexpected(op, entityID string, err error) error {
	correlationID := uuid.NewString()
	s.log.With(
		logger.NewField("op", op),
		logger.NewField("entity", entityID),
		logger.NewField("correlation_id", correlationID),
		logger.NewField("error", err),
	).Error("unexpected order service failure")
	return &UnexpectedError{CorrelationID: correlationID}
}
