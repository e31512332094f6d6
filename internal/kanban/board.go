package kanban

import (
	"context"
	"sync"

	"restoralia/internal/entities"
	"restoralia/pkg/logger"
)

// DragResult reports how one drag settled. NoOp drags never left the board,
// Err carries the failure after the optimistic move was rolled back.
type DragResult struct {
	NoOp bool
	Err  error
}

// Board holds the kanban state for one workspace. All mutations funnel
// through the mutex: feed events, drags and snapshot replacement never
// interleave mid-update.
type Board struct {
	log      logger.Logger
	updater  StatusUpdater
	notifier Notifier
	actorID  string

	mu              sync.Mutex
	orders          []entities.Order
	mutatingOrderID string
}

func New(log logger.Logger, updater StatusUpdater, notifier Notifier, actorID string) *Board {
	return &Board{
		log: log.With(
			logger.NewField("component", "kanban"),
		),
		updater:  updater,
		notifier: notifier,
		actorID:  actorID,
	}
}

// SetOrders replaces the board state with a freshly fetched order list.
func (b *Board) SetOrders(orders []entities.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.orders = make([]entities.Order, len(orders))
	copy(b.orders, orders)
}

// Orders returns a snapshot copy of the current list.
func (b *Board) Orders() []entities.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	snapshot := make([]entities.Order, len(b.orders))
	copy(snapshot, b.orders)
	return snapshot
}

// OrdersByStatus groups the current list into board columns. Every column is
// present even when empty, in fixed column order.
func (b *Board) OrdersByStatus() map[entities.OrderStatusType][]entities.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	columns := make(map[entities.OrderStatusType][]entities.Order, len(entities.OrderStatuses()))
	for _, status := range entities.OrderStatuses() {
		columns[status] = []entities.Order{}
	}
	for _, order := range b.orders {
		columns[order.Status] = append(columns[order.Status], order)
	}
	return columns
}

// MutatingOrderID returns the id of the order with a drag in flight, or "".
func (b *Board) MutatingOrderID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mutatingOrderID
}

// HandleDragEnd applies the move optimistically and settles it against the
// backend in the background. The returned channel delivers exactly one
// result. Dropping a card on its own column, on an unknown order, or while
// another drag is in flight resolves as a no-op without touching the board.
func (b *Board) HandleDragEnd(ctx context.Context, orderID string, target entities.OrderStatusType) <-chan DragResult {
	result := make(chan DragResult, 1)

	b.mu.Lock()

	idx := b.indexOfLocked(orderID)
	if idx < 0 || b.orders[idx].Status == target || b.mutatingOrderID != "" {
		b.mu.Unlock()
		result <- DragResult{NoOp: true}
		close(result)
		return result
	}

	snapshot := make([]entities.Order, len(b.orders))
	copy(snapshot, b.orders)

	b.orders[idx].Status = target
	b.mutatingOrderID = orderID
	b.mu.Unlock()

	go func() {
		err := b.updater.UpdateStatus(ctx, orderID, target, b.actorID)

		b.mu.Lock()
		if err != nil {
			b.orders = snapshot
			b.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("target", target.String()),
				logger.NewField("error", err),
			).Warn("drag rolled back")
		}
		b.mutatingOrderID = ""
		b.mu.Unlock()

		if err != nil {
			b.notifier.Error(NotifyText(err))
		} else {
			b.notifier.Success("Order status updated")
		}

		result <- DragResult{Err: err}
		close(result)
	}()

	return result
}

// OnNewOrder prepends a freshly inserted order. The event carries the bare
// row, so joined fields start empty until a detail fetch fills them in.
func (b *Board) OnNewOrder(order entities.Order) {
	b.mu.Lock()

	if b.indexOfLocked(order.ID) >= 0 {
		b.mu.Unlock()
		return
	}

	order.Items = []entities.OrderItem{}
	order.CustomerName = nil

	b.orders = append([]entities.Order{order}, b.orders...)
	b.mu.Unlock()

	b.notifier.Success("New order received")
}

// OnUpdateOrder merges an updated row into the board by id. Updates for the
// order currently being dragged are suppressed so the echo of our own write
// cannot clobber the optimistic state; unknown ids are dropped.
func (b *Board) OnUpdateOrder(order entities.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if order.ID == b.mutatingOrderID {
		return
	}

	idx := b.indexOfLocked(order.ID)
	if idx < 0 {
		return
	}

	current := &b.orders[idx]
	current.Status = order.Status
	current.SubtotalCents = order.SubtotalCents
	current.TaxCents = order.TaxCents
	current.TotalCents = order.TotalCents
	current.UpdatedAt = order.UpdatedAt
}

func (b *Board) indexOfLocked(orderID string) int {
	for i := range b.orders {
		if b.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}
