package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"restoralia/internal/entities"
	"restoralia/internal/generated/dto"
	orderservice "restoralia/internal/service/order"
	retrierconfig "restoralia/pkg/retrier"
	"restoralia/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "orders-api"

	actorHeader = "X-Actor-Id"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// statusError keeps the HTTP response around until retries settle, so the
// retrier can decide on the code and the caller can map it to a sentinel.
type statusError struct {
	code          int
	message       string
	correlationID string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.code, e.message)
}

// OrderGateway talks to the orders API over HTTP on behalf of the board
// daemon.
type OrderGateway struct {
	client  httpClient
	retrier retrier
	baseURL string
}

func New(client httpClient, baseURL string) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &OrderGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
	}
}

func (o *OrderGateway) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, actorID string) error {
	body, err := json.Marshal(dto.OrderStatusUpdate{
		Status: dto.OrderStatusUpdateStatus(status.String()),
	})
	if err != nil {
		return fmt.Errorf("gateway order, update status: %w", err)
	}

	url := fmt.Sprintf("%s/orders/%s/status", o.baseURL, orderID)

	err = o.executeWithMetrics(ctx, "UpdateStatus", func(ctx context.Context) error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
		if reqErr != nil {
			return reqErr
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(actorHeader, actorID)

		return o.do(req, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway order, update status %s: %w", orderID, mapError(err))
	}

	return nil
}

func (o *OrderGateway) ActiveOrders(ctx context.Context, workspaceID string) ([]entities.Order, error) {
	url := fmt.Sprintf("%s/workspaces/%s/orders", o.baseURL, workspaceID)

	var listDTO dto.OrderList

	err := o.executeWithMetrics(ctx, "ActiveOrders", func(ctx context.Context) error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if reqErr != nil {
			return reqErr
		}

		return o.do(req, &listDTO)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, active orders %s: %w", workspaceID, mapError(err))
	}

	return toDomainList(listDTO), nil
}

func (o *OrderGateway) do(req *http.Request, out interface{}) error {
	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		var errDTO dto.Error
		_ = json.NewDecoder(resp.Body).Decode(&errDTO)

		statusErr := &statusError{
			code:    resp.StatusCode,
			message: errDTO.Message,
		}
		if errDTO.CorrelationId != nil {
			statusErr.correlationID = *errDTO.CorrelationId
		}
		return statusErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// mapError translates transport failures into the service error taxonomy so
// board code handles local and remote command results the same way.
func mapError(err error) error {
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		return orderservice.ErrUnexpected
	}

	switch statusErr.code {
	case http.StatusBadRequest:
		return orderservice.ErrInvalidInput
	case http.StatusNotFound:
		return orderservice.ErrOrderNotFound
	case http.StatusForbidden:
		return orderservice.ErrPermissionDenied
	case http.StatusConflict:
		return orderservice.ErrTerminalStatus
	default:
		return &orderservice.UnexpectedError{CorrelationID: statusErr.correlationID}
	}
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code >= http.StatusInternalServerError ||
			statusErr.code == http.StatusTooManyRequests
	}

	// network-level failures are retried
	return true
}

func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := httpStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func httpStatusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "network_error"
}
