package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"restoralia/internal/entities"
	"restoralia/pkg/logger"
)

type Status string

const (
	StatusSubscribed Status = "subscribed"
	StatusError      Status = "error"
	StatusTimedOut   Status = "timed_out"
)

const subscribeConfirmTimeout = 10 * time.Second

// Handlers receive dispatched change events. Nil callbacks are skipped.
// Callbacks run on the subscription's reader goroutine, so they must not
// block for long.
type Handlers struct {
	OnInsert func(order entities.Order)
	OnUpdate func(order entities.Order)
	OnStatus func(status Status, err error)
}

// pubsub is the subset of *redis.PubSub the subscription actually uses.
type pubsub interface {
	Receive(ctx context.Context) (interface{}, error)
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

// Subscription is one live attachment to a workspace's change channel.
type Subscription struct {
	log       logger.Logger
	pubsub    pubsub
	handlers  Handlers
	closeOnce sync.Once
	done      chan struct{}
}

// Subscribe attaches to the workspace's channel and starts dispatching
// events. It reports subscribed through OnStatus once the server confirms
// the subscription, or timed_out if confirmation does not arrive in time.
func Subscribe(ctx context.Context, log logger.Logger, client *redis.Client, workspaceID string, handlers Handlers) (*Subscription, error) {
	channel := ChannelForWorkspace(workspaceID)
	return subscribeChannel(ctx, log, channel, client.Subscribe(ctx, channel), handlers)
}

func subscribeChannel(ctx context.Context, log logger.Logger, channel string, ps pubsub, handlers Handlers) (*Subscription, error) {
	sub := &Subscription{
		log: log.With(
			logger.NewField("channel", channel),
		),
		pubsub:   ps,
		handlers: handlers,
		done:     make(chan struct{}),
	}

	confirmCtx, cancel := context.WithTimeout(ctx, subscribeConfirmTimeout)
	defer cancel()

	if _, err := ps.Receive(confirmCtx); err != nil {
		status := StatusError
		if errors.Is(err, context.DeadlineExceeded) {
			status = StatusTimedOut
		}
		sub.notifyStatus(status, err)
		closeErr := ps.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("feed subscribe to %s: %w (failed to close: %w)", channel, err, closeErr)
		}
		return nil, fmt.Errorf("feed subscribe to %s: %w", channel, err)
	}

	sub.notifyStatus(StatusSubscribed, nil)
	go sub.dispatch()

	return sub, nil
}

// Close detaches from the channel. It is safe to call more than once and
// from multiple goroutines.
func (s *Subscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.pubsub.Close()
		<-s.done
	})
	return err
}

func (s *Subscription) dispatch() {
	defer close(s.done)

	for msg := range s.pubsub.Channel() {
		change, err := DecodeChange([]byte(msg.Payload))
		if err != nil {
			s.log.With(
				logger.NewField("error", err),
			).Warn("dropping undecodable feed message")
			s.notifyStatus(StatusError, err)
			continue
		}

		switch change.Kind {
		case entities.ChangeInsert:
			if s.handlers.OnInsert != nil {
				s.handlers.OnInsert(change.Order)
			}
		case entities.ChangeUpdate:
			if s.handlers.OnUpdate != nil {
				s.handlers.OnUpdate(change.Order)
			}
		}
	}
}

func (s *Subscription) notifyStatus(status Status, err error) {
	if s.handlers.OnStatus != nil {
		s.handlers.OnStatus(status, err)
	}
}
