//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"restoralia/internal/feed"
	orderChangedGateway "restoralia/internal/gateway/kafka/orderchanged"
	orderGateway "restoralia/internal/gateway/rest/order"
	"restoralia/internal/handlers/kafka-consumer/order_changed"
	orders_order_id_status_put "restoralia/internal/handlers/rest/orders_order_id_status_put"
	orders_post "restoralia/internal/handlers/rest/orders_post"
	workspaces_workspace_id_orders_get "restoralia/internal/handlers/rest/workspaces_workspace_id_orders_get"
	"restoralia/internal/handlers/tasks/order_expiry"
	"restoralia/internal/kanban"
	"restoralia/internal/pkg/config"
	"restoralia/internal/pkg/kafka"
	"restoralia/internal/pkg/viewcache"

	auditRepo "restoralia/internal/repository/audit"
	membershipRepo "restoralia/internal/repository/membership"
	orderRepo "restoralia/internal/repository/order"
	productRepo "restoralia/internal/repository/product"
	accessService "restoralia/internal/service/access"
	auditService "restoralia/internal/service/audit"
	orderService "restoralia/internal/service/order"

	"restoralia/pkg/background"
	"restoralia/pkg/logger"
	"restoralia/pkg/querier"
	"restoralia/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	ExpiryInterval time.Duration
	ExpiryMaxAge   time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	orders_order_id_status_put.Service
	workspaces_workspace_id_orders_get.Service
}

// InitializeApplication builds the HTTP API (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExpiryInterval,
		provideExpiryMaxAge,

		provideOrderRepository,
		provideMembershipRepository,
		provideAuditRepository,
		provideProductRepository,

		provideAccessGuard,
		provideAuditRecorder,
		provideViewCache,
		provideOrderChangedGateway,
		provideServiceOrder,

		provideOrderExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ProductRepository), new(*productRepo.Repository)),
		wire.Bind(new(orderService.AccessGuard), new(*accessService.Guard)),
		wire.Bind(new(orderService.AuditSink), new(*auditService.Recorder)),
		wire.Bind(new(orderService.ChangePublisher), new(*orderChangedGateway.Gateway)),
		wire.Bind(new(orderService.ViewCache), new(*viewcache.Cache)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(accessService.Repository), new(*membershipRepo.Repository)),
		wire.Bind(new(auditService.Repository), new(*auditRepo.Repository)),

		wire.Bind(new(order_expiry.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	Handler *order_changed.Handler
}

// InitializeKafkaWorkerApp builds the fan-out worker (cmd/worker-order-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideFeedPublisher,
		provideOrderChangedHandler,

		wire.Bind(new(order_changed.Publisher), new(*feed.Publisher)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

type BoardApp struct {
	Board   *kanban.Board
	Gateway *orderGateway.OrderGateway
}

// InitializeBoardApp builds the kanban daemon (cmd/board).
func InitializeBoardApp(
	ctx context.Context,
	log logger.Logger,
	httpClient *http.Client,
	cfg *config.Config,
) (*BoardApp, error) {
	wire.Build(
		provideOrderGateway,
		provideLogNotifier,
		provideBoard,

		wire.Bind(new(kanban.StatusUpdater), new(*orderGateway.OrderGateway)),
		wire.Bind(new(kanban.Notifier), new(*kanban.LogNotifier)),

		wire.Struct(new(BoardApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideMembershipRepository(querier *querier.Querier) *membershipRepo.Repository {
	return membershipRepo.New(querier)
}

func provideAuditRepository(querier *querier.Querier) *auditRepo.Repository {
	return auditRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideAccessGuard(repository accessService.Repository, log logger.Logger) *accessService.Guard {
	return accessService.New(repository, log)
}

func provideAuditRecorder(repository auditService.Repository, log logger.Logger) *auditService.Recorder {
	return auditService.New(repository, log)
}

func provideViewCache(redisClient *redis.Client, cfg *config.Config) *viewcache.Cache {
	return viewcache.New(redisClient, cfg.Redis.CacheTTL)
}

func provideOrderChangedGateway(producer *kafka.Producer, cfg *config.Config) *orderChangedGateway.Gateway {
	return orderChangedGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceOrder(
	repository orderService.Repository,
	products orderService.ProductRepository,
	guard orderService.AccessGuard,
	audit orderService.AuditSink,
	publisher orderService.ChangePublisher,
	cache orderService.ViewCache,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(repository, products, guard, audit, publisher, cache, txManager, log)
}

func provideExpiryInterval(cfg *config.Config) ExpiryInterval {
	return ExpiryInterval(cfg.Tasks.OrderExpiryInterval)
}

func provideExpiryMaxAge(cfg *config.Config) ExpiryMaxAge {
	return ExpiryMaxAge(cfg.Tasks.OrderExpiryMaxAge)
}

func provideOrderExpiryTask(
	log logger.Logger,
	orderService order_expiry.Service,
	interval ExpiryInterval,
	maxAge ExpiryMaxAge,
) *order_expiry.OrderExpiry {
	return order_expiry.NewOrderExpiry(log, orderService, time.Duration(interval), time.Duration(maxAge))
}

func provideTaskList(
	orderExpiryTask *order_expiry.OrderExpiry,
) []background.Task {
	return []background.Task{
		orderExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideFeedPublisher(redisClient *redis.Client) *feed.Publisher {
	return feed.NewPublisher(redisClient)
}

func provideOrderChangedHandler(log logger.Logger, publisher order_changed.Publisher, cfg *config.Config) *order_changed.Handler {
	return order_changed.New(log, publisher, cfg.Kafka.Handlers.OrderChanged.ProcessTimeout)
}

func provideOrderGateway(httpClient *http.Client, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(httpClient, cfg.Board.APIHost)
}

func provideLogNotifier(log logger.Logger) *kanban.LogNotifier {
	return kanban.NewLogNotifier(log)
}

func provideBoard(log logger.Logger, updater kanban.StatusUpdater, notifier kanban.Notifier, cfg *config.Config) *kanban.Board {
	return kanban.New(log, updater, notifier, cfg.Board.ActorID)
}
