package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	httpin "foodies/internal/adapters/in/http"
	"foodies/internal/adapters/out/kafka"
	"foodies/internal/adapters/out/locks"
	"foodies/internal/adapters/out/memory"
	"foodies/internal/adapters/out/notification"
	"foodies/internal/adapters/out/postgres"
	"foodies/internal/adapters/out/razorpay"
	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/application/usecases/queries"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
	"foodies/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	cfg Config
	log *zap.Logger

	bus        *notification.Bus
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
	provider   ports.PaymentProvider
	verifier   ports.SignatureVerifier
	codPolicy  order.CashOnDeliveryPolicy
	forwarder  *kafka.Forwarder

	jobManager *jobs.JobManager
	closers    []func() error
	wg         sync.WaitGroup
	cancel     context.CancelFunc
}

// NewCompositionRoot connects the adapters selected by cfg. Close releases
// everything it opened.
func NewCompositionRoot(cfg Config, log *zap.Logger) (*CompositionRoot, error) {
	if log == nil {
		log = zap.NewNop()
	}

	codPolicy, err := order.ParseCashOnDeliveryPolicy(cfg.CODPolicy)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:       cfg,
		log:       log,
		codPolicy: codPolicy,
		bus:       notification.NewBus(log, cfg.NotificationQueueSize),
		provider: razorpay.NewClient(razorpay.Config{
			BaseURL:    cfg.RazorpayBaseURL,
			KeyID:      cfg.RazorpayKeyID,
			KeySecret:  cfg.RazorpayKeySecret,
			MaxRetries: 3,
		}, log),
		verifier: razorpay.NewVerifier(cfg.RazorpayKeySecret),
	}
	c.closers = append(c.closers, func() error { c.bus.Close(); return nil })
	publisher := notification.NewEventPublisher(c.bus, log)

	if err := c.openStorage(publisher); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.openLocker(); err != nil {
		_ = c.Close()
		return nil, err
	}
	if len(cfg.KafkaBrokers) > 0 {
		writer := kafka.NewWriter(cfg.KafkaBrokers)
		c.forwarder = kafka.NewForwarder(log, c.bus, writer, cfg.KafkaTopicPrefix)
		c.closers = append(c.closers, writer.Close)
	}

	jobManager, err := c.newJobManager()
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.jobManager = jobManager

	return c, nil
}

func (c *CompositionRoot) openStorage(publisher ports.EventPublisher) error {
	switch c.cfg.StorageDriver {
	case StorageMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), publisher)
		c.log.Warn("using in-memory storage, data is lost on restart")
		return nil
	case StoragePostgres:
		db, err := gorm.Open(gormpostgres.Open(c.cfg.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		c.closers = append(c.closers, sqlDB.Close)

		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db, publisher)
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.cfg.StorageDriver)
	}
}

func (c *CompositionRoot) openLocker() error {
	if c.cfg.RedisAddr == "" {
		c.locker = locks.NewKeyedMutex()
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: c.cfg.RedisAddr})
	c.closers = append(c.closers, client.Close)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	c.locker = locks.NewRedisLocker(client, c.log, locks.DefaultLockTTL)
	return nil
}

func (c *CompositionRoot) newJobManager() (*jobs.JobManager, error) {
	var assignmentJob *jobs.PartnerAssignmentJob
	if c.cfg.AssignmentStrategy != services.StrategyManual {
		handler, err := c.CreateAutoAssignPartnerCommandHandler()
		if err != nil {
			return nil, err
		}
		assignmentJob = jobs.NewPartnerAssignmentJob(handler, "", c.log)
	}

	expiryJob := jobs.NewPaymentExpiryJob(c.CreateExpirePaymentsCommandHandler(), c.cfg.PaymentIntentTTL, "", c.log)
	return jobs.NewJobManager(assignmentJob, expiryJob), nil
}

// Start runs the background jobs and the Kafka forwarder.
func (c *CompositionRoot) Start(ctx context.Context) error {
	if err := c.jobManager.StartAll(); err != nil {
		return err
	}

	ctx, c.cancel = context.WithCancel(ctx)
	if c.forwarder != nil {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.forwarder.Run(ctx)
		}()
	}
	return nil
}

// Close stops background work and releases connections in reverse order.
func (c *CompositionRoot) Close() error {
	if c.jobManager != nil && c.cancel != nil {
		c.jobManager.StopAll()
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()

	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errList = append(errList, err)
		}
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) Bus() *notification.Bus {
	return c.bus
}

// Router builds the HTTP API.
func (c *CompositionRoot) Router() (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateHTTPHandlers(), c.log)
	return httpin.NewRouter(
		httpin.RouterConfig{RateLimit: c.cfg.RateLimitRPS, VerifyRateLimit: c.cfg.VerifyRateLimitRPS},
		server,
		httpin.NewLiveUpdates(c.bus, c.log),
		httpin.NewAuthenticator(c.cfg.JWTSecret),
		c.log,
	)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
		AssignDeliveryPartner:  c.CreateAssignDeliveryPartnerCommandHandler(),
		UpdateDeliveryPosition: c.CreateUpdateDeliveryPositionCommandHandler(),
		CreatePartner:          c.CreateCreateDeliveryPartnerCommandHandler(),
		UpdatePartner:          c.CreateUpdatePartnerCommandHandler(),
		CreatePaymentIntent:    c.CreateCreatePaymentIntentCommandHandler(),
		VerifyPayment:          c.CreateVerifyPaymentCommandHandler(),
		RefundPayment:          c.CreateRefundPaymentCommandHandler(),

		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		GetUnassignedOrders: c.CreateGetUnassignedOrdersQueryHandler(),
		GetAllPartners:      c.CreateGetAllPartnersQueryHandler(),
		GetPayment:          c.CreateGetPaymentQueryHandler(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), services.NewOrderNumberGenerator(nil))
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.locker, c.codPolicy)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateMarkOrderRefundedCommandHandler() commands.MarkOrderRefundedCommandHandler {
	return commands.NewMarkOrderRefundedCommandHandler(c.orderUoWFactory(), c.locker, c.codPolicy)
}

func (c *CompositionRoot) CreateAssignDeliveryPartnerCommandHandler() commands.AssignDeliveryPartnerCommandHandler {
	return commands.NewAssignDeliveryPartnerCommandHandler(c.crossUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateAutoAssignPartnerCommandHandler() (commands.AutoAssignPartnerCommandHandler, error) {
	strategy, err := services.NewAssignmentStrategy(c.cfg.AssignmentStrategy)
	if err != nil {
		return commands.AutoAssignPartnerCommandHandler{}, err
	}
	return commands.NewAutoAssignPartnerCommandHandler(
		c.crossUoWFactory(),
		strategy,
		c.CreateAssignDeliveryPartnerCommandHandler(),
	), nil
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateUpdateDeliveryPositionCommandHandler() commands.UpdateDeliveryPositionCommandHandler {
	return commands.NewUpdateDeliveryPositionCommandHandler(
		c.CreateUpdateDeliveryLocationCommandHandler(),
		c.partnerUoWFactory(),
		c.locker,
	)
}

func (c *CompositionRoot) CreateCreateDeliveryPartnerCommandHandler() commands.CreateDeliveryPartnerCommandHandler {
	return commands.NewCreateDeliveryPartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	return commands.NewUpdatePartnerCommandHandler(c.partnerUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	return commands.NewCreatePaymentIntentCommandHandler(c.paymentUoWFactory(), c.locker, c.provider)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	return commands.NewVerifyPaymentCommandHandler(
		c.paymentUoWFactory(),
		c.locker,
		c.verifier,
		c.CreateMarkOrderPaidCommandHandler(),
		c.log.Named("payments"),
	)
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(
		c.paymentUoWFactory(),
		c.locker,
		c.provider,
		c.CreateMarkOrderRefundedCommandHandler(),
	)
}

func (c *CompositionRoot) CreateExpirePaymentsCommandHandler() commands.ExpirePaymentsCommandHandler {
	return commands.NewExpirePaymentsCommandHandler(c.paymentUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetAllPartnersQueryHandler() queries.GetAllPartnersQueryHandler {
	return queries.NewGetAllPartnersQueryHandler(c.uowFactory.Create().PartnerRepository())
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.uowFactory.Create().PaymentRepository())
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
