package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"storefront-backend/internal/config"
	infraCache "storefront-backend/internal/infrastructure/cache"
	"storefront-backend/internal/infrastructure/database"
	"storefront-backend/internal/infrastructure/email"
	"storefront-backend/internal/infrastructure/mongodb"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/jwt"
	"storefront-backend/pkg/logger"

	checkoutHandler "storefront-backend/internal/domains/checkout/handler"
	checkoutRepo "storefront-backend/internal/domains/checkout/repository"
	checkoutService "storefront-backend/internal/domains/checkout/service"
	couponHandler "storefront-backend/internal/domains/coupon/handler"
	couponRepo "storefront-backend/internal/domains/coupon/repository"
	couponService "storefront-backend/internal/domains/coupon/service"
	orderRepo "storefront-backend/internal/domains/order/repository"
	productHandler "storefront-backend/internal/domains/product/handler"
	productRepo "storefront-backend/internal/domains/product/repository"
	productService "storefront-backend/internal/domains/product/service"
	reviewHandler "storefront-backend/internal/domains/review/handler"
	reviewRepo "storefront-backend/internal/domains/review/repository"
	reviewService "storefront-backend/internal/domains/review/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependency graph, dùng chung cho cmd/api và cmd/worker
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Mongo       *mongodb.Client
	Cache       cache.Cache
	EmailSender email.Sender
	JWTManager  *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	CouponRepo   couponRepo.CouponRepository
	OrderRepo    orderRepo.OrderRepository
	CheckoutRepo checkoutRepo.CheckoutRepository
	ProductRepo  productRepo.ProductRepository
	ReviewRepo   reviewRepo.ReviewRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	CouponService   couponService.ServiceInterface
	CheckoutService checkoutService.ServiceInterface
	ProductService  productService.ServiceInterface
	ReviewService   reviewService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	CouponHandler      *couponHandler.PublicHandler
	CouponAdminHandler *couponHandler.AdminHandler
	CheckoutHandler    *checkoutHandler.CheckoutHandler
	ProductHandler     *productHandler.ProductHandler
	ReviewHandler      *reviewHandler.ReviewHandler

	redis *infraCache.RedisCache
}

// NewContainer khởi tạo theo thứ tự:
// config → infrastructure → repositories → services → handlers
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	log.Info().Str("env", cfg.App.Environment).Msg("🔧 Initializing DI Container...")

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	if err := c.initPostgres(); err != nil {
		return nil, err
	}
	if err := c.initMongo(); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initRedis()

	c.EmailSender = email.NewBreakerSender(
		email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.From,
		}),
		email.DefaultBreakerSettings(),
	)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 3-5: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initPostgres() error {
	log.Info().Msg("🗄️  Connecting to PostgreSQL...")

	dbConfig := c.Config.Database.DBConfig()

	if c.Config.Database.AutoMigrate {
		if err := database.RunMigrations(dbConfig); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Info().Msg("✅ Database connected")
	return nil
}

func (c *Container) initMongo() error {
	log.Info().Msg("🍃 Connecting to MongoDB...")

	mc := c.Config.Mongo
	ctx, cancel := context.WithTimeout(context.Background(), mc.Timeout+5*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, mc.URI, mc.Database, mc.Timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	c.Mongo = client

	// index tạo 1 lần lúc start
	if err := checkoutRepo.NewMongoRepository(client.DB).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure checkout indexes: %w", err)
	}

	log.Info().Str("database", mc.Database).Msg("✅ MongoDB connected")
	return nil
}

func (c *Container) initRedis() {
	log.Info().Msg("🔴 Connecting to Redis...")

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(context.Background()); err != nil {
		// Redis lỗi không critical cho API: cache miss → đọc DB
		log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical)")
	} else {
		log.Info().Msg("✅ Redis connected")
	}

	c.redis = rc
	c.Cache = rc
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CouponRepo = couponRepo.NewPostgresRepository(pool)
	c.OrderRepo = orderRepo.NewPostgresRepository(pool)
	c.CheckoutRepo = checkoutRepo.NewMongoRepository(c.Mongo.DB)
	c.ProductRepo = productRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.CouponService = couponService.NewCouponService(c.CouponRepo, c.OrderRepo)

	c.CheckoutService = checkoutService.NewAbandonedService(c.CheckoutRepo, c.EmailSender, checkoutService.RecoveryConfig{
		MinAge:      cfg.Recovery.MinAge,
		MaxAge:      cfg.Recovery.MaxAge,
		BatchSize:   cfg.Recovery.BatchSize,
		Concurrency: cfg.Recovery.Concurrency,
		FrontendURL: cfg.App.FrontendURL,
		StoreName:   cfg.Email.StoreName,
	})

	products := productService.NewProductService(c.ProductRepo, c.Cache)
	c.ProductService = products
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, products)
}

func (c *Container) initHandlers() {
	c.CouponHandler = couponHandler.NewPublicHandler(c.CouponService)
	c.CouponAdminHandler = couponHandler.NewAdminHandler(c.CouponService)
	c.CheckoutHandler = checkoutHandler.NewCheckoutHandler(c.CheckoutService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// ========================================
// HEALTH & CLEANUP
// ========================================

// HealthCheck trả trạng thái từng dependency: "ok" hoặc error message
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{}

	check := func(name string, fn func(context.Context) error) {
		if err := fn(ctx); err != nil {
			status[name] = err.Error()
			return
		}
		status[name] = "ok"
	}

	if c.DB != nil {
		check("postgres", c.DB.HealthCheck)
	}
	if c.Mongo != nil {
		check("mongodb", c.Mongo.Ping)
	}
	if c.Cache != nil {
		check("redis", c.Cache.Ping)
	}
	return status
}

// Cleanup đóng connections khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close MongoDB")
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close Redis")
		}
	}

	log.Info().Msg("✅ Container cleanup completed")
}
