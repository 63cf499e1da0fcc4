package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	infraCache "library-api/internal/infrastructure/cache"
	"library-api/internal/infrastructure/database"
	"library-api/internal/infrastructure/memstore"
	"library-api/internal/shared/existence"
	"library-api/internal/shared/middleware"
	"library-api/pkg/cache"
	"library-api/pkg/jwt"

	associationHandler "library-api/internal/domains/association/handler"
	associationRepo "library-api/internal/domains/association/repository"
	associationService "library-api/internal/domains/association/service"
	authorHandler "library-api/internal/domains/author/handler"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"
	biographyHandler "library-api/internal/domains/biography/handler"
	biographyRepo "library-api/internal/domains/biography/repository"
	biographyService "library-api/internal/domains/biography/service"
	bookHandler "library-api/internal/domains/book/handler"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
	eventHandler "library-api/internal/domains/event/handler"
	eventRepo "library-api/internal/domains/event/repository"
	eventService "library-api/internal/domains/event/service"
	userHandler "library-api/internal/domains/user/handler"
	userRepo "library-api/internal/domains/user/repository"
	userService "library-api/internal/domains/user/service"
)

// HealthCheck reports whether one backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the whole dependency graph of the API process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	// Exactly one of DB (postgres) or Store (memory, sqlite) is set.
	DB          *database.PostgresDB
	SQLite      *database.SQLiteSnapshotter
	Store       *memstore.Store
	RedisClient *infraCache.RedisClient
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	Existence   *existence.Validator
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
	Health      map[string]HealthCheck

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo      authorRepo.RepositoryInterface
	BookRepo        bookRepo.RepositoryInterface
	BiographyRepo   biographyRepo.RepositoryInterface
	EventRepo       eventRepo.RepositoryInterface
	AssociationRepo associationRepo.RepositoryInterface
	UserRepo        userRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService      authorService.ServiceInterface
	BookService        bookService.ServiceInterface
	BiographyService   biographyService.ServiceInterface
	EventService       eventService.ServiceInterface
	AssociationService associationService.ServiceInterface
	UserService        userService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler      *authorHandler.AuthorHandler
	BookHandler        *bookHandler.BookHandler
	BiographyHandler   *biographyHandler.BiographyHandler
	EventHandler       *eventHandler.EventHandler
	AssociationHandler *associationHandler.AssociationHandler
	UserHandler        *userHandler.UserHandler
}

// NewContainer loads configuration from the environment and builds the graph.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Build(context.Background(), cfg)
}

// Build wires every layer for cfg. Order matters: infrastructure, repositories,
// services, handlers. On error everything opened so far is released.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("store", cfg.Store.Driver).Str("env", cfg.App.Environment).Msg("Initializing DI container")

	c := &Container{
		Config: cfg,
		Cache:  cache.Noop{},
		Health: make(map[string]HealthCheck),
	}

	// ========================================
	// STEP 1: STORE
	// ========================================
	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.initCache(ctx)

	c.JWTManager = jwt.NewManager(jwt.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Expiry:   time.Duration(cfg.JWT.AccessTokenExpiry) * time.Minute,
	})
	c.Metrics = middleware.NewMetrics("library")
	if cfg.RateLimit.Enabled {
		c.RateLimiter = middleware.NewRateLimiter(middleware.LimiterConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		})
	}

	// ========================================
	// STEP 3: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// initStore opens the backend named by STORE_DRIVER.
func (c *Container) initStore(ctx context.Context) error {
	cfg := c.Config

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
		if err != nil {
			return err
		}
		db := database.NewPostgresDB(dbConfig)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := db.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		c.Health["postgres"] = db.HealthCheck

		if cfg.Store.AutoMigrate {
			if err := database.Migrate(ctx, db.Pool); err != nil {
				return err
			}
		}

	case config.DriverSQLite:
		snap, err := database.OpenSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return err
		}
		c.SQLite = snap
		c.Health["sqlite"] = snap.HealthCheck

		store, err := memstore.Open(ctx, snap)
		if err != nil {
			return err
		}
		c.Store = store

	default:
		c.Store = memstore.New()
	}
	return nil
}

// initCache connects Redis when enabled. Redis failure is not critical: the no-op cache stays.
func (c *Container) initCache(ctx context.Context) {
	cfg := c.Config.Redis
	if !cfg.Enabled {
		return
	}

	rc := infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Host).Msg("Redis connection failed, caching disabled")
		_ = rc.Close()
		return
	}

	c.RedisClient = rc
	c.Cache = infraCache.NewRedisCache(rc.Client, cfg.Prefix)
	c.Health["redis"] = rc.HealthCheck
	log.Info().Str("addr", cfg.Host).Dur("ttl", cfg.TTL).Msg("Redis connected")
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		pool := c.DB.Pool
		c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
		c.BookRepo = bookRepo.NewPostgresRepository(pool)
		c.BiographyRepo = biographyRepo.NewPostgresRepository(pool)
		c.EventRepo = eventRepo.NewPostgresRepository(pool)
		c.AssociationRepo = associationRepo.NewPostgresRepository(pool)
		c.UserRepo = userRepo.NewPostgresRepository(pool)
	} else {
		c.AuthorRepo = authorRepo.NewMemoryRepository(c.Store)
		c.BookRepo = bookRepo.NewMemoryRepository(c.Store)
		c.BiographyRepo = biographyRepo.NewMemoryRepository(c.Store)
		c.EventRepo = eventRepo.NewMemoryRepository(c.Store)
		c.AssociationRepo = associationRepo.NewMemoryRepository(c.Store)
		c.UserRepo = userRepo.NewMemoryRepository(c.Store)
	}

	if c.RedisClient != nil {
		ttl := c.Config.Redis.TTL
		c.AuthorRepo = authorRepo.NewCachedRepository(c.AuthorRepo, c.Cache, ttl)
		c.BookRepo = bookRepo.NewCachedRepository(c.BookRepo, c.Cache, ttl)
		c.BiographyRepo = biographyRepo.NewCachedRepository(c.BiographyRepo, c.Cache, ttl)
		c.EventRepo = eventRepo.NewCachedRepository(c.EventRepo, c.Cache, ttl)
	}

	c.Existence = existence.NewValidator().
		Register(existence.KindAuthor, c.AuthorRepo).
		Register(existence.KindEvent, c.EventRepo)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Existence)
	c.BiographyService = biographyService.NewBiographyService(c.BiographyRepo, c.Existence)
	c.EventService = eventService.NewEventService(c.EventRepo)
	c.AssociationService = associationService.NewAssociationService(c.AssociationRepo, c.Existence)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Config.Auth.BcryptCost)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.BiographyHandler = biographyHandler.NewBiographyHandler(c.BiographyService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.AssociationHandler = associationHandler.NewAssociationHandler(c.AssociationService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// CheckHealth runs every registered check and returns the failures by name.
func (c *Container) CheckHealth(ctx context.Context) map[string]string {
	failures := make(map[string]string)
	for name, check := range c.Health {
		if err := check(ctx); err != nil {
			failures[name] = err.Error()
		}
	}
	return failures
}

// Cleanup releases resources on shutdown. Safe on a partially built container.
func (c *Container) Cleanup() {
	if c.RateLimiter != nil {
		c.RateLimiter.Close()
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close sqlite")
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
