package container

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/memstore"
	"blog-backend/internal/infrastructure/session"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/password"

	// Article domain
	articleHandler "blog-backend/internal/domains/article/handler"
	articleRepo "blog-backend/internal/domains/article/repository"
	articleService "blog-backend/internal/domains/article/service"

	// Comment domain
	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"

	// User domain
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

const (
	cachePrefix   = "blog:cache:"
	sessionPrefix = "blog:session:"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config *config.Config

	// DB chỉ có khi STORAGE_DRIVER=postgres, Memory khi STORAGE_DRIVER=memory
	DB     *database.PostgresDB
	Memory *memstore.Store

	// Redis nil khi REDIS_ENABLED=false; Cache khi đó là cache.Nop
	Redis    *infraCache.RedisClient
	Cache    cache.Cache
	Sessions *scs.SessionManager

	JWTManager *jwt.Manager
	Hasher     password.Hasher

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo    userRepo.UserRepository
	ArticleRepo articleRepo.ArticleRepository
	CommentRepo commentRepo.CommentRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService    userService.ServiceInterface
	ArticleService articleService.ServiceInterface
	CommentService commentService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler    *userHandler.UserHandler
	ArticleHandler *articleHandler.ArticleHandler
	CommentHandler *commentHandler.CommentHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads config from the environment and builds the dependency graph
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(cfg)
}

// New builds the dependency graph from cfg.
//
// Thứ tự initialization:
// 1. Storage (Postgres hoặc memory)
// 2. Redis (cache + session store), optional
// 3. Repositories - phụ thuộc storage + cache
// 4. Services - phụ thuộc repositories
// 5. Handlers - phụ thuộc services
func New(cfg *config.Config) (*Container, error) {
	log.Info().
		Str("env", cfg.App.Environment).
		Str("storage", cfg.Storage.Driver).
		Bool("redis", cfg.Redis.Enabled).
		Msg("Initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE STORAGE
	// ========================================
	if err := c.initStorage(); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: INITIALIZE REDIS
	// ========================================
	if err := c.initRedis(); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 3: AUTH COMPONENTS
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpiry)
	c.Hasher = password.NewBcryptHasher(cfg.Security.BcryptCost)

	var sessionStore scs.Store
	if c.Redis != nil {
		sessionStore = session.NewRedisStore(c.Redis.Client, sessionPrefix)
	}
	c.Sessions = session.NewManager(cfg.Session, sessionStore)

	// ========================================
	// STEP 4-6: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initStorage() error {
	if c.Config.Storage.Driver == config.StorageMemory {
		c.Memory = memstore.New()
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		return nil
	}

	dbConfig, err := config.LoadDatabaseConfig(c.Config.Database)
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if c.Config.Database.AutoMigrate {
		applied, err := database.Migrate(ctx, db.Pool)
		if err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Strs("applied", applied).Msg("Migrations up to date")
	}

	return nil
}

func (c *Container) initRedis() error {
	if !c.Config.Redis.Enabled {
		c.Cache = cache.Nop{}
		return nil
	}

	client := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Sessions sống trong Redis nên Redis bắt buộc khi đã bật
	if err := client.Connect(ctx); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.Redis = client
	c.Cache = infraCache.NewRedisCache(client, cachePrefix)
	return nil
}

// initRepositories chọn implementation theo storage driver
func (c *Container) initRepositories() {
	if c.Memory != nil {
		c.UserRepo = c.Memory.Users()
		c.ArticleRepo = c.Memory.Articles()
		c.CommentRepo = c.Memory.Comments()
		return
	}

	pool := c.DB.Pool
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.ArticleRepo = articleRepo.NewPostgresArticleRepository(pool, c.Cache, c.Config.Redis.CacheTTL)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.ArticleRepo, c.Hasher, c.JWTManager)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ArticleRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.Sessions)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
