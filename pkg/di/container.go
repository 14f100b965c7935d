package di

import (
	"todo-backend/application/serviceimpl"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	natspkg "todo-backend/infrastructure/nats"
	"todo-backend/infrastructure/postgres"
	redispkg "todo-backend/infrastructure/redis"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/pkg/config"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/scheduler"

	"gorm.io/gorm"
)

// Container owns every process-wide dependency. The store handle lives
// here and is injected downward; nothing reaches for package-level
// state.
type Container struct {
	Config *config.Config

	DB             *gorm.DB
	TokenCache     *redispkg.TokenCache // nil when Redis is not configured
	EventPublisher *natspkg.Publisher   // nil when NATS is not configured

	UserRepository repositories.UserRepository
	ListRepository repositories.ListRepository
	TaskRepository repositories.TaskRepository

	UserService services.UserService
	ListService services.ListService
	TaskService services.TaskService

	StatsReporter *scheduler.StatsReporter
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	c.StatsReporter = scheduler.NewStatsReporter(c.UserRepository, c.ListRepository, c.TaskRepository)
	if err := c.StatsReporter.Start(c.Config.Stats.Interval); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Redis and NATS are optional: a connect failure downgrades the
	// feature instead of failing startup.
	if c.Config.Redis.URL != "" {
		cache, err := redispkg.NewTokenCache(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, token cache disabled", "error", err)
		} else {
			c.TokenCache = cache
		}
	}

	if c.Config.NATS.URL != "" {
		publisher, err := natspkg.NewPublisher(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, events disabled", "error", err)
		} else {
			c.EventPublisher = publisher
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.ListRepository = postgres.NewListRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	// A typed nil must not end up behind the interface, services check
	// these against nil to decide whether the feature is on.
	var cache ports.TokenCache
	if c.TokenCache != nil {
		cache = c.TokenCache
	}
	var events ports.EventPublisher
	if c.EventPublisher != nil {
		events = c.EventPublisher
	}

	c.UserService = serviceimpl.NewUserService(c.UserRepository, cache, events)
	c.ListService = serviceimpl.NewListService(c.ListRepository, c.UserService, events)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, events)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		ListService: c.ListService,
		TaskService: c.TaskService,
	}
}

func (c *Container) Cleanup() error {
	if c.StatsReporter != nil {
		c.StatsReporter.Stop()
	}

	if c.EventPublisher != nil {
		c.EventPublisher.Close()
	}

	if c.TokenCache != nil {
		if err := c.TokenCache.Close(); err != nil {
			logger.Warn("Redis close failed", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
