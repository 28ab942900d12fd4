package app

import (
	"context"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/resourcegen"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"
)

// Container wires repositories, cache, generators and usecases once at
// startup. DB stays nil under the JSON repository driver.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Hub    *ws.Hub

	JWT jwt.Service

	Employees usecase.EmployeeUsecase
	Matches   usecase.MatchUsecase
	Careers   usecase.CareerUsecase
	Plans     usecase.LearningPlanUsecase
	Trending  usecase.TrendingUsecase
	Positions usecase.PositionUsecase

	WSHandler *ws.Handler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	var (
		employees repository.EmployeeRepository
		positions repository.PositionRepository
	)
	switch cfg.Repository.Driver {
	case config.RepositoryDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
		employees = repository.NewPostgresEmployeeRepository(db)
		positions = repository.NewPostgresPositionRepository(db)
	default:
		employees = repository.NewJSONEmployeeRepository(cfg.Repository.DataDir)
		positions = repository.NewJSONPositionRepository(cfg.Repository.DataDir)
	}

	redisCache := cache.NewRedis(logger)

	c.Hub = ws.NewHub(logger)
	c.WSHandler = ws.NewHandler(c.Hub, logger)
	notifier := ws.NewNotifier(c.Hub)

	offline := resourcegen.NewOffline()
	var remote resourcegen.Generator
	if cfg.Gemini.APIKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		gemini, err := resourcegen.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		cancel()
		if err != nil {
			logger.Printf("ResourceGen | remote strategy unavailable, offline only: %v", err)
		} else {
			remote = gemini
		}
	}

	if cfg.JWT.AccessSecret != "" {
		c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	}

	c.Employees = usecase.NewEmployeeUsecase(employees, redisCache, notifier)
	c.Matches = usecase.NewMatchUsecase(employees, positions, redisCache,
		cfg.Engine.MatchThreshold, cfg.Engine.RecommendationCount)
	c.Careers = usecase.NewCareerUsecase(employees, positions, redisCache,
		cfg.Engine.RecommendationCount)
	c.Plans = usecase.NewLearningPlanUsecase(employees, positions, remote, offline,
		notifier, cfg.Engine.UseRemoteResources, cfg.Engine.MaxLearningResources)
	c.Trending = usecase.NewTrendingUsecase(positions, redisCache)
	c.Positions = usecase.NewPositionUsecase(positions)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
