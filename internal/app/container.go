package app

import (
	"context"
	"time"

	"job-compass/internal/config"
	"job-compass/internal/corpus"
	"job-compass/internal/database"
	dbpostgres "job-compass/internal/database/postgres"
	"job-compass/internal/infrastructure/cache"
	"job-compass/internal/recommend"
	"job-compass/internal/repository"
	"job-compass/internal/usecase"

	"go.uber.org/zap"
)

// Container wires infrastructure to usecases. Built once at startup, torn
// down via Close.
type Container struct {
	Config    config.Config
	Logger    *zap.Logger
	DB        database.DB
	Cache     *cache.Redis
	Snapshots *corpus.Store

	Recommendations usecase.RecommendationUsecase
	Refresh         usecase.CorpusRefreshUsecase
	Stats           usecase.MarketStatsUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := repository.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(logger)
	snapshots := corpus.NewStore()
	tokenizer := recommend.NewTokenizer(cfg.Scoring.Delimiters)
	postings := repository.NewPostgresPostingRepository(db)

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Snapshots: snapshots,
	}

	c.Refresh = usecase.NewCorpusRefreshUsecase(postings, snapshots, redisCache, tokenizer, logger)
	c.Recommendations = usecase.NewRecommendationUsecase(
		snapshots, redisCache, tokenizer, cfg.Scoring.Weights(), cfg.Scoring.DefaultLimit, logger,
	)
	c.Stats = usecase.NewMarketStatsUsecase(snapshots, redisCache, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
