package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"CourseForge/internal/app/server"
	"CourseForge/internal/config"
	"CourseForge/internal/delivery/http"
	"CourseForge/internal/service"
	"CourseForge/internal/service/auth"
	"CourseForge/internal/service/catalog"
	"CourseForge/internal/service/learn"
	"CourseForge/internal/storage/elastic"
	"CourseForge/internal/storage/minio_storage"
	"CourseForge/internal/storage/postgres"
	"CourseForge/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("starting with env: " + cfg.Env)

	pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.FatalErr("error connecting to redis", err)
	}
	defer redisClient.Close()

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	searchRepo := elastic.NewCourseSearchRepository(esClient, cfg.ES.Index)
	if err := searchRepo.CreateIndexIfNotExist(context.Background()); err != nil {
		log.FatalErr("error preparing search index", err)
	}

	minioStorage, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL, cfg.Minio.Buckets)
	if err != nil {
		log.FatalErr("error connecting to minio", err)
	}
	videoBucket := cfg.Minio.Buckets["videos"]
	logoBucket := cfg.Minio.Buckets["logos"]
	videoStorage := minio_storage.NewVideoStorage(minioStorage, videoBucket.Name, videoBucket.PresignTTL)
	logoStorage := minio_storage.NewLogoStorage(minioStorage, logoBucket.Name, logoBucket.PresignTTL)

	courseRepo := postgres.NewCoursePostgres(pg.Pool)
	sectionRepo := postgres.NewSectionPostgres(pg.Pool)
	enrollmentRepo := postgres.NewEnrollmentPostgres(pg.Pool)
	completionRepo := postgres.NewCompletionPostgres(pg.Pool)
	userRepo := postgres.NewUserPostgres(pg.Pool)
	tokenRepo := postgres.NewTokensPostgres(pg.Pool)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, "courseforge", cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := auth.NewAuthService(log, jwtManager, userRepo, tokenRepo)
	catalogService := catalog.NewCatalogService(log, courseRepo, searchRepo, logoStorage, userRepo, enrollmentRepo)
	learnService := learn.NewLearnService(log, courseRepo, userRepo, enrollmentRepo, sectionRepo, completionRepo, videoStorage)

	if err := catalogService.SyncSearchIndex(context.Background()); err != nil {
		log.ErrorErr("search index sync failed", err)
	}

	u := service.Collection{
		AuthService:    authService,
		CatalogService: catalogService,
		LearnService:   learnService,
	}

	r := http.InitRoutes(log, u, redisClient, cfg.RateLimit)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
