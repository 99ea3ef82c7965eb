package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/talent-matcher/internal/config"
	"github.com/fadilmartias/talent-matcher/internal/domain/fiber/handler"
	"github.com/fadilmartias/talent-matcher/internal/middleware"
	"github.com/fadilmartias/talent-matcher/internal/model"
	"github.com/fadilmartias/talent-matcher/internal/repository"
	"github.com/fadilmartias/talent-matcher/internal/service"
	"github.com/fadilmartias/talent-matcher/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	log, err := newLogger(appConfig.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(log)

	jobRepo := repository.NewJobRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)

	agent := service.NewAgentService(log)
	scopes := usecase.NewScopeResolver(jobRepo, applicationRepo, connectionRepo)
	uc := usecase.NewMatchUsecase(jobRepo, candidateRepo, scopes, agent, log)
	matchHandler := handler.NewMatchHandler(uc)

	matchHandler.RegisterRoutes(app)

	log.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func ConnectDB(log *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// migrasi tabel
	err = db.AutoMigrate(&model.Job{}, &model.Candidate{}, &model.JobApplication{}, &model.ClientRecruiterConnection{})
	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	return db
}
