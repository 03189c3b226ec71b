package api

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/interview-express/experience_service/config"
	"github.com/interview-express/experience_service/infra/queue"
	"github.com/interview-express/experience_service/internal/api/rest/handlers"
	"github.com/interview-express/experience_service/internal/clients/sms"
	"github.com/interview-express/experience_service/internal/domain"
	"github.com/interview-express/experience_service/internal/helper"
	"github.com/interview-express/experience_service/internal/interfaces"
	"github.com/interview-express/experience_service/internal/repository"
	"github.com/interview-express/experience_service/internal/services"
	"github.com/interview-express/experience_service/pkg/cloudinary"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"time"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(corsConfig(cfg.BaseURL)))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	if err := migrateWithLock(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Verification code store ----------
	var codeRepo repository.CodeRepository
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		codeRepo = repository.NewRedisCodeRepository(rdb)
	} else {
		log.Println("REDIS_ADDR not set - verification codes kept in memory")
		codeRepo = repository.NewMemoryCodeRepository()
	}

	// ---------- Messaging + SMS ----------
	var producer interfaces.ProducerHandler
	var sender interfaces.SMSSender

	if cfg.SMSGatewayURL != "" {
		sender = sms.New(cfg.SMSGatewayURL, cfg.SMSApiKey, cfg.SMSSignName, cfg.SMSTemplateCode)
	}

	if cfg.KafkaBroker != "" {
		producer = queue.NewProducer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
		)

		dispatcher := services.NewSMSDispatcher(sender)
		consumer := queue.NewKafkaConsumer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaGroupID,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
			dispatcher,
		)
		go consumer.Listen()
	}

	// ---------- Uploads ----------
	var uploader interfaces.Uploader
	if os.Getenv("CLOUDINARY_URL") != "" {
		cld, err := cloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		uploader = cloudinary.NewCloudinaryUploader(cld)
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret, time.Duration(cfg.TokenExpireMinutes)*time.Minute)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	expRepo := repository.NewExperienceRepository(db)

	// ---------- Services ----------
	verificationSvc := services.NewVerificationService(codeRepo, producer)
	userSvc := services.NewUserService(userRepo, verificationSvc, authHelper)
	expSvc := services.NewExperienceService(expRepo, userRepo)

	// ---------- Handlers ----------
	v1 := app.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(userSvc, verificationSvc, cfg.Env != "prod")
	authHandler.SetupRoutes(v1)

	userHandler := handlers.NewUserHandler(userSvc, authHelper)
	userHandler.SetupRoutes(v1)

	expHandler := handlers.NewExperienceHandler(expSvc, authHelper)
	expHandler.SetupRoutes(v1)

	uploadHandler := handlers.NewUploadHandler(uploader, authHelper)
	uploadHandler.SetupRoutes(v1)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// corsConfig only enables credentials when an explicit origin is
// configured; fiber refuses credentials combined with the wildcard
// origin it defaults to.
func corsConfig(baseURL string) cors.Config {
	c := cors.Config{
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}
	if baseURL != "" {
		c.AllowOrigins = baseURL
		c.AllowCredentials = true
	}
	return c
}

const migrateLockID int64 = 20260830

// migrateWithLock serializes schema migration across replicas. The
// advisory lock is session scoped, so lock and unlock run on one
// dedicated connection that is released before the server starts; the
// pool must not sit between them.
func migrateWithLock(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Experience{},
	}

	if db.Dialector.Name() != "postgres" {
		return db.AutoMigrate(models...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	ctx := context.Background()
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", migrateLockID); err != nil {
		return err
	}

	migErr := db.AutoMigrate(models...)

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", migrateLockID); err != nil && migErr == nil {
		migErr = err
	}
	return migErr
}
