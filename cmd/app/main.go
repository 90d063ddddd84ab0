package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/urbanstep/storefront-backend/internal/assist"
	"github.com/urbanstep/storefront-backend/internal/cart"
	"github.com/urbanstep/storefront-backend/internal/catalog"
	"github.com/urbanstep/storefront-backend/internal/checkout"
	"github.com/urbanstep/storefront-backend/internal/config"
	"github.com/urbanstep/storefront-backend/internal/session"
	"github.com/urbanstep/storefront-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))

	// optional Postgres: catalog source and order archive. Without it the
	// server runs fully in memory.
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db = mustOpenDB(cfg.DatabaseURL, logger)
		defer db.Close()
	}

	var catalogRepo catalog.Repository
	if db != nil {
		pg := catalog.NewPostgresRepository(db, logger)
		if err := pg.EnsureSchema(); err != nil {
			logger.Fatal("catalog schema init failed", zap.Error(err))
		}
		if err := pg.SeedIfEmpty(catalog.Seed()); err != nil {
			logger.Warn("catalog seeding failed", zap.Error(err))
		}
		catalogRepo = pg
	} else {
		catalogRepo = catalog.NewInMemoryRepository(catalog.Seed())
	}
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	sessions := session.NewManager(cfg.SessionSecret)
	sessionHandler := session.NewHandler(sessions)

	assistService := assist.NewService(assist.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, logger))
	assistHandler := assist.NewHandler(assistService)
	if !assistService.Enabled() {
		logger.Warn("GEMINI_API_KEY not set, assist endpoints disabled")
	}

	cartService := cart.NewService(cart.NewInMemoryRepository(), catalogService)
	cartHandler := cart.NewHandler(cartService)

	wishlistService := wishlist.NewService(wishlist.NewInMemoryRepository(), catalogService)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	var orderRepo checkout.Repository
	if db != nil {
		pg := checkout.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			logger.Fatal("orders schema init failed", zap.Error(err))
		}
		orderRepo = pg
	} else {
		orderRepo = checkout.NewInMemoryRepository()
	}
	checkoutHandler := checkout.NewHandler(checkout.NewService(orderRepo, cartService, logger))

	// public routes first: everything after the session middleware requires
	// a guest-session token.
	sessionHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	assistHandler.RegisterPublicRoutes(app)

	app.Use(sessions.Middleware())
	cartHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug("request",
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	}
}

func mustOpenDB(url string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		logger.Fatal("open database failed", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		logger.Fatal("database ping failed", zap.Error(err))
	}
	return db
}
