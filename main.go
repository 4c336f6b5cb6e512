package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"gatepassku_backend/internals/configs"
	"gatepassku_backend/internals/helpers/clock"
	middlewares "gatepassku_backend/internals/middlewares"
	routes "gatepassku_backend/internals/route"

	authScheduler "gatepassku_backend/internals/features/users/auth/scheduler"
	authService "gatepassku_backend/internals/features/users/auth/service"
	gatelogService "gatepassku_backend/internals/features/visitors/gatelog/service"
	gatepassService "gatepassku_backend/internals/features/visitors/gatepass/service"
)

func main() {
	configs.LoadEnv()
	clock.Init(configs.AppTimezone)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 Service wiring: semua in-memory, dibangun sekali di sini
	users, err := authService.SeedUserStore()
	if err != nil {
		log.Fatalf("❌ Gagal seed user store: %v", err)
	}
	blacklist := authService.NewTokenBlacklist()
	renderer := gatepassService.NewQRPassRenderer(configs.QRImageSize, configs.QRThumbSize)
	registry := gatepassService.NewVisitorRegistry(renderer)
	gateLogs := gatelogService.NewGateLogStore(configs.GateLogCapacity)

	// ⏱ sweeper blacklist token
	authScheduler.StartBlacklistCleanupScheduler(blacklist)

	// ✅ Routes
	routes.BaseRoutes(app)
	routes.SetupRoutes(app, &routes.Deps{
		Registry:  registry,
		GateLogs:  gateLogs,
		Users:     users,
		Blacklist: blacklist,
		Validate:  validator.New(),
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
}
