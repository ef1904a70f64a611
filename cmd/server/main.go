package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/qs3c/soultria_server/config"
	"github.com/qs3c/soultria_server/internal/api"
	"github.com/qs3c/soultria_server/internal/api/handler"
	"github.com/qs3c/soultria_server/internal/database"
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/pkg/cron"
	"github.com/qs3c/soultria_server/internal/pkg/kv"
	"github.com/qs3c/soultria_server/internal/pkg/llm"
	"github.com/qs3c/soultria_server/internal/pkg/pubsub"
	"github.com/qs3c/soultria_server/internal/pkg/ws"
	"github.com/qs3c/soultria_server/internal/reading"
	"github.com/qs3c/soultria_server/internal/repository"
	"github.com/qs3c/soultria_server/internal/service"
)

func main() {
	// .env 只在本地开发时存在
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	// 加载配置
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if _, err := cfg.Server.Location(); err != nil {
		log.Fatalf("Invalid server timezone %q: %v", cfg.Server.Timezone, err)
	}

	// 初始化数据库
	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Printf("Database connected (%s)", cfg.Database.Driver)

	// 初始化 Redis（可选）
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.NewRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer rdb.Close()
		log.Println("Redis connected")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 初始化 WebSocket Hub；多实例时经 Redis 频道转发
	wsHub := ws.NewHub()
	var notifier service.Notifier = wsHub
	if rdb != nil {
		notifier = pubsub.NewPublisher(rdb)
		go func() {
			err := pubsub.NewSubscriber(rdb).Subscribe(ctx, func(e *pubsub.Event) {
				_ = wsHub.Notify(ctx, e.UserID, e.Type, e.Data)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("pubsub: subscriber stopped: %v", err)
			}
		}()
	}

	// 权益存储后端
	var backend entitlement.Backend
	switch cfg.Entitlement.Backend {
	case "memory":
		backend = entitlement.NewMemoryBackend()
	case "redis":
		if rdb == nil {
			log.Fatalf("Entitlement backend redis requires redis.enabled")
		}
		backend = kv.NewRedisStore(rdb, "")
	case "database", "":
		backend = repository.NewKVRepository(db)
	default:
		log.Fatalf("Unknown entitlement backend: %s", cfg.Entitlement.Backend)
	}
	log.Printf("Entitlement backend: %s", cfg.Entitlement.Backend)

	// 文本生成，未配置密钥时使用兜底文本
	var text reading.TextGenerator
	if cfg.AI.APIKey != "" {
		text = llm.New(llm.Config{
			APIKey:      cfg.AI.APIKey,
			BaseURL:     cfg.AI.BaseURL,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
		})
	} else {
		log.Println("Warning: OPENAI_API_KEY not set, readings use fallback text")
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	onboardingRepo := repository.NewOnboardingRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	meditationRepo := repository.NewMeditationRepository(db)
	wisdomRepo := repository.NewWisdomRepository(db)

	// 初始化 Service
	entitlementService := service.NewEntitlementService(backend, cfg, notifier)
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo)
	onboardingService := service.NewOnboardingService(onboardingRepo, userRepo)
	readingService := service.NewReadingService(
		reading.NewGenerator(text, cfg.AI.Timeout()),
		reading.NewOracle(nil),
		entitlementService,
		onboardingRepo,
	)
	journalService := service.NewJournalService(journalRepo, entitlementService)
	meditationService := service.NewMeditationService(meditationRepo, journalService, entitlementService, notifier, cfg)
	wisdomService := service.NewWisdomService(wisdomRepo, entitlementService)
	companionService := service.NewCompanionService(text, cfg.AI.Timeout(), entitlementService, notifier)

	// 初始化 Handler
	router := api.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewOnboardingHandler(onboardingService),
		handler.NewReadingHandler(readingService),
		handler.NewMeditationHandler(meditationService),
		handler.NewJournalHandler(journalService),
		handler.NewWisdomHandler(wisdomService),
		handler.NewCompanionHandler(companionService),
		handler.NewSubscriptionHandler(entitlementService),
		handler.NewWebSocketHandler(wsHub, cfg.JWT.Secret, cfg.CORS),
		entitlementService,
		cfg,
	)

	// 冥想提醒
	if cfg.Reminder.Enabled {
		reminders := cron.NewService(meditationService, time.Duration(cfg.Reminder.IntervalSeconds)*time.Second)
		reminders.Start()
		defer reminders.Stop()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router.Setup(),
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 监听退出信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Received shutdown signal")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
