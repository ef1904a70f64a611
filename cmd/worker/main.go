package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/qs3c/soultria_server/config"
	"github.com/qs3c/soultria_server/internal/database"
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/pkg/cron"
	"github.com/qs3c/soultria_server/internal/pkg/kv"
	"github.com/qs3c/soultria_server/internal/pkg/pubsub"
	"github.com/qs3c/soultria_server/internal/repository"
	"github.com/qs3c/soultria_server/internal/service"
)

// 独立的冥想提醒进程：多实例部署时 API 服务关闭 reminder.enabled，
// 由本进程统一派发，事件经 Redis 频道送到持有连接的实例。

var once = flag.Bool("once", false, "Dispatch due reminders once and exit")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connected")

	// 提醒只能经 Redis 转发给 API 实例
	if !cfg.Redis.Enabled {
		log.Fatalf("Reminder worker requires redis.enabled")
	}
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	defer rdb.Close()
	log.Println("Redis connected")

	publisher := pubsub.NewPublisher(rdb)

	var backend entitlement.Backend
	if cfg.Entitlement.Backend == "redis" {
		backend = kv.NewRedisStore(rdb, "")
	} else {
		backend = repository.NewKVRepository(db)
	}

	// 初始化 Service
	ents := service.NewEntitlementService(backend, cfg, publisher)
	journalService := service.NewJournalService(repository.NewJournalRepository(db), ents)
	meditationService := service.NewMeditationService(
		repository.NewMeditationRepository(db),
		journalService,
		ents,
		publisher,
		cfg,
	)

	interval := time.Duration(cfg.Reminder.IntervalSeconds) * time.Second
	reminders := cron.NewService(meditationService, interval)

	if *once {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sent, err := reminders.RunNow(ctx)
		if err != nil {
			log.Fatalf("Dispatch reminders failed: %v", err)
		}
		log.Printf("Dispatched %d reminders", sent)
		return
	}

	reminders.Start()
	log.Printf("Reminder worker started, interval: %s", interval)

	// 监听退出信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Received shutdown signal")

	reminders.Stop()
	log.Println("Worker shutdown complete")
}
