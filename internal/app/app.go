package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	redisclient "github.com/offermart/marketplace-backend/internal/clients/redis"
	"github.com/offermart/marketplace-backend/internal/data/db"
	"github.com/offermart/marketplace-backend/internal/jobs"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Scanner  *jobs.ExpiryScanner

	rdb     *goredis.Client
	started bool
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	var rdb *goredis.Client
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		rdb, err = redisclient.NewClient(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init redis: %w", err)
		}
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet, rdb)
	handlerset := wireHandlers(log, serviceset)
	router := wireRouter(log, handlerset)

	scanner := jobs.NewExpiryScanner(log, reposet.Coupon, reposet.Subscription, reposet.Notification, serviceset.NotificationCommands)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Scanner:  scanner,
		rdb:      rdb,
	}, nil
}

func (a *App) Start() error {
	if a == nil || a.started {
		return nil
	}
	if err := a.Scanner.Start(a.Cfg.ScanHour); err != nil {
		return fmt.Errorf("start expiry scanner: %w", err)
	}
	a.started = true
	return nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Scanner != nil {
		a.Scanner.Stop()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
	a.started = false
}
