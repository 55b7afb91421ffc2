package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskplanner/internal/adapter/db"
	httpadapter "taskplanner/internal/adapter/http"
	"taskplanner/internal/adapter/http/handlers"
	httpmiddleware "taskplanner/internal/adapter/http/middleware"
	"taskplanner/internal/app/store"
	"taskplanner/internal/config"
	"taskplanner/internal/weather"
	"taskplanner/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to open sqlite database", zap.Error(err), zap.String("path", cfg.SqlitePath))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close sqlite database", zap.Error(err))
		}
	}()

	kv, err := dbadapter.NewKVStore(db)
	if err != nil {
		logger.Fatal("failed to prepare key-value storage", zap.Error(err))
	}

	ctx := context.Background()

	taskStore := store.NewTaskStore(kv)
	if err := taskStore.Load(ctx); err != nil {
		logger.Fatal("failed to restore task list", zap.Error(err))
	}

	authService := store.NewAuthService(store.NewMemoryCredentialStore(), kv, cfg.LoginDelay)
	if err := authService.Restore(ctx); err != nil {
		logger.Warn("failed to restore session", zap.Error(err))
	}

	weatherService := weather.NewService(
		weather.NewOpenMeteoProvider(cfg.WeatherBaseURL, &http.Client{Timeout: cfg.WeatherTimeout}),
		weather.NewFallbackProvider(rand.NewSource(time.Now().UnixNano())),
		taskStore,
		cfg.WeatherLatitude,
		cfg.WeatherLongitude,
		cfg.WeatherTimeout,
	)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskStore, weatherService)
	authHandler := handlers.NewAuthHandler(authService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	preferencesHandler := handlers.NewPreferencesHandler(kv)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, authHandler, weatherHandler, preferencesHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
