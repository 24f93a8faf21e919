package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/clock"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	httpmiddleware "todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/idgen"
	"todolist/internal/adapter/memory"
	appservice "todolist/internal/app/service"
	"todolist/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
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
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	todoRepository := memory.NewTodoRepository()
	todoService := appservice.NewTodoService(todoRepository, clock.Real(), idgen.NewUUIDGenerator())
	if cfg.SeedTodos {
		if err := todoService.Seed(ctx, appservice.DefaultSeeds); err != nil {
			logger.Fatal("failed to seed todos", zap.Error(err))
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		httpmiddleware.RequestLogger(logger, "/static"),
		httpmiddleware.Recovery(logger),
		httpmiddleware.CORS(cfg.CORSAllowedOrigins),
	)
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(todoRepository, cfg.AppName, cfg.AppVersion)
	todoHandler := handlers.NewTodoHandler(todoService)
	httpadapter.RegisterRoutes(r, healthHandler, todoHandler)

	addr := ":" + cfg.AppPort
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
