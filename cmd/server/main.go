package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/api/scripts"
	"github.com/promoforge/adscript/internal/config"
	"github.com/promoforge/adscript/internal/generator"
	"github.com/promoforge/adscript/internal/llm"
	"github.com/promoforge/adscript/internal/prompt"
	"github.com/promoforge/adscript/internal/routes"
	"github.com/promoforge/adscript/internal/script"
	"github.com/promoforge/adscript/internal/store"
	"github.com/promoforge/adscript/internal/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Warning: Error loading .env file", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	cleanup := utils.InitLogger(cfg)
	defer cleanup()

	utils.Zlog.Info("Starting application",
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model()),
		zap.String("port", cfg.ServerPort))

	ctx := context.Background()

	var historyStore *store.Client
	if cfg.DatabaseURL != "" {
		historyStore, err = store.NewClient(ctx, cfg.DatabaseURL)
		if err != nil {
			utils.Zlog.Error("Failed to create history store", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := historyStore.Close(); err != nil {
				utils.Zlog.Error("Error closing history store", zap.Error(err))
			}
		}()
	}

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		utils.Zlog.Error("Failed to create LLM provider", zap.Error(err))
		os.Exit(1)
	}

	builder := prompt.NewBuilder(script.FormatInstructions())
	flow := generator.NewFactory(provider, builder).Build(generator.FlowConfig{
		Model:        cfg.Model(),
		Temperature:  cfg.Temperature,
		ParseRetries: cfg.ParseRetries,
	})
	svc := scripts.NewService(flow, historyStore, cfg.Model())

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	routes.SetupRoutes(router, svc, historyStore)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute, // generation can take a while on CPU-bound hosts
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Zlog.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Zlog.Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Zlog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Zlog.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	utils.Zlog.Info("Server exited")
}
