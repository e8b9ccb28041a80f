package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bowlingnoi/line-chatbot/internal/core/cache"
	"github.com/bowlingnoi/line-chatbot/internal/core/config"
	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/core/server"
	analyticshandler "github.com/bowlingnoi/line-chatbot/internal/features/analytics/handler"
	analyticsservice "github.com/bowlingnoi/line-chatbot/internal/features/analytics/service"
	chatadapter "github.com/bowlingnoi/line-chatbot/internal/features/chat/adapters"
	chathandler "github.com/bowlingnoi/line-chatbot/internal/features/chat/handler"
	chatservice "github.com/bowlingnoi/line-chatbot/internal/features/chat/service"
	intentservice "github.com/bowlingnoi/line-chatbot/internal/features/intent/service"
	knowledgeadapter "github.com/bowlingnoi/line-chatbot/internal/features/knowledge/adapters"
	knowledgeports "github.com/bowlingnoi/line-chatbot/internal/features/knowledge/ports"
	knowledgeservice "github.com/bowlingnoi/line-chatbot/internal/features/knowledge/service"
	trackingadapter "github.com/bowlingnoi/line-chatbot/internal/features/tracking/adapters"
	trackingports "github.com/bowlingnoi/line-chatbot/internal/features/tracking/ports"
	trackingservice "github.com/bowlingnoi/line-chatbot/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title MYSAVE LINE Chatbot API
// @version 1.0
// @description Bilingual customer-service chatbot: FAQ answering, shipment tracking and human escalation over LINE.
// @contact.name MYSAVE Support
// @contact.email support@mysave.cc
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Shared cache is optional; without Redis the FAQ is re-read per miss.
	var sharedCache cache.Cache
	if cfg.Knowledge.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Knowledge.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis cache", zap.Error(err))
		}
		if err := redisCache.Ping(context.Background()); err != nil {
			l.Fatal("Redis health check failed", zap.Error(err))
		}
		defer redisCache.Close()
		sharedCache = redisCache
		l.Info("Redis connection verified")
	}

	// Knowledge collaborators.
	faqRepo := knowledgeadapter.NewFAQRepository(cfg.Knowledge.FAQPath, sharedCache)

	var answerer knowledgeports.Answerer
	if cfg.AI.TestMode || cfg.AI.APIKey == "" {
		l.Warn("Running with mock answerer; set OPENAI_API_KEY and disable TEST_MODE for live answers")
		answerer = knowledgeadapter.NewMockAnswerer()
	} else {
		openaiAnswerer, err := knowledgeadapter.NewOpenAIAnswerer(cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			l.Fatal("Failed to create OpenAI answerer", zap.Error(err))
		}
		answerer = openaiAnswerer
	}
	knowledgeSvc := knowledgeservice.NewKnowledgeService(faqRepo, answerer)

	// Tracking collaborators.
	var shipmentProvider trackingports.ShipmentProvider
	if cfg.Tracking.APIEnabled {
		shipmentProvider = trackingadapter.NewMysaveAdapter(cfg.Tracking.APIEndpoint)
	} else {
		l.Warn("Tracking API disabled; serving mock shipment data")
		shipmentProvider = trackingadapter.NewMockAdapter()
	}
	trackingSvc := trackingservice.NewTrackingService(shipmentProvider)

	// Routing, analytics and transport.
	classifier := intentservice.NewClassifier(cfg.Intent.ConfidenceThreshold)
	ledger := analyticsservice.NewLedger()

	lineAdapter, err := chatadapter.NewLineAdapter(cfg.Line.ChannelAccessToken)
	if err != nil {
		l.Fatal("Failed to create LINE adapter", zap.Error(err))
	}

	chatSvc := chatservice.NewChatService(classifier, trackingSvc, knowledgeSvc, ledger, lineAdapter)
	webhookHdl := chathandler.NewWebhookHandler(cfg.Line.ChannelSecret, chatSvc)
	analyticsHdl := analyticshandler.NewAnalyticsHandler(ledger)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/webhook", webhookHdl.HandleWebhook)
	srv.App.Get("/analytics", analyticsHdl.GetAnalytics)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down")
	if err := srv.Shutdown(); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}

	metrics := ledger.Metrics()
	l.Info("Final query summary",
		zap.Int("total", metrics.Total),
		zap.Int("auto_resolved", metrics.AutoResolved),
		zap.Int("escalated", metrics.Escalated),
		zap.Int("errors", metrics.Errored),
		zap.Float64("resolution_rate", metrics.ResolutionRate),
	)
}
