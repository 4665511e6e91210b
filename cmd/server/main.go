package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/teamviewer/ecommerce-api/internal/config"
	"github.com/teamviewer/ecommerce-api/internal/events"
	"github.com/teamviewer/ecommerce-api/internal/httpserver"
	"github.com/teamviewer/ecommerce-api/internal/logging"
	loggingmw "github.com/teamviewer/ecommerce-api/internal/middleware/logging"
	"github.com/teamviewer/ecommerce-api/internal/repo"
	"github.com/teamviewer/ecommerce-api/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer, err = events.NewProducer(
			[]string{configuration.KAFKA_ADDRESS},
			[]string{events.TopicOrders, events.TopicOrderItems, events.TopicProducts},
		)
		if err != nil {
			log.Fatalf("kafka init failed: %v", err)
		}
	} else {
		logger.Warn("KAFKA_ADDRESS not set, lifecycle events disabled")
	}

	repository := repo.NewGormRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.HTTPErrorHandler = httpserver.NewErrorHandler()

	deps := httpserver.Deps{
		OrderHandler:     &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: repository}, Producer: producer},
		OrderItemHandler: &httpserver.OrderItemHTTP{Svc: &service.OrderItemService{Repo: repository}, Producer: producer},
		ProductHandler:   &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: repository}, Producer: producer},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.SERVER_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
