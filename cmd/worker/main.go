// Package main is the entry point for the production floor worker.
// It consumes order events and keeps a running board of this week's orders.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"orderdesk/internal/config"
	"orderdesk/internal/domain/production"
	"orderdesk/internal/infrastructure/messaging/kafka"
	"orderdesk/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
		Service:     "orderdesk-worker",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.Kafka.Enabled() {
		log.Fatalw("KAFKA_BROKERS is required for the production worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Infow("starting orderdesk production worker",
		"topic", cfg.Kafka.Topic,
		"group", cfg.Kafka.ConsumerGroup,
	)

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, log)
	if err != nil {
		log.Fatalw("failed to create consumer", "error", err)
	}
	defer func() { _ = consumer.Close() }()

	worker := NewWorker(production.NewBoard(cfg.Location), log, time.Now)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.Run(ctx, worker.Handle)
	}()
	go func() {
		defer wg.Done()
		worker.RunSummaries(ctx, cfg.SummaryInterval)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}
