package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"orderdesk/internal/config"
	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/domain/ledger"
	v1 "orderdesk/internal/infrastructure/http/v1"
	"orderdesk/internal/infrastructure/messaging/kafka"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/numerator"
)

// app is the wired desk: ledger, drafts service and HTTP handler.
type app struct {
	Service *drafts.Service
	Handler http.Handler

	closers []func() error
	log     *logger.Logger
}

func newApp(ctx context.Context, cfg config.Config, log *logger.Logger) (*app, error) {
	a := &app{log: log}

	catalog, err := cfg.BuildCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	log.Infow("catalog loaded", "products", catalog.Len())

	l, err := ledger.New(catalog, ledger.Options{
		Location:  cfg.Location,
		Numerator: numerator.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}

	var events drafts.EventPublisher = drafts.NopPublisher{}
	if cfg.Kafka.Enabled() {
		pub, err := kafka.NewPublisher(kafka.Config{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			BatchTimeout: cfg.Kafka.BatchTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("kafka: %w", err)
		}
		a.closers = append(a.closers, pub.Close)
		events = pub
		log.Infow("order events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	svc, err := drafts.NewService(drafts.ServiceConfig{
		Ledger:       l,
		Events:       events,
		ShareNumbers: cfg.ShareNumbers,
	})
	if err != nil {
		return nil, err
	}
	a.Service = svc

	router := v1.NewRouter(v1.RouterConfig{
		Logger:  log,
		Service: svc,
		Version: version,
	})
	a.Handler = router

	if cfg.HTTPCompression {
		wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(cfg.GzipMinSize))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		a.Handler = wrap(router)
	}

	return a, nil
}

// Close releases event writers.
func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.log.Warnw("close failed", "error", err)
		}
	}
}
