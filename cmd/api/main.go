package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/xavierca1/alpha-site/internal/catalog"
	"github.com/xavierca1/alpha-site/internal/config"
	"github.com/xavierca1/alpha-site/internal/infra/cache"
	"github.com/xavierca1/alpha-site/internal/infra/http/handlers"
	appmw "github.com/xavierca1/alpha-site/internal/infra/http/middleware"
	"github.com/xavierca1/alpha-site/internal/infra/integration/bigdatacloud"
	"github.com/xavierca1/alpha-site/internal/infra/integration/exchangerate"
	"github.com/xavierca1/alpha-site/internal/infra/integration/restcountries"
	"github.com/xavierca1/alpha-site/internal/infra/mail"
	"github.com/xavierca1/alpha-site/internal/infra/queue"
	"github.com/xavierca1/alpha-site/internal/infra/worker"
	"github.com/xavierca1/alpha-site/internal/usecase"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

type lookupStore interface {
	usecase.LookupCache
	handlers.Pinger
	Name() string
}

func main() {
	godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Catalog
	plans, err := catalog.Load(cfg.PricingCatalogPath)
	if err != nil {
		logger.Error("failed to load pricing catalog", "error", err)
		os.Exit(1)
	}

	// 2. Cache
	var store lookupStore = cache.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer client.Close()
			store = cache.NewRedisStore(client)
		}
	}
	logger.Info("lookup cache ready", "backend", store.Name())

	// 3. Lookups and use cases
	recorder := appmw.PrometheusRecorder{}
	resolveUC := usecase.NewResolveCurrencyUseCase(
		bigdatacloud.NewClient(cfg.GeocodeURL, cfg.LookupTimeout),
		restcountries.NewClient(cfg.CountriesURL, cfg.LookupTimeout),
		exchangerate.NewClient(cfg.RatesURL, cfg.LookupTimeout),
		store,
		cfg.LookupTimeout,
		cfg.CacheTTL,
		recorder,
		logger,
	)
	pricingUC := usecase.NewPricingUseCase(plans, resolveUC)

	// 4. Lead delivery
	if !cfg.MailConfigured() {
		logger.Warn("smtp is not fully configured, lead emails will fail")
	}
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
		cfg.MailFrom, cfg.MailFromName, cfg.MailTo,
	)

	var notifier usecase.LeadNotifier = mailSender
	var broker handlers.ConnectionState
	if cfg.LeadDelivery == config.DeliveryQueue {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		broker = rabbitMQ
		notifier = queue.NewProducer(rabbitMQ.Ch)

		leadWorker := queue.NewWorker(rabbitMQ.Ch, mailSender, logger)
		go func() {
			if err := leadWorker.Start(ctx, queue.QueueName); err != nil {
				logger.Error("lead worker exited", "error", err)
			}
		}()
	}
	logger.Info("lead delivery configured", "mode", cfg.LeadDelivery)

	submitUC := usecase.NewSubmitLeadUseCase(notifier, cfg.DefaultPhoneRegion, recorder, logger)

	// 5. Background workers
	go worker.NewRateRefreshWorker(resolveUC, cfg.RateRefreshInterval, cfg.LookupTimeout, logger).Start(ctx)

	limiter := appmw.NewIPRateLimiter(cfg.ContactRatePerMin)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Sweep()
			}
		}
	}()

	// 6. Router
	router := newRouter(cfg.AllowedOrigins, routes{
		contact:     handlers.NewContactHandler(submitUC, logger),
		currency:    handlers.NewCurrencyHandler(resolveUC, pricingUC),
		formOptions: handlers.NewFormOptionsHandler(plans),
		health:      handlers.NewHealthHandler(store, store.Name(), broker, cfg.MailConfigured()),
		limiter:     limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
