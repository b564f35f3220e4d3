package main

import (
	"context"
	"github.com/ariefcatur/go-order-summary/internal/commerce"
	"github.com/ariefcatur/go-order-summary/internal/config"
	"github.com/ariefcatur/go-order-summary/internal/httpx"
	kafkax "github.com/ariefcatur/go-order-summary/internal/kafka"
	"github.com/ariefcatur/go-order-summary/internal/logging"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"github.com/ariefcatur/go-order-summary/internal/postgres"
	"github.com/ariefcatur/go-order-summary/internal/redisx"
	"github.com/ariefcatur/go-order-summary/internal/summary"
	"github.com/joho/godotenv"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.IsDevelopment(), cfg.LogLevel)
	log := logging.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB (reservations)
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer (adjustment events)
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicAdjustment, 1024)
	prod.Start(ctx)

	// Commerce API + summary service
	api := commerce.New(cfg.CommerceAPIURL, cfg.CommerceAPIToken, cfg.CommerceTimeout)
	store := &redisx.SummaryStore{Redis: rdb}
	svc := summary.NewService(api, &orders.ReservationRepo{DB: db}, api, store, store,
		summary.Flags{InventoryEnabled: cfg.InventoryEnabled}, cfg.InventoryConcurrency)

	router := httpx.NewRouter()
	(&httpx.SummaryHandler{Summaries: svc, Producer: prod, Service: cfg.ServiceName}).Register(router)
	(&httpx.OrdersHandler{Orders: api}).Register(router)
	(&httpx.CatalogHandler{Catalog: api}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Bool("inventory", cfg.InventoryEnabled).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // tutup inbox -> flush & close writer
	prod.WaitClosed() // drain
}
