package main

import (
	"context"
	"github.com/ariefcatur/go-order-summary/internal/commerce"
	"github.com/ariefcatur/go-order-summary/internal/config"
	"github.com/ariefcatur/go-order-summary/internal/inventory"
	kafkax "github.com/ariefcatur/go-order-summary/internal/kafka"
	"github.com/ariefcatur/go-order-summary/internal/logging"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"github.com/ariefcatur/go-order-summary/internal/postgres"
	"github.com/ariefcatur/go-order-summary/internal/redisx"
	"github.com/ariefcatur/go-order-summary/internal/summary"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logging.Init(cfg.IsDevelopment(), cfg.LogLevel)
	log := logging.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Producer: order.summary.recomputed
	// ctx sendiri supaya producer masih hidup selama consumer drain
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicSummaryRecomputed, 1024)
	prod.Start(context.Background())

	api := commerce.New(cfg.CommerceAPIURL, cfg.CommerceAPIToken, cfg.CommerceTimeout)
	store := &redisx.SummaryStore{Redis: rdb}
	summaries := summary.NewService(api, &orders.ReservationRepo{DB: db}, api, store, store,
		summary.Flags{InventoryEnabled: cfg.InventoryEnabled}, cfg.InventoryConcurrency)

	svc := &inventory.Service{
		Summaries:   summaries,
		Dedup:       &redisx.Dedup{Redis: rdb, Service: "summary"},
		Producer:    prod,
		ServiceName: cfg.ServiceName + "-worker",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.SummaryGroup, orders.TopicReservationChanged, cfg.SummaryWorkers)

	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info().Str("group", cfg.SummaryGroup).Str("topic", orders.TopicReservationChanged).
			Int("workers", cfg.SummaryWorkers).Msg("summary consumer started")
		if err := cons.Start(ctx, svc.HandleReservationChanged); err != nil {
			log.Error().Err(err).Msg("consumer exit")
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down consumer...")
	cancel()
	<-done            // worker selesai, tidak ada Publish lagi
	prod.Close()      // tutup inbox -> flush & close writer
	prod.WaitClosed() // drain
}
