package kafka

import (
	"context"
	"github.com/ariefcatur/go-order-summary/internal/logging"
	"github.com/segmentio/kafka-go"
	"hash/fnv"
	"sync"
	"time"
)

// Handler harus return nil hanya jika proses sukses & boleh commit offset.
type Handler func(ctx context.Context, m kafka.Message) error

// reader: subset *kafka.Reader yang dipakai consumer.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	defaultMaxAttempts  = 5
	defaultRetryBackoff = 200 * time.Millisecond
)

type Consumer struct {
	r            reader
	workers      int
	maxAttempts  int
	retryBackoff time.Duration
}

func NewConsumer(brokers []string, group, topic string, workers int) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	return newConsumer(r, workers)
}

func newConsumer(r reader, workers int) *Consumer {
	if workers <= 0 {
		workers = 1
	}
	return &Consumer{r: r, workers: workers, maxAttempts: defaultMaxAttempts, retryBackoff: defaultRetryBackoff}
}

// Start: dispatch per key (order_id) ke worker yang sama supaya urutan per order terjaga.
// Return setelah semua worker selesai, jadi handler tidak jalan lagi sesudahnya.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	lanes := make([]chan kafka.Message, c.workers)
	var wg sync.WaitGroup
	for i := range lanes {
		lanes[i] = make(chan kafka.Message, 128)
		wg.Add(1)
		go func(jobs <-chan kafka.Message) {
			defer wg.Done()
			for m := range jobs {
				if c.handle(ctx, h, m) {
					if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
						logging.Logger().Error().Err(err).Str("topic", m.Topic).Int64("offset", m.Offset).Msg("commit failed")
					}
				}
			}
		}(lanes[i])
	}
	stop := func() {
		for _, l := range lanes {
			close(l)
		}
		wg.Wait()
	}

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			stop()
			// kecilkan noise saat shutdown
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case lanes[c.lane(m.Key)] <- m:
		case <-ctx.Done():
			stop()
			return nil
		}
	}
}

// handle: retry dengan backoff. true = boleh commit (sukses, atau menyerah setelah maxAttempts).
func (c *Consumer) handle(ctx context.Context, h Handler, m kafka.Message) bool {
	for attempt := 1; ; attempt++ {
		err := h(ctx, m)
		if err == nil {
			return true
		}
		log := logging.Logger().Error().Err(err).Str("topic", m.Topic).Int64("offset", m.Offset).Int("attempt", attempt)
		if attempt >= c.maxAttempts {
			log.Msg("handler failed, giving up")
			return true
		}
		log.Msg("handler failed, retrying")
		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.retryBackoff * time.Duration(attempt)):
		}
	}
}

func (c *Consumer) lane(key []byte) int {
	if c.workers == 1 || len(key) == 0 {
		return 0
	}
	f := fnv.New32a()
	_, _ = f.Write(key)
	return int(f.Sum32() % uint32(c.workers))
}
