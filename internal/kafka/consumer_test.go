package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	pending   []kafka.Message
	committed []int64
	closed    bool
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	if len(f.pending) > 0 {
		m := f.pending[0]
		f.pending = f.pending[1:]
		f.mu.Unlock()
		return m, nil
	}
	f.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeReader) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeReader) commits() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.committed...)
}

func messages(n int) []kafka.Message {
	out := make([]kafka.Message, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, kafka.Message{Key: []byte("order_1"), Offset: int64(i)})
	}
	return out
}

func runConsumer(t *testing.T, c *Consumer, h Handler) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx, h) }()
	return cancel, done
}

func TestConsumerRetriesFailedMessageBeforeCommit(t *testing.T) {
	r := &fakeReader{pending: messages(3)}
	c := newConsumer(r, 1)
	c.retryBackoff = time.Millisecond

	var mu sync.Mutex
	attempts := map[int64]int{}
	cancel, done := runConsumer(t, c, func(_ context.Context, m kafka.Message) error {
		mu.Lock()
		defer mu.Unlock()
		attempts[m.Offset]++
		if m.Offset == 0 && attempts[m.Offset] < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.Eventually(t, func() bool { return len(r.commits()) == 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []int64{0, 1, 2}, r.commits())
	mu.Lock()
	assert.Equal(t, 3, attempts[0])
	mu.Unlock()
	assert.True(t, r.closed)
}

func TestConsumerKeepsDrainingWhenEveryMessageFails(t *testing.T) {
	r := &fakeReader{pending: messages(10)}
	c := newConsumer(r, 2)
	c.retryBackoff = time.Millisecond
	c.maxAttempts = 2

	cancel, done := runConsumer(t, c, func(context.Context, kafka.Message) error {
		return errors.New("always")
	})

	// tanpa pesan baru, antrean tetap habis diproses
	require.Eventually(t, func() bool { return len(r.commits()) == 10 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestConsumerShutdownDuringRetryDoesNotCommit(t *testing.T) {
	r := &fakeReader{pending: messages(1)}
	c := newConsumer(r, 1)
	c.retryBackoff = time.Hour

	called := make(chan struct{}, 1)
	cancel, done := runConsumer(t, c, func(context.Context, kafka.Message) error {
		select {
		case called <- struct{}{}:
		default:
		}
		return errors.New("down")
	})

	<-called
	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, r.commits())
}

func TestConsumerLaneIsStablePerKey(t *testing.T) {
	c := newConsumer(&fakeReader{}, 4)

	assert.Equal(t, c.lane([]byte("order_1")), c.lane([]byte("order_1")))
	assert.Equal(t, 0, c.lane(nil))
	assert.Less(t, c.lane([]byte("order_2")), 4)
}
