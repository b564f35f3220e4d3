package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ariefcatur/go-order-summary/internal/summary"
	"github.com/redis/go-redis/v9"
)

// SummaryStore: implementasi summary.Cache dan summary.AdjustmentStore di Redis.
type SummaryStore struct {
	Redis *redis.Client
}

func (s *SummaryStore) GetSummary(ctx context.Context, orderID string) (summary.Summary, bool, error) {
	b, err := s.Redis.Get(ctx, fmt.Sprintf(KeySummary, orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return summary.Summary{}, false, nil
	}
	if err != nil {
		return summary.Summary{}, false, err
	}
	var out summary.Summary
	if err := json.Unmarshal(b, &out); err != nil {
		return summary.Summary{}, false, fmt.Errorf("decode cached summary: %w", err)
	}
	return out, true, nil
}

func (s *SummaryStore) SetSummary(ctx context.Context, sum summary.Summary) error {
	b, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, fmt.Sprintf(KeySummary, sum.OrderID), b, TTLSummary).Err()
}

func (s *SummaryStore) DeleteSummary(ctx context.Context, orderID string) error {
	return s.Redis.Del(ctx, fmt.Sprintf(KeySummary, orderID)).Err()
}

func (s *SummaryStore) GetAdjustment(ctx context.Context, orderID string) (summary.AdjustmentState, error) {
	v, err := s.Redis.Get(ctx, fmt.Sprintf(KeyAdjustment, orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return summary.AdjustmentClosed, nil
	}
	if err != nil {
		return "", err
	}
	if summary.AdjustmentState(v) == summary.AdjustmentOpen {
		return summary.AdjustmentOpen, nil
	}
	return summary.AdjustmentClosed, nil
}

func (s *SummaryStore) SetAdjustment(ctx context.Context, orderID string, st summary.AdjustmentState) error {
	key := fmt.Sprintf(KeyAdjustment, orderID)
	if st != summary.AdjustmentOpen {
		return s.Redis.Del(ctx, key).Err()
	}
	return s.Redis.Set(ctx, key, string(st), TTLAdjustment).Err()
}
