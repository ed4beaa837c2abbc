package crm

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"crm-graphql/internal/redisx"
)

const (
	topClientsLimit = 10
	topSellersLimit = 3
)

// TopClients ranks clients by the summed total of their completed
// orders, highest first, at most 10 rows. The grouping and join run in
// the store; ordering and the limit are applied here, after the sort.
func (s *Service) TopClients(ctx context.Context) ([]ClientTotal, error) {
	var cached []ClientTotal
	if s.cacheGet(ctx, redisx.KeyTopClients, &cached) {
		return cached, nil
	}

	rows, err := s.Orders.CompletedTotalsByClient(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	if len(rows) > topClientsLimit {
		rows = rows[:topClientsLimit]
	}
	s.cacheSet(ctx, redisx.KeyTopClients, rows)
	return rows, nil
}

// TopSellers ranks sellers the same way, at most 3 rows.
func (s *Service) TopSellers(ctx context.Context) ([]SellerTotal, error) {
	var cached []SellerTotal
	if s.cacheGet(ctx, redisx.KeyTopSellers, &cached) {
		return cached, nil
	}

	rows, err := s.Orders.CompletedTotalsBySeller(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	if len(rows) > topSellersLimit {
		rows = rows[:topSellersLimit]
	}
	s.cacheSet(ctx, redisx.KeyTopSellers, rows)
	return rows, nil
}

// cacheGet / cacheSet treat the cache as best effort: a miss, a nil
// client, or a redis failure all fall back to the store.
func (s *Service) cacheGet(ctx context.Context, key string, out any) bool {
	if s.Cache == nil {
		return false
	}
	raw, err := s.Cache.Get(ctx, key).Result()
	if err != nil || raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, b, redisx.TTLAnalytics).Err(); err != nil {
		s.Log.Debug("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
