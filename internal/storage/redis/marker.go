package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

// DefaultMarkerKey holds the period of the last bulk payment reset.
const DefaultMarkerKey = "gymkeeper:payment_cycle"

// MarkerStore keeps the reset marker as a "YYYY-MM" string.
type MarkerStore struct {
	client goredis.Cmdable
	key    string
}

// NewMarkerStore creates a marker store on top of client.
func NewMarkerStore(client goredis.Cmdable, key string) *MarkerStore {
	if key == "" {
		key = DefaultMarkerKey
	}
	return &MarkerStore{client: client, key: key}
}

func (s *MarkerStore) Get(ctx context.Context) (model.CyclePeriod, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, goredis.Nil) {
		return model.CyclePeriod{}, nil
	}
	if err != nil {
		return model.CyclePeriod{}, domainErrors.NewStoreError("get reset marker", err)
	}

	var year, month int
	if _, err := fmt.Sscanf(raw, "%d-%d", &year, &month); err != nil || month < 1 || month > 12 {
		return model.CyclePeriod{}, domainErrors.NewStoreError("get reset marker", fmt.Errorf("malformed marker %q", raw))
	}
	return model.CyclePeriod{Year: year, Month: time.Month(month)}, nil
}

func (s *MarkerStore) Set(ctx context.Context, period model.CyclePeriod) error {
	value := fmt.Sprintf("%04d-%02d", period.Year, int(period.Month))
	if err := s.client.Set(ctx, s.key, value, 0).Err(); err != nil {
		return domainErrors.NewStoreError("set reset marker", err)
	}
	return nil
}
