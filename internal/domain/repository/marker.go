package repository

import (
	"context"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

// MarkerRepository stores the period of the last bulk payment reset.
// Get returns the zero period when nothing was stored yet.
type MarkerRepository interface {
	Get(ctx context.Context) (model.CyclePeriod, error)
	Set(ctx context.Context, period model.CyclePeriod) error
}
