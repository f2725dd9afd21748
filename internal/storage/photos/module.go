package photos

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gymkeeper/internal/config"
)

// Module provides the filesystem photo store.
var Module = fx.Provide(func(cfg *config.Config) (*Store, error) {
	return New(cfg.PhotoDir, cfg.MaxPhotoBytes)
})
