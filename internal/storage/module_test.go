package storage

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/gymkeeper/internal/storage/postgres"
	"github.com/polkiloo/gymkeeper/internal/storage/redis"
)

func TestNewMarkerRepositoryPrefersRedis(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	db, _ := redismock.NewClientMock()

	marker := newMarkerRepository(markerParams{Storage: &postgres.Storage{}, Redis: db, Logger: logger})
	require.IsType(t, &redis.MarkerStore{}, marker)
}

func TestNewMarkerRepositoryFallsBackToPostgres(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &postgres.Storage{}

	marker := newMarkerRepository(markerParams{Storage: storage, Logger: logger})
	require.IsType(t, storage.Marker(), marker)
}
