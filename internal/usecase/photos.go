package usecase

import (
	"context"
	"io"
	"log/slog"
)

// PhotoStore persists uploaded profile photos and returns their stored names.
type PhotoStore interface {
	Save(ctx context.Context, r io.Reader) (string, error)
	Delete(name string) error
}

// replacePhoto saves the upload, lets persist record the new name and then
// drops the previous file. The new file is removed again if persist fails.
func replacePhoto(ctx context.Context, photos PhotoStore, logger *slog.Logger, previous *string, r io.Reader, persist func(name string) error) error {
	name, err := photos.Save(ctx, r)
	if err != nil {
		return err
	}
	if err := persist(name); err != nil {
		removePhoto(photos, logger, &name)
		return err
	}
	removePhoto(photos, logger, previous)
	return nil
}

func removePhoto(photos PhotoStore, logger *slog.Logger, name *string) {
	if name == nil || *name == "" {
		return
	}
	if err := photos.Delete(*name); err != nil {
		logger.Warn("remove photo failed", slog.String("photo", *name), slog.Any("error", err))
	}
}
