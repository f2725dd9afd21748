package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/server/http/dto"
	"github.com/polkiloo/gymkeeper/internal/server/http/middleware"
)

const (
	photoFormField = "photo"
	photoURLPrefix = "/api/photos/"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidMember),
		errors.Is(err, domainErrors.ErrInvalidTrainer),
		errors.Is(err, domainErrors.ErrInvalidAdmin),
		errors.Is(err, domainErrors.ErrInvalidPhoto):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrPhotoTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error body. Internal failures are attached
// to the gin context for the request logger and reported without details.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = http.StatusText(status)
		if errors.Is(err, domainErrors.ErrStore) {
			message = "storage unavailable"
		}
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid id %q", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}

// photoBody returns the uploaded image: the "photo" part of a multipart form
// or the raw request body otherwise.
func photoBody(c *gin.Context) (io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		return c.Request.Body, nil
	}
	header, err := c.FormFile(photoFormField)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %q form file", domainErrors.ErrInvalidPhoto, photoFormField)
	}
	return header.Open()
}

func photoURL(name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	url := photoURLPrefix + *name
	return &url
}
