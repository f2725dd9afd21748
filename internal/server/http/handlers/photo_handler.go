package handlers

import (
	"github.com/gin-gonic/gin"
)

// PhotoHandler serves stored profile photos.
type PhotoHandler struct {
	facade PhotoFacade
}

func NewPhotoHandler(facade PhotoFacade) *PhotoHandler {
	return &PhotoHandler{facade: facade}
}

// Serve handles GET /api/photos/:name.
func (h *PhotoHandler) Serve(c *gin.Context) {
	path, err := h.facade.PhotoPath(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=86400")
	c.File(path)
}
