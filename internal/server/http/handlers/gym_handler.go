package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/server/http/dto"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

// GymHandler serves the gym owner profile of the signed-in user.
type GymHandler struct {
	facade GymProfileFacade
}

func NewGymHandler(facade GymProfileFacade) *GymHandler {
	return &GymHandler{facade: facade}
}

// Create handles POST /api/gym.
func (h *GymHandler) Create(c *gin.Context) {
	var req dto.GymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	admin, err := h.facade.CreateGym(c.Request.Context(), CurrentUserID(c), toAdminInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGymResponse(*admin))
}

// Get handles GET /api/gym.
func (h *GymHandler) Get(c *gin.Context) {
	admin, err := h.facade.Gym(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGymResponse(*admin))
}

// Update handles PUT /api/gym.
func (h *GymHandler) Update(c *gin.Context) {
	var req dto.GymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	admin, err := h.facade.UpdateGym(c.Request.Context(), CurrentUserID(c), toAdminInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGymResponse(*admin))
}

// UploadPhoto handles PUT /api/gym/photo.
func (h *GymHandler) UploadPhoto(c *gin.Context) {
	body, err := photoBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	defer body.Close()

	admin, err := h.facade.SetGymPhoto(c.Request.Context(), CurrentUserID(c), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGymResponse(*admin))
}

func toAdminInput(req dto.GymRequest) usecase.AdminInput {
	return usecase.AdminInput{Name: req.Name, GymName: req.GymName, GymAddress: req.GymAddress}
}

func toGymResponse(admin model.Admin) dto.GymResponse {
	return dto.GymResponse{
		ID:         admin.ID.String(),
		Name:       admin.Name,
		GymName:    admin.GymName,
		GymAddress: admin.GymAddress,
		PhotoURL:   photoURL(admin.PhotoPath),
		CreatedAt:  admin.CreatedAt,
		UpdatedAt:  admin.UpdatedAt,
	}
}
