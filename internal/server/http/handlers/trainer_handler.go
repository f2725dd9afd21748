package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/server/http/dto"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

// TrainerHandler manages trainer endpoints.
type TrainerHandler struct {
	facade TrainerFacade
}

func NewTrainerHandler(facade TrainerFacade) *TrainerHandler {
	return &TrainerHandler{facade: facade}
}

// List handles GET /api/trainers?search=.
func (h *TrainerHandler) List(c *gin.Context) {
	var query dto.TrainerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	trainers, err := h.facade.Trainers(c.Request.Context(), usecase.TrainerQuery{Search: query.Search})
	if err != nil {
		writeError(c, err)
		return
	}
	response := make([]dto.TrainerResponse, 0, len(trainers))
	for _, t := range trainers {
		response = append(response, toTrainerResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req dto.TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	trainer, err := h.facade.CreateTrainer(c.Request.Context(), toTrainerInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTrainerResponse(*trainer))
}

func (h *TrainerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	trainer, err := h.facade.Trainer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTrainerResponse(*trainer))
}

func (h *TrainerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	trainer, err := h.facade.UpdateTrainer(c.Request.Context(), id, toTrainerInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTrainerResponse(*trainer))
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteTrainer(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrainerHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	body, err := photoBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	defer body.Close()

	trainer, err := h.facade.SetTrainerPhoto(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTrainerResponse(*trainer))
}

func toTrainerInput(req dto.TrainerRequest) usecase.TrainerInput {
	return usecase.TrainerInput{Name: req.Name, Phone: req.Phone, Specialty: model.Specialty(req.Specialty)}
}

func toTrainerResponse(t model.Trainer) dto.TrainerResponse {
	return dto.TrainerResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Phone:     t.Phone,
		Specialty: string(t.Specialty),
		PhotoURL:  photoURL(t.PhotoPath),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
