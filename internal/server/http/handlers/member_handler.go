package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/server/http/dto"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

// MemberHandler manages member endpoints.
type MemberHandler struct {
	facade MemberFacade
}

// NewMemberHandler constructs MemberHandler.
func NewMemberHandler(facade MemberFacade) *MemberHandler {
	return &MemberHandler{facade: facade}
}

// List handles GET /api/members?search=&filter=all|paid|unpaid.
func (h *MemberHandler) List(c *gin.Context) {
	var query dto.MemberListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	members, err := h.facade.Members(c.Request.Context(), usecase.MemberQuery{
		Search: query.Search,
		Filter: model.PaymentFilter(query.Filter),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		response = append(response, toMemberResponse(m))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/members.
func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	member, err := h.facade.CreateMember(c.Request.Context(), toMemberInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMemberResponse(*member))
}

// Get handles GET /api/members/:id.
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := h.facade.Member(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMemberResponse(*member))
}

// Update handles PUT /api/members/:id.
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	member, err := h.facade.UpdateMember(c.Request.Context(), id, toMemberInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMemberResponse(*member))
}

// Delete handles DELETE /api/members/:id.
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteMember(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadPhoto handles PUT /api/members/:id/photo.
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
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

	member, err := h.facade.SetMemberPhoto(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMemberResponse(*member))
}

// TogglePayment handles POST /api/members/:id/payment/toggle. Marking a paid
// member unpaid answers 409 unless ?confirm=true is given. A failed write
// answers 500 with the member as stored.
func (h *MemberHandler) TogglePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var query dto.ToggleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	member, err := h.facade.TogglePaid(c.Request.Context(), id, query.Confirm)
	if err != nil {
		if member != nil && errors.Is(err, domainErrors.ErrStore) {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, toMemberResponse(*member))
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMemberResponse(*member))
}

func toMemberInput(req dto.MemberRequest) usecase.MemberInput {
	return usecase.MemberInput{
		Name:  req.Name,
		Age:   req.Age,
		Phone: req.Phone,
		Tier:  model.MembershipTier(req.Tier),
	}
}

func toMemberResponse(m model.Member) dto.MemberResponse {
	return dto.MemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Age:       m.Age,
		Phone:     m.Phone,
		Tier:      string(m.Tier),
		Paid:      m.Paid,
		PhotoURL:  photoURL(m.PhotoPath),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
