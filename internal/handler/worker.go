package handler

import (
	"net/http"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateWorkerProfile(c *ginext.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	a := actor(c)
	userID := a.ID
	if a.IsAdmin() && req.UserID != "" {
		userID = req.UserID
	}

	if _, err := h.workerService.CreateProfile(c.Request.Context(), userID, req.Bio); err != nil {
		h.handleError(c, err)
		return
	}

	view, err := h.workerService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkerResponse(view))
}

func (h *Handler) GetWorkerProfile(c *ginext.Context) {
	view, err := h.workerService.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(view))
}

func (h *Handler) SetWorkerStatus(c *ginext.Context) {
	userID := c.Param("userId")
	if a := actor(c); a.ID != userID && !a.IsAdmin() {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	view, err := h.workerService.SetStatus(c.Request.Context(), userID, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(view))
}
