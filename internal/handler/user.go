package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// CreateUser registers a user and returns a bearer token for them.
func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if domain.Role(req.Role) == domain.RoleAdmin {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	input := domain.CreateUserInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Role:           domain.Role(req.Role),
		Language:       domain.Language(req.Language),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondToken(c, http.StatusCreated, user)
}

// IssueToken logs an existing user in by phone.
func (h *Handler) IssueToken(c *ginext.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.GetByPhone(c.Request.Context(), req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondToken(c, http.StatusOK, user)
}

func (h *Handler) respondToken(c *ginext.Context, status int, user *domain.User) {
	token, expires, err := h.tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(status, dto.TokenResponse{
		Token:     token,
		ExpiresAt: expires.UTC().Format(time.RFC3339),
		User:      dto.ToUserResponse(user),
	})
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if a := actor(c); a.ID != id && !a.IsAdmin() {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}
