package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type TokenParser interface {
	Parse(token string) (domain.Actor, error)
}

// Auth accepts "Authorization: Bearer <jwt>" or, for websocket upgrades, a token query parameter.
func Auth(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearer(c.GetHeader("Authorization"))
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.Set("error", "missing bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "authorization required",
				Code:  dto.CodeUnauthorized,
			})
			return
		}

		actor, err := parser.Parse(token)
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "invalid or expired token",
				Code:  dto.CodeUnauthorized,
			})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func bearer(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

// RequireRole lets through only actors holding one of roles. Admins always pass.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "authorization required",
				Code:  dto.CodeUnauthorized,
			})
			return
		}
		if actor.Role != domain.RoleAdmin && !slices.Contains(roles, actor.Role) {
			c.Set("error", domain.ErrForbidden.Error()+": role "+string(actor.Role))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "you are not allowed to do this",
				Code:  dto.CodeForbidden,
			})
			return
		}
		c.Next()
	}
}
