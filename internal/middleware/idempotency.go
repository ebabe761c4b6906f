package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stpnv0/rahi/internal/cache"
	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (*cache.StoredResponse, error)
	Save(ctx context.Context, key string, resp *cache.StoredResponse) error
	Release(ctx context.Context, key string) error
}

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a mutating request repeats its
// Idempotency-Key. Keys are scoped to the caller and route. Server errors are not
// stored so the client can retry them. Store outages let the request through.
func Idempotency(store IdempotencyStore, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw := c.GetHeader(HeaderIdempotencyKey)
		if raw == "" || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		if len(raw) > 200 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "idempotency key is too long",
				Code:  dto.CodeValidation,
			})
			return
		}

		var actorID string
		if actor, ok := ActorFrom(c); ok {
			actorID = actor.ID
		}
		key := actorID + ":" + c.Request.Method + ":" + c.Request.URL.Path + ":" + raw
		ctx := c.Request.Context()

		owned, err := store.Reserve(ctx, key)
		if err != nil {
			log.Warn("idempotency store unavailable",
				logger.String("request_id", RequestIDFrom(c)),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		if !owned {
			resp, err := store.Get(ctx, key)
			switch {
			case err == nil:
				c.Header("Idempotent-Replayed", "true")
				c.Data(resp.Status, resp.ContentType, resp.Body)
				c.Abort()
				return
			case errors.Is(err, cache.ErrInFlight):
				c.AbortWithStatusJSON(http.StatusConflict, dto.ErrorResponse{
					Error: "a request with this idempotency key is still in progress",
					Code:  dto.CodeConflict,
				})
				return
			case errors.Is(err, cache.ErrNotFound):
				// истёк между Reserve и Get
			default:
				log.Warn("idempotency lookup failed",
					logger.String("request_id", RequestIDFrom(c)),
					logger.String("error", err.Error()),
				)
			}
			c.Next()
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// запрос уже завершён, сохраняем даже если контекст отменён
		bg := context.WithoutCancel(ctx)
		if status := rec.Status(); status >= http.StatusInternalServerError {
			if err := store.Release(bg, key); err != nil {
				log.Warn("release idempotency key", logger.String("error", err.Error()))
			}
			return
		}

		stored := &cache.StoredResponse{
			Status:      rec.Status(),
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		}
		if err := store.Save(bg, key, stored); err != nil {
			log.Warn("save idempotent response", logger.String("error", err.Error()))
		}
	}
}
