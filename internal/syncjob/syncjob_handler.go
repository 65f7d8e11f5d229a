package syncjob

import (
	"encoding/json"
	"net/http"
	"time"

	"bancohoras/internal/shared/apperror"
	"bancohoras/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.completeIdempotency(c, resp)
	response.Success(c, http.StatusAccepted, resp, nil)
}

func (h *Handler) Status(c *gin.Context) {
	snap, err := h.service.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}

// completeIdempotency caches the submit response under the Idempotency-Key
// entry created by the middleware and releases its lock.
func (h *Handler) completeIdempotency(c *gin.Context, resp SubmitSyncResponse) {
	if h.rdb == nil {
		return
	}

	cacheKey, _ := c.Get("idempotency_cache_key")
	lockKey, _ := c.Get("idempotency_lock_key")

	if ck, ok := cacheKey.(string); ok && ck != "" {
		if payload, err := json.Marshal(resp); err == nil {
			h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour)
		}
	}
	if lk, ok := lockKey.(string); ok && lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}
