package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userCtxKey = "userId"

// bearerAuth admits a request only if it carries a verifiable bearer
// token. On success the decoded user id is attached to the request
// context for downstream handlers; on any failure the request is rejected
// with a 401 and the process keeps serving.
func (h *Handler) bearerAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		// Malformed and bad-signature tokens are deliberately
		// indistinguishable here.
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid token",
		})
		return
	}

	c.Set(userCtxKey, userId)
	c.Next()
}

// userID returns the authenticated user id attached by bearerAuth.
func userID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// cors mirrors the permissive policy of the frontend-facing deployment:
// any origin may call the API.
func (h *Handler) cors(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
	c.Header("Access-Control-Max-Age", "86400")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// requestLog emits one structured line per request.
func (h *Handler) requestLog(c *gin.Context) {
	if h.log == nil {
		c.Next()
		return
	}
	start := time.Now()
	c.Next()
	h.log.Infow("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
		"size", c.Writer.Size(),
	)
}

const sessionCookie = "session_id"

// trackSession ensures every client carries a session cookie and refreshes
// the matching Redis entry. Sessions are best-effort bookkeeping: a store
// error is logged and the request proceeds, and they grant no authority —
// the bearer gate alone does that.
func (h *Handler) trackSession(c *gin.Context) {
	if h.sessions == nil {
		c.Next()
		return
	}

	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}

	if err := h.sessions.Touch(c.Request.Context(), id); err != nil && h.log != nil {
		h.log.Warnw("session_touch_failed", "err", err)
	}
	c.Next()
}
