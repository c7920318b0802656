package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

type contextKey string

const (
	SessionCookieName = "replydesk_session"
	SessionIDHeader   = "X-Session-ID"

	userContextKey      contextKey = "user"
	sessionIDContextKey contextKey = "session_id"
)

var errNoSession = errors.New("no session")

// RequireSession resolves X-Session-ID (or the session cookie) to a user and
// aborts with 401 when there is none.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := SessionID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, _, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionID reads the session id from the header, falling back to the cookie.
func SessionID(c *gin.Context) (int64, error) {
	raw := c.GetHeader(SessionIDHeader)
	if raw == "" {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			return 0, errNoSession
		}
		raw = cookie
	}
	return strconv.ParseInt(raw, 10, 64)
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

// CurrentUser returns the session user. Only valid behind RequireSession.
func CurrentUser(c *gin.Context) *model.User {
	return GetUser(c.Request.Context())
}

// RequireOwner checks an account id supplied by the client against the session
// user. It writes 400 for a missing or malformed id and 403 for someone else's,
// and reports whether the handler may continue.
func RequireOwner(c *gin.Context, rawUserID string) (int64, bool) {
	if rawUserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return 0, false
	}

	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return 0, false
	}

	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return 0, false
	}

	if user.ID != userID {
		slog.WarnContext(c.Request.Context(), "cross-account access denied", "requested_user_id", userID)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return 0, false
	}

	return userID, true
}
