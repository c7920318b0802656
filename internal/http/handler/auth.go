package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/dto"
	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

const sessionMaxAgeHours = 7 * 24

type AuthHandler struct {
	authService  service.AuthService
	dashboardURL string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, dashboardURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		dashboardURL: dashboardURL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) GetAuthURL(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	var opts []service.AuthURLOption
	if loginHint := c.Query("login_hint"); loginHint != "" {
		opts = append(opts, service.WithLoginHint(loginHint))
	}

	authURL, err := h.authService.GetAuthorizationURL(state, opts...)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get authorization URL"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthURLResponse{
		AuthorizationURL: authURL,
		State:            state,
	})
}

type ExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ExchangeResponse struct {
	User      UserResponse `json:"user"`
	SessionID string       `json:"session_id"`
	ExpiresIn int          `json:"expires_in"`
}

type UserResponse struct {
	AvatarURL *string `json:"avatar_url,omitempty"`
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        strconv.FormatInt(u.ID, 10),
		Name:      u.DisplayName(),
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

// Exchange trades an AuthKit code for a session. First sign-in creates the user.
func (h *AuthHandler) Exchange(c *gin.Context) {
	ctx := c.Request.Context()

	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	result, err := h.authService.HandleCallback(ctx, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authorization code"})
			return
		}
		slog.ErrorContext(ctx, "failed to exchange code", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to exchange code"})
		return
	}

	slog.InfoContext(ctx, "user authenticated via exchange", "user_id", result.User.ID)

	h.setSessionCookie(c, result.Session.ID)
	c.JSON(http.StatusOK, ExchangeResponse{
		User:      newUserResponse(result.User),
		SessionID: strconv.FormatInt(result.Session.ID, 10),
		ExpiresIn: sessionMaxAgeHours,
	})
}

type ValidateSessionResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt string       `json:"expires_at"`
}

func (h *AuthHandler) ValidateSession(c *gin.Context) {
	ctx := c.Request.Context()

	if c.GetHeader(middleware.SessionIDHeader) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session ID required"})
		return
	}

	sessionID, err := middleware.SessionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	user, session, err := h.authService.ValidateSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		slog.ErrorContext(ctx, "failed to validate session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
		return
	}

	c.JSON(http.StatusOK, ValidateSessionResponse{
		User:      newUserResponse(user),
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

type LogoutRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

func (h *AuthHandler) LogoutSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	sessionID, err := strconv.ParseInt(req.SessionID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	if err := h.authService.Logout(ctx, sessionID); err != nil {
		slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me answers from the cookie so a browser can check its session without the header.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := middleware.SessionID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, _, err := h.authService.ValidateSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
			h.clearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		slog.ErrorContext(ctx, "failed to validate session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sessionID, err := middleware.SessionID(c); err == nil && sessionID > 0 {
		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID int64) {
	c.SetCookie(middleware.SessionCookieName, strconv.FormatInt(sessionID, 10),
		int(service.SessionTTL.Seconds()), "/", "", h.isProduction, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.isProduction, true)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
