package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/apexshade/playbook/internal/api/middleware"
	"github.com/apexshade/playbook/internal/services"
	"github.com/apexshade/playbook/internal/utils"
)

type AdminHandler struct {
	svc       services.InteractionService
	secret    string // shared admin password, plain or bcrypt hash
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAdminHandler(svc services.InteractionService, secret, jwtSecret string, tokenTTL time.Duration) *AdminHandler {
	return &AdminHandler{svc: svc, secret: secret, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Login exchanges the shared admin secret for a short-lived token. A wrong
// password gets the same generic response regardless of how close it was.
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeUnauthorized, "AdminHandler.Login", "invalid credentials", nil))
		return
	}

	if !utils.CheckSecret(h.secret, req.Password) {
		writeError(c, utils.E(utils.CodeUnauthorized, "AdminHandler.Login", "invalid credentials", nil))
		return
	}

	now := time.Now().UTC()
	exp := now.Add(h.tokenTTL)
	claims := middleware.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: "admin",
	}

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "AdminHandler.Login", "failed to issue token", err))
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{
		Token:     tok,
		ExpiresAt: exp.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// ListPending returns the moderation queue.
func (h *AdminHandler) ListPending(c *gin.Context) {
	rows, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": rows})
}

// Approve publishes a pending script to the library and the retrieval
// corpus. NOT_FOUND here usually means another moderator got there first.
func (h *AdminHandler) Approve(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Approve(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interaction_id": id, "status": "approved"})
}

// Reject removes the record permanently.
func (h *AdminHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Reject(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interaction_id": id, "status": "deleted"})
}
