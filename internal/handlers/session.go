// internal/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/blendsoft/pos-terminal/internal/utils"
)

// SessionHandler mints session tokens for local development. Deployed
// environments take tokens from the external identity service; the route
// is not registered in production.
type SessionHandler struct {
	ttlHours int
}

func NewSessionHandler(ttlHours int) *SessionHandler {
	return &SessionHandler{
		ttlHours: ttlHours,
	}
}

type mintSessionRequest struct {
	Document int    `json:"documento" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// POST /auth/session
func (h *SessionHandler) MintSession(c *gin.Context) {
	var req mintSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	token, err := utils.GenerateSessionToken(req.Document, req.Email, h.ttlHours)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to mint session token")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token":     token,
		"documento": req.Document,
	})
}
