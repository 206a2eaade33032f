// internal/handlers/user.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/services"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.Load(c.Request.Context())
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	// Credentials are never displayed after creation.
	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}

	utils.SuccessResponse(c, sanitized)
}

// GET /users/:document (existence probe)
func (h *UserHandler) GetUser(c *gin.Context) {
	document, err := strconv.Atoi(c.Param("document"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid document number", nil)
		return
	}

	exists, err := h.userService.Exists(c.Request.Context(), document)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"documento": document, "exists": exists})
}

// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.CreatedResponse(c, user.Sanitized())
}

// PUT /users/:document
func (h *UserHandler) UpdateUser(c *gin.Context) {
	document, err := strconv.Atoi(c.Param("document"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid document number", nil)
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), document, req)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, user.Sanitized())
}

// DELETE /users/:document
func (h *UserHandler) DeleteUser(c *gin.Context) {
	document, err := strconv.Atoi(c.Param("document"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid document number", nil)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), document); err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": document})
}
