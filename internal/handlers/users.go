package handlers

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/middleware"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// UserHandler handles user account requests.
type UserHandler struct {
	Users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// Me returns the authenticated user's account.
func (h *UserHandler) Me(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	user, err := h.Users.Get(identity.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "User retrieved successfully", user)
}

// Get returns a user by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.Users.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "User retrieved successfully", user)
}

// List returns a page of users.
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	users, err := h.Users.List(offset, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Users retrieved successfully", users)
}

// Delete removes a user account.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Users.Delete(id, middleware.GetIdentity(c)); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}
