package handlers

import (
	"net/http"

	"echo_api/internal/database"
	"echo_api/internal/responses"
	"echo_api/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var user database.Record
	if err := c.ShouldBindJSON(&user); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.userService.Create(c.Request.Context(), user)
	if err != nil {
		responses.FromError(c, err, "Error while creating the user")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "User created successfully")
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.Read(c.Request.Context(), queryFromParams(c))
	if err != nil {
		responses.FromError(c, err, "Error while reading users")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"users": users}, "Users retrieved successfully")
}

func (h *UserHandler) Update(c *gin.Context) {
	userID := c.Param("user_id")

	var data database.Record
	if err := c.ShouldBindJSON(&data); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.userService.Update(c.Request.Context(), userID, data)
	if err != nil {
		responses.FromError(c, err, "Error while updating the user")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "User updated successfully")
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID := c.Param("user_id")

	id, err := h.userService.Delete(c.Request.Context(), userID)
	if err != nil {
		responses.FromError(c, err, "Error while deleting the user")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "User deleted successfully")
}
