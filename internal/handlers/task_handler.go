package handlers

import (
	"net/http"

	"echo_api/internal/database"
	"echo_api/internal/responses"
	"echo_api/internal/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var task database.Record
	if err := c.ShouldBindJSON(&task); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.taskService.Create(c.Request.Context(), task)
	if err != nil {
		responses.FromError(c, err, "Error while creating the task")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Task created successfully")
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.Read(c.Request.Context(), queryFromParams(c))
	if err != nil {
		responses.FromError(c, err, "Error while reading tasks")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"tasks": tasks}, "Tasks retrieved successfully")
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID := c.Param("task_id")

	var data database.Record
	if err := c.ShouldBindJSON(&data); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.taskService.Update(c.Request.Context(), taskID, data)
	if err != nil {
		responses.FromError(c, err, "Error while updating the task")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Task updated successfully")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID := c.Param("task_id")

	id, err := h.taskService.Delete(c.Request.Context(), taskID)
	if err != nil {
		responses.FromError(c, err, "Error while deleting the task")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Task deleted successfully")
}

type reorderRequest struct {
	StudyID string   `json:"study_id" binding:"required"`
	TaskIDs []string `json:"task_ids" binding:"required"`
}

func (h *TaskHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if err := h.taskService.Reorder(c.Request.Context(), req.StudyID, req.TaskIDs); err != nil {
		responses.FromError(c, err, "Error while reordering tasks")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Tasks reordered successfully")
}
