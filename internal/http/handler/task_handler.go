package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/http/middleware"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"
)

// TaskHandler exposes task CRUD, always scoped to the session user.
type TaskHandler struct {
	Tasks *service.TaskService
}

// NewTaskHandler creates the handler set.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{Tasks: tasks}
}

// List returns the caller's tasks.
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	tasks, err := h.Tasks.ListForUser(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err, "task")
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
		"total":   len(tasks),
	})
}

// Create inserts a task owned by the caller.
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Status      string     `json:"status"`
		Priority    int        `json:"priority"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		CampaignID  string     `json:"campaign_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	task := domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.CampaignID != "" {
		oid, err := primitive.ObjectIDFromHex(req.CampaignID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid campaign_id")
			return
		}
		task.CampaignID = &oid
	}

	created, err := h.Tasks.Create(c.Request.Context(), user, task)
	if err != nil {
		respondServiceError(c, err, "task")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "task created",
		"task":    created,
	})
}

// Get returns one of the caller's tasks.
func (h *TaskHandler) Get(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	task, err := h.Tasks.GetOwned(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

// Update applies a partial update; only supplied fields change.
func (h *TaskHandler) Update(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status"`
		Priority    *int       `json:"priority"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		CampaignID  *string    `json:"campaign_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.CampaignID != nil {
		oid, err := primitive.ObjectIDFromHex(*req.CampaignID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid campaign_id")
			return
		}
		patch.CampaignID = &oid
	}

	updated, err := h.Tasks.UpdateOwned(c.Request.Context(), user, c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "task updated",
		"task":    updated,
	})
}

// Delete removes one of the caller's tasks.
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.Tasks.DeleteOwned(c.Request.Context(), user, c.Param("id")); err != nil {
		respondServiceError(c, err, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "task deleted"})
}

// Complete toggles the pending/completed status on each call.
func (h *TaskHandler) Complete(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	task, err := h.Tasks.ToggleComplete(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "task")
		return
	}

	message := "task marked as pending"
	if task.IsCompleted() {
		message = "task marked as completed"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"task":    task,
	})
}
