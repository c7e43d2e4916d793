package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/service"
)

type TaskHandler struct {
	tasks  *service.TaskService
	labels *service.LabelService
}

func NewTaskHandler(tasks *service.TaskService, labels *service.LabelService) *TaskHandler {
	return &TaskHandler{tasks: tasks, labels: labels}
}

// TaskCreateRequest представляет запрос на создание задачи
type TaskCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,taskstatus"`
	Progress    *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	DueDate     *time.Time `json:"due_date"`
	Labels      []string   `json:"labels"`
}

// TaskUpdateRequest представляет частичное обновление задачи:
// учитываются только переданные поля
type TaskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,taskstatus"`
	Progress    *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	DueDate     *time.Time `json:"due_date"`
}

// ParticipantRequest представляет запрос на приглашение участника
type ParticipantRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TaskLabelRequest представляет запрос на добавление метки по имени
type TaskLabelRequest struct {
	LabelName string `json:"label_name" binding:"required"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	IsActive     bool            `json:"is_active"`
	DueDate      *string         `json:"due_date,omitempty"`
	OwnerID      string          `json:"owner_id"`
	CreatedAt    string          `json:"created_at"`
	Labels       []LabelResponse `json:"labels"`
	Participants []UserResponse  `json:"participants"`
}

func taskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:           task.ID.String(),
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		Progress:     task.Progress,
		IsActive:     task.IsActive,
		OwnerID:      task.OwnerID.String(),
		CreatedAt:    task.CreatedAt.Format(time.RFC3339),
		Labels:       make([]LabelResponse, 0, len(task.Labels)),
		Participants: make([]UserResponse, 0, len(task.Participants)),
	}

	if task.DueDate != nil {
		dueDate := task.DueDate.Format(time.RFC3339)
		resp.DueDate = &dueDate
	}
	for _, label := range task.Labels {
		resp.Labels = append(resp.Labels, labelResponse(&label))
	}
	for _, p := range task.Participants {
		resp.Participants = append(resp.Participants, userResponse(&p))
	}
	return resp
}

// Create создает новую задачу
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
		Progress:    req.Progress,
		DueDate:     req.DueDate,
		Labels:      req.Labels,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskResponse(task))
}

// List возвращает задачи, видимые пользователю
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	opts := repository.TaskListOptions{
		Skip:            skip,
		Limit:           limit,
		IncludeInactive: c.Query("include_inactive") == "true",
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := model.TaskStatus(statusStr)
		if status != model.StatusTodo && status != model.StatusDoing && status != model.StatusDone {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		opts.Status = &status
	}

	tasks, err := h.tasks.List(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, taskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID возвращает задачу по ID
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), taskID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// Update применяет частичное обновление задачи
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Progress:    req.Progress,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.tasks.Update(c.Request.Context(), taskID, userID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// Delete удаляет задачу (только владелец)
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), taskID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// Activate снимает мягкое удаление с задачи (только владелец)
func (h *TaskHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate мягко удаляет задачу (только владелец)
func (h *TaskHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *TaskHandler) setActive(c *gin.Context, active bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.tasks.SetActive(c.Request.Context(), taskID, userID, active)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// AddParticipant приглашает пользователя по email (только владелец)
func (h *TaskHandler) AddParticipant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.AddParticipant(c.Request.Context(), taskID, userID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// RemoveParticipant исключает участника из задачи (только владелец)
func (h *TaskHandler) RemoveParticipant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	participantID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	task, err := h.tasks.RemoveParticipant(c.Request.Context(), taskID, userID, participantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// AddLabel добавляет метку к задаче по имени, создавая ее при необходимости
func (h *TaskHandler) AddLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.labels.AddToTask(c.Request.Context(), taskID, userID, req.LabelName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// RemoveLabel снимает метку с задачи
func (h *TaskHandler) RemoveLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	labelID, err := uuid.Parse(c.Param("label_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid label ID format"})
		return
	}

	task, err := h.labels.RemoveFromTask(c.Request.Context(), taskID, userID, labelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}
