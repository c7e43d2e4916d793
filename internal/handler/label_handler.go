package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskhub/internal/model"
	"taskhub/internal/service"
)

// LabelHandler handles label-related HTTP requests
type LabelHandler struct {
	labels *service.LabelService
}

func NewLabelHandler(labels *service.LabelService) *LabelHandler {
	return &LabelHandler{labels: labels}
}

// CreateLabelRequest defines the expected request body for creating a label
type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

// UpdateLabelRequest defines the expected request body for updating a label
type UpdateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

// LabelResponse представляет ответ с данными метки
type LabelResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LabelWithCountResponse pairs a label with its task usage count
type LabelWithCountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int64  `json:"count"`
}

func labelResponse(label *model.Label) LabelResponse {
	return LabelResponse{
		ID:    label.ID.String(),
		Name:  label.Name,
		Color: label.Color,
	}
}

// List retrieves labels with offset/limit pagination
func (h *LabelHandler) List(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	labels, err := h.labels.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]LabelResponse, 0, len(labels))
	for i := range labels {
		resp = append(resp, labelResponse(&labels[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// WithCount retrieves every label with the number of tasks carrying it
func (h *LabelHandler) WithCount(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	usages, err := h.labels.WithUsageCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]LabelWithCountResponse, 0, len(usages))
	for _, u := range usages {
		resp = append(resp, LabelWithCountResponse{
			ID:    u.ID.String(),
			Name:  u.Name,
			Color: u.Color,
			Count: u.Count,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID retrieves a label by its ID
func (h *LabelHandler) GetByID(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	labelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid label ID format"})
		return
	}

	label, err := h.labels.Get(c.Request.Context(), labelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, labelResponse(label))
}

// Create creates a new label with an explicit color
func (h *LabelHandler) Create(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label, err := h.labels.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, labelResponse(label))
}

// Update renames and/or recolors a label
func (h *LabelHandler) Update(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	labelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid label ID format"})
		return
	}

	var req UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label, err := h.labels.Update(c.Request.Context(), labelID, req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, labelResponse(label))
}

// Delete removes a label and detaches it from every task
func (h *LabelHandler) Delete(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	labelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid label ID format"})
		return
	}

	if err := h.labels.Delete(c.Request.Context(), labelID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label deleted"})
}
