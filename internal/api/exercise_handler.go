package api

import (
	"errors"
	"net/http"
	"time"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// historyDisplayLimit caps the history entries returned for display. The
// aggregator itself is unbounded; this is purely a presentation window.
const historyDisplayLimit = 10

// ExerciseHandler holds the catalog and progress service dependencies.
type ExerciseHandler struct {
	catalogService  service.CatalogService
	progressService service.ProgressService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(catalogService service.CatalogService, progressService service.ProgressService) *ExerciseHandler {
	return &ExerciseHandler{
		catalogService:  catalogService,
		progressService: progressService,
	}
}

// --- DTOs ---

type ExerciseRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=weight cardio timed"`
	Equipment    string   `json:"equipment"`
	Muscles      []string `json:"muscles"`
	Instructions string   `json:"instructions"`
	Tips         string   `json:"tips"`
}

type ExerciseResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Type         string    `json:"type"`
	Equipment    string    `json:"equipment,omitempty"`
	Muscles      []string  `json:"muscles,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	Tips         string    `json:"tips,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Custom       bool      `json:"custom"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ImageUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

func (h *ExerciseHandler) mapExerciseToResponse(c *gin.Context, ex *domain.Exercise) ExerciseResponse {
	imageURL, _ := h.catalogService.ImageURL(c.Request.Context(), ex)
	return ExerciseResponse{
		ID:           ex.ID.Hex(),
		Name:         ex.Name,
		Category:     ex.Category,
		Type:         string(ex.Type),
		Equipment:    ex.Equipment,
		Muscles:      ex.Muscles,
		Instructions: ex.Instructions,
		Tips:         ex.Tips,
		ImageURL:     imageURL,
		Custom:       ex.Custom,
		CreatedAt:    ex.CreatedAt,
		UpdatedAt:    ex.UpdatedAt,
	}
}

func (r ExerciseRequest) toInput() service.ExerciseInput {
	return service.ExerciseInput{
		Name:         r.Name,
		Category:     r.Category,
		Type:         domain.ExerciseType(r.Type),
		Equipment:    r.Equipment,
		Muscles:      r.Muscles,
		Instructions: r.Instructions,
		Tips:         r.Tips,
	}
}

// --- Handler Methods ---

// CreateExercise adds a custom catalog entry.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.CreateExercise(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Name, category and type are required")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		return
	}

	c.JSON(http.StatusCreated, h.mapExerciseToResponse(c, exercise))
}

// ListExercises returns the whole catalog.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises")
		return
	}

	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = h.mapExerciseToResponse(c, &exercises[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetExercise returns one catalog entry.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := h.catalogService.GetExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get exercise")
		return
	}

	c.JSON(http.StatusOK, h.mapExerciseToResponse(c, exercise))
}

// UpdateExercise edits a catalog entry.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.UpdateExercise(c.Request.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Name is required")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise")
		}
		return
	}

	c.JSON(http.StatusOK, h.mapExerciseToResponse(c, exercise))
}

// DeleteExercise removes a custom catalog entry. Seeded entries are refused.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteExercise(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, service.ErrExerciseNotCustom):
			abortWithError(c, http.StatusForbidden, "Seeded exercises cannot be deleted")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestImageUpload returns a presigned PUT URL for the exercise's image.
func (h *ExerciseHandler) RequestImageUpload(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uploadURL, err := h.catalogService.RequestImageUpload(c.Request.Context(), id, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, service.ErrImageUploadDisabled):
			abortWithError(c, http.StatusServiceUnavailable, "Image storage is not configured")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare image upload")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadUrl": uploadURL})
}

// GetExerciseHistory returns the most recent logged occurrences of the
// exercise across all clients, plus per-client stats.
func (h *ExerciseHandler) GetExerciseHistory(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	entries, stats, err := h.progressService.ExerciseHistory(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise history")
		return
	}

	if len(entries) > historyDisplayLimit {
		entries = entries[:historyDisplayLimit]
	}
	c.JSON(http.StatusOK, gin.H{
		"entries":     entries,
		"clientStats": stats,
	})
}

// objectIDParam parses a path parameter as an ObjectID, aborting on failure.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
