package api

import (
	"errors"
	"net/http"

	"fitcoach/coach-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

type ProgramRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Workouts    []WorkoutRequest `json:"workouts"`
}

type WorkoutRequest struct {
	Name      string                   `json:"name" binding:"required"`
	Exercises []ProgramExerciseRequest `json:"exercises"`
}

type ProgramExerciseRequest struct {
	ExerciseID string  `json:"exerciseId" binding:"required"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Duration   float64 `json:"duration"`
	Distance   float64 `json:"distance"`
	Rest       int     `json:"rest"`
	Notes      string  `json:"notes"`
}

func (r ProgramRequest) toWorkoutInputs() ([]service.WorkoutInput, error) {
	workouts := make([]service.WorkoutInput, len(r.Workouts))
	for i, w := range r.Workouts {
		exercises := make([]service.ProgramExerciseInput, len(w.Exercises))
		for j, e := range w.Exercises {
			exerciseID, err := primitive.ObjectIDFromHex(e.ExerciseID)
			if err != nil {
				return nil, err
			}
			exercises[j] = service.ProgramExerciseInput{
				ExerciseID: exerciseID,
				Sets:       e.Sets,
				Reps:       e.Reps,
				Weight:     e.Weight,
				Duration:   e.Duration,
				Distance:   e.Distance,
				Rest:       e.Rest,
				Notes:      e.Notes,
			}
		}
		workouts[i] = service.WorkoutInput{Name: w.Name, Exercises: exercises}
	}
	return workouts, nil
}

// --- Handler Methods ---

// CreateProgram creates a new template.
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workouts, err := req.toWorkoutInputs()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id format")
		return
	}

	program, err := h.programService.CreateProgram(c.Request.Context(), req.Name, req.Description, workouts)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Program name is required")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create program")
		return
	}

	c.JSON(http.StatusCreated, program)
}

// ListPrograms returns all templates.
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	programs, err := h.programService.ListPrograms(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list programs")
		return
	}
	c.JSON(http.StatusOK, programs)
}

// GetProgram returns one template.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	program, err := h.programService.GetProgram(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get program")
		return
	}
	c.JSON(http.StatusOK, program)
}

// UpdateProgram replaces the template's name, description and workouts.
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workouts, err := req.toWorkoutInputs()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id format")
		return
	}

	program, err := h.programService.UpdateProgram(c.Request.Context(), id, req.Name, req.Description, workouts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgramNotFound):
			abortWithError(c, http.StatusNotFound, "Program not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Program name is required")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update program")
		}
		return
	}
	c.JSON(http.StatusOK, program)
}

// DeleteProgram removes a template. Assignments copied from it survive.
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.programService.DeleteProgram(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete program")
		return
	}
	c.Status(http.StatusNoContent)
}

// DuplicateProgram creates an independent copy named "<name> (Copy)".
func (h *ProgramHandler) DuplicateProgram(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	program, err := h.programService.DuplicateProgram(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to duplicate program")
		return
	}
	c.JSON(http.StatusCreated, program)
}
