package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fitcoach/coach-app/internal/live"
	"fitcoach/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves assignment lookups, the session-start payload, and
// session log commits.
type SessionHandler struct {
	assignmentService service.AssignmentService
	clientService     service.ClientService
	sessionService    service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(
	assignmentService service.AssignmentService,
	clientService service.ClientService,
	sessionService service.SessionService,
) *SessionHandler {
	return &SessionHandler{
		assignmentService: assignmentService,
		clientService:     clientService,
		sessionService:    sessionService,
	}
}

// --- DTOs ---

// SessionStartResponse is everything the UI needs to run a workout:
// the frozen exercise list plus the client's health conditions so
// safety warnings can be shown before the first set.
type SessionStartResponse struct {
	AssignmentID     string                 `json:"assignmentId"`
	AssignmentName   string                 `json:"assignmentName"`
	WorkoutIndex     int                    `json:"workoutIndex"`
	WorkoutName      string                 `json:"workoutName"`
	ClientID         string                 `json:"clientId"`
	ClientName       string                 `json:"clientName"`
	HealthConditions string                 `json:"healthConditions,omitempty"`
	Exercises        []SessionStartExercise `json:"exercises"`
}

type SessionStartExercise struct {
	ExerciseID string  `json:"exerciseId"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Duration   float64 `json:"duration"`
	Distance   float64 `json:"distance"`
	Rest       int     `json:"rest"`
	Notes      string  `json:"notes,omitempty"`
}

type SessionCommitRequest struct {
	Date         time.Time                `json:"date" binding:"required"`
	Duration     int                      `json:"duration"` // minutes
	SessionNotes string                   `json:"sessionNotes"`
	Exercises    []SessionExerciseRequest `json:"exercises"`
}

type SessionExerciseRequest struct {
	ExerciseIndex int          `json:"exerciseIndex"`
	Notes         string       `json:"notes"`
	Sets          []SetRequest `json:"sets"`
}

type SetRequest struct {
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
}

// --- Handler Methods ---

// GetAssignment returns one assignment with its frozen workout copies.
func (h *SessionHandler) GetAssignment(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, "Assignment not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get assignment")
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment removes an assignment and its session logs.
func (h *SessionHandler) DeleteAssignment(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assignmentService.DeleteAssignment(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, "Assignment not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete assignment")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSessionStart returns the payload for running one workout of an
// assignment live.
func (h *SessionHandler) GetSessionStart(c *gin.Context) {
	assignmentID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	workoutIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout index")
		return
	}

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, "Assignment not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get assignment")
		return
	}
	if workoutIndex < 0 || workoutIndex >= len(assignment.Workouts) {
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), assignment.ClientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get client")
		return
	}

	workout := assignment.Workouts[workoutIndex]
	resp := SessionStartResponse{
		AssignmentID:     assignment.ID.Hex(),
		AssignmentName:   assignment.Name,
		WorkoutIndex:     workoutIndex,
		WorkoutName:      workout.Name,
		ClientID:         client.ID.Hex(),
		ClientName:       client.Name,
		HealthConditions: client.HealthConditions,
		Exercises:        make([]SessionStartExercise, len(workout.Exercises)),
	}
	for i, ex := range workout.Exercises {
		resp.Exercises[i] = SessionStartExercise{
			ExerciseID: ex.ExerciseID.Hex(),
			Name:       ex.Name,
			Type:       string(ex.Type),
			Category:   ex.Category,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Weight:     ex.Weight,
			Duration:   ex.Duration,
			Distance:   ex.Distance,
			Rest:       ex.Rest,
			Notes:      ex.Notes,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CommitSession replays the submitted sets through the live session state
// and persists the composed log. Summaries and set details are derived
// server-side; the client only sends what was recorded.
func (h *SessionHandler) CommitSession(c *gin.Context) {
	assignmentID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	workoutIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout index")
		return
	}

	var req SessionCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Duration < 0 {
		abortWithError(c, http.StatusBadRequest, "Duration must not be negative")
		return
	}

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			abortWithError(c, http.StatusNotFound, "Assignment not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get assignment")
		return
	}

	sess, err := live.StartAt(assignment, workoutIndex, replayClock(req.Date, req.Duration))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}
	for _, ex := range req.Exercises {
		if err := sess.Goto(ex.ExerciseIndex); err != nil {
			abortWithError(c, http.StatusBadRequest, "Exercise index out of range")
			return
		}
		for i, set := range ex.Sets {
			sess.AddSet()
			_ = sess.UpdateSet(i, live.FieldReps, float64(set.Reps))
			_ = sess.UpdateSet(i, live.FieldWeight, set.Weight)
			_ = sess.UpdateSet(i, live.FieldDuration, set.Duration)
			_ = sess.UpdateSet(i, live.FieldDistance, set.Distance)
		}
		sess.SetNotes(ex.Notes)
	}
	sess.SetSessionNotes(req.SessionNotes)

	log, err := h.sessionService.CommitSession(c.Request.Context(), sess.Compose())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			abortWithError(c, http.StatusNotFound, "Assignment not found")
		case errors.Is(err, service.ErrWorkoutIndexRange):
			abortWithError(c, http.StatusBadRequest, "Workout index out of range")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to save session")
		}
		return
	}
	c.JSON(http.StatusCreated, log)
}

// replayClock anchors a replayed session so the first read lands at the
// session's reconstructed start and later reads land at the commit date.
func replayClock(date time.Time, durationMinutes int) func() time.Time {
	started := false
	return func() time.Time {
		if !started {
			started = true
			return date.Add(-time.Duration(durationMinutes) * time.Minute)
		}
		return date
	}
}
