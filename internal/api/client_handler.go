package api

import (
	"errors"
	"net/http"
	"time"

	"fitcoach/coach-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler bundles the client-scoped services: profile and measurement
// management, program assignment, and progress reporting.
type ClientHandler struct {
	clientService     service.ClientService
	assignmentService service.AssignmentService
	sessionService    service.SessionService
	progressService   service.ProgressService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(
	clientService service.ClientService,
	assignmentService service.AssignmentService,
	sessionService service.SessionService,
	progressService service.ProgressService,
) *ClientHandler {
	return &ClientHandler{
		clientService:     clientService,
		assignmentService: assignmentService,
		sessionService:    sessionService,
		progressService:   progressService,
	}
}

// --- DTOs ---

type ClientRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone"`
	Goals            string `json:"goals"`
	HealthConditions string `json:"healthConditions"`
	Notes            string `json:"notes"`
	Active           bool   `json:"active"`
}

type MeasurementRequest struct {
	Date    time.Time `json:"date" binding:"required"`
	Weight  *float64  `json:"weight"`
	BodyFat *float64  `json:"bodyFat"`
	Chest   *float64  `json:"chest"`
	Waist   *float64  `json:"waist"`
	Hips    *float64  `json:"hips"`
	Arms    *float64  `json:"arms"`
	Thighs  *float64  `json:"thighs"`
}

type AssignProgramRequest struct {
	ProgramID string     `json:"programId" binding:"required"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate"`
}

func (r ClientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Goals:            r.Goals,
		HealthConditions: r.HealthConditions,
		Notes:            r.Notes,
		Active:           r.Active,
	}
}

// --- Client CRUD ---

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Client name is required")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get client")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			abortWithError(c, http.StatusNotFound, "Client not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Client name is required")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update client")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes the client and everything recorded for them.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Measurements ---

func (h *ClientHandler) AddMeasurement(c *gin.Context) {
	clientID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	measurement, err := h.clientService.AddMeasurement(c.Request.Context(), clientID, service.MeasurementInput{
		Date:    req.Date,
		Weight:  req.Weight,
		BodyFat: req.BodyFat,
		Chest:   req.Chest,
		Waist:   req.Waist,
		Hips:    req.Hips,
		Arms:    req.Arms,
		Thighs:  req.Thighs,
	})
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to add measurement")
		return
	}
	c.JSON(http.StatusCreated, measurement)
}

func (h *ClientHandler) ListMeasurements(c *gin.Context) {
	clientID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	measurements, err := h.clientService.GetMeasurements(c.Request.Context(), clientID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list measurements")
		return
	}
	c.JSON(http.StatusOK, measurements)
}

func (h *ClientHandler) DeleteMeasurement(c *gin.Context) {
	id, ok := objectIDParam(c, "measurementId")
	if !ok {
		return
	}

	if err := h.clientService.DeleteMeasurement(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMeasurementNotFound) {
			abortWithError(c, http.StatusNotFound, "Measurement not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete measurement")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Assignments ---

// AssignProgram freezes a structural copy of the program onto the client.
func (h *ClientHandler) AssignProgram(c *gin.Context) {
	clientID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	programID, err := primitive.ObjectIDFromHex(req.ProgramID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program id format")
		return
	}

	assignment, err := h.assignmentService.AssignProgram(c.Request.Context(), clientID, programID, req.Name, req.StartDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			abortWithError(c, http.StatusNotFound, "Client not found")
		case errors.Is(err, service.ErrProgramNotFound):
			abortWithError(c, http.StatusNotFound, "Program not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to assign program")
		}
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *ClientHandler) ListAssignments(c *gin.Context) {
	clientID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.GetAssignmentsForClient(c.Request.Context(), clientID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list assignments")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// --- Session history and reports ---

// ListSessionLogs returns the client's committed workout logs, newest first.
func (h *ClientHandler) ListSessionLogs(c *gin.Context) {
	clientID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	logs, err := h.sessionService.GetSessionLogsForClient(c.Request.Context(), clientID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list session logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetClientReport returns strength trends derived from committed logs.
func (h *ClientHandler) GetClientReport(c *gin.Context) {
	clientID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.progressService.ClientReport(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to build client report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetMeasurementProgress returns per-metric trends from the client's
// measurement series.
func (h *ClientHandler) GetMeasurementProgress(c *gin.Context) {
	clientID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	trends, err := h.progressService.MeasurementProgress(c.Request.Context(), clientID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build measurement progress")
		return
	}
	c.JSON(http.StatusOK, trends)
}
