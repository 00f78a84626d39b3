package api

import (
	"net/http"

	"fitcoach/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router. Everything under
// /api/v1 except the auth group requires a valid coach token.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	programService service.ProgramService,
	clientService service.ClientService,
	assignmentService service.AssignmentService,
	sessionService service.SessionService,
	progressService service.ProgressService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(catalogService, progressService)
	programHandler := NewProgramHandler(programService)
	clientHandler := NewClientHandler(clientService, assignmentService, sessionService, progressService)
	sessionHandler := NewSessionHandler(assignmentService, clientService, sessionService)
	reportHandler := NewReportHandler(progressService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/image", exerciseHandler.RequestImageUpload)
			exerciseGroup.GET("/:id/history", exerciseHandler.GetExerciseHistory)
		}

		programGroup := protected.Group("/programs")
		{
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.GET("", programHandler.ListPrograms)
			programGroup.GET("/:id", programHandler.GetProgram)
			programGroup.PUT("/:id", programHandler.UpdateProgram)
			programGroup.DELETE("/:id", programHandler.DeleteProgram)
			programGroup.POST("/:id/duplicate", programHandler.DuplicateProgram)
		}

		clientGroup := protected.Group("/clients")
		{
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)

			clientGroup.POST("/:id/assignments", clientHandler.AssignProgram)
			clientGroup.GET("/:id/assignments", clientHandler.ListAssignments)
			clientGroup.GET("/:id/sessions", clientHandler.ListSessionLogs)

			clientGroup.POST("/:id/measurements", clientHandler.AddMeasurement)
			clientGroup.GET("/:id/measurements", clientHandler.ListMeasurements)
			clientGroup.GET("/:id/measurements/progress", clientHandler.GetMeasurementProgress)

			clientGroup.GET("/:id/report", clientHandler.GetClientReport)
		}

		assignmentGroup := protected.Group("/assignments")
		{
			assignmentGroup.GET("/:id", sessionHandler.GetAssignment)
			assignmentGroup.DELETE("/:id", sessionHandler.DeleteAssignment)
			assignmentGroup.GET("/:id/workouts/:index", sessionHandler.GetSessionStart)
			assignmentGroup.POST("/:id/workouts/:index/logs", sessionHandler.CommitSession)
		}

		protected.DELETE("/measurements/:measurementId", clientHandler.DeleteMeasurement)

		protected.GET("/reports/overview", reportHandler.GetOverview)
	}
}
