package api

import (
	"errors"
	"net/http"

	"github.com/michalina-sz/exercise-tracker/internal/domain"
	"github.com/michalina-sz/exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API ---

// AddExerciseRequest defines the expected body for logging an exercise.
// Duration stays a string here; the service parses it strictly.
type AddExerciseRequest struct {
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

// ExerciseResponse is the wire shape of a logged exercise. The "_id" field
// carries the user's id, not the exercise's: that is the observed contract
// and is kept intentionally.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntryResponse is one row of a log query.
type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the wire shape of a log query result. Count reflects the
// full filtered set regardless of any limit applied to Log.
type LogResponse struct {
	Username string             `json:"username"`
	Count    int64              `json:"count"`
	ID       string             `json:"_id"`
	Log      []LogEntryResponse `json:"log"`
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	_ = c.ShouldBind(&req)

	user, exercise, err := h.exerciseService.Add(
		c.Request.Context(),
		c.Param("id"),
		req.Description,
		req.Duration,
		req.Date,
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        domain.FormatDate(exercise.Date),
		ID:          user.ID.Hex(),
	})
}

// GetLog handles GET /api/users/:id/logs.
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	log, err := h.exerciseService.Log(
		c.Request.Context(),
		c.Param("id"),
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	entries := make([]LogEntryResponse, len(log.Entries))
	for i, exercise := range log.Entries {
		entries[i] = LogEntryResponse{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        domain.FormatDate(exercise.Date),
		}
	}

	c.JSON(http.StatusOK, LogResponse{
		Username: log.User.Username,
		Count:    log.Count,
		ID:       log.User.ID.Hex(),
		Log:      entries,
	})
}

// abortWithServiceError maps service errors onto the HTTP error taxonomy:
// validation failures are 400, a missing user is 404, anything else is an
// unexpected storage failure reported generically as 500.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDescriptionRequired),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidLimit):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Database error")
	}
}
