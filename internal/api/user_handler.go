package api

import (
	"errors"
	"net/http"

	"github.com/michalina-sz/exercise-tracker/internal/domain"
	"github.com/michalina-sz/exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API ---

// CreateUserRequest defines the expected body for registering a user.
// Clients may send either a urlencoded form or JSON.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// UserResponse is the wire shape of a user. The identifier travels as "_id";
// internal fields like createdAt are never exposed.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// MapUserToResponse converts a domain.User to its wire shape.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	}
}

// --- Handler Methods ---

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	// A missing or malformed body leaves the username empty, which the
	// service rejects as required, so the bind error itself is not fatal.
	_ = c.ShouldBind(&req)

	user, err := h.userService.Create(c.Request.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired),
			errors.Is(err, service.ErrDuplicateUsername):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}

	c.JSON(http.StatusOK, responses)
}
