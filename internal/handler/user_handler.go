package handler

import (
	"errors"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/middleware"
	"travelmate/internal/service"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user lookups.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// Search godoc
// @Summary      Search users by email
// @Description  Find users by exact email match.
// @Tags         users
// @Produce      json
// @Param        email  query     string  true  "Email address"
// @Success      200    {object}  response.Response{data=[]models.SearchedUser}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email query parameter is required")
		return
	}

	results, err := h.service.SearchByEmail(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, results)
}

// GetUser godoc
// @Summary      Get a user's public profile
// @Description  Retrieve the public subset of another user's profile.
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=models.PublicUser}
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, user)
}

// GetUserTrips godoc
// @Summary      List a user's trips
// @Description  Retrieve the trips of a user. Callers may only list their own.
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]models.Trip}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{userId}/trips [get]
func (h *UserHandler) GetUserTrips(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	trips, err := h.service.GetUserTrips(c.Request.Context(), c.Param("userId"), subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotOwnTrips) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, trips)
}
