package handler

import (
	"errors"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/middleware"
	"travelmate/internal/models"
	"travelmate/internal/service"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles token verification and the caller's own profile.
type AuthHandler struct {
	service service.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.UserServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Verify godoc
// @Summary      Verify a token
// @Description  Verify the bearer token and upsert the caller's profile from its claims.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	id := middleware.GetIdentity(c)
	if id.Subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	user, err := h.service.EnsureProfile(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, user)
}

// GetProfile godoc
// @Summary      Get own profile
// @Description  Retrieve the authenticated user's profile.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), subject)
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

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Partially update the authenticated user's name and preferences.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateProfileRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=models.User}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), subject, &req)
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
