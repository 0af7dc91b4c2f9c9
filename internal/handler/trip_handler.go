// Package handler contains the HTTP handlers for the API.
package handler

import (
	"errors"
	"net/http"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/middleware"
	"travelmate/internal/models"
	"travelmate/internal/service"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// TripHandler handles HTTP requests for trip operations.
type TripHandler struct {
	service service.TripServicer
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service service.TripServicer) *TripHandler {
	return &TripHandler{service: service}
}

// tripError maps service errors for the trip aggregate onto HTTP
// responses. The order mirrors the service checks: existence first,
// then access.
func tripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTripNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrNotParticipant), errors.Is(err, apperrors.ErrNotTripOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrStepNotFound),
		errors.Is(err, apperrors.ErrBudgetItemNotFound),
		errors.Is(err, apperrors.ErrTaskNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		response.Error(c, http.StatusServiceUnavailable, err.Error())
	default:
		response.InternalError(c)
	}
}

// CreateTrip godoc
// @Summary      Create a new trip
// @Description  Create a trip. The authenticated user becomes the owner and first participant.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTripRequest  true  "Trip details"
// @Success      201   {object}  response.Response{data=models.Trip}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trip, err := h.service.CreateTrip(c.Request.Context(), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Created(c, trip)
}

// ListTrips godoc
// @Summary      List the caller's trips
// @Description  Retrieve every trip the authenticated user participates in, newest first.
// @Tags         trips
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Trip}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	trips, err := h.service.ListTrips(c.Request.Context(), subject)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, trips)
}

// GetTrip godoc
// @Summary      Get trip details
// @Description  Retrieve one trip with its itinerary, budget and tasks.
// @Tags         trips
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=models.Trip}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	trip, err := h.service.GetTrip(c.Request.Context(), c.Param("tripId"), subject)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, trip)
}

// UpdateTrip godoc
// @Summary      Update a trip
// @Description  Partially update trip-level fields. Owner only.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                   true  "Trip ID"
// @Param        body    body      models.UpdateTripRequest  true  "Fields to update"
// @Success      200     {object}  response.Response{data=models.Trip}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trip, err := h.service.UpdateTrip(c.Request.Context(), c.Param("tripId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, trip)
}

// DeleteTrip godoc
// @Summary      Delete a trip
// @Description  Delete a trip and everything embedded in it. Owner only.
// @Tags         trips
// @Produce      json
// @Param        tripId  path  string  true  "Trip ID"
// @Success      204     "No Content"
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.DeleteTrip(c.Request.Context(), c.Param("tripId"), subject); err != nil {
		tripError(c, err)
		return
	}

	response.NoContent(c)
}

// InviteParticipant godoc
// @Summary      Invite a participant
// @Description  Acknowledge an invitation for an email address. Owner only. The participants list is not modified.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                          true  "Trip ID"
// @Param        body    body      models.InviteParticipantRequest  true  "Invitee email"
// @Success      200     {object}  response.Response{data=models.InvitationAck}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/invite [post]
func (h *TripHandler) InviteParticipant(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.InviteParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ack, err := h.service.InviteParticipant(c.Request.Context(), c.Param("tripId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, ack)
}
