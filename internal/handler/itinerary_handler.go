package handler

import (
	"travelmate/internal/middleware"
	"travelmate/internal/models"
	"travelmate/internal/service"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// ItineraryHandler handles HTTP requests for itinerary steps.
type ItineraryHandler struct {
	service service.ItineraryServicer
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(service service.ItineraryServicer) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// ListSteps godoc
// @Summary      List itinerary steps
// @Description  Retrieve the itinerary of a trip in stored order.
// @Tags         itinerary
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=[]models.ItineraryStep}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/itinerary [get]
func (h *ItineraryHandler) ListSteps(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	steps, err := h.service.ListSteps(c.Request.Context(), c.Param("tripId"), subject)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, steps)
}

// AddStep godoc
// @Summary      Add an itinerary step
// @Description  Append a step to the trip's itinerary. Any participant may add steps.
// @Tags         itinerary
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                       true  "Trip ID"
// @Param        body    body      models.ItineraryStepRequest  true  "Step details"
// @Success      201     {object}  response.Response{data=models.ItineraryStep}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/itinerary [post]
func (h *ItineraryHandler) AddStep(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.ItineraryStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	step, err := h.service.AddStep(c.Request.Context(), c.Param("tripId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Created(c, step)
}

// UpdateStep godoc
// @Summary      Update an itinerary step
// @Description  Replace the editable fields of a step. Provenance is preserved.
// @Tags         itinerary
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                       true  "Trip ID"
// @Param        stepId  path      string                       true  "Step ID"
// @Param        body    body      models.ItineraryStepRequest  true  "Step details"
// @Success      200     {object}  response.Response{data=models.ItineraryStep}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/itinerary/{stepId} [put]
func (h *ItineraryHandler) UpdateStep(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.ItineraryStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	step, err := h.service.UpdateStep(c.Request.Context(), c.Param("tripId"), c.Param("stepId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, step)
}

// DeleteStep godoc
// @Summary      Delete an itinerary step
// @Description  Remove a step from the trip's itinerary. Deleting an absent step is a no-op.
// @Tags         itinerary
// @Produce      json
// @Param        tripId  path  string  true  "Trip ID"
// @Param        stepId  path  string  true  "Step ID"
// @Success      204     "No Content"
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/itinerary/{stepId} [delete]
func (h *ItineraryHandler) DeleteStep(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.DeleteStep(c.Request.Context(), c.Param("tripId"), c.Param("stepId"), subject); err != nil {
		tripError(c, err)
		return
	}

	response.NoContent(c)
}
