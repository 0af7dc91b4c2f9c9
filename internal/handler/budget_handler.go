package handler

import (
	"travelmate/internal/middleware"
	"travelmate/internal/models"
	"travelmate/internal/service"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for trip budgets.
type BudgetHandler struct {
	service service.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(service service.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// ListItems godoc
// @Summary      List budget items
// @Description  Retrieve the budget of a trip with per-category totals.
// @Tags         budget
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=models.BudgetListResponse}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/budget [get]
func (h *BudgetHandler) ListItems(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	budget, err := h.service.ListItems(c.Request.Context(), c.Param("tripId"), subject)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, budget)
}

// AddItem godoc
// @Summary      Add a budget item
// @Description  Append an expense to the trip's budget. Any participant may add expenses.
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                    true  "Trip ID"
// @Param        body    body      models.BudgetItemRequest  true  "Expense details"
// @Success      201     {object}  response.Response{data=models.BudgetItem}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/budget [post]
func (h *BudgetHandler) AddItem(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.BudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), c.Param("tripId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Created(c, item)
}

// UpdateItem godoc
// @Summary      Update a budget item
// @Description  Replace the editable fields of an expense. Receipt and provenance are preserved.
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                    true  "Trip ID"
// @Param        itemId  path      string                    true  "Budget item ID"
// @Param        body    body      models.BudgetItemRequest  true  "Expense details"
// @Success      200     {object}  response.Response{data=models.BudgetItem}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/budget/{itemId} [put]
func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.BudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), c.Param("tripId"), c.Param("itemId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, item)
}

// DeleteItem godoc
// @Summary      Delete a budget item
// @Description  Remove an expense from the trip's budget. Deleting an absent item is a no-op.
// @Tags         budget
// @Produce      json
// @Param        tripId  path  string  true  "Trip ID"
// @Param        itemId  path  string  true  "Budget item ID"
// @Success      204     "No Content"
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/budget/{itemId} [delete]
func (h *BudgetHandler) DeleteItem(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), c.Param("tripId"), c.Param("itemId"), subject); err != nil {
		tripError(c, err)
		return
	}

	response.NoContent(c)
}

// Summary godoc
// @Summary      Budget summary
// @Description  Totals, per-category and per-payer breakdowns, and the average per participant.
// @Tags         budget
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=models.BudgetSummary}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/budget/summary [get]
func (h *BudgetHandler) Summary(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), c.Param("tripId"), subject)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, summary)
}

// CreateReceiptUpload godoc
// @Summary      Request a receipt upload URL
// @Description  Issue a pre-signed upload URL for an expense's receipt.
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                       true  "Trip ID"
// @Param        itemId  path      string                       true  "Budget item ID"
// @Param        body    body      models.ReceiptUploadRequest  true  "Upload details"
// @Success      201     {object}  response.Response{data=models.ReceiptUploadResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      503     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/budget/{itemId}/receipt [post]
func (h *BudgetHandler) CreateReceiptUpload(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.ReceiptUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	upload, err := h.service.CreateReceiptUpload(c.Request.Context(), c.Param("tripId"), c.Param("itemId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Created(c, upload)
}
