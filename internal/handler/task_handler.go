package handler

import (
	"travelmate/internal/middleware"
	"travelmate/internal/models"
	"travelmate/internal/service"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for trip tasks.
type TaskHandler struct {
	service service.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service service.TaskServicer) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks godoc
// @Summary      List tasks
// @Description  Retrieve the tasks of a trip ordered by priority then due date.
// @Tags         tasks
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=[]models.Task}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), c.Param("tripId"), subject)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, tasks)
}

// AddTask godoc
// @Summary      Add a task
// @Description  Append a task to the trip. Priority defaults to medium.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        tripId  path      string              true  "Trip ID"
// @Param        body    body      models.TaskRequest  true  "Task details"
// @Success      201     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/tasks [post]
func (h *TaskHandler) AddTask(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.AddTask(c.Request.Context(), c.Param("tripId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Created(c, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Replace the editable fields of a task. Completion state is preserved.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        tripId  path      string              true  "Trip ID"
// @Param        taskId  path      string              true  "Task ID"
// @Param        body    body      models.TaskRequest  true  "Task details"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), c.Param("tripId"), c.Param("taskId"), subject, &req)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Remove a task from the trip. Deleting an absent task is a no-op.
// @Tags         tasks
// @Produce      json
// @Param        tripId  path  string  true  "Trip ID"
// @Param        taskId  path  string  true  "Task ID"
// @Success      204     "No Content"
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), c.Param("tripId"), c.Param("taskId"), subject); err != nil {
		tripError(c, err)
		return
	}

	response.NoContent(c)
}

// SetCompleted godoc
// @Summary      Complete or reopen a task
// @Description  Mark a task done or reopen it. Completing records who closed it and when.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        tripId  path      string                          true  "Trip ID"
// @Param        taskId  path      string                          true  "Task ID"
// @Param        body    body      models.SetTaskCompletedRequest  true  "Completion state"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/tasks/{taskId}/complete [patch]
func (h *TaskHandler) SetCompleted(c *gin.Context) {
	subject := middleware.GetSubject(c)
	if subject == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.SetTaskCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.SetCompleted(c.Request.Context(), c.Param("tripId"), c.Param("taskId"), subject, *req.Completed)
	if err != nil {
		tripError(c, err)
		return
	}

	response.Success(c, task)
}

// Summary godoc
// @Summary      Task summary
// @Description  Counts of completed, pending and overdue tasks with priority and assignee breakdowns.
// @Tags         tasks
// @Produce      json
// @Param        tripId  path      string  true  "Trip ID"
// @Success      200     {object}  response.Response{data=models.TaskSummary}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /trips/{tripId}/tasks/summary [get]
func (h *TaskHandler) Summary(c *gin.Context) {
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
