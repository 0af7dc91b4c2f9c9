package models

import "time"

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is one to-do embedded in the trip document. CompletedAt and
// CompletedBy are set on completion and reset to null when a task is
// reopened, so they serialize without omitempty.
type Task struct {
	ID          string     `json:"id" bson:"id" example:"9d4c2b1a-8e6f-4a3d-b5c7-0f1e2d3c4b5a"`
	Title       string     `json:"title" bson:"title" example:"Book the ferry"`
	Description string     `json:"description" bson:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Priority    string     `json:"priority" bson:"priority" example:"high"`
	AssignedTo  string     `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	Completed   bool       `json:"completed" bson:"completed"`
	CompletedAt *time.Time `json:"completedAt" bson:"completedAt"`
	CompletedBy *string    `json:"completedBy" bson:"completedBy"`
	CreatedBy   string     `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// TaskRequest is the payload for creating or updating a task.
// Priority defaults to medium when omitted.
type TaskRequest struct {
	Title       string     `json:"title" binding:"required,notblank,min=3,max=200" example:"Book the ferry"`
	Description string     `json:"description" binding:"omitempty,max=500"`
	DueDate     *time.Time `json:"dueDate" binding:"omitempty"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high" example:"high"`
	AssignedTo  string     `json:"assignedTo" binding:"omitempty"`
}

// SetTaskCompletedRequest toggles a task's completion state. Completed
// is a pointer so a missing or non-boolean value is rejected.
type SetTaskCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// TaskSummary is the derived task report for a trip.
type TaskSummary struct {
	Total      int            `json:"total" example:"12"`
	Completed  int            `json:"completed" example:"5"`
	Pending    int            `json:"pending" example:"7"`
	Overdue    int            `json:"overdue" example:"2"`
	ByPriority map[string]int `json:"byPriority"`
	ByAssignee map[string]int `json:"byAssignee"`
}
