package service

import (
	"context"
	"sort"
	"time"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"
	"travelmate/internal/repository"

	"github.com/google/uuid"
)

// priorityRank orders task priorities for sorting. Unknown values rank
// lowest so they sink to the end rather than the top.
var priorityRank = map[string]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// TaskService handles business logic for trip tasks.
type TaskService struct {
	tripRepo repository.TripRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tripRepo repository.TripRepository) *TaskService {
	return &TaskService{tripRepo: tripRepo}
}

// ListTasks returns the tasks of a trip ordered by priority (high first)
// then due date (earliest first). Tasks without a due date keep their
// stored position relative to each other; the sort is stable.
func (s *TaskService) ListTasks(ctx context.Context, tripID, subject string) ([]models.Task, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, len(trip.Tasks))
	copy(tasks, trip.Tasks)

	sort.SliceStable(tasks, func(i, j int) bool {
		pi, pj := priorityRank[tasks[i].Priority], priorityRank[tasks[j].Priority]
		if pi != pj {
			return pi > pj
		}
		if tasks[i].DueDate == nil || tasks[j].DueDate == nil {
			return false
		}
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})

	return tasks, nil
}

// AddTask appends a task to the trip. Priority defaults to medium.
func (s *TaskService) AddTask(ctx context.Context, tripID, subject string, req *models.TaskRequest) (*models.Task, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		Completed:   false,
		CreatedBy:   subject,
		CreatedAt:   time.Now(),
	}

	tasks := append(trip.Tasks, task)
	if err := s.tripRepo.ReplaceTasks(ctx, tripID, tasks); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask replaces the editable fields of a task. Completion state,
// createdBy and createdAt are preserved; completion changes go through
// SetCompleted.
func (s *TaskService) UpdateTask(ctx context.Context, tripID, taskID, subject string, req *models.TaskRequest) (*models.Task, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range trip.Tasks {
		if trip.Tasks[i].ID == taskID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	task := &trip.Tasks[index]
	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = req.DueDate
	task.Priority = priority
	task.AssignedTo = req.AssignedTo
	task.UpdatedAt = &now

	if err := s.tripRepo.ReplaceTasks(ctx, tripID, trip.Tasks); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask removes a task from the trip. Deletion is idempotent: an
// absent id is not an error, the filtered list is written either way.
func (s *TaskService) DeleteTask(ctx context.Context, tripID, taskID, subject string) error {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return err
	}

	tasks := make([]models.Task, 0, len(trip.Tasks))
	for _, task := range trip.Tasks {
		if task.ID == taskID {
			continue
		}
		tasks = append(tasks, task)
	}

	return s.tripRepo.ReplaceTasks(ctx, tripID, tasks)
}

// SetCompleted marks a task done or reopens it. Completing records who
// closed it and when; reopening clears both.
func (s *TaskService) SetCompleted(ctx context.Context, tripID, taskID, subject string, completed bool) (*models.Task, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range trip.Tasks {
		if trip.Tasks[i].ID == taskID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	now := time.Now()
	task := &trip.Tasks[index]
	task.Completed = completed
	if completed {
		task.CompletedAt = &now
		task.CompletedBy = &subject
	} else {
		task.CompletedAt = nil
		task.CompletedBy = nil
	}
	task.UpdatedAt = &now

	if err := s.tripRepo.ReplaceTasks(ctx, tripID, trip.Tasks); err != nil {
		return nil, err
	}

	return task, nil
}

// Summary computes the derived task report for a trip. A task is overdue
// when it is open and its due date is in the past.
func (s *TaskService) Summary(ctx context.Context, tripID, subject string) (*models.TaskSummary, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	summary := &models.TaskSummary{
		Total:      len(trip.Tasks),
		ByPriority: make(map[string]int),
		ByAssignee: make(map[string]int),
	}

	now := time.Now()
	for _, task := range trip.Tasks {
		if task.Completed {
			summary.Completed++
		} else {
			summary.Pending++
			if task.DueDate != nil && task.DueDate.Before(now) {
				summary.Overdue++
			}
		}

		summary.ByPriority[task.Priority]++
		if task.AssignedTo != "" {
			summary.ByAssignee[task.AssignedTo]++
		}
	}

	return summary, nil
}
