// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"travelmate/internal/models"

	"github.com/google/uuid"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	uid := uuid.NewString()
	return &UserBuilder{
		user: models.User{
			UID:       uid,
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", uid[:8]),
			Picture:   "",
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithUID(uid string) *UserBuilder {
	b.user.UID = uid
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPreferences(prefs map[string]interface{}) *UserBuilder {
	b.user.Preferences = prefs
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Trip Fixtures =====

// TripBuilder provides fluent API for building test trips.
type TripBuilder struct {
	trip models.Trip
}

// NewTrip creates a new TripBuilder with sensible defaults. The owner is
// generated and is the only participant until changed.
func NewTrip() *TripBuilder {
	owner := uuid.NewString()
	start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return &TripBuilder{
		trip: models.Trip{
			ID:           uuid.NewString(),
			Name:         "Test Trip",
			Description:  "A test trip",
			Destination:  "Lisbon",
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, 7),
			Participants: []string{owner},
			CreatedBy:    owner,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
			Itinerary:    []models.ItineraryStep{},
			Budget:       []models.BudgetItem{},
			Tasks:        []models.Task{},
		},
	}
}

func (b *TripBuilder) WithID(id string) *TripBuilder {
	b.trip.ID = id
	return b
}

func (b *TripBuilder) WithName(name string) *TripBuilder {
	b.trip.Name = name
	return b
}

func (b *TripBuilder) WithDestination(destination string) *TripBuilder {
	b.trip.Destination = destination
	return b
}

// WithOwner sets the creator and puts them first in the participants list.
func (b *TripBuilder) WithOwner(uid string) *TripBuilder {
	b.trip.CreatedBy = uid
	participants := []string{uid}
	for _, p := range b.trip.Participants {
		if p != uid && p != "" {
			participants = append(participants, p)
		}
	}
	b.trip.Participants = participants
	return b
}

func (b *TripBuilder) WithParticipant(uid string) *TripBuilder {
	b.trip.Participants = append(b.trip.Participants, uid)
	return b
}

func (b *TripBuilder) WithDates(start, end time.Time) *TripBuilder {
	b.trip.StartDate = start
	b.trip.EndDate = end
	return b
}

func (b *TripBuilder) WithStep(step models.ItineraryStep) *TripBuilder {
	b.trip.Itinerary = append(b.trip.Itinerary, step)
	return b
}

func (b *TripBuilder) WithBudgetItem(item models.BudgetItem) *TripBuilder {
	b.trip.Budget = append(b.trip.Budget, item)
	return b
}

func (b *TripBuilder) WithTask(task models.Task) *TripBuilder {
	b.trip.Tasks = append(b.trip.Tasks, task)
	return b
}

func (b *TripBuilder) Build() models.Trip {
	return b.trip
}

func (b *TripBuilder) BuildPtr() *models.Trip {
	return &b.trip
}

// ===== ItineraryStep Fixtures =====

// StepBuilder provides fluent API for building test itinerary steps.
type StepBuilder struct {
	step models.ItineraryStep
}

// NewStep creates a new StepBuilder with sensible defaults.
func NewStep() *StepBuilder {
	start := time.Now().AddDate(0, 1, 1)
	return &StepBuilder{
		step: models.ItineraryStep{
			ID:   uuid.NewString(),
			Name: "Tram 28 ride",
			Location: models.Location{
				Lat:     38.7223,
				Lng:     -9.1393,
				Address: "Praça do Comércio, Lisboa",
			},
			StartDate: start,
			EndDate:   start.Add(2 * time.Hour),
			Category:  models.StepCategoryActivity,
			AddedBy:   uuid.NewString(),
			AddedAt:   time.Now(),
		},
	}
}

func (b *StepBuilder) WithName(name string) *StepBuilder {
	b.step.Name = name
	return b
}

func (b *StepBuilder) WithCategory(category string) *StepBuilder {
	b.step.Category = category
	return b
}

func (b *StepBuilder) WithCost(cost float64) *StepBuilder {
	b.step.Cost = &cost
	return b
}

func (b *StepBuilder) WithAddedBy(uid string) *StepBuilder {
	b.step.AddedBy = uid
	return b
}

func (b *StepBuilder) Build() models.ItineraryStep {
	return b.step
}

// ===== BudgetItem Fixtures =====

// BudgetItemBuilder provides fluent API for building test budget items.
type BudgetItemBuilder struct {
	item models.BudgetItem
}

// NewBudgetItem creates a new BudgetItemBuilder with sensible defaults.
func NewBudgetItem() *BudgetItemBuilder {
	uid := uuid.NewString()
	return &BudgetItemBuilder{
		item: models.BudgetItem{
			ID:       uuid.NewString(),
			Name:     "Hotel Baixa",
			Amount:   420,
			Category: models.BudgetCategoryAccommodation,
			Date:     time.Now().AddDate(0, 1, 0),
			PaidBy:   uid,
			AddedBy:  uid,
			AddedAt:  time.Now(),
		},
	}
}

func (b *BudgetItemBuilder) WithName(name string) *BudgetItemBuilder {
	b.item.Name = name
	return b
}

func (b *BudgetItemBuilder) WithAmount(amount float64) *BudgetItemBuilder {
	b.item.Amount = amount
	return b
}

func (b *BudgetItemBuilder) WithCategory(category string) *BudgetItemBuilder {
	b.item.Category = category
	return b
}

func (b *BudgetItemBuilder) WithPaidBy(uid string) *BudgetItemBuilder {
	b.item.PaidBy = uid
	return b
}

func (b *BudgetItemBuilder) WithReceiptKey(key string) *BudgetItemBuilder {
	b.item.ReceiptKey = key
	return b
}

func (b *BudgetItemBuilder) Build() models.BudgetItem {
	return b.item
}

// ===== Task Fixtures =====

// TaskBuilder provides fluent API for building test tasks.
type TaskBuilder struct {
	task models.Task
}

// NewTask creates a new TaskBuilder with sensible defaults.
func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        uuid.NewString(),
			Title:     "Book the ferry",
			Priority:  models.PriorityMedium,
			Completed: false,
			CreatedBy: uuid.NewString(),
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithPriority(priority string) *TaskBuilder {
	b.task.Priority = priority
	return b
}

func (b *TaskBuilder) WithDueDate(due time.Time) *TaskBuilder {
	b.task.DueDate = &due
	return b
}

func (b *TaskBuilder) WithAssignedTo(uid string) *TaskBuilder {
	b.task.AssignedTo = uid
	return b
}

func (b *TaskBuilder) CompletedBy(uid string) *TaskBuilder {
	now := time.Now()
	b.task.Completed = true
	b.task.CompletedAt = &now
	b.task.CompletedBy = &uid
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}
