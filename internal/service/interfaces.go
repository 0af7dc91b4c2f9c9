// Package service contains business logic for the application.
package service

import (
	"context"

	"travelmate/internal/models"
	"travelmate/pkg/identity"
)

// TripServicer defines the interface for trip operations.
type TripServicer interface {
	CreateTrip(ctx context.Context, subject string, req *models.CreateTripRequest) (*models.Trip, error)
	ListTrips(ctx context.Context, subject string) ([]models.Trip, error)
	GetTrip(ctx context.Context, tripID, subject string) (*models.Trip, error)
	UpdateTrip(ctx context.Context, tripID, subject string, req *models.UpdateTripRequest) (*models.Trip, error)
	DeleteTrip(ctx context.Context, tripID, subject string) error
	InviteParticipant(ctx context.Context, tripID, subject string, req *models.InviteParticipantRequest) (*models.InvitationAck, error)
}

// ItineraryServicer defines the interface for itinerary operations.
type ItineraryServicer interface {
	ListSteps(ctx context.Context, tripID, subject string) ([]models.ItineraryStep, error)
	AddStep(ctx context.Context, tripID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error)
	UpdateStep(ctx context.Context, tripID, stepID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error)
	DeleteStep(ctx context.Context, tripID, stepID, subject string) error
}

// BudgetServicer defines the interface for budget operations.
type BudgetServicer interface {
	ListItems(ctx context.Context, tripID, subject string) (*models.BudgetListResponse, error)
	AddItem(ctx context.Context, tripID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error)
	UpdateItem(ctx context.Context, tripID, itemID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error)
	DeleteItem(ctx context.Context, tripID, itemID, subject string) error
	Summary(ctx context.Context, tripID, subject string) (*models.BudgetSummary, error)
	CreateReceiptUpload(ctx context.Context, tripID, itemID, subject string, req *models.ReceiptUploadRequest) (*models.ReceiptUploadResponse, error)
}

// TaskServicer defines the interface for task operations.
type TaskServicer interface {
	ListTasks(ctx context.Context, tripID, subject string) ([]models.Task, error)
	AddTask(ctx context.Context, tripID, subject string, req *models.TaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, tripID, taskID, subject string, req *models.TaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, tripID, taskID, subject string) error
	SetCompleted(ctx context.Context, tripID, taskID, subject string, completed bool) (*models.Task, error)
	Summary(ctx context.Context, tripID, subject string) (*models.TaskSummary, error)
}

// UserServicer defines the interface for profile and user lookup operations.
type UserServicer interface {
	EnsureProfile(ctx context.Context, id identity.Identity) (*models.User, error)
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	UpdateProfile(ctx context.Context, uid string, req *models.UpdateProfileRequest) (*models.User, error)
	GetUser(ctx context.Context, uid string) (*models.PublicUser, error)
	SearchByEmail(ctx context.Context, email string) ([]models.SearchedUser, error)
	GetUserTrips(ctx context.Context, requestedUID, subject string) ([]models.Trip, error)
}

// Ensure concrete types implement interfaces
var (
	_ TripServicer      = (*TripService)(nil)
	_ ItineraryServicer = (*ItineraryService)(nil)
	_ BudgetServicer    = (*BudgetService)(nil)
	_ TaskServicer      = (*TaskService)(nil)
	_ UserServicer      = (*UserService)(nil)
)
