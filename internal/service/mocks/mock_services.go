// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"travelmate/internal/models"
	"travelmate/pkg/identity"
)

// MockTripService is a mock implementation of TripServicer.
type MockTripService struct {
	CreateTripFunc        func(ctx context.Context, subject string, req *models.CreateTripRequest) (*models.Trip, error)
	ListTripsFunc         func(ctx context.Context, subject string) ([]models.Trip, error)
	GetTripFunc           func(ctx context.Context, tripID, subject string) (*models.Trip, error)
	UpdateTripFunc        func(ctx context.Context, tripID, subject string, req *models.UpdateTripRequest) (*models.Trip, error)
	DeleteTripFunc        func(ctx context.Context, tripID, subject string) error
	InviteParticipantFunc func(ctx context.Context, tripID, subject string, req *models.InviteParticipantRequest) (*models.InvitationAck, error)
}

func (m *MockTripService) CreateTrip(ctx context.Context, subject string, req *models.CreateTripRequest) (*models.Trip, error) {
	if m.CreateTripFunc != nil {
		return m.CreateTripFunc(ctx, subject, req)
	}
	return nil, nil
}

func (m *MockTripService) ListTrips(ctx context.Context, subject string) ([]models.Trip, error) {
	if m.ListTripsFunc != nil {
		return m.ListTripsFunc(ctx, subject)
	}
	return nil, nil
}

func (m *MockTripService) GetTrip(ctx context.Context, tripID, subject string) (*models.Trip, error) {
	if m.GetTripFunc != nil {
		return m.GetTripFunc(ctx, tripID, subject)
	}
	return nil, nil
}

func (m *MockTripService) UpdateTrip(ctx context.Context, tripID, subject string, req *models.UpdateTripRequest) (*models.Trip, error) {
	if m.UpdateTripFunc != nil {
		return m.UpdateTripFunc(ctx, tripID, subject, req)
	}
	return nil, nil
}

func (m *MockTripService) DeleteTrip(ctx context.Context, tripID, subject string) error {
	if m.DeleteTripFunc != nil {
		return m.DeleteTripFunc(ctx, tripID, subject)
	}
	return nil
}

func (m *MockTripService) InviteParticipant(ctx context.Context, tripID, subject string, req *models.InviteParticipantRequest) (*models.InvitationAck, error) {
	if m.InviteParticipantFunc != nil {
		return m.InviteParticipantFunc(ctx, tripID, subject, req)
	}
	return nil, nil
}

// MockItineraryService is a mock implementation of ItineraryServicer.
type MockItineraryService struct {
	ListStepsFunc  func(ctx context.Context, tripID, subject string) ([]models.ItineraryStep, error)
	AddStepFunc    func(ctx context.Context, tripID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error)
	UpdateStepFunc func(ctx context.Context, tripID, stepID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error)
	DeleteStepFunc func(ctx context.Context, tripID, stepID, subject string) error
}

func (m *MockItineraryService) ListSteps(ctx context.Context, tripID, subject string) ([]models.ItineraryStep, error) {
	if m.ListStepsFunc != nil {
		return m.ListStepsFunc(ctx, tripID, subject)
	}
	return nil, nil
}

func (m *MockItineraryService) AddStep(ctx context.Context, tripID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
	if m.AddStepFunc != nil {
		return m.AddStepFunc(ctx, tripID, subject, req)
	}
	return nil, nil
}

func (m *MockItineraryService) UpdateStep(ctx context.Context, tripID, stepID, subject string, req *models.ItineraryStepRequest) (*models.ItineraryStep, error) {
	if m.UpdateStepFunc != nil {
		return m.UpdateStepFunc(ctx, tripID, stepID, subject, req)
	}
	return nil, nil
}

func (m *MockItineraryService) DeleteStep(ctx context.Context, tripID, stepID, subject string) error {
	if m.DeleteStepFunc != nil {
		return m.DeleteStepFunc(ctx, tripID, stepID, subject)
	}
	return nil
}

// MockBudgetService is a mock implementation of BudgetServicer.
type MockBudgetService struct {
	ListItemsFunc           func(ctx context.Context, tripID, subject string) (*models.BudgetListResponse, error)
	AddItemFunc             func(ctx context.Context, tripID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error)
	UpdateItemFunc          func(ctx context.Context, tripID, itemID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error)
	DeleteItemFunc          func(ctx context.Context, tripID, itemID, subject string) error
	SummaryFunc             func(ctx context.Context, tripID, subject string) (*models.BudgetSummary, error)
	CreateReceiptUploadFunc func(ctx context.Context, tripID, itemID, subject string, req *models.ReceiptUploadRequest) (*models.ReceiptUploadResponse, error)
}

func (m *MockBudgetService) ListItems(ctx context.Context, tripID, subject string) (*models.BudgetListResponse, error) {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(ctx, tripID, subject)
	}
	return nil, nil
}

func (m *MockBudgetService) AddItem(ctx context.Context, tripID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error) {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, tripID, subject, req)
	}
	return nil, nil
}

func (m *MockBudgetService) UpdateItem(ctx context.Context, tripID, itemID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, tripID, itemID, subject, req)
	}
	return nil, nil
}

func (m *MockBudgetService) DeleteItem(ctx context.Context, tripID, itemID, subject string) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, tripID, itemID, subject)
	}
	return nil
}

func (m *MockBudgetService) Summary(ctx context.Context, tripID, subject string) (*models.BudgetSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, tripID, subject)
	}
	return nil, nil
}

func (m *MockBudgetService) CreateReceiptUpload(ctx context.Context, tripID, itemID, subject string, req *models.ReceiptUploadRequest) (*models.ReceiptUploadResponse, error) {
	if m.CreateReceiptUploadFunc != nil {
		return m.CreateReceiptUploadFunc(ctx, tripID, itemID, subject, req)
	}
	return nil, nil
}

// MockTaskService is a mock implementation of TaskServicer.
type MockTaskService struct {
	ListTasksFunc    func(ctx context.Context, tripID, subject string) ([]models.Task, error)
	AddTaskFunc      func(ctx context.Context, tripID, subject string, req *models.TaskRequest) (*models.Task, error)
	UpdateTaskFunc   func(ctx context.Context, tripID, taskID, subject string, req *models.TaskRequest) (*models.Task, error)
	DeleteTaskFunc   func(ctx context.Context, tripID, taskID, subject string) error
	SetCompletedFunc func(ctx context.Context, tripID, taskID, subject string, completed bool) (*models.Task, error)
	SummaryFunc      func(ctx context.Context, tripID, subject string) (*models.TaskSummary, error)
}

func (m *MockTaskService) ListTasks(ctx context.Context, tripID, subject string) ([]models.Task, error) {
	if m.ListTasksFunc != nil {
		return m.ListTasksFunc(ctx, tripID, subject)
	}
	return nil, nil
}

func (m *MockTaskService) AddTask(ctx context.Context, tripID, subject string, req *models.TaskRequest) (*models.Task, error) {
	if m.AddTaskFunc != nil {
		return m.AddTaskFunc(ctx, tripID, subject, req)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, tripID, taskID, subject string, req *models.TaskRequest) (*models.Task, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, tripID, taskID, subject, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, tripID, taskID, subject string) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, tripID, taskID, subject)
	}
	return nil
}

func (m *MockTaskService) SetCompleted(ctx context.Context, tripID, taskID, subject string, completed bool) (*models.Task, error) {
	if m.SetCompletedFunc != nil {
		return m.SetCompletedFunc(ctx, tripID, taskID, subject, completed)
	}
	return nil, nil
}

func (m *MockTaskService) Summary(ctx context.Context, tripID, subject string) (*models.TaskSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, tripID, subject)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	EnsureProfileFunc func(ctx context.Context, id identity.Identity) (*models.User, error)
	GetProfileFunc    func(ctx context.Context, uid string) (*models.User, error)
	UpdateProfileFunc func(ctx context.Context, uid string, req *models.UpdateProfileRequest) (*models.User, error)
	GetUserFunc       func(ctx context.Context, uid string) (*models.PublicUser, error)
	SearchByEmailFunc func(ctx context.Context, email string) ([]models.SearchedUser, error)
	GetUserTripsFunc  func(ctx context.Context, requestedUID, subject string) ([]models.Trip, error)
}

func (m *MockUserService) EnsureProfile(ctx context.Context, id identity.Identity) (*models.User, error) {
	if m.EnsureProfileFunc != nil {
		return m.EnsureProfileFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, uid)
	}
	return nil, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, uid string, req *models.UpdateProfileRequest) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, uid, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, uid string) (*models.PublicUser, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, uid)
	}
	return nil, nil
}

func (m *MockUserService) SearchByEmail(ctx context.Context, email string) ([]models.SearchedUser, error) {
	if m.SearchByEmailFunc != nil {
		return m.SearchByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserService) GetUserTrips(ctx context.Context, requestedUID, subject string) ([]models.Trip, error) {
	if m.GetUserTripsFunc != nil {
		return m.GetUserTripsFunc(ctx, requestedUID, subject)
	}
	return nil, nil
}
