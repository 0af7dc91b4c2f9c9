// Package models defines data structures for the application.
package models

import "time"

// Trip is the root aggregate for one collaborative travel plan.
// Itinerary, budget and tasks are embedded in the trip document and
// rewritten wholesale on every sub-collection mutation.
type Trip struct {
	ID           string          `json:"id" bson:"_id" example:"a3f1c9e2-7b4d-4f7a-9c1e-2d8b5f6a0c3d"`
	Name         string          `json:"name" bson:"name" example:"Summer in Portugal"`
	Description  string          `json:"description" bson:"description" example:"Two weeks along the coast"`
	Destination  string          `json:"destination" bson:"destination" example:"Lisbon"`
	StartDate    time.Time       `json:"startDate" bson:"startDate" example:"2024-07-01T00:00:00Z"`
	EndDate      time.Time       `json:"endDate" bson:"endDate" example:"2024-07-14T00:00:00Z"`
	Participants []string        `json:"participants" bson:"participants"`
	CreatedBy    string          `json:"createdBy" bson:"createdBy" example:"firebase-uid-1"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	Itinerary    []ItineraryStep `json:"itinerary" bson:"itinerary"`
	Budget       []BudgetItem    `json:"budget" bson:"budget"`
	Tasks        []Task          `json:"tasks" bson:"tasks"`
}

// CreateTripRequest is the payload for creating a trip.
type CreateTripRequest struct {
	Name         string    `json:"name" binding:"required,notblank,min=3,max=100" example:"Summer in Portugal"`
	Description  string    `json:"description" binding:"omitempty,max=500" example:"Two weeks along the coast"`
	Destination  string    `json:"destination" binding:"required,notblank,min=2,max=100" example:"Lisbon"`
	StartDate    time.Time `json:"startDate" binding:"required" example:"2024-07-01T00:00:00Z"`
	EndDate      time.Time `json:"endDate" binding:"required,gtefield=StartDate" example:"2024-07-14T00:00:00Z"`
	Participants []string  `json:"participants" binding:"required,min=1,dive,required"`
}

// UpdateTripRequest is the payload for partially updating a trip.
// All fields are optional; there is no cross-field date check on update.
type UpdateTripRequest struct {
	Name         *string    `json:"name" binding:"omitempty,notblank,min=3,max=100" example:"Autumn in Portugal"`
	Description  *string    `json:"description" binding:"omitempty,max=500"`
	Destination  *string    `json:"destination" binding:"omitempty,notblank,min=2,max=100"`
	StartDate    *time.Time `json:"startDate" binding:"omitempty"`
	EndDate      *time.Time `json:"endDate" binding:"omitempty"`
	Participants []string   `json:"participants" binding:"omitempty,min=1,dive,required"`
}

// InviteParticipantRequest is the payload for inviting someone to a trip.
type InviteParticipantRequest struct {
	Email string `json:"email" binding:"required,email" example:"friend@example.com"`
}

// InvitationAck acknowledges an invitation. The invite contract only
// acknowledges the email; it never mutates the participants list.
type InvitationAck struct {
	Message string `json:"message" example:"invitation sent to friend@example.com"`
	Email   string `json:"email" example:"friend@example.com"`
}
