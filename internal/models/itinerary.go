package models

import "time"

// Itinerary step categories.
const (
	StepCategoryTransport     = "transport"
	StepCategoryAccommodation = "accommodation"
	StepCategoryActivity      = "activity"
	StepCategoryRestaurant    = "restaurant"
	StepCategoryOther         = "other"
)

// Location is a geographic point attached to an itinerary step.
type Location struct {
	Lat     float64 `json:"lat" bson:"lat" example:"38.7223"`
	Lng     float64 `json:"lng" bson:"lng" example:"-9.1393"`
	Address string  `json:"address" bson:"address" example:"Praça do Comércio, Lisboa"`
}

// ItineraryStep is one step of a trip's itinerary, embedded in the
// trip document. Its id is unique within the parent trip only.
type ItineraryStep struct {
	ID          string     `json:"id" bson:"id" example:"0c9b2f4e-5a1d-4c8b-9e7f-3d2a6b1c0e5f"`
	Name        string     `json:"name" bson:"name" example:"Tram 28 ride"`
	Description string     `json:"description" bson:"description"`
	Location    Location   `json:"location" bson:"location"`
	StartDate   time.Time  `json:"startDate" bson:"startDate"`
	EndDate     time.Time  `json:"endDate" bson:"endDate"`
	Category    string     `json:"category" bson:"category" example:"activity"`
	Cost        *float64   `json:"cost,omitempty" bson:"cost,omitempty" example:"25.50"`
	AddedBy     string     `json:"addedBy" bson:"addedBy"`
	AddedAt     time.Time  `json:"addedAt" bson:"addedAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// LocationRequest carries a location in a step payload. Lat and Lng are
// pointers so that 0 is accepted as a present value.
type LocationRequest struct {
	Lat     *float64 `json:"lat" binding:"required,latitude" example:"38.7223"`
	Lng     *float64 `json:"lng" binding:"required,longitude" example:"-9.1393"`
	Address string   `json:"address" binding:"required,max=200" example:"Praça do Comércio, Lisboa"`
}

// ItineraryStepRequest is the payload for adding or updating a step.
// Updates take the full schema and merge over the stored step.
type ItineraryStepRequest struct {
	Name        string           `json:"name" binding:"required,notblank,min=3,max=100" example:"Tram 28 ride"`
	Description string           `json:"description" binding:"omitempty,max=500"`
	Location    *LocationRequest `json:"location" binding:"required"`
	StartDate   time.Time        `json:"startDate" binding:"required"`
	EndDate     time.Time        `json:"endDate" binding:"required,gtefield=StartDate"`
	Category    string           `json:"category" binding:"required,oneof=transport accommodation activity restaurant other" example:"activity"`
	Cost        *float64         `json:"cost" binding:"omitempty,gte=0" example:"25.50"`
}
