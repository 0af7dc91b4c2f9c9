package models

import "time"

// Budget item categories.
const (
	BudgetCategoryTransport     = "transport"
	BudgetCategoryAccommodation = "accommodation"
	BudgetCategoryFood          = "food"
	BudgetCategoryActivities    = "activities"
	BudgetCategoryShopping      = "shopping"
	BudgetCategoryOther         = "other"
)

// BudgetItem is one expense embedded in the trip document.
type BudgetItem struct {
	ID          string     `json:"id" bson:"id" example:"6f2e8a1b-3c5d-4e9f-8a7b-1d0c2e4f6a8b"`
	Name        string     `json:"name" bson:"name" example:"Hotel Baixa"`
	Description string     `json:"description" bson:"description"`
	Amount      float64    `json:"amount" bson:"amount" example:"420.00"`
	Category    string     `json:"category" bson:"category" example:"accommodation"`
	Date        time.Time  `json:"date" bson:"date"`
	PaidBy      string     `json:"paidBy" bson:"paidBy" example:"firebase-uid-1"`
	ReceiptKey  string     `json:"receiptKey,omitempty" bson:"receiptKey,omitempty"`
	ReceiptURL  string     `json:"receiptUrl,omitempty" bson:"-"`
	AddedBy     string     `json:"addedBy" bson:"addedBy"`
	AddedAt     time.Time  `json:"addedAt" bson:"addedAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// BudgetItemRequest is the payload for adding or updating a budget item.
// Amount is a pointer so that 0 is accepted as a present value.
type BudgetItemRequest struct {
	Name        string    `json:"name" binding:"required,notblank,min=3,max=100" example:"Hotel Baixa"`
	Description string    `json:"description" binding:"omitempty,max=500"`
	Amount      *float64  `json:"amount" binding:"required,gte=0" example:"420.00"`
	Category    string    `json:"category" binding:"required,oneof=transport accommodation food activities shopping other" example:"accommodation"`
	Date        time.Time `json:"date" binding:"required"`
	PaidBy      string    `json:"paidBy" binding:"required" example:"firebase-uid-1"`
}

// BudgetListResponse is the budget of a trip with per-category totals.
type BudgetListResponse struct {
	Items        []BudgetItem       `json:"items"`
	Summary      map[string]float64 `json:"summary"`
	Total        float64            `json:"total"`
	Participants []string           `json:"participants"`
}

// BudgetSummary is the derived budget report for a trip.
type BudgetSummary struct {
	Total             float64            `json:"total" example:"1240.50"`
	AveragePerPerson  float64            `json:"averagePerPerson" example:"413.50"`
	CategoryTotals    map[string]float64 `json:"categoryTotals"`
	ParticipantTotals map[string]float64 `json:"participantTotals"`
	ItemCount         int                `json:"itemCount" example:"7"`
}

// ReceiptUploadRequest asks for a pre-signed upload slot for a receipt.
type ReceiptUploadRequest struct {
	FileName    string `json:"fileName" binding:"required" example:"hotel-invoice.pdf"`
	ContentType string `json:"contentType" binding:"required" example:"application/pdf"`
}

// ReceiptUploadResponse carries the pre-signed upload URL and object key.
type ReceiptUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key" example:"receipts/trip-id/item-id/3f2a....pdf"`
}
