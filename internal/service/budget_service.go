package service

import (
	"context"
	"fmt"
	"log"
	"path"
	"time"

	apperrors "travelmate/internal/errors"
	"travelmate/internal/models"
	"travelmate/internal/repository"
	"travelmate/internal/storage"

	"github.com/google/uuid"
)

// Expiry for pre-signed receipt URLs.
const (
	receiptDownloadExpiry = 1 * time.Hour
	receiptUploadExpiry   = 15 * time.Minute
)

// BudgetService handles business logic for trip budgets.
type BudgetService struct {
	tripRepo repository.TripRepository
	storage  storage.Storage
}

// NewBudgetService creates a new BudgetService. Storage may be nil, in
// which case receipt uploads are rejected and receipt URLs are omitted.
func NewBudgetService(tripRepo repository.TripRepository, store storage.Storage) *BudgetService {
	return &BudgetService{
		tripRepo: tripRepo,
		storage:  store,
	}
}

// ListItems returns the budget of a trip together with per-category
// totals and the participants the expenses are split across.
func (s *BudgetService) ListItems(ctx context.Context, tripID, subject string) (*models.BudgetListResponse, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]float64)
	total := 0.0
	for _, item := range trip.Budget {
		summary[item.Category] += item.Amount
		total += item.Amount
	}

	items := s.decorateReceipts(ctx, trip.Budget)

	return &models.BudgetListResponse{
		Items:        items,
		Summary:      summary,
		Total:        total,
		Participants: trip.Participants,
	}, nil
}

// AddItem appends an expense to the trip's budget.
func (s *BudgetService) AddItem(ctx context.Context, tripID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	item := models.BudgetItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        req.Date,
		PaidBy:      req.PaidBy,
		AddedBy:     subject,
		AddedAt:     time.Now(),
	}

	items := append(trip.Budget, item)
	if err := s.tripRepo.ReplaceBudget(ctx, tripID, items); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateItem replaces the editable fields of an expense. The item's id,
// receipt, addedBy and addedAt are preserved.
func (s *BudgetService) UpdateItem(ctx context.Context, tripID, itemID, subject string, req *models.BudgetItemRequest) (*models.BudgetItem, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range trip.Budget {
		if trip.Budget[i].ID == itemID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrBudgetItemNotFound
	}

	now := time.Now()
	item := &trip.Budget[index]
	item.Name = req.Name
	item.Description = req.Description
	item.Amount = *req.Amount
	item.Category = req.Category
	item.Date = req.Date
	item.PaidBy = req.PaidBy
	item.UpdatedAt = &now

	if err := s.tripRepo.ReplaceBudget(ctx, tripID, trip.Budget); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an expense from the budget. Deletion is idempotent:
// an absent id is not an error, the filtered list is written either way.
func (s *BudgetService) DeleteItem(ctx context.Context, tripID, itemID, subject string) error {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return err
	}

	items := make([]models.BudgetItem, 0, len(trip.Budget))
	for _, item := range trip.Budget {
		if item.ID == itemID {
			continue
		}
		items = append(items, item)
	}

	return s.tripRepo.ReplaceBudget(ctx, tripID, items)
}

// Summary computes the derived budget report for a trip. The average is
// split across the participants list, not across payers; an empty
// participants list yields an average of 0 rather than a division error.
func (s *BudgetService) Summary(ctx context.Context, tripID, subject string) (*models.BudgetSummary, error) {
	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	summary := &models.BudgetSummary{
		CategoryTotals:    make(map[string]float64),
		ParticipantTotals: make(map[string]float64),
		ItemCount:         len(trip.Budget),
	}

	for _, item := range trip.Budget {
		summary.Total += item.Amount
		summary.CategoryTotals[item.Category] += item.Amount
		summary.ParticipantTotals[item.PaidBy] += item.Amount
	}

	if len(trip.Participants) > 0 {
		summary.AveragePerPerson = summary.Total / float64(len(trip.Participants))
	}

	return summary, nil
}

// CreateReceiptUpload issues a pre-signed upload URL for an expense's
// receipt and records the object key on the item.
func (s *BudgetService) CreateReceiptUpload(ctx context.Context, tripID, itemID, subject string, req *models.ReceiptUploadRequest) (*models.ReceiptUploadResponse, error) {
	if s.storage == nil {
		return nil, apperrors.ErrStorageUnavailable
	}

	trip, err := fetchForParticipant(ctx, s.tripRepo, tripID, subject)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range trip.Budget {
		if trip.Budget[i].ID == itemID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrBudgetItemNotFound
	}

	// Object keys are unique per upload so re-uploading never clobbers a
	// previous receipt mid-download.
	key := fmt.Sprintf("receipts/%s/%s/%s%s", tripID, itemID, uuid.NewString(), path.Ext(req.FileName))

	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, receiptUploadExpiry)
	if err != nil {
		return nil, err
	}

	trip.Budget[index].ReceiptKey = key
	if err := s.tripRepo.ReplaceBudget(ctx, tripID, trip.Budget); err != nil {
		return nil, err
	}

	return &models.ReceiptUploadResponse{
		UploadURL: uploadURL,
		Key:       key,
	}, nil
}

// decorateReceipts fills in pre-signed download URLs for items that have
// a stored receipt. Presign failures are logged and skipped; the budget
// itself is still returned.
func (s *BudgetService) decorateReceipts(ctx context.Context, items []models.BudgetItem) []models.BudgetItem {
	if s.storage == nil {
		return items
	}

	for i := range items {
		if items[i].ReceiptKey == "" {
			continue
		}
		url, err := s.storage.GetPresignedURL(ctx, items[i].ReceiptKey, receiptDownloadExpiry)
		if err != nil {
			log.Printf("Failed to presign receipt %s: %v", items[i].ReceiptKey, err)
			continue
		}
		items[i].ReceiptURL = url
	}

	return items
}
