package main

import (
	"context"
	"log"
	"time"

	"travelmate/internal/config"
	"travelmate/internal/database"
	"travelmate/internal/models"
	"travelmate/pkg/identity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	aliceUID = "demo-uid-alice"
	bobUID   = "demo-uid-bob"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	seedUsers(ctx, mongoDB.Database)
	seedTrips(ctx, mongoDB.Database)

	printDemoTokens(cfg)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) {
	collection := db.Collection(database.UsersCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	now := time.Now()

	users := []interface{}{
		models.User{
			UID:   aliceUID,
			Email: "alice@example.com",
			Name:  "Alice Johnson",
			Preferences: map[string]interface{}{
				"currency": "EUR",
				"language": "en",
			},
			UpdatedAt: now,
		},
		models.User{
			UID:   bobUID,
			Email: "bob@example.com",
			Name:  "Bob Smith",
			Preferences: map[string]interface{}{
				"currency": "USD",
			},
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))
}

func seedTrips(ctx context.Context, db *mongo.Database) {
	collection := db.Collection(database.TripsCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear trips: %v", err)
	}

	now := time.Now()
	start := time.Date(now.Year()+1, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	hotelCost := 85.0
	ferryDue := start.AddDate(0, 0, -30)

	trip := models.Trip{
		ID:           uuid.NewString(),
		Name:         "Summer in Portugal",
		Description:  "Two weeks along the coast",
		Destination:  "Lisbon",
		StartDate:    start,
		EndDate:      end,
		Participants: []string{aliceUID, bobUID},
		CreatedBy:    aliceUID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Itinerary: []models.ItineraryStep{
			{
				ID:          uuid.NewString(),
				Name:        "Tram 28 ride",
				Description: "Classic tram through Alfama",
				Location: models.Location{
					Lat:     38.7223,
					Lng:     -9.1393,
					Address: "Praça do Comércio, Lisboa",
				},
				StartDate: start.AddDate(0, 0, 1).Add(10 * time.Hour),
				EndDate:   start.AddDate(0, 0, 1).Add(12 * time.Hour),
				Category:  models.StepCategoryActivity,
				AddedBy:   aliceUID,
				AddedAt:   now,
			},
			{
				ID:   uuid.NewString(),
				Name: "Hotel Baixa check-in",
				Location: models.Location{
					Lat:     38.7102,
					Lng:     -9.1380,
					Address: "Rua da Prata 231, Lisboa",
				},
				StartDate: start.Add(15 * time.Hour),
				EndDate:   start.Add(16 * time.Hour),
				Category:  models.StepCategoryAccommodation,
				Cost:      &hotelCost,
				AddedBy:   bobUID,
				AddedAt:   now,
			},
		},
		Budget: []models.BudgetItem{
			{
				ID:       uuid.NewString(),
				Name:     "Hotel Baixa",
				Amount:   420,
				Category: models.BudgetCategoryAccommodation,
				Date:     start,
				PaidBy:   aliceUID,
				AddedBy:  aliceUID,
				AddedAt:  now,
			},
			{
				ID:       uuid.NewString(),
				Name:     "Airport transfer",
				Amount:   38.50,
				Category: models.BudgetCategoryTransport,
				Date:     start,
				PaidBy:   bobUID,
				AddedBy:  bobUID,
				AddedAt:  now,
			},
		},
		Tasks: []models.Task{
			{
				ID:         uuid.NewString(),
				Title:      "Book the ferry to Cacilhas",
				DueDate:    &ferryDue,
				Priority:   models.PriorityHigh,
				AssignedTo: bobUID,
				CreatedBy:  aliceUID,
				CreatedAt:  now,
			},
			{
				ID:        uuid.NewString(),
				Title:     "Print walking tour map",
				Priority:  models.PriorityLow,
				CreatedBy: aliceUID,
				CreatedAt: now,
			},
		},
	}

	if _, err := collection.InsertOne(ctx, trip); err != nil {
		log.Fatalf("Failed to seed trips: %v", err)
	}

	log.Printf("Seeded trip %s", trip.ID)
}

// printDemoTokens issues bearer tokens for the seeded users so the API
// can be exercised right away.
func printDemoTokens(cfg *config.Config) {
	verifier := identity.NewJWTVerifier(cfg.AuthSecret, cfg.AuthExpiry)

	for _, u := range []struct {
		uid, email, name string
	}{
		{aliceUID, "alice@example.com", "Alice Johnson"},
		{bobUID, "bob@example.com", "Bob Smith"},
	} {
		token, err := verifier.Issue(identity.Identity{Subject: u.uid, Email: u.email, Name: u.name})
		if err != nil {
			log.Fatalf("Failed to issue token for %s: %v", u.uid, err)
		}
		log.Printf("Demo token for %s:\n%s", u.email, token)
	}
}
