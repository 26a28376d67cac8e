package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"predictify/internal/auth"
	"predictify/internal/config"
	"predictify/internal/db"
	"predictify/internal/model"
	"predictify/internal/repository"
)

// seedUser describes a demo account to create.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

var seedUsers = []seedUser{
	{Name: "Demo Admin", Email: "admin@predictify.dev", Password: "admin-password", Role: model.RoleAdmin},
	{Name: "Demo Organizer", Email: "organizer@predictify.dev", Password: "organizer-password", Role: model.RoleOrganizer},
	{Name: "Demo Attendee", Email: "attendee@predictify.dev", Password: "attendee-password", Role: model.RoleAttendee},
}

// seedEvent describes a demo event owned by the demo organizer.
type seedEvent struct {
	Title    string
	Slug     string
	Category string
	Location string
	Capacity int
	DaysOut  int
	Featured bool
	Status   model.EventStatus
}

var seedEvents = []seedEvent{
	{Title: "Go Meetup: Concurrency Patterns", Slug: "go-meetup-concurrency", Category: "MEETUP", Location: "Berlin", Capacity: 120, DaysOut: 14, Featured: true, Status: model.EventPublished},
	{Title: "Cloud Native Workshop", Slug: "cloud-native-workshop", Category: "WORKSHOP", Location: "Remote", Capacity: 40, DaysOut: 30, Status: model.EventPublished},
	{Title: "AI Hackathon 2026", Slug: "ai-hackathon-2026", Category: "HACKATHON", Location: "Lisbon", Capacity: 200, DaysOut: 60, Status: model.EventDraft},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.OrganizerProfile{},
		&model.Event{},
		&model.Registration{},
		&model.Prediction{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	organizerRepo := repository.NewOrganizerRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	organizerID, created, err := seedAccounts(ctx, userRepo, organizerRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users seeded (%d created)", created)

	createdEvents, err := seedDemoEvents(ctx, eventRepo, organizerID)
	if err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}
	log.Printf("Events seeded (%d created)", createdEvents)

	log.Println("Seed completed successfully!")
}

// seedAccounts creates the demo users and the organizer profile if they do
// not exist yet. It returns the organizer profile ID for event ownership.
func seedAccounts(ctx context.Context, users repository.UserRepository, organizers repository.OrganizerRepository) (uuid.UUID, int, error) {
	created := 0
	var organizerUserID uuid.UUID

	for _, s := range seedUsers {
		existing, err := users.FindByEmail(ctx, s.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, created, fmt.Errorf("lookup %s: %w", s.Email, err)
		}
		if existing != nil {
			if s.Role == model.RoleOrganizer {
				organizerUserID = existing.ID
			}
			continue
		}

		hash, err := auth.HashPassword(s.Password)
		if err != nil {
			return uuid.Nil, created, fmt.Errorf("hash password for %s: %w", s.Email, err)
		}
		user := &model.User{
			ID:           uuid.New(),
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
			Active:       true,
		}
		if err := users.Create(ctx, user); err != nil {
			return uuid.Nil, created, fmt.Errorf("create %s: %w", s.Email, err)
		}
		if s.Role == model.RoleOrganizer {
			organizerUserID = user.ID
		}
		created++
	}

	profile, err := organizers.FindByUserID(ctx, organizerUserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, created, fmt.Errorf("lookup organizer profile: %w", err)
	}
	if profile == nil {
		profile = &model.OrganizerProfile{
			ID:               uuid.New(),
			UserID:           organizerUserID,
			OrganizationName: "Predictify Community",
			Bio:              "Demo organizer for local development.",
			Website:          "https://predictify.dev",
		}
		if err := organizers.Create(ctx, profile); err != nil {
			return uuid.Nil, created, fmt.Errorf("create organizer profile: %w", err)
		}
	}

	return profile.ID, created, nil
}

// seedDemoEvents creates the demo events, skipping slugs that already exist.
func seedDemoEvents(ctx context.Context, events repository.EventRepository, organizerID uuid.UUID) (int, error) {
	created := 0
	for _, s := range seedEvents {
		existing, err := events.FindBySlug(ctx, s.Slug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("lookup event %s: %w", s.Slug, err)
		}
		if existing != nil {
			continue
		}

		starts := time.Now().AddDate(0, 0, s.DaysOut)
		event := &model.Event{
			ID:          uuid.New(),
			OrganizerID: organizerID,
			Title:       s.Title,
			Slug:        s.Slug,
			Description: fmt.Sprintf("%s in %s.", s.Title, s.Location),
			Category:    s.Category,
			Location:    s.Location,
			Capacity:    s.Capacity,
			StartsAt:    starts,
			EndsAt:      starts.Add(8 * time.Hour),
			Status:      s.Status,
			Featured:    s.Featured,
		}
		if err := events.Create(ctx, event); err != nil {
			return created, fmt.Errorf("create event %s: %w", s.Slug, err)
		}
		created++
	}
	return created, nil
}
