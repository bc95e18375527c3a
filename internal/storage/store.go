// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/veugravata/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for wedding-site storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Weddings. CreateWedding populates ID and timestamps when unset.
	CreateWedding(ctx context.Context, wedding *models.Wedding) error
	GetWedding(ctx context.Context, id string) (*models.Wedding, error)
	GetWeddingBySlug(ctx context.Context, slug string) (*models.Wedding, error)
	GetWeddingByUser(ctx context.Context, userID string) (*models.Wedding, error)
	UpdateWedding(ctx context.Context, wedding *models.Wedding) error
	DeleteWedding(ctx context.Context, id string) error

	// Custom sections. ReplaceSections rewrites the full ordered list for
	// a wedding in one transaction; ListSections returns them by Order.
	ListSections(ctx context.Context, weddingID string) ([]models.CustomSection, error)
	ReplaceSections(ctx context.Context, weddingID string, sections []models.CustomSection) error

	// Gifts and contributions. DeleteGift cascades to contributions.
	CreateGift(ctx context.Context, gift *models.Gift) error
	GetGift(ctx context.Context, id string) (*models.Gift, error)
	ListGifts(ctx context.Context, weddingID string) ([]models.Gift, error)
	UpdateGift(ctx context.Context, gift *models.Gift) error
	DeleteGift(ctx context.Context, id string) error
	CreateContribution(ctx context.Context, c *models.Contribution) error
	GetContributionBySession(ctx context.Context, sessionID string) (*models.Contribution, error)
	UpdateContribution(ctx context.Context, c *models.Contribution) error

	// Guests
	CreateGuest(ctx context.Context, guest *models.Guest) error
	GetGuest(ctx context.Context, id string) (*models.Guest, error)
	ListGuests(ctx context.Context, weddingID string) ([]models.Guest, error)
	UpdateGuest(ctx context.Context, guest *models.Guest) error
	DeleteGuest(ctx context.Context, id string) error

	// Invitations, keyed one-per-guest.
	UpsertInvitation(ctx context.Context, inv *models.Invitation) error
	GetInvitation(ctx context.Context, id string) (*models.Invitation, error)
	GetInvitationByGuest(ctx context.Context, guestID string) (*models.Invitation, error)
	ListInvitations(ctx context.Context, weddingID string) ([]models.Invitation, error)

	// Close releases any resources held by the store.
	Close() error
}
