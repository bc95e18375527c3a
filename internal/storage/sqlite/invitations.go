package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
)

// UpsertInvitation inserts or replaces the delivery record for a guest.
// At most one invitation row exists per guest.
func (s *SQLiteStore) UpsertInvitation(ctx context.Context, inv *models.Invitation) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv.UpdatedAt = time.Now().Unix()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invitations (id, wedding_id, guest_id, email, status, attempts, sent_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(guest_id) DO UPDATE SET
		   email = excluded.email,
		   status = excluded.status,
		   attempts = excluded.attempts,
		   sent_at = excluded.sent_at,
		   updated_at = excluded.updated_at`,
		inv.ID, inv.WeddingID, inv.GuestID, inv.Email, inv.Status,
		inv.Attempts, inv.SentAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert invitation: %w", err)
	}

	return nil
}

// GetInvitation retrieves an invitation by ID.
func (s *SQLiteStore) GetInvitation(ctx context.Context, id string) (*models.Invitation, error) {
	return s.getInvitation(ctx, "id", id)
}

// GetInvitationByGuest retrieves the invitation for a guest.
func (s *SQLiteStore) GetInvitationByGuest(ctx context.Context, guestID string) (*models.Invitation, error) {
	return s.getInvitation(ctx, "guest_id", guestID)
}

func (s *SQLiteStore) getInvitation(ctx context.Context, column, value string) (*models.Invitation, error) {
	inv := &models.Invitation{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, wedding_id, guest_id, email, status, attempts, sent_at, updated_at
		 FROM invitations WHERE `+column+` = ?`, value,
	).Scan(&inv.ID, &inv.WeddingID, &inv.GuestID, &inv.Email, &inv.Status,
		&inv.Attempts, &inv.SentAt, &inv.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, notFound("invitation", value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation by %s: %w", column, err)
	}

	return inv, nil
}

// ListInvitations retrieves all invitations for a wedding.
func (s *SQLiteStore) ListInvitations(ctx context.Context, weddingID string) ([]models.Invitation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, wedding_id, guest_id, email, status, attempts, sent_at, updated_at
		 FROM invitations WHERE wedding_id = ? ORDER BY updated_at DESC, id`,
		weddingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []models.Invitation
	for rows.Next() {
		var inv models.Invitation
		if err := rows.Scan(&inv.ID, &inv.WeddingID, &inv.GuestID, &inv.Email,
			&inv.Status, &inv.Attempts, &inv.SentAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitations: %w", err)
	}

	return invitations, nil
}
