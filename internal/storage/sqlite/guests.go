package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
)

// CreateGuest persists a new guest, generating ID and timestamps when
// unset.
func (s *SQLiteStore) CreateGuest(ctx context.Context, guest *models.Guest) error {
	if guest.ID == "" {
		guest.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if guest.CreatedAt == 0 {
		guest.CreatedAt = now
	}
	guest.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO guests
		 (id, wedding_id, name, email, phone, rsvp_status, plus_one, number_of_guests,
		  dietary_restrictions, source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		guest.ID, guest.WeddingID, guest.Name, guest.Email, guest.Phone,
		guest.RSVPStatus, guest.PlusOne, guest.NumberOfGuests,
		guest.DietaryRestrictions, guest.Source, guest.CreatedAt, guest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}

	return nil
}

// GetGuest retrieves a guest by ID.
func (s *SQLiteStore) GetGuest(ctx context.Context, id string) (*models.Guest, error) {
	guest := &models.Guest{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, wedding_id, name, email, phone, rsvp_status, plus_one, number_of_guests,
		        dietary_restrictions, source, created_at, updated_at
		 FROM guests WHERE id = ?`, id,
	).Scan(
		&guest.ID, &guest.WeddingID, &guest.Name, &guest.Email, &guest.Phone,
		&guest.RSVPStatus, &guest.PlusOne, &guest.NumberOfGuests,
		&guest.DietaryRestrictions, &guest.Source, &guest.CreatedAt, &guest.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, notFound("guest", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	return guest, nil
}

// ListGuests retrieves all guests for a wedding in insertion order.
func (s *SQLiteStore) ListGuests(ctx context.Context, weddingID string) ([]models.Guest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, wedding_id, name, email, phone, rsvp_status, plus_one, number_of_guests,
		        dietary_restrictions, source, created_at, updated_at
		 FROM guests WHERE wedding_id = ? ORDER BY created_at, id`,
		weddingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(
			&g.ID, &g.WeddingID, &g.Name, &g.Email, &g.Phone,
			&g.RSVPStatus, &g.PlusOne, &g.NumberOfGuests,
			&g.DietaryRestrictions, &g.Source, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}

	return guests, nil
}

// UpdateGuest rewrites the mutable columns of an existing guest.
func (s *SQLiteStore) UpdateGuest(ctx context.Context, guest *models.Guest) error {
	guest.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`UPDATE guests SET name = ?, email = ?, phone = ?, rsvp_status = ?, plus_one = ?,
		 number_of_guests = ?, dietary_restrictions = ?, updated_at = ?
		 WHERE id = ?`,
		guest.Name, guest.Email, guest.Phone, guest.RSVPStatus, guest.PlusOne,
		guest.NumberOfGuests, guest.DietaryRestrictions, guest.UpdatedAt, guest.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("guest", guest.ID)
	}

	return nil
}

// DeleteGuest removes a guest by ID.
func (s *SQLiteStore) DeleteGuest(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM guests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("guest", id)
	}
	return nil
}
