package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
)

const weddingColumns = `id, user_id, slug, partner1_name, partner2_name, date, location, venue,
	template_id, primary_color, secondary_color, current_step,
	banking_info, dress_code, site_content, published_at, created_at, updated_at`

// CreateWedding persists a new wedding, generating ID and timestamps when
// unset.
func (s *SQLiteStore) CreateWedding(ctx context.Context, w *models.Wedding) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if w.CreatedAt == 0 {
		w.CreatedAt = now
	}
	w.UpdatedAt = now

	banking, dress, content, err := s.encodeConfig(w)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO weddings (`+weddingColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.UserID, nullString(w.Slug), w.Partner1Name, w.Partner2Name, w.Date,
		w.Location, w.Venue, w.TemplateID, w.PrimaryColor, w.SecondaryColor,
		w.CurrentStep, banking, dress, content, w.PublishedAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wedding: %w", err)
	}

	return nil
}

// GetWedding retrieves a wedding by ID.
func (s *SQLiteStore) GetWedding(ctx context.Context, id string) (*models.Wedding, error) {
	return s.getWedding(ctx, "id", id)
}

// GetWeddingBySlug retrieves a wedding by its public slug.
func (s *SQLiteStore) GetWeddingBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	return s.getWedding(ctx, "slug", slug)
}

// GetWeddingByUser retrieves the wedding owned by the given user.
func (s *SQLiteStore) GetWeddingByUser(ctx context.Context, userID string) (*models.Wedding, error) {
	return s.getWedding(ctx, "user_id", userID)
}

func (s *SQLiteStore) getWedding(ctx context.Context, column, value string) (*models.Wedding, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+weddingColumns+` FROM weddings WHERE `+column+` = ?`, value)

	w, err := s.scanWedding(row)
	if err == sql.ErrNoRows {
		return nil, notFound("wedding", value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wedding by %s: %w", column, err)
	}
	return w, nil
}

// UpdateWedding rewrites all mutable columns of an existing wedding.
func (s *SQLiteStore) UpdateWedding(ctx context.Context, w *models.Wedding) error {
	w.UpdatedAt = time.Now().Unix()

	banking, dress, content, err := s.encodeConfig(w)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE weddings SET slug = ?, partner1_name = ?, partner2_name = ?, date = ?,
		 location = ?, venue = ?, template_id = ?, primary_color = ?, secondary_color = ?,
		 current_step = ?, banking_info = ?, dress_code = ?, site_content = ?,
		 published_at = ?, updated_at = ?
		 WHERE id = ?`,
		nullString(w.Slug), w.Partner1Name, w.Partner2Name, w.Date,
		w.Location, w.Venue, w.TemplateID, w.PrimaryColor, w.SecondaryColor,
		w.CurrentStep, banking, dress, content, w.PublishedAt, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wedding: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("wedding", w.ID)
	}

	return nil
}

// DeleteWedding removes a wedding and, via foreign keys, all of its
// sections, gifts, guests and invitations.
func (s *SQLiteStore) DeleteWedding(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM weddings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete wedding: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("wedding", id)
	}
	return nil
}

// encodeConfig serializes the nested configuration blocks: SiteContent
// and DressCode as JSON, BankingInfo sealed through the secrets box.
func (s *SQLiteStore) encodeConfig(w *models.Wedding) (banking, dress interface{}, content string, err error) {
	raw, err := json.Marshal(w.SiteContent)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to marshal site content: %w", err)
	}
	content = string(raw)

	if w.DressCode != nil {
		raw, err := json.Marshal(w.DressCode)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to marshal dress code: %w", err)
		}
		dress = string(raw)
	}

	if w.BankingInfo != nil {
		raw, err := json.Marshal(w.BankingInfo)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to marshal banking info: %w", err)
		}
		sealed, err := s.box.Seal(raw)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to seal banking info: %w", err)
		}
		banking = sealed
	}

	return banking, dress, content, nil
}

func (s *SQLiteStore) scanWedding(row *sql.Row) (*models.Wedding, error) {
	w := &models.Wedding{}
	var slug, banking, dress sql.NullString
	var content string

	err := row.Scan(
		&w.ID, &w.UserID, &slug, &w.Partner1Name, &w.Partner2Name, &w.Date,
		&w.Location, &w.Venue, &w.TemplateID, &w.PrimaryColor, &w.SecondaryColor,
		&w.CurrentStep, &banking, &dress, &content, &w.PublishedAt,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Slug = slug.String

	if err := json.Unmarshal([]byte(content), &w.SiteContent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site content: %w", err)
	}

	if dress.Valid {
		w.DressCode = &models.DressCode{}
		if err := json.Unmarshal([]byte(dress.String), w.DressCode); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dress code: %w", err)
		}
	}

	if banking.Valid {
		raw, err := s.box.Open(banking.String)
		if err != nil {
			return nil, fmt.Errorf("failed to open banking info: %w", err)
		}
		w.BankingInfo = &models.BankingInfo{}
		if err := json.Unmarshal(raw, w.BankingInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal banking info: %w", err)
		}
	}

	return w, nil
}

// nullString maps "" to NULL so UNIQUE columns ignore unset values.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
