package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
)

// CreateGift persists a new gift, generating ID and timestamp when unset.
func (s *SQLiteStore) CreateGift(ctx context.Context, gift *models.Gift) error {
	if gift.ID == "" {
		gift.ID = uuid.New().String()
	}
	if gift.CreatedAt == 0 {
		gift.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO gifts
		 (id, wedding_id, name, description, price, image_url, category, is_selected, contributed_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gift.ID, gift.WeddingID, gift.Name, gift.Description, gift.Price,
		gift.ImageURL, gift.Category, gift.IsSelected, gift.ContributedAmount, gift.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert gift: %w", err)
	}

	return nil
}

// GetGift retrieves a gift by ID, including its confirmed contributors.
func (s *SQLiteStore) GetGift(ctx context.Context, id string) (*models.Gift, error) {
	gift := &models.Gift{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, wedding_id, name, description, price, image_url, category,
		        is_selected, contributed_amount, created_at
		 FROM gifts WHERE id = ?`, id,
	).Scan(
		&gift.ID, &gift.WeddingID, &gift.Name, &gift.Description, &gift.Price,
		&gift.ImageURL, &gift.Category, &gift.IsSelected, &gift.ContributedAmount, &gift.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, notFound("gift", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gift: %w", err)
	}

	contributors, err := s.listContributions(ctx, id)
	if err != nil {
		return nil, err
	}
	gift.Contributors = contributors

	return gift, nil
}

// ListGifts retrieves all gifts for a wedding, newest first.
func (s *SQLiteStore) ListGifts(ctx context.Context, weddingID string) ([]models.Gift, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, wedding_id, name, description, price, image_url, category,
		        is_selected, contributed_amount, created_at
		 FROM gifts WHERE wedding_id = ? ORDER BY created_at DESC, id`,
		weddingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}
	defer rows.Close()

	var gifts []models.Gift
	for rows.Next() {
		var g models.Gift
		if err := rows.Scan(
			&g.ID, &g.WeddingID, &g.Name, &g.Description, &g.Price,
			&g.ImageURL, &g.Category, &g.IsSelected, &g.ContributedAmount, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan gift: %w", err)
		}
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gifts: %w", err)
	}

	return gifts, nil
}

// UpdateGift rewrites the mutable columns of an existing gift.
func (s *SQLiteStore) UpdateGift(ctx context.Context, gift *models.Gift) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gifts SET name = ?, description = ?, price = ?, image_url = ?,
		 category = ?, is_selected = ?, contributed_amount = ?
		 WHERE id = ?`,
		gift.Name, gift.Description, gift.Price, gift.ImageURL,
		gift.Category, gift.IsSelected, gift.ContributedAmount, gift.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gift: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("gift", gift.ID)
	}

	return nil
}

// DeleteGift removes a gift and, via foreign keys, its contributions.
func (s *SQLiteStore) DeleteGift(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM gifts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete gift: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("gift", id)
	}
	return nil
}

// CreateContribution persists a new contribution record.
func (s *SQLiteStore) CreateContribution(ctx context.Context, c *models.Contribution) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contributions (id, gift_id, contributor_name, message, amount, session_id, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.GiftID, c.ContributorName, c.Message, c.Amount,
		nullString(c.SessionID), c.Status, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", err)
	}

	return nil
}

// GetContributionBySession retrieves a contribution by its checkout
// session reference. Used by the payment webhook.
func (s *SQLiteStore) GetContributionBySession(ctx context.Context, sessionID string) (*models.Contribution, error) {
	c := &models.Contribution{}
	var session sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT id, gift_id, contributor_name, message, amount, session_id, status, created_at
		 FROM contributions WHERE session_id = ?`, sessionID,
	).Scan(&c.ID, &c.GiftID, &c.ContributorName, &c.Message, &c.Amount, &session, &c.Status, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, notFound("contribution session", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contribution: %w", err)
	}

	c.SessionID = session.String
	return c, nil
}

// UpdateContribution rewrites the status of an existing contribution.
func (s *SQLiteStore) UpdateContribution(ctx context.Context, c *models.Contribution) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contributions SET status = ? WHERE id = ?", c.Status, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update contribution: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("contribution", c.ID)
	}
	return nil
}

// listContributions returns the confirmed contributions for a gift,
// oldest first.
func (s *SQLiteStore) listContributions(ctx context.Context, giftID string) ([]models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, gift_id, contributor_name, message, amount, session_id, status, created_at
		 FROM contributions WHERE gift_id = ? AND status = ? ORDER BY created_at, id`,
		giftID, models.ContributionConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var contributions []models.Contribution
	for rows.Next() {
		var c models.Contribution
		var session sql.NullString
		if err := rows.Scan(&c.ID, &c.GiftID, &c.ContributorName, &c.Message,
			&c.Amount, &session, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		c.SessionID = session.String
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}

	return contributions, nil
}
