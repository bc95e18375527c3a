package sqlite

import (
	"context"
	"fmt"

	"github.com/veugravata/backend/internal/models"
)

// ListSections returns a wedding's custom sections ordered by position.
func (s *SQLiteStore) ListSections(ctx context.Context, weddingID string) ([]models.CustomSection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, wedding_id, type, title, content, image_url, video_url, position, is_visible
		 FROM custom_sections WHERE wedding_id = ? ORDER BY position`,
		weddingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.CustomSection
	for rows.Next() {
		var sec models.CustomSection
		if err := rows.Scan(
			&sec.ID, &sec.WeddingID, &sec.Type, &sec.Title, &sec.Content,
			&sec.ImageURL, &sec.VideoURL, &sec.Order, &sec.IsVisible,
		); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sections: %w", err)
	}

	return sections, nil
}

// ReplaceSections rewrites the full ordered section list for a wedding in
// one transaction. The editor mutates the list in memory and persists the
// normalized result wholesale, keeping the dense-order invariant in a
// single place.
func (s *SQLiteStore) ReplaceSections(ctx context.Context, weddingID string, sections []models.CustomSection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM custom_sections WHERE wedding_id = ?", weddingID); err != nil {
		return fmt.Errorf("failed to clear sections: %w", err)
	}

	for i := range sections {
		sec := &sections[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO custom_sections
			 (id, wedding_id, type, title, content, image_url, video_url, position, is_visible)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sec.ID, weddingID, sec.Type, sec.Title, sec.Content,
			sec.ImageURL, sec.VideoURL, sec.Order, sec.IsVisible,
		)
		if err != nil {
			return fmt.Errorf("failed to insert section: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
