package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/validate"
)

// SectionService implements the custom-section editor. Every mutation
// loads the wedding's full section list, edits it in memory, runs the
// single order normalization step and persists the result wholesale, so
// Order is always a dense 0..N-1 sequence no matter which operation ran.
type SectionService struct {
	store storage.Store
}

// NewSectionService creates a new SectionService with the given storage
// backend.
func NewSectionService(store storage.Store) *SectionService {
	return &SectionService{store: store}
}

// List returns the wedding's custom sections in render order.
func (s *SectionService) List(ctx context.Context, weddingID string) ([]models.CustomSection, error) {
	return s.store.ListSections(ctx, weddingID)
}

// Add appends a new empty section of the given type at the end of the
// list, visible, ready for editing.
func (s *SectionService) Add(ctx context.Context, weddingID string, sectionType models.SectionType) (*models.CustomSection, error) {
	if !models.ValidSectionType(sectionType) {
		return nil, fmt.Errorf("%w: unknown section type %q", validate.ErrInvalid, sectionType)
	}

	sections, err := s.store.ListSections(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	section := models.CustomSection{
		ID:        uuid.New().String(),
		WeddingID: weddingID,
		Type:      sectionType,
		Order:     len(sections),
		IsVisible: true,
	}
	sections = append(sections, section)

	models.NormalizeOrder(sections)
	if err := s.store.ReplaceSections(ctx, weddingID, sections); err != nil {
		return nil, err
	}

	return &section, nil
}

// SectionUpdate is a partial edit of a section's content fields. Nil
// fields are left untouched.
type SectionUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	VideoURL *string `json:"videoUrl,omitempty"`
}

// Update edits a section's content without affecting order or
// visibility.
func (s *SectionService) Update(ctx context.Context, weddingID, sectionID string, upd *SectionUpdate) (*models.CustomSection, error) {
	sections, err := s.store.ListSections(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	i := indexOf(sections, sectionID)
	if i < 0 {
		return nil, sectionNotFound(sectionID)
	}

	sec := &sections[i]
	if upd.Title != nil {
		sec.Title = *upd.Title
	}
	if upd.Content != nil {
		sec.Content = *upd.Content
	}
	if upd.ImageURL != nil {
		sec.ImageURL = *upd.ImageURL
	}
	if upd.VideoURL != nil {
		sec.VideoURL = *upd.VideoURL
	}

	if err := s.store.ReplaceSections(ctx, weddingID, sections); err != nil {
		return nil, err
	}
	return sec, nil
}

// MoveDirection is the direction of a MoveSection swap.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// Move swaps the section with its immediate neighbor in sort order and
// renumbers densely. Moving the first section up or the last one down is
// a no-op, not an error.
func (s *SectionService) Move(ctx context.Context, weddingID, sectionID string, dir MoveDirection) ([]models.CustomSection, error) {
	if dir != MoveUp && dir != MoveDown {
		return nil, fmt.Errorf("%w: unknown move direction %q", validate.ErrInvalid, dir)
	}

	sections, err := s.store.ListSections(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	i := indexOf(sections, sectionID)
	if i < 0 {
		return nil, sectionNotFound(sectionID)
	}

	j := i - 1
	if dir == MoveDown {
		j = i + 1
	}
	if j < 0 || j >= len(sections) {
		return sections, nil // boundary, nothing to do
	}

	sections[i].Order, sections[j].Order = sections[j].Order, sections[i].Order
	models.NormalizeOrder(sections)

	if err := s.store.ReplaceSections(ctx, weddingID, sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// Delete removes a section and renumbers the remainder to keep the
// order sequence dense.
func (s *SectionService) Delete(ctx context.Context, weddingID, sectionID string) error {
	sections, err := s.store.ListSections(ctx, weddingID)
	if err != nil {
		return err
	}

	i := indexOf(sections, sectionID)
	if i < 0 {
		return sectionNotFound(sectionID)
	}

	sections = append(sections[:i], sections[i+1:]...)
	models.NormalizeOrder(sections)

	return s.store.ReplaceSections(ctx, weddingID, sections)
}

// ToggleVisibility flips IsVisible without affecting order.
func (s *SectionService) ToggleVisibility(ctx context.Context, weddingID, sectionID string) (*models.CustomSection, error) {
	sections, err := s.store.ListSections(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	i := indexOf(sections, sectionID)
	if i < 0 {
		return nil, sectionNotFound(sectionID)
	}

	sections[i].IsVisible = !sections[i].IsVisible

	if err := s.store.ReplaceSections(ctx, weddingID, sections); err != nil {
		return nil, err
	}
	return &sections[i], nil
}

func indexOf(sections []models.CustomSection, id string) int {
	for i := range sections {
		if sections[i].ID == id {
			return i
		}
	}
	return -1
}

func sectionNotFound(id string) error {
	return fmt.Errorf("%w: section %s", storage.ErrNotFound, id)
}
