package service

import (
	"context"
	"errors"
	"testing"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/validate"
)

func assertDenseOrder(t *testing.T, sections []models.CustomSection) {
	t.Helper()
	for i, sec := range sections {
		if sec.Order != i {
			t.Errorf("section %d has order %d, want dense 0..N-1", i, sec.Order)
		}
	}
}

func TestSectionAdd(t *testing.T) {
	store := newTestStore(t)
	svc := NewSectionService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	first, err := svc.Add(ctx, wedding.ID, models.SectionText)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.Order != 0 || !first.IsVisible {
		t.Errorf("first section = order %d visible %v, want 0/true", first.Order, first.IsVisible)
	}

	second, err := svc.Add(ctx, wedding.ID, models.SectionQuote)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if second.Order != 1 {
		t.Errorf("second section order = %d, want 1", second.Order)
	}

	if _, err := svc.Add(ctx, wedding.ID, "carousel"); !errors.Is(err, validate.ErrInvalid) {
		t.Errorf("Add with unknown type = %v, want ErrInvalid", err)
	}
}

func TestSectionMove(t *testing.T) {
	store := newTestStore(t)
	svc := NewSectionService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	a, _ := svc.Add(ctx, wedding.ID, models.SectionText)
	b, _ := svc.Add(ctx, wedding.ID, models.SectionQuote)
	c, _ := svc.Add(ctx, wedding.ID, models.SectionImage)

	t.Run("move up swaps with the previous section", func(t *testing.T) {
		sections, err := svc.Move(ctx, wedding.ID, b.ID, MoveUp)
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		assertDenseOrder(t, sections)
		if sections[0].ID != b.ID || sections[1].ID != a.ID {
			t.Errorf("order = %s,%s, want %s,%s", sections[0].ID, sections[1].ID, b.ID, a.ID)
		}
	})

	t.Run("moving the first section up is a no-op", func(t *testing.T) {
		sections, err := svc.Move(ctx, wedding.ID, b.ID, MoveUp)
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		assertDenseOrder(t, sections)
		if sections[0].ID != b.ID {
			t.Error("boundary move changed the order")
		}
	})

	t.Run("moving the last section down is a no-op", func(t *testing.T) {
		sections, err := svc.Move(ctx, wedding.ID, c.ID, MoveDown)
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		assertDenseOrder(t, sections)
		if sections[2].ID != c.ID {
			t.Error("boundary move changed the order")
		}
	})

	t.Run("unknown direction is invalid", func(t *testing.T) {
		if _, err := svc.Move(ctx, wedding.ID, a.ID, "sideways"); !errors.Is(err, validate.ErrInvalid) {
			t.Errorf("Move(sideways) = %v, want ErrInvalid", err)
		}
	})
}

func TestSectionDeleteRenumbers(t *testing.T) {
	store := newTestStore(t)
	svc := NewSectionService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	a, _ := svc.Add(ctx, wedding.ID, models.SectionText)
	b, _ := svc.Add(ctx, wedding.ID, models.SectionQuote)
	c, _ := svc.Add(ctx, wedding.ID, models.SectionImage)

	if err := svc.Delete(ctx, wedding.ID, b.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	sections, err := svc.List(ctx, wedding.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("List returned %d sections, want 2", len(sections))
	}
	assertDenseOrder(t, sections)
	if sections[0].ID != a.ID || sections[1].ID != c.ID {
		t.Error("deletion changed the relative order of survivors")
	}

	if err := svc.Delete(ctx, wedding.ID, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
}

func TestSectionToggleVisibility(t *testing.T) {
	store := newTestStore(t)
	svc := NewSectionService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	a, _ := svc.Add(ctx, wedding.ID, models.SectionText)
	b, _ := svc.Add(ctx, wedding.ID, models.SectionQuote)

	hidden, err := svc.ToggleVisibility(ctx, wedding.ID, a.ID)
	if err != nil {
		t.Fatalf("ToggleVisibility failed: %v", err)
	}
	if hidden.IsVisible {
		t.Error("toggle did not hide the section")
	}
	if hidden.Order != 0 {
		t.Error("toggle changed the section's order")
	}

	shown, err := svc.ToggleVisibility(ctx, wedding.ID, a.ID)
	if err != nil {
		t.Fatalf("ToggleVisibility failed: %v", err)
	}
	if !shown.IsVisible {
		t.Error("double toggle did not restore visibility")
	}

	sections, _ := svc.List(ctx, wedding.ID)
	assertDenseOrder(t, sections)
	if sections[1].ID != b.ID {
		t.Error("toggling reordered the list")
	}
}

func TestSectionUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewSectionService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	sec, _ := svc.Add(ctx, wedding.ID, models.SectionText)

	updated, err := svc.Update(ctx, wedding.ID, sec.ID, &SectionUpdate{
		Title:   strPtr("Padrinhos"),
		Content: strPtr("Nossos melhores amigos"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Padrinhos" || updated.Content != "Nossos melhores amigos" {
		t.Error("update did not apply content fields")
	}

	// A partial update leaves the other fields alone.
	updated, err = svc.Update(ctx, wedding.ID, sec.ID, &SectionUpdate{Content: strPtr("Atualizado")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Padrinhos" {
		t.Error("partial update erased the title")
	}
}
