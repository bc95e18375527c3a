package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/secrets"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/storage/sqlite"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// newTestStore creates a SQLite store backed by a temp database.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "veugravata-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	box, err := secrets.NewBox(testKey)
	if err != nil {
		t.Fatalf("Failed to create box: %v", err)
	}

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"), box)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// seedWedding creates a user and an onboarded wedding ready to publish.
func seedWedding(t *testing.T, store storage.Store) *models.Wedding {
	t.Helper()
	ctx := context.Background()

	user := models.NewUser(uuid.New().String()+"@example.com", "Ana & Bruno", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	date := "2026-10-10"
	wedding := &models.Wedding{
		UserID:       user.ID,
		Partner1Name: "Ana",
		Partner2Name: "Bruno",
		Date:         &date,
		Location:     "São Paulo",
		Venue:        "Espaço Jardim",
		TemplateID:   models.DefaultTemplate,
		CurrentStep:  models.FirstStep,
		SiteContent:  models.DefaultSiteContent(),
	}
	if err := store.CreateWedding(ctx, wedding); err != nil {
		t.Fatalf("CreateWedding failed: %v", err)
	}
	return wedding
}

// fakeSender records invitation sends and can be told to fail.
type fakeSender struct {
	sent []string
	fail bool
}

func (f *fakeSender) SendInvitation(to, coupleNames, siteURL string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}
