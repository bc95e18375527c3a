package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/stats"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/validate"
)

// GuestService owns the guest list. Guests enter either manually from
// the couple's dashboard or through the public RSVP form; the source is
// recorded on the record and never changes.
type GuestService struct {
	store storage.Store
}

// NewGuestService creates a new GuestService with the given storage
// backend.
func NewGuestService(store storage.Store) *GuestService {
	return &GuestService{store: store}
}

// List returns all guests for a wedding.
func (s *GuestService) List(ctx context.Context, weddingID string) ([]models.Guest, error) {
	return s.store.ListGuests(ctx, weddingID)
}

// Filter returns guests matching an RSVP status (empty for any) and a
// case-insensitive name/email substring query.
func (s *GuestService) Filter(ctx context.Context, weddingID string, status models.RSVPStatus, query string) ([]models.Guest, error) {
	guests, err := s.store.ListGuests(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	return stats.FilterGuests(guests, status, query), nil
}

// Stats aggregates the guest list by status.
func (s *GuestService) Stats(ctx context.Context, weddingID string) (stats.GuestStats, error) {
	guests, err := s.store.ListGuests(ctx, weddingID)
	if err != nil {
		return stats.GuestStats{}, err
	}
	return stats.ComputeGuestStats(guests), nil
}

// Add inserts a manually created guest, defaulting to a pending RSVP.
func (s *GuestService) Add(ctx context.Context, guest *models.Guest) (*models.Guest, error) {
	if strings.TrimSpace(guest.Name) == "" {
		return nil, fmt.Errorf("%w: guest name is required", validate.ErrInvalid)
	}
	if guest.NumberOfGuests < 1 {
		guest.NumberOfGuests = 1
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPPending
	}
	guest.Source = models.SourceManual

	if err := s.store.CreateGuest(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// Update rewrites a guest's editable fields in place.
func (s *GuestService) Update(ctx context.Context, guest *models.Guest) (*models.Guest, error) {
	if err := s.store.UpdateGuest(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// Remove deletes a guest. This is the only way a guest leaves the list.
func (s *GuestService) Remove(ctx context.Context, guestID string) error {
	return s.store.DeleteGuest(ctx, guestID)
}

// ConfirmRSVP turns a public form submission into a guest record. This
// is the sole producer of rsvp-form sourced guests: attending maps to a
// confirmed status, declining to declined. The created record is
// returned and is immediately part of the list.
func (s *GuestService) ConfirmRSVP(ctx context.Context, weddingID string, form *models.RSVPForm) (*models.Guest, error) {
	if err := validate.RSVP(form); err != nil {
		return nil, err
	}

	status := models.RSVPDeclined
	if form.Attending {
		status = models.RSVPConfirmed
	}

	guest := &models.Guest{
		WeddingID:           weddingID,
		Name:                form.Name,
		Email:               form.Email,
		Phone:               form.Phone,
		RSVPStatus:          status,
		NumberOfGuests:      form.NumberOfGuests,
		DietaryRestrictions: form.DietaryRestrictions,
		Source:              models.SourceRSVPForm,
	}

	if err := s.store.CreateGuest(ctx, guest); err != nil {
		return nil, err
	}

	slog.Info("RSVP received",
		"wedding_id", weddingID,
		"guest_id", guest.ID,
		"status", status,
		"party_size", guest.NumberOfGuests,
	)
	return guest, nil
}

// ImportCSV bulk-creates manual guests from a CSV stream with the
// header: name,email,phone,plus_one,number_of_guests,dietary_restrictions.
// Rows missing a name are skipped; the import stops at the first
// malformed record and reports how many guests were created.
func (s *GuestService) ImportCSV(ctx context.Context, weddingID string, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate short rows

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: missing CSV header", validate.ErrInvalid)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["name"]; !ok {
		return 0, fmt.Errorf("%w: CSV header must include a name column", validate.ErrInvalid)
	}

	created := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return created, fmt.Errorf("%w: malformed CSV row: %v", validate.ErrInvalid, err)
		}

		name := field(record, col, "name")
		if strings.TrimSpace(name) == "" {
			continue
		}

		guest := &models.Guest{
			WeddingID:           weddingID,
			Name:                name,
			Email:               field(record, col, "email"),
			Phone:               field(record, col, "phone"),
			RSVPStatus:          models.RSVPPending,
			PlusOne:             parseBool(field(record, col, "plus_one")),
			NumberOfGuests:      parseCount(field(record, col, "number_of_guests")),
			DietaryRestrictions: field(record, col, "dietary_restrictions"),
			Source:              models.SourceManual,
		}

		if err := s.store.CreateGuest(ctx, guest); err != nil {
			return created, err
		}
		created++
	}

	slog.Info("Guest CSV imported", "wedding_id", weddingID, "created", created)
	return created, nil
}

func field(record []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(strings.ToLower(s))
	return b
}

func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
