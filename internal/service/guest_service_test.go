package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/validate"
)

func TestGuestAddDefaults(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	guest, err := svc.Add(ctx, &models.Guest{WeddingID: wedding.ID, Name: "Carla"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if guest.RSVPStatus != models.RSVPPending {
		t.Errorf("RSVPStatus = %q, want pending", guest.RSVPStatus)
	}
	if guest.NumberOfGuests != 1 {
		t.Errorf("NumberOfGuests = %d, want 1", guest.NumberOfGuests)
	}
	if guest.Source != models.SourceManual {
		t.Errorf("Source = %q, want manual", guest.Source)
	}

	if _, err := svc.Add(ctx, &models.Guest{WeddingID: wedding.ID, Name: "  "}); !errors.Is(err, validate.ErrInvalid) {
		t.Errorf("Add nameless guest = %v, want ErrInvalid", err)
	}
}

func TestGuestConfirmRSVP(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	t.Run("attending maps to confirmed", func(t *testing.T) {
		guest, err := svc.ConfirmRSVP(ctx, wedding.ID, &models.RSVPForm{
			Name:           "Carla",
			Email:          "carla@example.com",
			Attending:      true,
			NumberOfGuests: 2,
		})
		if err != nil {
			t.Fatalf("ConfirmRSVP failed: %v", err)
		}
		if guest.RSVPStatus != models.RSVPConfirmed {
			t.Errorf("RSVPStatus = %q, want confirmed", guest.RSVPStatus)
		}
		if guest.Source != models.SourceRSVPForm {
			t.Errorf("Source = %q, want rsvp-form", guest.Source)
		}

		// Submission is immediately part of the guest list.
		guests, _ := svc.List(ctx, wedding.ID)
		found := false
		for _, g := range guests {
			if g.ID == guest.ID {
				found = true
			}
		}
		if !found {
			t.Error("RSVP submission missing from the guest list")
		}
	})

	t.Run("declining maps to declined", func(t *testing.T) {
		guest, err := svc.ConfirmRSVP(ctx, wedding.ID, &models.RSVPForm{
			Name:           "Davi",
			Attending:      false,
			NumberOfGuests: 1,
		})
		if err != nil {
			t.Fatalf("ConfirmRSVP failed: %v", err)
		}
		if guest.RSVPStatus != models.RSVPDeclined {
			t.Errorf("RSVPStatus = %q, want declined", guest.RSVPStatus)
		}
	})

	t.Run("invalid form is rejected", func(t *testing.T) {
		if _, err := svc.ConfirmRSVP(ctx, wedding.ID, &models.RSVPForm{Name: ""}); !errors.Is(err, validate.ErrInvalid) {
			t.Errorf("ConfirmRSVP with empty form = %v, want ErrInvalid", err)
		}
	})
}

func TestGuestFilterAndStats(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	if _, err := svc.Add(ctx, &models.Guest{WeddingID: wedding.ID, Name: "Ana Souza", Email: "ana@example.com"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.ConfirmRSVP(ctx, wedding.ID, &models.RSVPForm{Name: "Carla Lima", Attending: true, NumberOfGuests: 3}); err != nil {
		t.Fatalf("ConfirmRSVP failed: %v", err)
	}

	confirmed, err := svc.Filter(ctx, wedding.ID, models.RSVPConfirmed, "")
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].Name != "Carla Lima" {
		t.Errorf("Filter(confirmed) = %v, want Carla Lima", confirmed)
	}

	byQuery, err := svc.Filter(ctx, wedding.ID, "", "ANA")
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(byQuery) != 1 {
		t.Errorf("Filter(ANA) returned %d guests, want 1", len(byQuery))
	}

	st, err := svc.Stats(ctx, wedding.ID)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Total != 2 || st.Confirmed != 1 || st.Pending != 1 {
		t.Errorf("stats = %+v, want total 2, confirmed 1, pending 1", st)
	}
	if st.ExpectedHeadcount != 3 {
		t.Errorf("ExpectedHeadcount = %d, want 3", st.ExpectedHeadcount)
	}
}

func TestGuestImportCSV(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()

	t.Run("imports rows and applies defaults", func(t *testing.T) {
		wedding := seedWedding(t, store)
		csv := strings.Join([]string{
			"name,email,phone,plus_one,number_of_guests,dietary_restrictions",
			"Ana Souza,ana@example.com,11999990000,true,2,vegetariana",
			"Bruno Lima,,,false,,",
			",skipped@example.com,,,,",
		}, "\n")

		created, err := svc.ImportCSV(ctx, wedding.ID, strings.NewReader(csv))
		if err != nil {
			t.Fatalf("ImportCSV failed: %v", err)
		}
		if created != 2 {
			t.Errorf("created = %d, want 2 (nameless row skipped)", created)
		}

		guests, _ := svc.List(ctx, wedding.ID)
		for _, g := range guests {
			if g.Source != models.SourceManual || g.RSVPStatus != models.RSVPPending {
				t.Errorf("imported guest %q has source %q status %q", g.Name, g.Source, g.RSVPStatus)
			}
			if g.Name == "Ana Souza" && (!g.PlusOne || g.NumberOfGuests != 2) {
				t.Errorf("Ana Souza = %+v, want plus one with party of 2", g)
			}
			if g.Name == "Bruno Lima" && g.NumberOfGuests != 1 {
				t.Errorf("Bruno Lima party = %d, want default 1", g.NumberOfGuests)
			}
		}
	})

	t.Run("missing name column is rejected", func(t *testing.T) {
		wedding := seedWedding(t, store)
		_, err := svc.ImportCSV(ctx, wedding.ID, strings.NewReader("email\nx@example.com"))
		if !errors.Is(err, validate.ErrInvalid) {
			t.Errorf("ImportCSV without name column = %v, want ErrInvalid", err)
		}
	})

	t.Run("stops at a malformed row and reports progress", func(t *testing.T) {
		wedding := seedWedding(t, store)
		csv := "name,email\nAna,ana@example.com\n\"broken\nCarla,carla@example.com"

		created, err := svc.ImportCSV(ctx, wedding.ID, strings.NewReader(csv))
		if err == nil {
			t.Fatal("ImportCSV accepted a malformed row")
		}
		if created != 1 {
			t.Errorf("created = %d, want 1 before the malformed row", created)
		}
	})
}

func TestGuestUpdateAndRemove(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()
	wedding := seedWedding(t, store)

	guest, err := svc.Add(ctx, &models.Guest{WeddingID: wedding.ID, Name: "Carla"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	guest.RSVPStatus = models.RSVPConfirmed
	guest.NumberOfGuests = 2
	if _, err := svc.Update(ctx, guest); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	guests, _ := svc.List(ctx, wedding.ID)
	if guests[0].RSVPStatus != models.RSVPConfirmed || guests[0].NumberOfGuests != 2 {
		t.Errorf("updated guest = %+v", guests[0])
	}

	if err := svc.Remove(ctx, guest.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	guests, _ = svc.List(ctx, wedding.ID)
	if len(guests) != 0 {
		t.Errorf("guest list has %d entries after removal", len(guests))
	}
}
