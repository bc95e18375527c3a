package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/veugravata/backend/internal/mail"
	"github.com/veugravata/backend/internal/metrics"
	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/stats"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/validate"
)

var (
	// ErrNoEmail is returned when sending to a guest without an address.
	ErrNoEmail = errors.New("guest has no email address")
)

// InvitationService sends invitation email and tracks each guest's
// delivery status, fed by the provider webhook.
type InvitationService struct {
	store         storage.Store
	sender        mail.Sender
	publicBaseURL string
}

// NewInvitationService creates a new InvitationService. publicBaseURL
// prefixes the site link embedded in invitations.
func NewInvitationService(store storage.Store, sender mail.Sender, publicBaseURL string) *InvitationService {
	return &InvitationService{
		store:         store,
		sender:        sender,
		publicBaseURL: publicBaseURL,
	}
}

// Send delivers (or re-delivers) the invitation for one guest. The
// wedding must be published: the invitation links to the public site.
// A send failure is recorded as a failed attempt, not lost.
func (s *InvitationService) Send(ctx context.Context, guestID string) (*models.Invitation, error) {
	guest, err := s.store.GetGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest.Email == "" {
		return nil, fmt.Errorf("%w: guest %s", ErrNoEmail, guestID)
	}

	wedding, err := s.store.GetWedding(ctx, guest.WeddingID)
	if err != nil {
		return nil, err
	}
	if !wedding.IsPublished() {
		return nil, fmt.Errorf("%w: wedding %s", ErrNotPublished, wedding.ID)
	}

	inv, err := s.store.GetInvitationByGuest(ctx, guestID)
	if errors.Is(err, storage.ErrNotFound) {
		inv = &models.Invitation{
			WeddingID: guest.WeddingID,
			GuestID:   guestID,
			Status:    models.InvitationNotSent,
		}
	} else if err != nil {
		return nil, err
	}

	inv.Email = guest.Email
	inv.Attempts++

	coupleNames := wedding.Partner1Name + " & " + wedding.Partner2Name
	siteURL := s.publicBaseURL + "/s/" + wedding.Slug

	if sendErr := s.sender.SendInvitation(guest.Email, coupleNames, siteURL); sendErr != nil {
		inv.Status = models.InvitationFailed
		if err := s.store.UpsertInvitation(ctx, inv); err != nil {
			return nil, err
		}
		metrics.InvitationsSent.WithLabelValues("failed").Inc()
		slog.Error("Invitation send failed", "guest_id", guestID, "error", sendErr)
		return inv, fmt.Errorf("failed to send invitation: %w", sendErr)
	}

	metrics.InvitationsSent.WithLabelValues("sent").Inc()
	inv.Status = models.InvitationSent
	inv.SentAt = nowUnix()
	if err := s.store.UpsertInvitation(ctx, inv); err != nil {
		return nil, err
	}

	slog.Info("Invitation sent", "guest_id", guestID, "attempts", inv.Attempts)
	return inv, nil
}

// SendBulk delivers invitations to every guest with an email address
// that has not been sent one yet. Per-guest failures are logged and
// skipped; the count of successful sends is returned.
func (s *InvitationService) SendBulk(ctx context.Context, weddingID string) (int, error) {
	guests, err := s.store.ListGuests(ctx, weddingID)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, guest := range guests {
		if guest.Email == "" {
			continue
		}
		if inv, err := s.store.GetInvitationByGuest(ctx, guest.ID); err == nil && inv.SentAt > 0 {
			continue // already invited, use Send to resend explicitly
		}
		if _, err := s.Send(ctx, guest.ID); err != nil {
			slog.Warn("Bulk invitation skipped", "guest_id", guest.ID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Bulk invitations sent", "wedding_id", weddingID, "sent", sent)
	return sent, nil
}

// StatusByGuest returns the delivery record for one guest. Guests never
// sent an invitation report not_sent rather than an error.
func (s *InvitationService) StatusByGuest(ctx context.Context, guestID string) (*models.Invitation, error) {
	inv, err := s.store.GetInvitationByGuest(ctx, guestID)
	if errors.Is(err, storage.ErrNotFound) {
		guest, err := s.store.GetGuest(ctx, guestID)
		if err != nil {
			return nil, err
		}
		return &models.Invitation{
			WeddingID: guest.WeddingID,
			GuestID:   guestID,
			Email:     guest.Email,
			Status:    models.InvitationNotSent,
		}, nil
	}
	return inv, err
}

// List returns all delivery records for a wedding.
func (s *InvitationService) List(ctx context.Context, weddingID string) ([]models.Invitation, error) {
	return s.store.ListInvitations(ctx, weddingID)
}

// Stats aggregates delivery outcomes for a wedding.
func (s *InvitationService) Stats(ctx context.Context, weddingID string) (models.InvitationStats, error) {
	invitations, err := s.store.ListInvitations(ctx, weddingID)
	if err != nil {
		return models.InvitationStats{}, err
	}
	return stats.ComputeInvitationStats(invitations), nil
}

// HandleDeliveryWebhook applies a provider event (delivered, opened,
// clicked, bounced, failed) to an invitation. Events that would move the
// status backwards are ignored so out-of-order webhooks can't erase
// progress.
func (s *InvitationService) HandleDeliveryWebhook(ctx context.Context, invitationID string, event models.InvitationStatus) error {
	if !models.ValidInvitationStatus(event) || event == models.InvitationNotSent || event == models.InvitationPending {
		return fmt.Errorf("%w: unknown delivery event %q", validate.ErrInvalid, event)
	}

	inv, err := s.store.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	}

	if statusRank(event) <= statusRank(inv.Status) {
		return nil // stale or duplicate event
	}

	inv.Status = event
	if err := s.store.UpsertInvitation(ctx, inv); err != nil {
		return err
	}

	slog.Info("Invitation status updated", "invitation_id", invitationID, "status", event)
	return nil
}

// statusRank orders delivery statuses along the engagement funnel.
// Bounced and failed are terminal and outrank everything.
func statusRank(s models.InvitationStatus) int {
	switch s {
	case models.InvitationNotSent:
		return 0
	case models.InvitationPending:
		return 1
	case models.InvitationSent:
		return 2
	case models.InvitationDelivered:
		return 3
	case models.InvitationOpened:
		return 4
	case models.InvitationClicked:
		return 5
	case models.InvitationBounced, models.InvitationFailed:
		return 6
	}
	return -1
}
