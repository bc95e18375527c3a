// Package stats computes derived views over guest lists and registries.
// These are pure functions: they never mutate their inputs, so dashboard
// reads cannot corrupt store state.
package stats

import (
	"strings"

	"github.com/veugravata/backend/internal/models"
)

// GuestStats aggregates a guest list by RSVP status.
type GuestStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`

	// ExpectedHeadcount sums NumberOfGuests over confirmed records.
	ExpectedHeadcount int `json:"expectedHeadcount"`
}

// ComputeGuestStats tallies the list by status.
func ComputeGuestStats(guests []models.Guest) GuestStats {
	var s GuestStats
	s.Total = len(guests)
	for _, g := range guests {
		switch g.RSVPStatus {
		case models.RSVPConfirmed:
			s.Confirmed++
			s.ExpectedHeadcount += g.NumberOfGuests
		case models.RSVPDeclined:
			s.Declined++
		default:
			s.Pending++
		}
	}
	return s
}

// FilterGuests returns the guests matching the given status (empty means
// any) and whose name or email contains the query, case-insensitively.
func FilterGuests(guests []models.Guest, status models.RSVPStatus, query string) []models.Guest {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []models.Guest
	for _, g := range guests {
		if status != "" && g.RSVPStatus != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(g.Name), q) &&
			!strings.Contains(strings.ToLower(g.Email), q) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// RegistryStats aggregates funding progress across a registry.
type RegistryStats struct {
	Gifts          int     `json:"gifts"`
	Selected       int     `json:"selected"`
	FullyFunded    int     `json:"fullyFunded"`
	TotalPrice     float64 `json:"totalPrice"`
	TotalCollected float64 `json:"totalCollected"`
}

// ComputeRegistryStats tallies funding over the selected subset of the
// catalog. Unselected gifts are suggestions and don't count toward
// totals.
func ComputeRegistryStats(gifts []models.Gift) RegistryStats {
	var s RegistryStats
	s.Gifts = len(gifts)
	for _, g := range gifts {
		if !g.IsSelected {
			continue
		}
		s.Selected++
		s.TotalPrice += g.Price
		s.TotalCollected += g.ContributedAmount
		if g.ContributedAmount >= g.Price {
			s.FullyFunded++
		}
	}
	return s
}

// ComputeInvitationStats tallies delivery outcomes. Opened and clicked
// imply delivered; the counts are cumulative the way campaign dashboards
// report them.
func ComputeInvitationStats(invitations []models.Invitation) models.InvitationStats {
	var s models.InvitationStats
	s.Total = len(invitations)
	for _, inv := range invitations {
		switch inv.Status {
		case models.InvitationSent:
			s.Sent++
		case models.InvitationDelivered:
			s.Sent++
			s.Delivered++
		case models.InvitationOpened:
			s.Sent++
			s.Delivered++
			s.Opened++
		case models.InvitationClicked:
			s.Sent++
			s.Delivered++
			s.Opened++
			s.Clicked++
		case models.InvitationBounced:
			s.Sent++
			s.Bounced++
		case models.InvitationFailed:
			s.Failed++
		}
	}
	return s
}
