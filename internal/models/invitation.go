package models

// InvitationStatus tracks an invitation through the delivery provider.
// Transitions only move forward except for resends, which restart the
// record at pending.
type InvitationStatus string

const (
	InvitationNotSent   InvitationStatus = "not_sent"
	InvitationPending   InvitationStatus = "pending"
	InvitationSent      InvitationStatus = "sent"
	InvitationDelivered InvitationStatus = "delivered"
	InvitationOpened    InvitationStatus = "opened"
	InvitationClicked   InvitationStatus = "clicked"
	InvitationBounced   InvitationStatus = "bounced"
	InvitationFailed    InvitationStatus = "failed"
)

// ValidInvitationStatus reports whether s is a known delivery status.
func ValidInvitationStatus(s InvitationStatus) bool {
	switch s {
	case InvitationNotSent, InvitationPending, InvitationSent, InvitationDelivered,
		InvitationOpened, InvitationClicked, InvitationBounced, InvitationFailed:
		return true
	}
	return false
}

// Invitation is the delivery record for one guest's email invitation.
// At most one record exists per guest; resending updates it in place.
type Invitation struct {
	// ID is the unique identifier for the invitation (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding; GuestID the recipient.
	WeddingID string `json:"weddingId"`
	GuestID   string `json:"guestId"`

	// Email is the address the invitation was sent to, captured at send
	// time so later guest edits don't rewrite history.
	Email string `json:"email"`

	Status InvitationStatus `json:"status"`

	// Attempts counts sends, including resends.
	Attempts int `json:"attempts"`

	// SentAt is the Unix timestamp of the most recent send (0 if never).
	SentAt int64 `json:"sentAt,omitempty"`

	UpdatedAt int64 `json:"updatedAt"`
}

// InvitationStats aggregates delivery status counts for a wedding.
type InvitationStats struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
	Bounced   int `json:"bounced"`
	Failed    int `json:"failed"`
}
