package models

// RSVPStatus is a guest's attendance confirmation state.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// GuestSource records how a guest entered the list: added by the couple
// on the dashboard, or self-registered through the public RSVP form.
type GuestSource string

const (
	SourceManual   GuestSource = "manual"
	SourceRSVPForm GuestSource = "rsvp-form"
)

// Guest is one invited party on a wedding's guest list.
type Guest struct {
	// ID is the unique identifier for the guest (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"weddingId"`

	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	RSVPStatus RSVPStatus `json:"rsvpStatus"`

	// PlusOne marks whether the guest may bring a companion.
	PlusOne bool `json:"plusOne"`

	// NumberOfGuests is the headcount this record accounts for,
	// the guest included. Minimum 1.
	NumberOfGuests int `json:"numberOfGuests"`

	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`

	Source GuestSource `json:"source"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// RSVPForm is a public RSVP submission from the published site.
type RSVPForm struct {
	Name                string `json:"name"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Attending           bool   `json:"attending"`
	NumberOfGuests      int    `json:"numberOfGuests"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
}
