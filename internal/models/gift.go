package models

// GiftCategory is the closed set of registry categories.
type GiftCategory string

const (
	CategoryKitchen    GiftCategory = "kitchen"
	CategoryHome       GiftCategory = "home"
	CategoryBedroom    GiftCategory = "bedroom"
	CategoryBathroom   GiftCategory = "bathroom"
	CategoryHoneymoon  GiftCategory = "honeymoon"
	CategoryExperience GiftCategory = "experience"
)

// ValidGiftCategory reports whether c is a known category.
func ValidGiftCategory(c GiftCategory) bool {
	switch c {
	case CategoryKitchen, CategoryHome, CategoryBedroom, CategoryBathroom,
		CategoryHoneymoon, CategoryExperience:
		return true
	}
	return false
}

// Gift is a registry catalog entry guests can fund, fully or partially.
type Gift struct {
	// ID is the unique identifier for the gift (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"weddingId"`

	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Category    GiftCategory `json:"category"`

	// IsSelected marks membership in the couple's chosen registry subset.
	// Only selected gifts appear on the published site.
	IsSelected bool `json:"isSelected"`

	// ContributedAmount is the confirmed total funded so far. It never
	// exceeds Price: contributions that would overshoot are rejected.
	ContributedAmount float64 `json:"contributedAmount"`

	// Contributors lists confirmed contributions, newest last.
	Contributors []Contribution `json:"contributors,omitempty"`

	CreatedAt int64 `json:"createdAt"`
}

// Remaining returns the amount still needed to fully fund the gift.
func (g *Gift) Remaining() float64 {
	r := g.Price - g.ContributedAmount
	if r < 0 {
		return 0
	}
	return r
}

// ContributionStatus tracks a contribution through the payment flow.
type ContributionStatus string

const (
	ContributionPending   ContributionStatus = "pending"
	ContributionConfirmed ContributionStatus = "confirmed"
	ContributionFailed    ContributionStatus = "failed"
)

// Contribution is one guest's payment toward a gift.
type Contribution struct {
	// ID is the unique identifier for the contribution (UUID format).
	ID string `json:"id"`

	// GiftID is the gift being funded.
	GiftID string `json:"giftId"`

	ContributorName string  `json:"contributorName"`
	Message         string  `json:"message,omitempty"`
	Amount          float64 `json:"amount"`

	// SessionID is the payment provider's checkout session reference,
	// matched by the payment webhook.
	SessionID string `json:"sessionId,omitempty"`

	Status    ContributionStatus `json:"status"`
	CreatedAt int64              `json:"createdAt"`
}
