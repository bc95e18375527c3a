package models

// SiteContent is the flat per-section configuration of a published site.
// Every optional section pairs its content fields with a Show flag; a
// section whose flag is false must leave no trace in the rendered output,
// even when its content fields are populated. Ceremony and reception
// details are always shown and carry no flag.
//
// Empty string fields mean "unset": the renderer falls back to the active
// template's default for that field, never to a global fallback.
type SiteContent struct {
	// Hero
	HeroTitle    string `json:"heroTitle,omitempty"`
	HeroSubtitle string `json:"heroSubtitle,omitempty"`
	HeroImageURL string `json:"heroImageUrl,omitempty"`

	// Countdown to the wedding date.
	ShowCountdown bool `json:"showCountdown"`

	// Our story
	StoryTitle       string `json:"storyTitle,omitempty"`
	StoryText        string `json:"storyText,omitempty"`
	ShowStorySection bool   `json:"showStorySection"`

	// Timeline of the relationship.
	TimelineTitle       string          `json:"timelineTitle,omitempty"`
	TimelineEvents      []TimelineEntry `json:"timelineEvents,omitempty"`
	ShowTimelineSection bool            `json:"showTimelineSection"`

	// Ceremony and reception details (always rendered).
	CeremonyTime     string `json:"ceremonyTime,omitempty"`
	CeremonyAddress  string `json:"ceremonyAddress,omitempty"`
	ReceptionTime    string `json:"receptionTime,omitempty"`
	ReceptionAddress string `json:"receptionAddress,omitempty"`

	// RSVP call to action.
	RSVPTitle       string `json:"rsvpTitle,omitempty"`
	RSVPMessage     string `json:"rsvpMessage,omitempty"`
	ShowRSVPSection bool   `json:"showRsvpSection"`

	// Gift registry call to action.
	GiftTitle       string `json:"giftTitle,omitempty"`
	GiftMessage     string `json:"giftMessage,omitempty"`
	ShowGiftSection bool   `json:"showGiftSection"`

	// Travel tips for out-of-town guests.
	TravelTitle       string `json:"travelTitle,omitempty"`
	TravelTips        string `json:"travelTips,omitempty"`
	ShowTravelSection bool   `json:"showTravelSection"`

	// Accommodations
	AccommodationsTitle       string `json:"accommodationsTitle,omitempty"`
	AccommodationsText        string `json:"accommodationsText,omitempty"`
	ShowAccommodationsSection bool   `json:"showAccommodationsSection"`

	// Gallery
	GalleryTitle       string   `json:"galleryTitle,omitempty"`
	GalleryImages      []string `json:"galleryImages,omitempty"`
	ShowGallerySection bool     `json:"showGallerySection"`

	// Wedding hashtag
	Hashtag            string `json:"hashtag,omitempty"`
	ShowHashtagSection bool   `json:"showHashtagSection"`

	// Dress code (content lives in Wedding.DressCode).
	DressCodeTitle       string `json:"dressCodeTitle,omitempty"`
	ShowDressCodeSection bool   `json:"showDressCodeSection"`
}

// TimelineEntry is one milestone in the couple's timeline section.
type TimelineEntry struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// DefaultSiteContent returns the canonical initial SiteContent for a new
// wedding: every section visible, all content fields unset so the active
// template's defaults apply.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		ShowCountdown:             true,
		ShowStorySection:          true,
		ShowTimelineSection:       true,
		ShowRSVPSection:           true,
		ShowGiftSection:           true,
		ShowTravelSection:         true,
		ShowAccommodationsSection: true,
		ShowGallerySection:        true,
		ShowHashtagSection:        true,
		ShowDressCodeSection:      true,
	}
}
