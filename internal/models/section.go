package models

import "sort"

// SectionType identifies the kind of a user-authored content block.
type SectionType string

const (
	SectionText     SectionType = "text"
	SectionImage    SectionType = "image"
	SectionQuote    SectionType = "quote"
	SectionVideo    SectionType = "video"
	SectionMap      SectionType = "map"
	SectionTimeline SectionType = "timeline"
)

// ValidSectionType reports whether t is one of the supported block types.
func ValidSectionType(t SectionType) bool {
	switch t {
	case SectionText, SectionImage, SectionQuote, SectionVideo, SectionMap, SectionTimeline:
		return true
	}
	return false
}

// CustomSection is an ordered, user-authored content block injected into
// the published site between the built-in sections.
type CustomSection struct {
	// ID is the unique identifier for the section (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"weddingId"`

	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Content string      `json:"content"`

	// ImageURL is required for image sections; VideoURL for video sections.
	// Map sections keep their address in Content.
	ImageURL string `json:"imageUrl,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`

	// Order determines the render sequence. Across a wedding's sections
	// the values must always be a dense 0..N-1 sequence; a gap or
	// duplicate is a correctness bug for rendering order.
	Order int `json:"order"`

	// IsVisible gates rendering without affecting Order.
	IsVisible bool `json:"isVisible"`
}

// NormalizeOrder sorts sections by Order and renumbers them densely from
// zero. Every mutation of a wedding's section list funnels through this
// single step rather than re-indexing at each call site.
func NormalizeOrder(sections []CustomSection) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	for i := range sections {
		sections[i].Order = i
	}
}
