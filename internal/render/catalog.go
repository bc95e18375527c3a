// Package render turns a wedding configuration into the published site's
// HTML. One generic renderer is parameterized by a per-template "skin"
// (color tokens, font, default content), so all templates share a single
// section structure: switching templates restyles the site but can never
// drop configured content.
package render

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/veugravata/backend/internal/models"
)

//go:embed skins.yaml
var skinsYAML []byte

// Palette holds the color tokens of a skin.
type Palette struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// ContentDefaults is the per-skin default content table. Fields mirror
// the overridable string fields of models.SiteContent.
type ContentDefaults struct {
	HeroTitle           string `yaml:"heroTitle"`
	HeroSubtitle        string `yaml:"heroSubtitle"`
	StoryTitle          string `yaml:"storyTitle"`
	TimelineTitle       string `yaml:"timelineTitle"`
	RSVPTitle           string `yaml:"rsvpTitle"`
	RSVPMessage         string `yaml:"rsvpMessage"`
	GiftTitle           string `yaml:"giftTitle"`
	GiftMessage         string `yaml:"giftMessage"`
	TravelTitle         string `yaml:"travelTitle"`
	AccommodationsTitle string `yaml:"accommodationsTitle"`
	GalleryTitle        string `yaml:"galleryTitle"`
	DressCodeTitle      string `yaml:"dressCodeTitle"`
}

// Skin is the visual identity of one template.
type Skin struct {
	Name       string          `yaml:"name"`
	FontFamily string          `yaml:"fontFamily"`
	Palette    Palette         `yaml:"palette"`
	Defaults   ContentDefaults `yaml:"defaults"`
}

type catalog struct {
	Skins map[string]*Skin `yaml:"skins"`
}

var skins map[string]*Skin

func init() {
	var c catalog
	if err := yaml.Unmarshal(skinsYAML, &c); err != nil {
		panic(fmt.Sprintf("render: bad skin catalog: %v", err))
	}
	for _, id := range models.TemplateIDs {
		if _, ok := c.Skins[id]; !ok {
			panic(fmt.Sprintf("render: skin catalog missing template %q", id))
		}
	}
	skins = c.Skins
}

// SkinFor returns the skin for a template id, falling back to the default
// template for unknown ids.
func SkinFor(templateID string) *Skin {
	if s, ok := skins[templateID]; ok {
		return s
	}
	return skins[models.DefaultTemplate]
}

// MergeContent overlays the couple's content on the skin's defaults.
// The caller wins field by field; a default is used only when the
// caller's field is unset. Visibility flags always come from the caller.
func MergeContent(skin *Skin, c models.SiteContent) models.SiteContent {
	merged := c
	d := skin.Defaults

	fallback(&merged.HeroTitle, d.HeroTitle)
	fallback(&merged.HeroSubtitle, d.HeroSubtitle)
	fallback(&merged.StoryTitle, d.StoryTitle)
	fallback(&merged.TimelineTitle, d.TimelineTitle)
	fallback(&merged.RSVPTitle, d.RSVPTitle)
	fallback(&merged.RSVPMessage, d.RSVPMessage)
	fallback(&merged.GiftTitle, d.GiftTitle)
	fallback(&merged.GiftMessage, d.GiftMessage)
	fallback(&merged.TravelTitle, d.TravelTitle)
	fallback(&merged.AccommodationsTitle, d.AccommodationsTitle)
	fallback(&merged.GalleryTitle, d.GalleryTitle)
	fallback(&merged.DressCodeTitle, d.DressCodeTitle)

	return merged
}

func fallback(field *string, def string) {
	if *field == "" {
		*field = def
	}
}
