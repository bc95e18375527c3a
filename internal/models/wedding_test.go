package models

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestWeddingPatchApply(t *testing.T) {
	t.Run("only non-nil fields are merged", func(t *testing.T) {
		w := &Wedding{
			Partner1Name: "Ana",
			Partner2Name: "Bruno",
			Location:     "São Paulo",
			TemplateID:   TemplateClassico,
		}

		patch := &WeddingPatch{Venue: strPtr("Espaço Jardim")}
		patch.Apply(w)

		if w.Venue != "Espaço Jardim" {
			t.Errorf("Venue = %q, want Espaço Jardim", w.Venue)
		}
		if w.Partner1Name != "Ana" || w.Partner2Name != "Bruno" {
			t.Error("partner names changed by unrelated patch")
		}
		if w.Location != "São Paulo" {
			t.Errorf("Location = %q, want São Paulo", w.Location)
		}
	})

	t.Run("banking patch preserves dress code", func(t *testing.T) {
		w := &Wedding{
			DressCode: &DressCode{
				Guests: &DressCodeGroup{Enabled: true, Palette: []string{"#1a2b3c"}},
			},
		}

		patch := &WeddingPatch{
			BankingInfo: &BankingInfo{BankName: "Banco do Brasil", HolderName: "Ana Silva"},
		}
		patch.Apply(w)

		if w.BankingInfo == nil || w.BankingInfo.BankName != "Banco do Brasil" {
			t.Error("banking info not merged")
		}
		if w.DressCode == nil || w.DressCode.Guests == nil {
			t.Fatal("dress code erased by banking patch")
		}
		if len(w.DressCode.Guests.Palette) != 1 {
			t.Error("dress code palette lost")
		}
	})

	t.Run("non-nil subtree replaces wholesale", func(t *testing.T) {
		w := &Wedding{
			DressCode: &DressCode{
				Guests:      &DressCodeGroup{Enabled: true},
				Bridesmaids: &DressCodeGroup{Enabled: true},
			},
		}

		patch := &WeddingPatch{
			DressCode: &DressCode{Guests: &DressCodeGroup{Enabled: false}},
		}
		patch.Apply(w)

		if w.DressCode.Bridesmaids != nil {
			t.Error("old subtree survived a wholesale replace")
		}
		if w.DressCode.Guests.Enabled {
			t.Error("replaced group still enabled")
		}
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		w := &Wedding{Partner1Name: "Ana", CurrentStep: 4, SiteContent: DefaultSiteContent()}
		before := *w

		(&WeddingPatch{}).Apply(w)

		if w.Partner1Name != before.Partner1Name || w.CurrentStep != before.CurrentStep {
			t.Error("empty patch mutated the wedding")
		}
		if !reflect.DeepEqual(w.SiteContent, before.SiteContent) {
			t.Error("empty patch mutated site content")
		}
	})
}

func TestIsPublished(t *testing.T) {
	w := &Wedding{}
	if w.IsPublished() {
		t.Error("new wedding reports published")
	}

	ts := int64(1700000000)
	w.PublishedAt = &ts
	if !w.IsPublished() {
		t.Error("wedding with PublishedAt reports unpublished")
	}
}

func TestDefaultSiteContent(t *testing.T) {
	c := DefaultSiteContent()

	flags := []bool{
		c.ShowCountdown, c.ShowStorySection, c.ShowTimelineSection,
		c.ShowRSVPSection, c.ShowGiftSection, c.ShowTravelSection,
		c.ShowAccommodationsSection, c.ShowGallerySection,
		c.ShowHashtagSection, c.ShowDressCodeSection,
	}
	for i, f := range flags {
		if !f {
			t.Errorf("default flag %d is false, want all visible", i)
		}
	}
	if c.HeroTitle != "" || c.StoryText != "" {
		t.Error("default content has preset text, want unset")
	}
}
