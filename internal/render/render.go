package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/veugravata/backend/internal/models"
)

// Page is the assembled input for one render pass: the wedding's own
// fields, the merged content, and the visible custom sections in order.
type Page struct {
	Partner1Name string
	Partner2Name string
	Date         string
	DaysUntil    int
	Location     string
	Venue        string

	PrimaryColor   string
	SecondaryColor string
	Skin           *Skin

	Content   models.SiteContent
	Sections  []models.CustomSection
	DressCode *models.DressCode
	IsPreview bool
}

// Render produces the public site HTML for a wedding. The section order
// is fixed; a section whose visibility flag is off is skipped entirely,
// and custom sections are injected between the event details and the
// RSVP block in their Order sequence.
func Render(w *models.Wedding, sections []models.CustomSection, isPreview bool) ([]byte, error) {
	page := BuildPage(w, sections, isPreview)

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render site: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildPage merges skin defaults with the couple's content and filters
// custom sections down to the visible ones. Exposed separately so tests
// can assert on the merged model without parsing HTML.
func BuildPage(w *models.Wedding, sections []models.CustomSection, isPreview bool) *Page {
	skin := SkinFor(w.TemplateID)

	page := &Page{
		Partner1Name:   w.Partner1Name,
		Partner2Name:   w.Partner2Name,
		Location:       w.Location,
		Venue:          w.Venue,
		PrimaryColor:   w.PrimaryColor,
		SecondaryColor: w.SecondaryColor,
		Skin:           skin,
		Content:        MergeContent(skin, w.SiteContent),
		IsPreview:      isPreview,
	}

	// Color overrides win over the skin palette.
	if page.PrimaryColor == "" {
		page.PrimaryColor = skin.Palette.Primary
	}
	if page.SecondaryColor == "" {
		page.SecondaryColor = skin.Palette.Secondary
	}

	if w.Date != nil && *w.Date != "" {
		page.Date = formatDate(*w.Date)
		page.DaysUntil = daysUntil(*w.Date)
	}

	for _, sec := range sections {
		if sec.IsVisible {
			page.Sections = append(page.Sections, sec)
		}
	}

	// Dress code is rendered only when the section flag is on; within it,
	// disabled groups are skipped without being deleted.
	if w.SiteContent.ShowDressCodeSection {
		page.DressCode = w.DressCode
	}

	return page
}

func formatDate(iso string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return iso
}

func daysUntil(iso string) int {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, iso); err == nil {
			d := int(time.Until(t).Hours() / 24)
			if d < 0 {
				return 0
			}
			return d
		}
	}
	return 0
}

var pageTmpl = template.Must(template.New("site").Parse(pageHTML))

// pageHTML is the single section skeleton shared by all skins. Visual
// variation comes exclusively from the CSS custom properties and font
// injected from the skin, which keeps the section semantics identical
// across templates.
const pageHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Partner1Name}} &amp; {{.Partner2Name}}</title>
<style>
:root {
  --primary: {{.PrimaryColor}};
  --secondary: {{.SecondaryColor}};
  --background: {{.Skin.Palette.Background}};
  --text: {{.Skin.Palette.Text}};
}
body { font-family: {{.Skin.FontFamily}}; background: var(--background); color: var(--text); margin: 0; }
section { padding: 3rem 1.5rem; max-width: 860px; margin: 0 auto; }
h1, h2 { color: var(--primary); }
.hero { text-align: center; padding-top: 5rem; }
.countdown, .hashtag { text-align: center; color: var(--secondary); }
.swatch { display: inline-block; width: 2rem; height: 2rem; border-radius: 50%; margin-right: .5rem; }
footer { text-align: center; padding: 2rem; font-size: .85rem; color: var(--secondary); }
</style>
</head>
<body>
{{if .IsPreview}}<div class="preview-banner">Pré-visualização</div>{{end}}

<section class="hero">
  {{if .Content.HeroImageURL}}<img src="{{.Content.HeroImageURL}}" alt="" class="hero-image">{{end}}
  <h1>{{.Partner1Name}} &amp; {{.Partner2Name}}</h1>
  <p>{{.Content.HeroTitle}}</p>
  {{if .Content.HeroSubtitle}}<p>{{.Content.HeroSubtitle}}</p>{{end}}
  {{if .Date}}<p class="date">{{.Date}}{{if .Location}} &mdash; {{.Location}}{{end}}</p>{{end}}
</section>

{{if and .Content.ShowCountdown .Date}}
<section class="countdown">
  <p><strong>{{.DaysUntil}}</strong> dias para o grande dia</p>
</section>
{{end}}

{{if .Content.ShowStorySection}}
<section class="story">
  <h2>{{.Content.StoryTitle}}</h2>
  <p>{{.Content.StoryText}}</p>
</section>
{{end}}

{{if .Content.ShowTimelineSection}}
<section class="timeline">
  <h2>{{.Content.TimelineTitle}}</h2>
  <ul>
  {{range .Content.TimelineEvents}}
    <li><strong>{{.Date}}</strong> {{.Title}}{{if .Description}} &mdash; {{.Description}}{{end}}</li>
  {{end}}
  </ul>
</section>
{{end}}

<section class="details">
  <h2>Cerimônia &amp; Recepção</h2>
  {{if .Venue}}<p class="venue">{{.Venue}}</p>{{end}}
  {{if .Content.CeremonyTime}}<p>Cerimônia: {{.Content.CeremonyTime}}{{if .Content.CeremonyAddress}}, {{.Content.CeremonyAddress}}{{end}}</p>{{end}}
  {{if .Content.ReceptionTime}}<p>Recepção: {{.Content.ReceptionTime}}{{if .Content.ReceptionAddress}}, {{.Content.ReceptionAddress}}{{end}}</p>{{end}}
</section>

{{range .Sections}}
<section class="custom custom-{{.Type}}" data-section-id="{{.ID}}">
  {{if .Title}}<h2>{{.Title}}</h2>{{end}}
  {{if eq .Type "image"}}
    <img src="{{.ImageURL}}" alt="{{.Title}}">
  {{else if eq .Type "video"}}
    <a href="{{.VideoURL}}">{{if .Title}}{{.Title}}{{else}}Assista{{end}}</a>
  {{else if eq .Type "quote"}}
    <blockquote>{{.Content}}</blockquote>
  {{else if eq .Type "map"}}
    <p class="map-address">{{.Content}}</p>
  {{else}}
    <p>{{.Content}}</p>
  {{end}}
</section>
{{end}}

{{if .Content.ShowRSVPSection}}
<section class="rsvp">
  <h2>{{.Content.RSVPTitle}}</h2>
  <p>{{.Content.RSVPMessage}}</p>
</section>
{{end}}

{{if .Content.ShowGiftSection}}
<section class="gifts">
  <h2>{{.Content.GiftTitle}}</h2>
  <p>{{.Content.GiftMessage}}</p>
</section>
{{end}}

{{if .Content.ShowTravelSection}}
<section class="travel">
  <h2>{{.Content.TravelTitle}}</h2>
  <p>{{.Content.TravelTips}}</p>
</section>
{{end}}

{{if .Content.ShowAccommodationsSection}}
<section class="accommodations">
  <h2>{{.Content.AccommodationsTitle}}</h2>
  <p>{{.Content.AccommodationsText}}</p>
</section>
{{end}}

{{if and .Content.ShowGallerySection .Content.GalleryImages}}
<section class="gallery">
  <h2>{{.Content.GalleryTitle}}</h2>
  {{range .Content.GalleryImages}}<img src="{{.}}" alt="">{{end}}
</section>
{{end}}

{{if and .Content.ShowDressCodeSection .DressCode}}
<section class="dresscode">
  <h2>{{.Content.DressCodeTitle}}</h2>
  {{if and .DressCode.Guests .DressCode.Guests.Enabled}}
  <div class="dresscode-group">
    <h3>Convidados</h3>
    {{range .DressCode.Guests.Palette}}<span class="swatch" style="background: {{.}}"></span>{{end}}
    {{range .DressCode.Guests.LengthOptions}}<span class="length">{{.}}</span>{{end}}
  </div>
  {{end}}
  {{if and .DressCode.Bridesmaids .DressCode.Bridesmaids.Enabled}}
  <div class="dresscode-group">
    <h3>Madrinhas</h3>
    {{range .DressCode.Bridesmaids.Palette}}<span class="swatch" style="background: {{.}}"></span>{{end}}
    {{range .DressCode.Bridesmaids.LengthOptions}}<span class="length">{{.}}</span>{{end}}
  </div>
  {{end}}
  {{if and .DressCode.Groomsmen .DressCode.Groomsmen.Enabled}}
  <div class="dresscode-group">
    <h3>Padrinhos</h3>
    {{range .DressCode.Groomsmen.Palette}}<span class="swatch" style="background: {{.}}"></span>{{end}}
    {{range .DressCode.Groomsmen.LengthOptions}}<span class="length">{{.}}</span>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if and .Content.ShowHashtagSection .Content.Hashtag}}
<section class="hashtag">
  <p>{{.Content.Hashtag}}</p>
</section>
{{end}}

<footer>
  {{.Partner1Name}} &amp; {{.Partner2Name}}{{if .Date}} &middot; {{.Date}}{{end}}
</footer>
</body>
</html>
`
