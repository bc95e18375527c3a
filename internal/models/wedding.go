package models

// Wedding is the root configuration for a couple's site. It is created
// with defaults on the first onboarding visit and mutated incrementally
// at every wizard step via partial merge.
type Wedding struct {
	// ID is the unique identifier for the wedding (UUID format).
	ID string `json:"id"`

	// UserID is the owning couple's account.
	UserID string `json:"userId"`

	// Slug is the public URL segment for the published site.
	// Empty until the wedding is published.
	Slug string `json:"slug,omitempty"`

	Partner1Name string `json:"partner1Name"`
	Partner2Name string `json:"partner2Name"`

	// Date is the wedding date as an ISO 8601 string (nil until chosen).
	Date *string `json:"date"`

	Location string `json:"location"`
	Venue    string `json:"venue"`

	// TemplateID selects one of the fixed visual templates. It determines
	// which skin and default palette apply, never which sections exist.
	TemplateID string `json:"templateId"`

	// PrimaryColor and SecondaryColor override the template's palette.
	// Empty means "inherit from the template default".
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`

	// CurrentStep is the onboarding wizard position, clamped to
	// [FirstStep, LastStep].
	CurrentStep int `json:"currentStep"`

	// BankingInfo is the payout destination for gift contributions.
	// Encrypted at rest by the storage layer.
	BankingInfo *BankingInfo `json:"bankingInfo,omitempty"`

	// DressCode holds optional per-audience dress code groups.
	DressCode *DressCode `json:"dressCode,omitempty"`

	// SiteContent is the per-section content and visibility configuration.
	SiteContent SiteContent `json:"siteContent"`

	// PublishedAt is the Unix timestamp of the explicit publish
	// transition. Nil means the site is not visible at its slug.
	PublishedAt *int64 `json:"publishedAt,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Wizard step bounds. Step numbers outside this range are clamped,
// never rejected.
const (
	FirstStep = 1
	LastStep  = 10
)

// IsPublished reports whether the site is visible at its public slug.
func (w *Wedding) IsPublished() bool {
	return w.PublishedAt != nil
}

// BankingInfo is the payout destination for gift contributions.
type BankingInfo struct {
	BankName      string `json:"bankName"`
	RoutingNumber string `json:"routingNumber"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
}

// DressCode groups dress guidance per audience. A disabled group keeps
// its palette and length options but is excluded from publication.
type DressCode struct {
	Guests      *DressCodeGroup `json:"guests,omitempty"`
	Bridesmaids *DressCodeGroup `json:"bridesmaids,omitempty"`
	Groomsmen   *DressCodeGroup `json:"groomsmen,omitempty"`
}

// DressCodeGroup is the dress guidance for one audience.
type DressCodeGroup struct {
	// Enabled gates publication. A group with Enabled=false is skipped by
	// the renderer even when Palette and LengthOptions are populated.
	Enabled bool `json:"enabled"`

	// Palette is a list of hex color strings, e.g. "#1a2b3c".
	Palette []string `json:"palette,omitempty"`

	// LengthOptions lists the allowed garment lengths.
	LengthOptions []string `json:"lengthOptions,omitempty"`
}

// WeddingPatch is a partial update to a Wedding. Nil fields are left
// untouched by the merge; non-nil fields replace their subtree wholesale.
// Merging a patch that only sets BankingInfo must never erase DressCode.
type WeddingPatch struct {
	Partner1Name   *string      `json:"partner1Name,omitempty"`
	Partner2Name   *string      `json:"partner2Name,omitempty"`
	Date           *string      `json:"date,omitempty"`
	Location       *string      `json:"location,omitempty"`
	Venue          *string      `json:"venue,omitempty"`
	TemplateID     *string      `json:"templateId,omitempty"`
	PrimaryColor   *string      `json:"primaryColor,omitempty"`
	SecondaryColor *string      `json:"secondaryColor,omitempty"`
	BankingInfo    *BankingInfo `json:"bankingInfo,omitempty"`
	DressCode      *DressCode   `json:"dressCode,omitempty"`
	SiteContent    *SiteContent `json:"siteContent,omitempty"`
}

// Apply merges the patch into the wedding. Only non-nil patch fields are
// copied; everything else is preserved.
func (p *WeddingPatch) Apply(w *Wedding) {
	if p.Partner1Name != nil {
		w.Partner1Name = *p.Partner1Name
	}
	if p.Partner2Name != nil {
		w.Partner2Name = *p.Partner2Name
	}
	if p.Date != nil {
		w.Date = p.Date
	}
	if p.Location != nil {
		w.Location = *p.Location
	}
	if p.Venue != nil {
		w.Venue = *p.Venue
	}
	if p.TemplateID != nil {
		w.TemplateID = *p.TemplateID
	}
	if p.PrimaryColor != nil {
		w.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		w.SecondaryColor = *p.SecondaryColor
	}
	if p.BankingInfo != nil {
		w.BankingInfo = p.BankingInfo
	}
	if p.DressCode != nil {
		w.DressCode = p.DressCode
	}
	if p.SiteContent != nil {
		w.SiteContent = *p.SiteContent
	}
}
