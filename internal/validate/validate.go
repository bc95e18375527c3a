// Package validate centralizes wizard-step validation as pure functions
// over the domain types, so the rules are unit-testable independent of
// the HTTP layer and reusable by the publish guard.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/veugravata/backend/internal/models"
)

// ErrInvalid is the sentinel wrapped by every validation failure.
var ErrInvalid = errors.New("validation failed")

var (
	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	digitsRe   = regexp.MustCompile(`^[0-9]+$`)
)

// Wizard step numbers, in fixed order.
const (
	StepNames     = 1
	StepDateVenue = 2
	StepTemplate  = 3
	StepColors    = 4
	StepDressCode = 5
	StepBanking   = 6
	StepContent   = 7
	StepSections  = 8
	StepGuests    = 9
	StepPreview   = 10
)

// Step checks the requirements for one wizard step against the current
// configuration. Steps without required fields always pass.
func Step(n int, w *models.Wedding) error {
	switch n {
	case StepNames:
		if strings.TrimSpace(w.Partner1Name) == "" || strings.TrimSpace(w.Partner2Name) == "" {
			return fieldErr("both partner names are required")
		}
	case StepDateVenue:
		if w.Date == nil || *w.Date == "" {
			return fieldErr("wedding date is required")
		}
		if !validDate(*w.Date) {
			return fieldErr("wedding date must be an ISO date")
		}
		if strings.TrimSpace(w.Location) == "" {
			return fieldErr("location is required")
		}
	case StepTemplate:
		if !models.ValidTemplateID(w.TemplateID) {
			return fieldErr("unknown template %q", w.TemplateID)
		}
	case StepColors:
		// Colors are optional overrides; when set they must be hex.
		if w.PrimaryColor != "" && !hexColorRe.MatchString(w.PrimaryColor) {
			return fieldErr("primary color must be a hex color")
		}
		if w.SecondaryColor != "" && !hexColorRe.MatchString(w.SecondaryColor) {
			return fieldErr("secondary color must be a hex color")
		}
	case StepDressCode:
		if w.DressCode == nil {
			return nil
		}
		for _, g := range []*models.DressCodeGroup{w.DressCode.Guests, w.DressCode.Bridesmaids, w.DressCode.Groomsmen} {
			if g == nil {
				continue
			}
			for _, c := range g.Palette {
				if !hexColorRe.MatchString(c) {
					return fieldErr("dress code palette entry %q must be a hex color", c)
				}
			}
		}
	case StepBanking:
		if w.BankingInfo == nil {
			return nil
		}
		return Banking(w.BankingInfo)
	}
	return nil
}

// Banking checks the payout destination fields.
func Banking(b *models.BankingInfo) error {
	if strings.TrimSpace(b.BankName) == "" {
		return fieldErr("bank name is required")
	}
	if strings.TrimSpace(b.HolderName) == "" {
		return fieldErr("account holder name is required")
	}
	if !digitsRe.MatchString(b.RoutingNumber) {
		return fieldErr("routing number must be numeric")
	}
	if !digitsRe.MatchString(b.AccountNumber) {
		return fieldErr("account number must be numeric")
	}
	return nil
}

// ForPublish checks every step that gates the publish transition: a site
// only becomes visible at its slug once names, date, venue and template
// pass validation.
func ForPublish(w *models.Wedding) error {
	for _, n := range []int{StepNames, StepDateVenue, StepTemplate, StepColors, StepDressCode, StepBanking} {
		if err := Step(n, w); err != nil {
			return fmt.Errorf("step %d: %w", n, err)
		}
	}
	return nil
}

// Gift checks a registry entry before it enters the catalog.
func Gift(g *models.Gift) error {
	if strings.TrimSpace(g.Name) == "" {
		return fieldErr("gift name is required")
	}
	if g.Price <= 0 {
		return fieldErr("gift price must be positive")
	}
	if !models.ValidGiftCategory(g.Category) {
		return fieldErr("unknown gift category %q", g.Category)
	}
	return nil
}

// RSVP checks a public RSVP form submission.
func RSVP(f *models.RSVPForm) error {
	if strings.TrimSpace(f.Name) == "" {
		return fieldErr("name is required")
	}
	if f.NumberOfGuests < 1 {
		return fieldErr("number of guests must be at least 1")
	}
	return nil
}

func fieldErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func validDate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
