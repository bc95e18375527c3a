package models

// Template identifiers for the six fixed visual themes. A template
// determines section styling and default content, never the section set,
// so switching templates can never lose configured content.
const (
	TemplateClassico  = "classico"
	TemplateBotanico  = "botanico"
	TemplateModerno   = "moderno"
	TemplateRomantico = "romantico"
	TemplateMinimal   = "minimal"
	TemplatePraia     = "praia"
)

// DefaultTemplate is the template applied to a new wedding.
const DefaultTemplate = TemplateClassico

// TemplateIDs lists all supported template identifiers.
var TemplateIDs = []string{
	TemplateClassico,
	TemplateBotanico,
	TemplateModerno,
	TemplateRomantico,
	TemplateMinimal,
	TemplatePraia,
}

// ValidTemplateID reports whether id names one of the fixed templates.
func ValidTemplateID(id string) bool {
	for _, t := range TemplateIDs {
		if t == id {
			return true
		}
	}
	return false
}
