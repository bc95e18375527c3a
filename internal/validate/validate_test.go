package validate

import (
	"errors"
	"testing"

	"github.com/veugravata/backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestStep(t *testing.T) {
	complete := func() *models.Wedding {
		return &models.Wedding{
			Partner1Name: "Ana",
			Partner2Name: "Bruno",
			Date:         strPtr("2026-10-10"),
			Location:     "São Paulo",
			TemplateID:   models.TemplateBotanico,
		}
	}

	tests := []struct {
		name    string
		step    int
		mutate  func(w *models.Wedding)
		wantErr bool
	}{
		{"names present", StepNames, nil, false},
		{"missing partner name", StepNames, func(w *models.Wedding) { w.Partner2Name = " " }, true},
		{"date and location present", StepDateVenue, nil, false},
		{"missing date", StepDateVenue, func(w *models.Wedding) { w.Date = nil }, true},
		{"garbage date", StepDateVenue, func(w *models.Wedding) { w.Date = strPtr("next summer") }, true},
		{"rfc3339 date accepted", StepDateVenue, func(w *models.Wedding) { w.Date = strPtr("2026-10-10T16:00:00Z") }, false},
		{"missing location", StepDateVenue, func(w *models.Wedding) { w.Location = "" }, true},
		{"valid template", StepTemplate, nil, false},
		{"unknown template", StepTemplate, func(w *models.Wedding) { w.TemplateID = "gotico" }, true},
		{"colors unset is fine", StepColors, nil, false},
		{"valid hex colors", StepColors, func(w *models.Wedding) { w.PrimaryColor = "#aa11cc" }, false},
		{"bad hex color", StepColors, func(w *models.Wedding) { w.PrimaryColor = "red" }, true},
		{"short hex color", StepColors, func(w *models.Wedding) { w.SecondaryColor = "#fff" }, true},
		{"no dress code is fine", StepDressCode, nil, false},
		{"dress code with valid palette", StepDressCode, func(w *models.Wedding) {
			w.DressCode = &models.DressCode{Guests: &models.DressCodeGroup{Palette: []string{"#1a2b3c"}}}
		}, false},
		{"dress code with bad palette entry", StepDressCode, func(w *models.Wedding) {
			w.DressCode = &models.DressCode{Bridesmaids: &models.DressCodeGroup{Palette: []string{"azul"}}}
		}, true},
		{"no banking info is fine", StepBanking, nil, false},
		{"content step has no requirements", StepContent, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := complete()
			if tt.mutate != nil {
				tt.mutate(w)
			}

			err := Step(tt.step, w)
			if (err != nil) != tt.wantErr {
				t.Errorf("Step(%d) error = %v, wantErr %v", tt.step, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestBanking(t *testing.T) {
	valid := models.BankingInfo{
		BankName:      "Banco do Brasil",
		RoutingNumber: "001",
		AccountNumber: "123456",
		HolderName:    "Ana Silva",
	}

	tests := []struct {
		name    string
		mutate  func(b *models.BankingInfo)
		wantErr bool
	}{
		{"valid", nil, false},
		{"missing bank name", func(b *models.BankingInfo) { b.BankName = "" }, true},
		{"missing holder", func(b *models.BankingInfo) { b.HolderName = "  " }, true},
		{"alphabetic routing number", func(b *models.BankingInfo) { b.RoutingNumber = "abc" }, true},
		{"empty account number", func(b *models.BankingInfo) { b.AccountNumber = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			if tt.mutate != nil {
				tt.mutate(&b)
			}
			if err := Banking(&b); (err != nil) != tt.wantErr {
				t.Errorf("Banking() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestForPublish(t *testing.T) {
	w := &models.Wedding{
		Partner1Name: "Ana",
		Partner2Name: "Bruno",
		Date:         strPtr("2026-10-10"),
		Location:     "São Paulo",
		TemplateID:   models.TemplateClassico,
	}
	if err := ForPublish(w); err != nil {
		t.Errorf("ForPublish on complete wedding = %v, want nil", err)
	}

	w.Partner1Name = ""
	if err := ForPublish(w); !errors.Is(err, ErrInvalid) {
		t.Errorf("ForPublish on incomplete wedding = %v, want ErrInvalid", err)
	}
}

func TestGift(t *testing.T) {
	tests := []struct {
		name    string
		gift    models.Gift
		wantErr bool
	}{
		{"valid", models.Gift{Name: "Cafeteira", Price: 300, Category: models.CategoryKitchen}, false},
		{"missing name", models.Gift{Price: 300, Category: models.CategoryKitchen}, true},
		{"zero price", models.Gift{Name: "Cafeteira", Category: models.CategoryKitchen}, true},
		{"negative price", models.Gift{Name: "Cafeteira", Price: -1, Category: models.CategoryKitchen}, true},
		{"unknown category", models.Gift{Name: "Cafeteira", Price: 300, Category: "garagem"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Gift(&tt.gift); (err != nil) != tt.wantErr {
				t.Errorf("Gift() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRSVP(t *testing.T) {
	tests := []struct {
		name    string
		form    models.RSVPForm
		wantErr bool
	}{
		{"valid", models.RSVPForm{Name: "Carla", Attending: true, NumberOfGuests: 2}, false},
		{"missing name", models.RSVPForm{NumberOfGuests: 1}, true},
		{"zero guests", models.RSVPForm{Name: "Carla"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := RSVP(&tt.form); (err != nil) != tt.wantErr {
				t.Errorf("RSVP() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
