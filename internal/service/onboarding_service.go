// Package service implements the application operations on top of the
// storage interface: onboarding, registry, guest list, invitations and
// the publish transition.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/validate"
)

// ErrNotPublished is returned when a public site is requested for a
// wedding that has not completed the publish transition.
var ErrNotPublished = errors.New("site not published")

// OnboardingService owns the wedding configuration lifecycle: creation
// with defaults, incremental partial updates from the wizard, step
// navigation, reset, and the explicit publish transition.
type OnboardingService struct {
	store storage.Store
}

// NewOnboardingService creates a new OnboardingService with the given
// storage backend.
func NewOnboardingService(store storage.Store) *OnboardingService {
	return &OnboardingService{store: store}
}

// Create initializes a wedding with canonical defaults for a couple's
// first onboarding visit: step one, the default template, and the full
// default SiteContent.
func (s *OnboardingService) Create(ctx context.Context, userID string) (*models.Wedding, error) {
	wedding := &models.Wedding{
		UserID:      userID,
		TemplateID:  models.DefaultTemplate,
		CurrentStep: models.FirstStep,
		SiteContent: models.DefaultSiteContent(),
	}

	if err := s.store.CreateWedding(ctx, wedding); err != nil {
		return nil, err
	}

	slog.Info("Wedding created", "wedding_id", wedding.ID, "user_id", userID)
	return wedding, nil
}

// Get retrieves a wedding by ID.
func (s *OnboardingService) Get(ctx context.Context, id string) (*models.Wedding, error) {
	return s.store.GetWedding(ctx, id)
}

// GetByUser retrieves the wedding owned by a user.
func (s *OnboardingService) GetByUser(ctx context.Context, userID string) (*models.Wedding, error) {
	return s.store.GetWeddingByUser(ctx, userID)
}

// Update merges a partial configuration into the wedding. Fields absent
// from the patch are untouched: updating banking info never erases a
// previously configured dress code.
func (s *OnboardingService) Update(ctx context.Context, id string, patch *models.WeddingPatch) (*models.Wedding, error) {
	if patch.TemplateID != nil && !models.ValidTemplateID(*patch.TemplateID) {
		return nil, fmt.Errorf("%w: unknown template %q", validate.ErrInvalid, *patch.TemplateID)
	}

	wedding, err := s.store.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(wedding)

	if err := s.store.UpdateWedding(ctx, wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

// NextStep advances the wizard, clamped to the last step.
func (s *OnboardingService) NextStep(ctx context.Context, id string) (*models.Wedding, error) {
	return s.step(ctx, id, +1)
}

// PrevStep rewinds the wizard, clamped to the first step.
func (s *OnboardingService) PrevStep(ctx context.Context, id string) (*models.Wedding, error) {
	return s.step(ctx, id, -1)
}

func (s *OnboardingService) step(ctx context.Context, id string, delta int) (*models.Wedding, error) {
	wedding, err := s.store.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}

	next := wedding.CurrentStep + delta
	if next < models.FirstStep {
		next = models.FirstStep
	}
	if next > models.LastStep {
		next = models.LastStep
	}
	if next == wedding.CurrentStep {
		return wedding, nil
	}

	wedding.CurrentStep = next
	if err := s.store.UpdateWedding(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// Reset restores the full initial defaults, including the canonical
// default SiteContent, while keeping identity and ownership. The reset
// wedding is unpublished.
func (s *OnboardingService) Reset(ctx context.Context, id string) (*models.Wedding, error) {
	wedding, err := s.store.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}

	fresh := &models.Wedding{
		ID:          wedding.ID,
		UserID:      wedding.UserID,
		TemplateID:  models.DefaultTemplate,
		CurrentStep: models.FirstStep,
		SiteContent: models.DefaultSiteContent(),
		CreatedAt:   wedding.CreatedAt,
	}

	if err := s.store.UpdateWedding(ctx, fresh); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceSections(ctx, id, nil); err != nil {
		return nil, err
	}

	slog.Info("Wedding reset", "wedding_id", id)
	return fresh, nil
}

// Publish makes the site visible at its public slug. The transition is
// guarded by step validation: names, date, venue, template, colors,
// dress code and banking must all pass. Publishing twice is a no-op.
func (s *OnboardingService) Publish(ctx context.Context, id string) (*models.Wedding, error) {
	wedding, err := s.store.GetWedding(ctx, id)
	if err != nil {
		return nil, err
	}
	if wedding.IsPublished() {
		return wedding, nil
	}

	if err := validate.ForPublish(wedding); err != nil {
		return nil, err
	}

	if wedding.Slug == "" {
		wedding.Slug = makeSlug(wedding.Partner1Name, wedding.Partner2Name)
	}
	now := nowUnix()
	wedding.PublishedAt = &now

	if err := s.store.UpdateWedding(ctx, wedding); err != nil {
		return nil, err
	}

	slog.Info("Wedding published", "wedding_id", id, "slug", wedding.Slug)
	return wedding, nil
}

// PublicSite resolves a published wedding and its visible configuration
// by slug. Unpublished weddings are invisible even when the slug is
// already assigned.
func (s *OnboardingService) PublicSite(ctx context.Context, slug string) (*models.Wedding, []models.CustomSection, error) {
	wedding, err := s.store.GetWeddingBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if !wedding.IsPublished() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotPublished, slug)
	}

	sections, err := s.store.ListSections(ctx, wedding.ID)
	if err != nil {
		return nil, nil, err
	}

	return wedding, sections, nil
}

// makeSlug builds a URL segment from the partner names plus a short
// random suffix to keep slugs unique without a retry loop.
func makeSlug(p1, p2 string) string {
	base := slugify(p1) + "-e-" + slugify(p2)
	return base + "-" + uuid.New().String()[:8]
}

func nowUnix() int64 {
	return time.Now().Unix()
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "casamento"
	}
	return b.String()
}
