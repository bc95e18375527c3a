package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/payments"
	"github.com/veugravata/backend/internal/stats"
	"github.com/veugravata/backend/internal/storage"
	"github.com/veugravata/backend/internal/validate"
)

var (
	// ErrOverfunded is returned when a contribution would push a gift's
	// collected amount past its price.
	ErrOverfunded = errors.New("contribution exceeds remaining gift amount")

	// ErrBadAmount is returned for non-positive contribution amounts.
	ErrBadAmount = errors.New("contribution amount must be positive")
)

// GiftService owns the registry catalog, the couple's selected subset
// and the contribution flow.
type GiftService struct {
	store    storage.Store
	provider payments.Provider
}

// NewGiftService creates a new GiftService with the given storage
// backend and payment provider.
func NewGiftService(store storage.Store, provider payments.Provider) *GiftService {
	return &GiftService{store: store, provider: provider}
}

// List returns the full catalog for a wedding.
func (s *GiftService) List(ctx context.Context, weddingID string) ([]models.Gift, error) {
	return s.store.ListGifts(ctx, weddingID)
}

// Selected returns only the couple's chosen subset.
func (s *GiftService) Selected(ctx context.Context, weddingID string) ([]models.Gift, error) {
	gifts, err := s.store.ListGifts(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	var selected []models.Gift
	for _, g := range gifts {
		if g.IsSelected {
			selected = append(selected, g)
		}
	}
	return selected, nil
}

// Add inserts a gift into the catalog.
func (s *GiftService) Add(ctx context.Context, gift *models.Gift) (*models.Gift, error) {
	if err := validate.Gift(gift); err != nil {
		return nil, err
	}
	if err := s.store.CreateGift(ctx, gift); err != nil {
		return nil, err
	}
	return gift, nil
}

// Remove deletes a gift from the catalog. The deletion cascades: the
// gift leaves the selected subset and its contributions with it.
func (s *GiftService) Remove(ctx context.Context, giftID string) error {
	return s.store.DeleteGift(ctx, giftID)
}

// ToggleSelection adds a gift to the selected subset if absent and
// removes it if present. Membership is solely by ID, so a second call
// with the same gift restores the original state.
func (s *GiftService) ToggleSelection(ctx context.Context, giftID string) (*models.Gift, error) {
	gift, err := s.store.GetGift(ctx, giftID)
	if err != nil {
		return nil, err
	}

	gift.IsSelected = !gift.IsSelected
	if err := s.store.UpdateGift(ctx, gift); err != nil {
		return nil, err
	}

	return gift, nil
}

// Stats aggregates funding progress over the selected subset.
func (s *GiftService) Stats(ctx context.Context, weddingID string) (stats.RegistryStats, error) {
	gifts, err := s.store.ListGifts(ctx, weddingID)
	if err != nil {
		return stats.RegistryStats{}, err
	}
	return stats.ComputeRegistryStats(gifts), nil
}

// Contribute opens a checkout session for a contribution toward a gift.
// The contribution stays pending until the payment webhook confirms it;
// amounts that would overshoot the gift's price are rejected up front.
func (s *GiftService) Contribute(ctx context.Context, giftID, contributorName, message string, amount float64) (*payments.Session, error) {
	if amount <= 0 {
		return nil, ErrBadAmount
	}

	gift, err := s.store.GetGift(ctx, giftID)
	if err != nil {
		return nil, err
	}
	if amount > gift.Remaining() {
		return nil, fmt.Errorf("%w: %.2f remaining", ErrOverfunded, gift.Remaining())
	}

	contribution := &models.Contribution{
		GiftID:          giftID,
		ContributorName: contributorName,
		Message:         message,
		Amount:          amount,
		Status:          models.ContributionPending,
	}

	session, err := s.provider.CreateCheckout(ctx, gift, contribution)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	contribution.SessionID = session.ID

	if err := s.store.CreateContribution(ctx, contribution); err != nil {
		return nil, err
	}

	slog.Info("Checkout session opened",
		"gift_id", giftID,
		"session_id", session.ID,
		"amount", amount,
	)
	return session, nil
}

// HandlePaymentWebhook settles a contribution after the provider reports
// the checkout outcome. Confirmation re-checks the funding cap: if
// concurrent contributions raced past the price, the late one fails
// rather than overshooting. Settled contributions ignore replays.
func (s *GiftService) HandlePaymentWebhook(ctx context.Context, sessionID string, succeeded bool) error {
	contribution, err := s.store.GetContributionBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	if contribution.Status != models.ContributionPending {
		return nil // already settled, webhook replay
	}

	if !succeeded {
		contribution.Status = models.ContributionFailed
		return s.store.UpdateContribution(ctx, contribution)
	}

	gift, err := s.store.GetGift(ctx, contribution.GiftID)
	if err != nil {
		return err
	}
	if contribution.Amount > gift.Remaining() {
		contribution.Status = models.ContributionFailed
		if err := s.store.UpdateContribution(ctx, contribution); err != nil {
			return err
		}
		return fmt.Errorf("%w: gift %s", ErrOverfunded, gift.ID)
	}

	contribution.Status = models.ContributionConfirmed
	if err := s.store.UpdateContribution(ctx, contribution); err != nil {
		return err
	}

	gift.ContributedAmount += contribution.Amount
	if err := s.store.UpdateGift(ctx, gift); err != nil {
		return err
	}

	slog.Info("Contribution confirmed",
		"gift_id", gift.ID,
		"session_id", sessionID,
		"amount", contribution.Amount,
		"collected", gift.ContributedAmount,
	)
	return nil
}

// PopularCatalog returns curated gift suggestions for the onboarding
// registry step. The catalog is ephemeral: couples copy entries into
// their own registry, only the copies persist.
func (s *GiftService) PopularCatalog() []models.Gift {
	return popularGifts
}

var popularGifts = []models.Gift{
	{Name: "Jogo de panelas", Description: "Conjunto antiaderente 5 peças", Price: 450, Category: models.CategoryKitchen},
	{Name: "Cafeteira expresso", Description: "Para as manhãs do casal", Price: 600, Category: models.CategoryKitchen},
	{Name: "Jogo de cama king", Description: "Algodão egípcio 400 fios", Price: 520, Category: models.CategoryBedroom},
	{Name: "Aspirador robô", Description: "Menos discussão sobre faxina", Price: 1400, Category: models.CategoryHome},
	{Name: "Jantar romântico", Description: "Primeira noite da lua de mel", Price: 380, Category: models.CategoryExperience},
	{Name: "Passeio de barco", Description: "Um dia no mar para os noivos", Price: 900, Category: models.CategoryHoneymoon},
	{Name: "Kit toalhas", Description: "Banho e rosto, 8 peças", Price: 260, Category: models.CategoryBathroom},
	{Name: "Diária extra na lua de mel", Description: "Mais um dia de descanso", Price: 750, Category: models.CategoryHoneymoon},
}
