// Package payments defines the checkout port the gift service talks to.
// The provider integration sits behind an interface so tests substitute
// a deterministic fake and production wires a real processor client.
package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/veugravata/backend/internal/models"
)

// Session is a provider checkout session a contributor is redirected to.
type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"checkoutUrl"`
}

// Provider creates checkout sessions for gift contributions. The
// provider later reports the outcome through the payment webhook.
type Provider interface {
	CreateCheckout(ctx context.Context, gift *models.Gift, c *models.Contribution) (*Session, error)
}

// Offline is a provider that issues local sessions without contacting a
// processor. Contributions stay pending until the webhook (or an
// operator) confirms them. Used in development and tests.
type Offline struct {
	// BaseURL prefixes the checkout URL handed to contributors.
	BaseURL string
}

var _ Provider = (*Offline)(nil)

// CreateCheckout issues a locally generated session reference.
func (o *Offline) CreateCheckout(_ context.Context, gift *models.Gift, c *models.Contribution) (*Session, error) {
	id := "sess_" + uuid.New().String()
	return &Session{
		ID:  id,
		URL: fmt.Sprintf("%s/checkout/%s?gift=%s", o.BaseURL, id, gift.ID),
	}, nil
}
