package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/metrics"
	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/render"
)

// handlePublicSite renders the published wedding site for guests.
func (s *Server) handlePublicSite(c *fiber.Ctx) error {
	w, sections, err := s.onboarding.PublicSite(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	html, err := render.Render(w, sections, false)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}

// handlePublicRSVP records an RSVP submitted through the public site form.
func (s *Server) handlePublicRSVP(c *fiber.Ctx) error {
	w, _, err := s.onboarding.PublicSite(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}

	var form models.RSVPForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	guest, err := s.guests.ConfirmRSVP(c.Context(), w.ID, &form)
	if err != nil {
		return err
	}
	metrics.RSVPSubmissions.WithLabelValues(string(guest.RSVPStatus)).Inc()
	return c.Status(fiber.StatusCreated).JSON(guest)
}

// handlePublicGifts lists the gifts the couple selected for their registry.
func (s *Server) handlePublicGifts(c *fiber.Ctx) error {
	w, _, err := s.onboarding.PublicSite(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	gifts, err := s.gifts.Selected(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(gifts)
}

// handleContribute opens a checkout session for a gift contribution.
func (s *Server) handleContribute(c *fiber.Ctx) error {
	w, _, err := s.onboarding.PublicSite(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}

	giftID := c.Params("giftId")
	gifts, err := s.gifts.Selected(c.Context(), w.ID)
	if err != nil {
		return err
	}
	found := false
	for _, g := range gifts {
		if g.ID == giftID {
			found = true
			break
		}
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "gift not found")
	}

	var req struct {
		Name    string  `json:"name"`
		Message string  `json:"message"`
		Amount  float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	session, err := s.gifts.Contribute(c.Context(), giftID, req.Name, req.Message, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// handlePaymentWebhook receives checkout results from the payment provider.
func (s *Server) handlePaymentWebhook(c *fiber.Ctx) error {
	var event struct {
		SessionID string `json:"sessionId"`
		Succeeded bool   `json:"succeeded"`
	}
	if err := c.BodyParser(&event); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.gifts.HandlePaymentWebhook(c.Context(), event.SessionID, event.Succeeded); err != nil {
		return err
	}
	if event.Succeeded {
		metrics.ContributionsConfirmed.Inc()
	}
	return c.SendStatus(fiber.StatusOK)
}
