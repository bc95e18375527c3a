package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/models"
)

// ownedWedding returns the caller's wedding, or a not found error when the
// caller has none or the given ID names someone else's wedding.
func (s *Server) ownedWedding(c *fiber.Ctx, weddingID string) (*models.Wedding, error) {
	w, err := s.onboarding.GetByUser(c.Context(), currentUserID(c))
	if err != nil {
		return nil, err
	}
	if weddingID != "" && w.ID != weddingID {
		return nil, fiber.NewError(fiber.StatusNotFound, "wedding not found")
	}
	return w, nil
}

// ownedGuest checks the guest belongs to the caller's wedding.
func (s *Server) ownedGuest(c *fiber.Ctx, guestID string) error {
	w, err := s.ownedWedding(c, "")
	if err != nil {
		return err
	}
	guests, err := s.guests.List(c.Context(), w.ID)
	if err != nil {
		return err
	}
	for _, g := range guests {
		if g.ID == guestID {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusNotFound, "guest not found")
}

func (s *Server) handleSendInvitation(c *fiber.Ctx) error {
	guestID := c.Params("guestId")
	if err := s.ownedGuest(c, guestID); err != nil {
		return err
	}
	inv, err := s.invitations.Send(c.Context(), guestID)
	if err != nil {
		return err
	}
	return c.JSON(inv)
}

func (s *Server) handleSendBulkInvitations(c *fiber.Ctx) error {
	w, err := s.ownedWedding(c, c.Params("weddingId"))
	if err != nil {
		return err
	}
	sent, err := s.invitations.SendBulk(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"sent": sent})
}

func (s *Server) handleInvitationStatus(c *fiber.Ctx) error {
	guestID := c.Params("guestId")
	if err := s.ownedGuest(c, guestID); err != nil {
		return err
	}
	inv, err := s.invitations.StatusByGuest(c.Context(), guestID)
	if err != nil {
		return err
	}
	return c.JSON(inv)
}

func (s *Server) handleInvitationStats(c *fiber.Ctx) error {
	w, err := s.ownedWedding(c, c.Params("weddingId"))
	if err != nil {
		return err
	}
	st, err := s.invitations.Stats(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (s *Server) handleListInvitations(c *fiber.Ctx) error {
	w, err := s.ownedWedding(c, c.Params("weddingId"))
	if err != nil {
		return err
	}
	list, err := s.invitations.List(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// handleDeliveryWebhook receives delivery events from the mail provider.
func (s *Server) handleDeliveryWebhook(c *fiber.Ctx) error {
	var event struct {
		InvitationID string                  `json:"invitationId"`
		Event        models.InvitationStatus `json:"event"`
	}
	if err := c.BodyParser(&event); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.invitations.HandleDeliveryWebhook(c.Context(), event.InvitationID, event.Event); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
