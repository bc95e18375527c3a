package server

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/models"
)

func (s *Server) handleListGuests(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	status := models.RSVPStatus(c.Query("status"))
	query := c.Query("q")
	if status == "" && query == "" {
		guests, err := s.guests.List(c.Context(), w.ID)
		if err != nil {
			return err
		}
		return c.JSON(guests)
	}

	guests, err := s.guests.Filter(c.Context(), w.ID, status, query)
	if err != nil {
		return err
	}
	return c.JSON(guests)
}

func (s *Server) handleAddGuest(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	var guest models.Guest
	if err := c.BodyParser(&guest); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	guest.WeddingID = w.ID

	created, err := s.guests.Add(c.Context(), &guest)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGuestStats(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	st, err := s.guests.Stats(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(st)
}

// handleImportGuests reads a CSV body and creates a guest per row.
func (s *Server) handleImportGuests(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	imported, err := s.guests.ImportCSV(c.Context(), w.ID, bytes.NewReader(c.Body()))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"imported": imported})
}

func (s *Server) handleUpdateGuest(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	if err := s.checkGuestOwnership(c, w.ID); err != nil {
		return err
	}

	var guest models.Guest
	if err := c.BodyParser(&guest); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	guest.ID = c.Params("guestId")
	guest.WeddingID = w.ID

	updated, err := s.guests.Update(c.Context(), &guest)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteGuest(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	if err := s.checkGuestOwnership(c, w.ID); err != nil {
		return err
	}
	if err := s.guests.Remove(c.Context(), c.Params("guestId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) checkGuestOwnership(c *fiber.Ctx, weddingID string) error {
	guests, err := s.guests.List(c.Context(), weddingID)
	if err != nil {
		return err
	}
	guestID := c.Params("guestId")
	for _, g := range guests {
		if g.ID == guestID {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusNotFound, "guest not found")
}
