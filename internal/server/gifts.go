package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/models"
)

func (s *Server) handlePopularGifts(c *fiber.Ctx) error {
	return c.JSON(s.gifts.PopularCatalog())
}

func (s *Server) handleListGifts(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	gifts, err := s.gifts.List(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(gifts)
}

func (s *Server) handleAddGift(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	var gift models.Gift
	if err := c.BodyParser(&gift); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	gift.WeddingID = w.ID

	created, err := s.gifts.Add(c.Context(), &gift)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGiftStats(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	st, err := s.gifts.Stats(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (s *Server) handleToggleGift(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	if err := s.checkGiftOwnership(c, w.ID); err != nil {
		return err
	}
	gift, err := s.gifts.ToggleSelection(c.Context(), c.Params("giftId"))
	if err != nil {
		return err
	}
	return c.JSON(gift)
}

func (s *Server) handleRemoveGift(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	if err := s.checkGiftOwnership(c, w.ID); err != nil {
		return err
	}
	if err := s.gifts.Remove(c.Context(), c.Params("giftId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// checkGiftOwnership confirms the :giftId param names a gift of the given
// wedding.
func (s *Server) checkGiftOwnership(c *fiber.Ctx, weddingID string) error {
	gifts, err := s.gifts.List(c.Context(), weddingID)
	if err != nil {
		return err
	}
	giftID := c.Params("giftId")
	for _, g := range gifts {
		if g.ID == giftID {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusNotFound, "gift not found")
}
