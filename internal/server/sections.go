package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/service"
)

func (s *Server) handleListSections(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	sections, err := s.sections.List(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(sections)
}

func (s *Server) handleAddSection(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	var req struct {
		Type models.SectionType `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	section, err := s.sections.Add(c.Context(), w.ID, req.Type)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

func (s *Server) handleUpdateSection(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	var upd service.SectionUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	section, err := s.sections.Update(c.Context(), w.ID, c.Params("sectionId"), &upd)
	if err != nil {
		return err
	}
	return c.JSON(section)
}

func (s *Server) handleMoveSection(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	var req struct {
		Direction service.MoveDirection `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	sections, err := s.sections.Move(c.Context(), w.ID, c.Params("sectionId"), req.Direction)
	if err != nil {
		return err
	}
	return c.JSON(sections)
}

func (s *Server) handleToggleSection(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	section, err := s.sections.ToggleVisibility(c.Context(), w.ID, c.Params("sectionId"))
	if err != nil {
		return err
	}
	return c.JSON(section)
}

func (s *Server) handleDeleteSection(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	if err := s.sections.Delete(c.Context(), w.ID, c.Params("sectionId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
