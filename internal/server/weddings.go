package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"

	"github.com/veugravata/backend/internal/models"
	"github.com/veugravata/backend/internal/render"
)

// requireWedding loads the wedding from the :id route param and checks it
// belongs to the authenticated user. Foreign weddings report not found
// rather than forbidden.
func (s *Server) requireWedding(c *fiber.Ctx) (*models.Wedding, error) {
	w, err := s.onboarding.Get(c.Context(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if w.UserID != currentUserID(c) {
		return nil, fiber.NewError(fiber.StatusNotFound, "wedding not found")
	}
	return w, nil
}

func (s *Server) handleCreateWedding(c *fiber.Ctx) error {
	w, err := s.onboarding.Create(c.Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(w)
}

func (s *Server) handleGetMyWedding(c *fiber.Ctx) error {
	w, err := s.onboarding.GetByUser(c.Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(w)
}

func (s *Server) handleGetWedding(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	return c.JSON(w)
}

func (s *Server) handleUpdateWedding(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}

	var patch models.WeddingPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := s.onboarding.Update(c.Context(), w.ID, &patch)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleNextStep(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	updated, err := s.onboarding.NextStep(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handlePrevStep(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	updated, err := s.onboarding.PrevStep(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleResetWedding(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	updated, err := s.onboarding.Reset(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handlePublish(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	published, err := s.onboarding.Publish(c.Context(), w.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"wedding": published,
		"url":     s.publicBaseURL + "/s/" + published.Slug,
	})
}

// handleQRCode returns a PNG QR code pointing at the published site.
func (s *Server) handleQRCode(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	if !w.IsPublished() {
		return fiber.NewError(fiber.StatusConflict, "wedding is not published")
	}

	png, err := qrcode.Encode(s.publicBaseURL+"/s/"+w.Slug, qrcode.Medium, 512)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// handlePreview renders the site for its owner regardless of publish state.
func (s *Server) handlePreview(c *fiber.Ctx) error {
	w, err := s.requireWedding(c)
	if err != nil {
		return err
	}
	sections, err := s.sections.List(c.Context(), w.ID)
	if err != nil {
		return err
	}
	html, err := render.Render(w, sections, true)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}
