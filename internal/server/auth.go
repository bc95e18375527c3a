package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/models"
)

type registerRequest struct {
	Email        string `json:"email"`
	PartnerNames string `json:"partnerNames"`
	Password     string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := s.authenticator.Register(c.Context(), req.Email, req.PartnerNames, req.Password)
	if err != nil {
		return err
	}
	token, err := s.jwt.Generate(user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := s.authenticator.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	token, err := s.jwt.Generate(user)
	if err != nil {
		return err
	}
	return c.JSON(authResponse{Token: token, User: user})
}
