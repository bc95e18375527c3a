// Package server wires the application services into the HTTP API and
// the public site routes.
package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veugravata/backend/internal/auth"
	"github.com/veugravata/backend/internal/service"
)

// Server holds the handler dependencies.
type Server struct {
	authenticator auth.Authenticator
	jwt           *auth.JWTManager

	onboarding  *service.OnboardingService
	sections    *service.SectionService
	gifts       *service.GiftService
	guests      *service.GuestService
	invitations *service.InvitationService

	publicBaseURL string
}

// New assembles the fiber application with all routes registered.
func New(
	authenticator auth.Authenticator,
	jwt *auth.JWTManager,
	onboarding *service.OnboardingService,
	sections *service.SectionService,
	gifts *service.GiftService,
	guests *service.GuestService,
	invitations *service.InvitationService,
	publicBaseURL string,
) *fiber.App {
	s := &Server{
		authenticator: authenticator,
		jwt:           jwt,
		onboarding:    onboarding,
		sections:      sections,
		gifts:         gifts,
		guests:        guests,
		invitations:   invitations,
		publicBaseURL: publicBaseURL,
	}

	app := fiber.New(fiber.Config{
		AppName:      "veugravata",
		ErrorHandler: errorHandler,
	})

	app.Use(requestLogger())

	api := app.Group("/api")

	// AUTH
	authGroup := api.Group("/auth")
	authGroup.Post("/register", s.handleRegister)
	authGroup.Post("/login", s.handleLogin)

	// WEDDINGS (onboarding wizard + publish)
	weddings := api.Group("/weddings", RequireAuth(jwt))
	weddings.Post("/", s.handleCreateWedding)
	weddings.Get("/mine", s.handleGetMyWedding)
	weddings.Get("/:id", s.handleGetWedding)
	weddings.Patch("/:id", s.handleUpdateWedding)
	weddings.Post("/:id/steps/next", s.handleNextStep)
	weddings.Post("/:id/steps/prev", s.handlePrevStep)
	weddings.Post("/:id/reset", s.handleResetWedding)
	weddings.Post("/:id/publish", s.handlePublish)
	weddings.Get("/:id/qr", s.handleQRCode)
	weddings.Get("/:id/preview", s.handlePreview)

	// CUSTOM SECTIONS
	weddings.Get("/:id/sections", s.handleListSections)
	weddings.Post("/:id/sections", s.handleAddSection)
	weddings.Patch("/:id/sections/:sectionId", s.handleUpdateSection)
	weddings.Post("/:id/sections/:sectionId/move", s.handleMoveSection)
	weddings.Post("/:id/sections/:sectionId/toggle", s.handleToggleSection)
	weddings.Delete("/:id/sections/:sectionId", s.handleDeleteSection)

	// GIFTS
	api.Get("/gifts/popular", s.handlePopularGifts)
	weddings.Get("/:id/gifts", s.handleListGifts)
	weddings.Post("/:id/gifts", s.handleAddGift)
	weddings.Get("/:id/gifts/stats", s.handleGiftStats)
	weddings.Post("/:id/gifts/:giftId/toggle", s.handleToggleGift)
	weddings.Delete("/:id/gifts/:giftId", s.handleRemoveGift)

	// GUESTS
	weddings.Get("/:id/guests", s.handleListGuests)
	weddings.Post("/:id/guests", s.handleAddGuest)
	weddings.Get("/:id/guests/stats", s.handleGuestStats)
	weddings.Post("/:id/guests/import", s.handleImportGuests)
	weddings.Put("/:id/guests/:guestId", s.handleUpdateGuest)
	weddings.Delete("/:id/guests/:guestId", s.handleDeleteGuest)

	// INVITATIONS
	invGroup := api.Group("/invitations", RequireAuth(jwt))
	invGroup.Post("/send/:guestId", s.handleSendInvitation)
	invGroup.Post("/bulk/:weddingId", s.handleSendBulkInvitations)
	invGroup.Get("/status/:guestId", s.handleInvitationStatus)
	invGroup.Get("/stats/:weddingId", s.handleInvitationStats)
	invGroup.Get("/list/:weddingId", s.handleListInvitations)

	// WEBHOOKS (provider-authenticated, no session)
	webhooks := api.Group("/webhooks")
	webhooks.Post("/payments", s.handlePaymentWebhook)
	webhooks.Post("/invitations", s.handleDeliveryWebhook)

	// PUBLIC SITE
	app.Get("/s/:slug", s.handlePublicSite)
	app.Post("/s/:slug/rsvp", s.handlePublicRSVP)
	app.Get("/s/:slug/gifts", s.handlePublicGifts)
	app.Post("/s/:slug/gifts/:giftId/contribute", s.handleContribute)

	return app
}
