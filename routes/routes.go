package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	artistController "tattoo-booking/controllers/artist"
	bookingController "tattoo-booking/controllers/booking"
	successController "tattoo-booking/controllers/success"
	"tattoo-booking/logger"
	"tattoo-booking/middleware"
	"tattoo-booking/services/draftstore"
	"tattoo-booking/services/notification"
	"tattoo-booking/services/payment"
	"tattoo-booking/services/wizard"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	registry := wizard.NewRegistry()

	drafts := draftstore.NewGormStore(db)
	markers := notification.NewGormMarkerStore(db)
	notifier := notification.NewService(markers)
	links := payment.NewResolver()
	wizardService := wizard.NewService(drafts, notifier, links)

	booking := bookingController.NewBookingController(wizardService, asyncLogger)
	artists := artistController.NewArtistController()
	success := successController.NewSuccessController(wizardService)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Drop idle wizard sessions in the background.
	go func() {
		for range time.Tick(time.Hour) {
			if removed := registry.Sweep(); removed > 0 {
				logger.Info("Swept " + strconv.Itoa(removed) + " idle wizard sessions")
			}
		}
	}()

	sessionMiddleware := middleware.WizardSession(registry)

	// Index route: the caller's current wizard state.
	app.Get("/", sessionMiddleware, booking.State)

	// Standalone success page reached from the hosted payment redirect.
	app.Get("/success", sessionMiddleware, success.Show)

	/*=============================================================================
	| Artist Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/artists", artists.Index)
	api.Get("/artists/:id", artists.Show)

	/*=============================================================================
	| Booking Wizard Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking").Use(sessionMiddleware)

	bookingGroup.Get("/state", booking.State)
	bookingGroup.Get("/draft", booking.Draft)
	bookingGroup.Get("/consultation-dates", booking.ConsultationDates)

	bookingGroup.Post("/artist", booking.SelectArtist)
	bookingGroup.Post("/contact", booking.SubmitContact)
	bookingGroup.Post("/idea", booking.SubmitIdea)
	bookingGroup.Post("/placement", booking.SubmitPlacement)
	bookingGroup.Post("/preferences", booking.SubmitPreferences)
	bookingGroup.Post("/closing", booking.SubmitClosing)
	bookingGroup.Post("/consultation-choice", booking.ChooseConsultation)
	bookingGroup.Post("/consultation-schedule", booking.ScheduleConsultation)

	bookingGroup.Post("/payment/initiate", booking.InitiatePayment)
	bookingGroup.Post("/payment/process", booking.ProcessPayment)
	bookingGroup.Post("/payment/retry", booking.RetryPayment)
	bookingGroup.Post("/payment/cancel", booking.CancelPayment)
	bookingGroup.Post("/payment/resume", booking.ResumePayment)

	bookingGroup.Post("/back", booking.Back)
	bookingGroup.Post("/reset", booking.Reset)
	bookingGroup.Post("/return-home", booking.ReturnHome)

	// Unknown paths land back on the index.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/", fiber.StatusFound)
	})
}
