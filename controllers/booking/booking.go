package booking

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"tattoo-booking/logger"
	"tattoo-booking/middleware"
	"tattoo-booking/services/schedule"
	"tattoo-booking/services/wizard"
	"tattoo-booking/types"
	bookingTypes "tattoo-booking/types/booking"
	"tattoo-booking/utils"
)

// BookingController handles the wizard HTTP requests.
type BookingController struct {
	Wizard *wizard.Service
	Logger *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(wizardService *wizard.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		Wizard: wizardService,
		Logger: asyncLogger,
	}
}

// session pulls the wizard session, writing the 500 response itself
// when the middleware did not run. Returns false when the handler
// should stop.
func (bc *BookingController) session(c *fiber.Ctx) (*wizard.Session, bool) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		_ = c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Session not initialized",
			Status:  fiber.StatusInternalServerError,
		})
		return nil, false
	}
	return s, true
}

func (bc *BookingController) logRequest(c *fiber.Ctx) {
	if bc.Logger != nil {
		bc.Logger.Log(utils.CreateLogEntry(c))
	}
}

// respondState returns the current wizard view; every mutating endpoint
// ends here so the caller always sees the post-transition state.
func (bc *BookingController) respondState(c *fiber.Ctx, s *wizard.Session, message string) error {
	err := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusOK,
		Data:    bc.Wizard.View(s),
	})
	bc.logRequest(c)
	return err
}

func badRequest(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, wizard.ErrWrongStep) {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: err.Error(),
		Status:  status,
	})
}

// parseBody decodes the request body, writing the 400 response itself
// on failure. Returns false when the handler should stop.
func parseBody[T any](c *fiber.Ctx, req *T) bool {
	if err := c.BodyParser(req); err != nil {
		logger.Error("Failed to parse request body", err)
		_ = c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
		return false
	}
	return true
}

// State returns the session's current step and form.
func (bc *BookingController) State(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	return bc.respondState(c, s, "Current booking state")
}

// SelectArtist handles the artist-selection step.
func (bc *BookingController) SelectArtist(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.ArtistSelectRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.SelectArtist(s, req); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Artist selected")
}

// SubmitContact handles the contact-info step.
func (bc *BookingController) SubmitContact(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.ContactInfoRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.SubmitContact(s, req); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Contact info saved")
}

// SubmitIdea handles the tattoo-idea step.
func (bc *BookingController) SubmitIdea(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.TattooIdeaRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.SubmitIdea(s, req); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Tattoo idea saved")
}

// SubmitPlacement handles the size-and-placement step.
func (bc *BookingController) SubmitPlacement(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.PlacementRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.SubmitPlacement(s, req); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Placement saved")
}

// SubmitPreferences handles the color-and-skin-tone step.
func (bc *BookingController) SubmitPreferences(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.PreferencesRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.SubmitPreferences(s, req); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Preferences saved")
}

// SubmitClosing handles the closing questions. On the recommendation
// branch the wizard resets and the response carries the notice.
func (bc *BookingController) SubmitClosing(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.ClosingRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.SubmitClosing(s, req); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Closing questions saved")
}

// ChooseConsultation handles the consultation yes/no step.
func (bc *BookingController) ChooseConsultation(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.ConsultationChoiceRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.ChooseConsultation(s, req); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Consultation choice saved")
}

// ConsultationDates lists the bookable Wednesdays and time slots.
func (bc *BookingController) ConsultationDates(c *fiber.Ctx) error {
	err := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Available consultation windows",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"dates": schedule.UpcomingWednesdays(time.Now()),
			"slots": schedule.TimeSlots,
		},
	})
	bc.logRequest(c)
	return err
}

// ScheduleConsultation handles the consultation scheduling step.
func (bc *BookingController) ScheduleConsultation(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	var req bookingTypes.ConsultationScheduleRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := bc.Wizard.ScheduleConsultation(s, req, time.Now()); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Consultation scheduled")
}

// InitiatePayment persists the draft and returns the hosted payment
// URL for the full-page redirect.
func (bc *BookingController) InitiatePayment(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	url, err := bc.Wizard.InitiatePayment(s)
	if err != nil {
		return badRequest(c, err)
	}
	respErr := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Redirect to payment",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"payment_url": url,
			"state":       bc.Wizard.View(s),
		},
	})
	bc.logRequest(c)
	return respErr
}

// ProcessPayment runs the processing wait and reports the outcome.
func (bc *BookingController) ProcessPayment(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	outcome, _, err := bc.Wizard.ProcessPayment(c.Context(), s)
	if err != nil {
		return badRequest(c, err)
	}
	message := "Payment failed"
	if outcome == wizard.OutcomeSuccess {
		message = "Payment successful"
	}
	return bc.respondState(c, s, message)
}

// RetryPayment returns from the failure screen to the payment step.
func (bc *BookingController) RetryPayment(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	if err := bc.Wizard.RetryPayment(s); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Back at payment")
}

// CancelPayment records a cancelled hosted checkout.
func (bc *BookingController) CancelPayment(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	if err := bc.Wizard.CancelPayment(s); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Payment cancelled")
}

// ResumePayment returns from the cancelled screen to the payment step.
func (bc *BookingController) ResumePayment(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	if err := bc.Wizard.ResumePayment(s); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Back at payment")
}

// Back navigates to the previous step.
func (bc *BookingController) Back(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	if err := bc.Wizard.Back(s); err != nil {
		return badRequest(c, err)
	}
	return bc.respondState(c, s, "Went back")
}

// Reset starts the wizard over from step 1.
func (bc *BookingController) Reset(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	bc.Wizard.Reset(s)
	return bc.respondState(c, s, "Booking reset")
}

// ReturnHome leaves the success screen: the draft is deleted and the
// wizard starts over.
func (bc *BookingController) ReturnHome(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	bc.Wizard.ReturnHome(s)
	return bc.respondState(c, s, "Welcome back")
}

// Draft returns the persisted draft snapshot for the session, if any.
func (bc *BookingController) Draft(c *fiber.Ctx) error {
	s, ok := bc.session(c)
	if !ok {
		return nil
	}
	draft, err := bc.Wizard.LoadDraft(s)
	if err != nil {
		logger.Error("Failed to load booking draft", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load draft",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if draft == nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "No draft found",
			Status:  fiber.StatusNotFound,
		})
	}
	respErr := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Persisted draft",
		Status:  fiber.StatusOK,
		Data:    draft,
	})
	bc.logRequest(c)
	return respErr
}
