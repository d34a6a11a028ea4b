package success

import (
	"github.com/gofiber/fiber/v2"

	"tattoo-booking/middleware"
	"tattoo-booking/services/wizard"
	"tattoo-booking/types"
)

// SuccessController serves the standalone page the hosted payment
// redirects back to.
type SuccessController struct {
	Wizard *wizard.Service
}

func NewSuccessController(wizardService *wizard.Service) *SuccessController {
	return &SuccessController{Wizard: wizardService}
}

// Show lands the session on the success step and dispatches the
// confirmation email. Reloading the page does not send it again.
func (sc *SuccessController) Show(c *fiber.Ctx) error {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Session not initialized",
			Status:  fiber.StatusInternalServerError,
		})
	}

	sent := sc.Wizard.EnterSuccess(s)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking confirmed",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"confirmation_sent": sent,
			"state":             sc.Wizard.View(s),
		},
	})
}
