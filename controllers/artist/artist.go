package artist

import (
	"github.com/gofiber/fiber/v2"

	"tattoo-booking/catalog"
	"tattoo-booking/services/payment"
	"tattoo-booking/types"
)

// ArtistController serves the studio roster.
type ArtistController struct{}

func NewArtistController() *ArtistController {
	return &ArtistController{}
}

// Index lists the bookable artists. Hidden roster entries are omitted.
func (ac *ArtistController) Index(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Artists",
		Status:  fiber.StatusOK,
		Data:    catalog.Visible(),
	})
}

// Show returns one artist by id, with the deposit the payment layer
// would charge for them.
func (ac *ArtistController) Show(c *fiber.Ctx) error {
	id := c.Params("id")
	a := catalog.ByID(id)
	if a == nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Artist not found",
			Status:  fiber.StatusNotFound,
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Artist",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"artist":         a,
			"deposit_amount": payment.DepositAmount(a.ID),
		},
	})
}
