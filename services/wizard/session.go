package wizard

import (
	"sync"

	"github.com/google/uuid"

	artistModel "tattoo-booking/models/artist"
	bookingModel "tattoo-booking/models/booking"
)

// Session is one customer's pass through the wizard: the current step
// index plus the accumulating form record. It is created at step 1 with
// an empty form and mutated only through Service transitions.
type Session struct {
	mu sync.Mutex

	ID             string
	CurrentStep    bookingModel.Step
	Form           bookingModel.FormData
	SelectedArtist *artistModel.Artist

	// Transient UI flags.
	Submitting bool
	Notice     string
}

func NewSession() *Session {
	return &Session{
		ID:          uuid.NewString(),
		CurrentStep: bookingModel.StepArtistSelection,
	}
}

// resetLocked returns the session to step 1 with the empty form. The
// caller holds the lock.
func (s *Session) resetLocked() {
	s.CurrentStep = bookingModel.StepArtistSelection
	s.Form = bookingModel.FormData{}
	s.SelectedArtist = nil
	s.Submitting = false
}

// View is the read-only projection handed to the HTTP layer.
type View struct {
	SessionID      string                `json:"session_id"`
	CurrentStep    bookingModel.Step     `json:"current_step"`
	FormData       bookingModel.FormData `json:"form_data"`
	SelectedArtist *artistModel.Artist   `json:"selected_artist,omitempty"`
	DepositAmount  int                   `json:"deposit_amount"`
	Notice         string                `json:"notice,omitempty"`
}
