package booking

import (
	"time"

	artistModel "tattoo-booking/models/artist"
)

// Snapshot is the in-memory shape persisted as a BookingDraft and fed
// to the notification payloads: the accumulated form plus the resolved
// artist, consultation choice and deposit.
type Snapshot struct {
	Form               FormData             `json:"form_data"`
	Artist             *artistModel.Artist  `json:"selected_artist,omitempty"`
	ConsultationChoice *bool                `json:"consultation_choice,omitempty"`
	Timestamp          time.Time            `json:"timestamp"`
	DepositAmount      int                  `json:"deposit_amount"`
	Status             DraftStatus          `json:"status"`
}

// ArtistID returns the resolved artist's id, "" when none is set.
func (s Snapshot) ArtistID() string {
	if s.Artist == nil {
		return ""
	}
	return s.Artist.ID
}
