package booking

import (
	"fmt"

	"tattoo-booking/constants"
	bookingModel "tattoo-booking/models/booking"
	"tattoo-booking/utils"
)

// Per-step request payloads. Each step validates only its own slice of
// the form; no request is validated holistically.

type ArtistSelectRequest struct {
	ArtistID          string `json:"artist_id"`
	NeedsHelpChoosing bool   `json:"needs_help_choosing"`
}

type ContactInfoRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

type TattooIdeaRequest struct {
	TattooIdea         string               `json:"tattoo_idea" validate:"required,min=1"`
	ReferenceImages    []bookingModel.FileMeta `json:"reference_images"`
	AdditionalNotes    string               `json:"additional_notes"`
	InstagramReference string               `json:"instagram_reference"`
	BackgroundStory    string               `json:"background_story"`
}

type PlacementRequest struct {
	Placement          string                  `json:"placement" validate:"required,min=1"`
	BodyPhotos         []bookingModel.FileMeta `json:"body_photos"`
	PlacementCertainty string                  `json:"placement_certainty" validate:"required"`
	OpenToSuggestions  string                  `json:"open_to_suggestions" validate:"required"`
}

type PreferencesRequest struct {
	ColorPreference string `json:"color_preference" validate:"required"`
	SkinTone        string `json:"skin_tone" validate:"required"`
}

type ClosingRequest struct {
	IsFirstTattoo  string `json:"is_first_tattoo" validate:"required"`
	AdditionalInfo string `json:"additional_info"`
}

type ConsultationChoiceRequest struct {
	NeedsConsultation *bool `json:"needs_consultation"`
}

type ConsultationScheduleRequest struct {
	Date string `json:"date" validate:"required"` // ISO date of a listed Wednesday
	Time string `json:"time" validate:"required"` // one of the two fixed slots
}

type PaymentInitRequest struct {
	// No fields: payment re-validates the stored name/email.
}

type PaymentOutcomeRequest struct {
	Outcome string `json:"outcome"` // informational only, outcome is resolved in-service
}

func (r ArtistSelectRequest) Validate() error {
	if r.ArtistID == "" && !r.NeedsHelpChoosing {
		return fmt.Errorf("artist selection is required")
	}
	return nil
}

func (r ContactInfoRequest) Validate() error {
	if !utils.ValidateRequired(r.Name) {
		return fmt.Errorf("name is required")
	}
	if msg := utils.EmailError(r.Email); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	if msg := utils.PhoneError(r.Phone); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func (r TattooIdeaRequest) Validate() error {
	if !utils.ValidateRequired(r.TattooIdea) {
		return fmt.Errorf("please describe your tattoo idea")
	}
	for _, f := range r.ReferenceImages {
		if err := utils.ValidateFile(f.Name, f.Size, f.MIME); err != nil {
			return fmt.Errorf("reference image %q: %w", f.Name, err)
		}
	}
	return nil
}

func (r PlacementRequest) Validate() error {
	if !utils.ValidateRequired(r.Placement) {
		return fmt.Errorf("placement is required")
	}
	if !constants.IsOneOf(r.PlacementCertainty, constants.PlacementCertaintyOptions) {
		return fmt.Errorf("please tell us how certain you are about the placement")
	}
	if !constants.IsOneOf(r.OpenToSuggestions, constants.OpenToSuggestionsOptions) {
		return fmt.Errorf("please tell us whether you are open to placement suggestions")
	}
	for _, f := range r.BodyPhotos {
		if err := utils.ValidateFile(f.Name, f.Size, f.MIME); err != nil {
			return fmt.Errorf("body photo %q: %w", f.Name, err)
		}
	}
	return nil
}

func (r PreferencesRequest) Validate() error {
	if !constants.IsOneOf(r.ColorPreference, constants.ColorPreferenceOptions) {
		return fmt.Errorf("please select a color preference")
	}
	if !constants.IsOneOf(r.SkinTone, constants.SkinToneOptions) {
		return fmt.Errorf("please select your skin tone")
	}
	return nil
}

func (r ClosingRequest) Validate() error {
	if !constants.IsOneOf(r.IsFirstTattoo, constants.FirstTattooOptions) {
		return fmt.Errorf("please let us know about your tattoo experience")
	}
	return nil
}

func (r ConsultationChoiceRequest) Validate() error {
	if r.NeedsConsultation == nil {
		return fmt.Errorf("please choose whether you need a consultation")
	}
	return nil
}

func (r ConsultationScheduleRequest) Validate() error {
	if r.Date == "" {
		return fmt.Errorf("please select a consultation date")
	}
	if r.Time == "" {
		return fmt.Errorf("please select a consultation time")
	}
	return nil
}
