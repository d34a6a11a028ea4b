package notification

import (
	"strconv"
	"time"

	artistModel "tattoo-booking/models/artist"
	bookingModel "tattoo-booking/models/booking"
)

const (
	managementName  = "Patch Tattoo Therapy Management"
	managementEmail = "info@patchtattootherapy.com"

	// Shown as the artist when the customer asked for a recommendation
	// instead of picking one.
	needRecommendation = "Need Recommendation"
)

var artistEmails = map[string]string{
	"Jing":           "jing@patchtattootherapy.com",
	"Rachel Hong":    "rachel@patchtattootherapy.com",
	"Jasmine Hsueh":  "jasmine@patchtattootherapy.com",
	"Lauren Hacaga":  "lauren@patchtattootherapy.com",
	"Annika Riggins": "annika@patchtattootherapy.com",
	"Maili Cohen":    "maili@patchtattootherapy.com",
	"Keani Chavez":   "keani@patchtattootherapy.com",
}

// DraftParams shapes the full-form draft payload sent to the studio at
// the consultation-choice step and again at payment initiation.
func DraftParams(snap bookingModel.Snapshot, sentAt time.Time) map[string]string {
	form := snap.Form

	timestamp := snap.Timestamp
	if timestamp.IsZero() {
		timestamp = sentAt
	}

	return map[string]string{
		"to_name":   managementName,
		"to_email":  managementEmail,
		"subject":   "New Booking Request - Pending Payment",
		"timestamp": timestamp.Format(time.RFC3339),
		"status":    string(bookingModel.DraftStatusPendingPayment),

		"customer_name":  form.Name,
		"customer_email": form.Email,
		"customer_phone": form.Phone,

		"selected_artist": selectedArtistLabel(snap),
		"artist_id":       artistID(snap.Artist),

		"tattoo_idea":        form.TattooIdea,
		"inspiration_images": strconv.Itoa(len(form.ReferenceImages)),
		"additional_notes":   form.AdditionalNotes,
		"instagram_link":     form.InstagramReference,
		"background_story":   form.BackgroundStory,

		"size_placement":      form.Placement,
		"placement_photos":    strconv.Itoa(len(form.BodyPhotos)),
		"placement_certainty": form.PlacementCertainty,
		"body_assessment":     form.OpenToSuggestions,

		"color_preference": form.ColorPreference,
		"skin_tone":        form.SkinTone,

		"tattoo_experience": form.IsFirstTattoo,
		"additional_info":   form.AdditionalInfo,

		"needs_consultation": consultationStatus(snap),
		"deposit_amount":     strconv.Itoa(snap.DepositAmount),

		"booking_date": sentAt.Format("Monday, January 2, 2006"),
		"booking_time": sentAt.Format("03:04 PM"),
	}
}

// ConfirmationParams shapes the customer-facing confirmation sent once
// on the success screen: only the fields relevant to the artist.
func ConfirmationParams(form bookingModel.FormData, artistDisplayName string, sentAt time.Time) map[string]string {
	name := form.Name
	if name == "" {
		name = "Client"
	}

	consultationDate := form.ConsultationDate
	if consultationDate == "" {
		consultationDate = "To be scheduled"
	}
	consultationTime := form.ConsultationTime
	if consultationTime == "" {
		consultationTime = "To be scheduled"
	}

	needed := "No"
	if form.NeedsConsultation != nil && *form.NeedsConsultation {
		needed = "Yes"
	}

	artistEmail, ok := artistEmails[artistDisplayName]
	if !ok {
		artistEmail = managementEmail
	}

	return map[string]string{
		"name":  name,
		"email": form.Email,

		"to_name":  name,
		"to_email": form.Email,

		"artist_name":  artistDisplayName,
		"artist_email": artistEmail,

		"tattoo_idea":      form.TattooIdea,
		"placement":        form.Placement,
		"color_preference": form.ColorPreference,

		"consultation_needed": needed,
		"consultation_date":   consultationDate,
		"consultation_time":   consultationTime,

		"booking_date": sentAt.Format("Monday, January 2, 2006"),
		"booking_time": sentAt.Format("03:04 PM"),
	}
}

func selectedArtistLabel(snap bookingModel.Snapshot) string {
	if snap.Form.NeedsHelpChoosing {
		return needRecommendation
	}
	if snap.Artist != nil {
		if snap.Artist.DisplayName != "" {
			return snap.Artist.DisplayName
		}
		return snap.Artist.Name
	}
	return "Not Selected"
}

func artistID(a *artistModel.Artist) string {
	if a == nil {
		return ""
	}
	return a.ID
}

// consultationStatus renders the choice as status text: either the
// booked window, a to-be-scheduled note, or an explicit no.
func consultationStatus(snap bookingModel.Snapshot) string {
	if snap.ConsultationChoice != nil && *snap.ConsultationChoice {
		if snap.Form.ConsultationDate != "" && snap.Form.ConsultationTime != "" {
			return "Yes - " + snap.Form.ConsultationDate + " at " + snap.Form.ConsultationTime
		}
		return "Yes - consultation time to be scheduled"
	}
	return "No consultation needed"
}
