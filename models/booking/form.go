package booking

// FileMeta describes an uploaded file handle. Files are collected and
// counted for the notification payloads but never transmitted.
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

// FormData is the accumulating record for one booking session. It is
// partial until each step's required fields are filled; each step
// validates only its own slice.
type FormData struct {
	// Step 1: artist selection
	ArtistID          string `json:"artist_id"`
	NeedsHelpChoosing bool   `json:"needs_help_choosing"`

	// Step 2: contact info
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Step 3: tattoo idea and references
	TattooIdea         string     `json:"tattoo_idea"`
	ReferenceImages    []FileMeta `json:"reference_images,omitempty"`
	AdditionalNotes    string     `json:"additional_notes,omitempty"`
	InstagramReference string     `json:"instagram_reference,omitempty"`
	BackgroundStory    string     `json:"background_story,omitempty"`

	// Step 4: size, shape, placement
	Placement          string     `json:"placement"`
	BodyPhotos         []FileMeta `json:"body_photos,omitempty"`
	PlacementCertainty string     `json:"placement_certainty"`
	OpenToSuggestions  string     `json:"open_to_suggestions"`

	// Step 5: color preferences and skin tone
	ColorPreference string `json:"color_preference"`
	SkinTone        string `json:"skin_tone"`

	// Step 6: closing questions
	IsFirstTattoo  string `json:"is_first_tattoo"`
	AdditionalInfo string `json:"additional_info,omitempty"`

	// Consultation
	NeedsConsultation *bool  `json:"needs_consultation,omitempty"`
	ConsultationDate  string `json:"consultation_date,omitempty"`
	ConsultationTime  string `json:"consultation_time,omitempty"`
}
