package artist

// Pricing holds an artist's session pricing. Day rate is a plain dollar
// amount; the remaining fields are free-form because apprentices and
// lead artists publish ranges or "N/A" instead of numbers.
type Pricing struct {
	DayRate       int    `json:"day_rate"`
	HalfDay       string `json:"half_day"`
	Minimum       string `json:"minimum"`
	TouchUp       string `json:"touch_up"`
	CoverUpExtra  string `json:"cover_up_extra"`
	FlashDiscount string `json:"flash_discount"`
}

// Review is a published customer review shown on the artist profile.
type Review struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// Artist is a static catalog entry. The roster is loaded wholesale at
// start and never mutated.
type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Experience  string   `json:"experience,omitempty"`
	Deposit     int      `json:"deposit"`
	PriceRange  string   `json:"price_range,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Description string   `json:"description"`
	Instagram   string   `json:"instagram,omitempty"`
	Avatar      string   `json:"avatar"`
	Video       string   `json:"video"`
	Portfolio   []string `json:"portfolio"`
	Pricing     *Pricing `json:"pricing,omitempty"`
	SpecialNote string   `json:"special_note,omitempty"`
	Reviews     []Review `json:"reviews,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
}

// Artist categories.
const (
	CategoryLead       = "Lead Artist"
	CategorySenior     = "Senior Artist"
	CategoryJunior     = "Junior Artist"
	CategoryApprentice = "Apprentice"
)
