package constants

// Fixed answer sets for the enumerated wizard questions. Step
// validation only accepts values from these lists.

// ArtistIDHelp is the artist id marker used when the customer asks for
// a recommendation instead of picking a concrete artist.
const ArtistIDHelp = "help"

var PlacementCertaintyOptions = []string{
	"I know exactly where I want this tattoo, how big and in what shape.",
	"I have a general idea but it can change if there's better options.",
	"I have too many options, idk which one is the best. I need artist's help!",
	"I have no idea how to place this tattoo and what size and shapes are the best. I need artist's help!",
}

var OpenToSuggestionsOptions = []string{
	"Yes that's perfect, I'm open to better options!",
	"Yes that would be good, but my mind is pretty set on the original idea.",
	"I'd like to do that ahead of time, e.g. during the consultation",
	"No, this placement is my only option.",
}

var ColorPreferenceOptions = []string{
	"I like vibrant colors, the more vivid, the better.",
	"I like colors, but not too vibrant.",
	"I only like black and grey.",
	"I like it to be mostly black and grey, but with a hint of single color, e.g. a bit of red.",
	"I'm not sure, I need suggestions from the artist and then make a decision.",
	"I'm not sure, but I'm open for the artist to make the decision for me.",
}

var SkinToneOptions = []string{
	"Dark",
	"Medium-Dark",
	"Medium-Light",
	"Light",
}

var FirstTattooOptions = []string{
	"Yes it is, I never had tattoos before",
	"I have many other tattoos, I'm covered",
	"I have 1-2 small walk-in tattoos from when I was young",
	"Other...",
}

// IsOneOf reports whether value appears in options.
func IsOneOf(value string, options []string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
