// Package payment resolves an artist id to a deposit amount and a
// hosted Stripe payment link. There is no Stripe API integration: the
// links are pre-built Payment Links and the customer is handed off to
// them wholesale.
package payment

import (
	"net/url"
	"os"
	"strings"
)

// Live Payment Links, keyed by artist id.
var paymentLinks = map[string]string{
	// $300 deposit - Jing (Lead Artist)
	"jing": "https://buy.stripe.com/00w6oHgLY6Zf5WW45Gfw400",

	// $100 deposit - Rachel, Jasmine, Lauren, Annika
	"rachel":  "https://buy.stripe.com/3cIeVd8fsabr0CC31Cfw401",
	"jasmine": "https://buy.stripe.com/3cIeVd8fsabr0CC31Cfw401",
	"lauren":  "https://buy.stripe.com/3cIeVd8fsabr0CC31Cfw401",
	"annika":  "https://buy.stripe.com/3cIeVd8fsabr0CC31Cfw401",

	// $50 deposit - Maili, Keani (Apprentices)
	"maili": "https://buy.stripe.com/00w5kD9jwerH9988lWfw402",
	"keani": "https://buy.stripe.com/00w5kD9jwerH9988lWfw402",
}

// Test-environment Payment Links.
var testPaymentLinks = map[string]string{
	"jing":    "https://buy.stripe.com/test_00w6oHgLY6Zf5WW45Gfw400",
	"rachel":  "https://buy.stripe.com/test_3cIeVd8fsabr0CC31Cfw401",
	"jasmine": "https://buy.stripe.com/test_3cIeVd8fsabr0CC31Cfw401",
	"lauren":  "https://buy.stripe.com/test_3cIeVd8fsabr0CC31Cfw401",
	"annika":  "https://buy.stripe.com/test_3cIeVd8fsabr0CC31Cfw401",
	"maili":   "https://buy.stripe.com/test_00w5kD9jwerH9988lWfw402",
	"keani":   "https://buy.stripe.com/test_00w5kD9jwerH9988lWfw402",
}

var artistDeposits = map[string]int{
	"jing":    300,
	"rachel":  100,
	"jasmine": 100,
	"lauren":  100,
	"annika":  100,
	"maili":   50,
	"keani":   50,
}

var artistNames = map[string]string{
	"jing":    "Jing (Jingxi Gu)",
	"rachel":  "Rachel Hong",
	"jasmine": "Jasmine Hsueh (Jas)",
	"lauren":  "Lauren Hacaga",
	"annika":  "Annika Riggins",
	"maili":   "Maili Cohen",
	"keani":   "Keani Chavez",
}

const (
	// defaultArtistID backs every unknown-id fallback.
	defaultArtistID = "rachel"
	defaultDeposit  = 100
)

// Resolver picks between the live and test link tables and derives the
// success-page URL from the configured public origin.
type Resolver struct {
	forceTestMode bool
	origin        string
}

// NewResolver builds a Resolver from the environment
// (STRIPE_FORCE_TEST_MODE, PUBLIC_ORIGIN).
func NewResolver() *Resolver {
	return &Resolver{
		forceTestMode: os.Getenv("STRIPE_FORCE_TEST_MODE") == "true",
		origin:        os.Getenv("PUBLIC_ORIGIN"),
	}
}

// NewResolverWith builds a Resolver with explicit settings.
func NewResolverWith(forceTestMode bool, origin string) *Resolver {
	return &Resolver{forceTestMode: forceTestMode, origin: origin}
}

// IsTestMode reports whether test Payment Links are in effect. Test
// mode is forced by the flag, and additionally auto-detected when the
// public origin is a localhost address, independent of the flag.
func (r *Resolver) IsTestMode() bool {
	if r.forceTestMode {
		return true
	}
	host := r.origin
	if u, err := url.Parse(r.origin); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	return host == "localhost" || strings.Contains(host, "127.0.0.1") || strings.Contains(host, "localhost")
}

// PaymentLink resolves the hosted payment URL for the artist, falling
// back to the default artist's link for unknown ids, and appends the
// trimmed customer email as a prefill parameter when non-empty.
func (r *Resolver) PaymentLink(artistID, customerEmail string) string {
	table := paymentLinks
	if r.IsTestMode() {
		table = testPaymentLinks
	}

	link, ok := table[artistID]
	if !ok {
		link = table[defaultArtistID]
	}

	email := strings.TrimSpace(customerEmail)
	if email == "" {
		return link
	}
	return link + "?prefilled_email=" + url.QueryEscape(email)
}

// DepositAmount returns the artist's deposit, $100 for unknown ids.
func DepositAmount(artistID string) int {
	if deposit, ok := artistDeposits[artistID]; ok {
		return deposit
	}
	return defaultDeposit
}

// ArtistName returns the artist's payment display name, with a generic
// fallback for unknown ids.
func ArtistName(artistID string) string {
	if name, ok := artistNames[artistID]; ok {
		return name
	}
	return "Selected Artist"
}

// SuccessPageURL is where the hosted payment page returns customers.
func (r *Resolver) SuccessPageURL() string {
	return strings.TrimRight(r.origin, "/") + "/success"
}
