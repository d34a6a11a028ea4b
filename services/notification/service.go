// Package notification formats booking data into EmailJS template
// payloads and dispatches them. Every send is fire-and-forget: a failed
// send is logged and reported through Result, but callers are free to
// ignore it and no state transition ever waits on delivery.
package notification

import (
	"fmt"
	"os"
	"time"

	emailjs "tattoo-booking/httpServices/emailjs"
	"tattoo-booking/logger"
	bookingModel "tattoo-booking/models/booking"
)

// Result reports a dispatch attempt. UserMessage is a soft banner text
// safe to surface to the customer; it never blocks navigation.
type Result struct {
	Success     bool
	Err         error
	UserMessage string
}

type Service struct {
	client     *emailjs.EmailJSClient
	templateID string
	markers    MarkerStore
}

// NewService builds the dispatcher from the environment
// (EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID, EMAILJS_PUBLIC_KEY).
func NewService(markers MarkerStore) *Service {
	return &Service{
		client:     emailjs.NewClient(os.Getenv("EMAILJS_SERVICE_ID"), os.Getenv("EMAILJS_PUBLIC_KEY")),
		templateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		markers:    markers,
	}
}

// NewServiceWith wires explicit collaborators; used by tests.
func NewServiceWith(client *emailjs.EmailJSClient, templateID string, markers MarkerStore) *Service {
	return &Service{client: client, templateID: templateID, markers: markers}
}

// SendDraft dispatches the full-form draft email to the studio.
func (s *Service) SendDraft(snap bookingModel.Snapshot) Result {
	return s.send(DraftParams(snap, time.Now()))
}

// SendDraftAsync fires SendDraft on its own goroutine, logging the
// outcome. Used where the caller must not wait on delivery.
func (s *Service) SendDraftAsync(snap bookingModel.Snapshot) {
	go func() {
		res := s.SendDraft(snap)
		if res.Success {
			logger.Success("Booking draft email sent")
		} else {
			logger.Error("Booking draft email failed", res.Err)
		}
	}()
}

// SendConfirmationOnce dispatches the customer confirmation at most
// once per derived identity. Re-entering the success state with the
// same email/name/artist, in the same session or after a reload, does
// not send again.
func (s *Service) SendConfirmationOnce(snap bookingModel.Snapshot) (bool, Result) {
	artistLabel := selectedArtistLabel(snap)
	key := DeriveKey(snap.Form.Email, snap.Form.Name, artistID(snap.Artist))

	first, err := s.markers.MarkSent(key)
	if err != nil {
		// Guard failures are treated as already-sent rather than
		// risking a duplicate email.
		logger.Error("Confirmation guard check failed", err)
		return false, Result{Success: false, Err: err, UserMessage: "Email service temporarily unavailable"}
	}
	if !first {
		logger.Info("Confirmation already sent for " + key)
		return false, Result{Success: true}
	}

	return true, s.send(ConfirmationParams(snap.Form, artistLabel, time.Now()))
}

func (s *Service) send(params map[string]string) Result {
	if !s.client.ConfigValid() || s.templateID == "" {
		logger.Warning("EmailJS configuration incomplete, skipping email send")
		return Result{
			Success:     false,
			Err:         fmt.Errorf("EmailJS configuration incomplete"),
			UserMessage: "Email service temporarily unavailable",
		}
	}

	if err := s.client.Send(s.templateID, params); err != nil {
		logger.Error("EmailJS send failed", err)
		return Result{
			Success:     false,
			Err:         err,
			UserMessage: "Email service temporarily unavailable",
		}
	}

	return Result{Success: true}
}
