// Package wizard drives the booking step state machine: thirteen
// integer step indices, per-step validation gates on every forward
// transition, back-navigation, and the simulated payment processing
// tail. Notification dispatch and draft persistence hang off the
// transitions but never block them.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"tattoo-booking/catalog"
	"tattoo-booking/constants"
	"tattoo-booking/logger"
	bookingModel "tattoo-booking/models/booking"
	"tattoo-booking/services/notification"
	"tattoo-booking/services/payment"
	"tattoo-booking/services/schedule"
	bookingTypes "tattoo-booking/types/booking"
)

// ErrWrongStep is returned when an operation is dispatched from a step
// it is not defined for.
var ErrWrongStep = errors.New("operation not available from the current step")

// Notifier dispatches booking emails. Draft sends are fire-and-forget;
// the confirmation send is guarded to fire at most once per identity.
type Notifier interface {
	SendDraftAsync(snap bookingModel.Snapshot)
	SendConfirmationOnce(snap bookingModel.Snapshot) (bool, notification.Result)
}

// DraftStore persists booking draft snapshots across the external
// payment redirect.
type DraftStore interface {
	Save(sessionID string, snap bookingModel.Snapshot, eventType string) error
	Load(sessionID string) (*bookingModel.BookingDraft, error)
	Delete(sessionID string) error
}

// Service owns the transition rules. Sessions are passed in; the
// service itself is stateless and safe to share.
type Service struct {
	drafts   DraftStore
	notifier Notifier
	links    *payment.Resolver
	outcomes OutcomeSource

	// processingDelay is how long the synthetic processing screen
	// waits before resolving an outcome.
	processingDelay time.Duration
}

const defaultProcessingDelay = 3 * time.Second

func NewService(drafts DraftStore, notifier Notifier, links *payment.Resolver) *Service {
	return &Service{
		drafts:          drafts,
		notifier:        notifier,
		links:           links,
		outcomes:        NewRandomOutcomeSource(),
		processingDelay: defaultProcessingDelay,
	}
}

// NewServiceWith wires explicit outcome source and delay; used by tests.
func NewServiceWith(drafts DraftStore, notifier Notifier, links *payment.Resolver, outcomes OutcomeSource, delay time.Duration) *Service {
	return &Service{
		drafts:          drafts,
		notifier:        notifier,
		links:           links,
		outcomes:        outcomes,
		processingDelay: delay,
	}
}

// ensureStep gates an operation to its own screen. The operation's
// target step is also accepted so that re-dispatching the same action
// with the same data is idempotent.
func ensureStep(s *Session, from, to bookingModel.Step) error {
	if s.CurrentStep != from && s.CurrentStep != to {
		return fmt.Errorf("%w: at step %d", ErrWrongStep, s.CurrentStep)
	}
	return nil
}

// SelectArtist handles step 1: either a concrete artist or the
// help-me-choose marker. Advances to contact info.
func (svc *Service) SelectArtist(s *Session, req bookingTypes.ArtistSelectRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepArtistSelection, bookingModel.StepContactInfo); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	artistID := req.ArtistID
	if req.NeedsHelpChoosing {
		artistID = constants.ArtistIDHelp
	}
	s.Form.ArtistID = artistID
	s.Form.NeedsHelpChoosing = req.NeedsHelpChoosing
	s.SelectedArtist = catalog.ByID(artistID)
	s.CurrentStep = bookingModel.StepContactInfo
	return nil
}

// SubmitContact handles step 2: name, email, phone.
func (svc *Service) SubmitContact(s *Session, req bookingTypes.ContactInfoRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepContactInfo, bookingModel.StepTattooIdea); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	s.Form.Name = req.Name
	s.Form.Email = req.Email
	s.Form.Phone = req.Phone
	s.CurrentStep = bookingModel.StepTattooIdea
	return nil
}

// SubmitIdea handles step 3: the tattoo idea plus optional references.
func (svc *Service) SubmitIdea(s *Session, req bookingTypes.TattooIdeaRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepTattooIdea, bookingModel.StepPlacement); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	s.Form.TattooIdea = req.TattooIdea
	s.Form.ReferenceImages = req.ReferenceImages
	s.Form.AdditionalNotes = req.AdditionalNotes
	s.Form.InstagramReference = req.InstagramReference
	s.Form.BackgroundStory = req.BackgroundStory
	s.CurrentStep = bookingModel.StepPlacement
	return nil
}

// SubmitPlacement handles step 4: placement plus the two enumerated
// certainty questions.
func (svc *Service) SubmitPlacement(s *Session, req bookingTypes.PlacementRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepPlacement, bookingModel.StepPreferences); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	s.Form.Placement = req.Placement
	s.Form.BodyPhotos = req.BodyPhotos
	s.Form.PlacementCertainty = req.PlacementCertainty
	s.Form.OpenToSuggestions = req.OpenToSuggestions
	s.CurrentStep = bookingModel.StepPreferences
	return nil
}

// SubmitPreferences handles step 5: color preference and skin tone.
func (svc *Service) SubmitPreferences(s *Session, req bookingTypes.PreferencesRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepPreferences, bookingModel.StepClosingQuestions); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	s.Form.ColorPreference = req.ColorPreference
	s.Form.SkinTone = req.SkinTone
	s.CurrentStep = bookingModel.StepClosingQuestions
	return nil
}

// SubmitClosing handles step 6. Normally it advances to the
// consultation choice; in the help-me-choose branch it instead sends
// the draft notification (artist shown as a recommendation request),
// acknowledges, and resets to step 1 — no payment is collected.
func (svc *Service) SubmitClosing(s *Session, req bookingTypes.ClosingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepClosingQuestions, bookingModel.StepConsultationChoice); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	s.Form.IsFirstTattoo = req.IsFirstTattoo
	s.Form.AdditionalInfo = req.AdditionalInfo

	if s.Form.NeedsHelpChoosing {
		svc.notifier.SendDraftAsync(svc.snapshot(s))
		s.resetLocked()
		s.Notice = "Thanks! We received your request and will email you an artist recommendation soon."
		return nil
	}

	s.CurrentStep = bookingModel.StepConsultationChoice
	return nil
}

// ChooseConsultation handles step 7. Whatever the choice, the draft is
// persisted, the draft notification is fired, and the flow lands on
// the payment step. Scheduling (step 8) stays reachable only through
// back-navigation from payment when a consultation was requested.
func (svc *Service) ChooseConsultation(s *Session, req bookingTypes.ConsultationChoiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepConsultationChoice, bookingModel.StepPayment); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	s.Form.NeedsConsultation = req.NeedsConsultation

	snap := svc.snapshot(s)
	if err := svc.drafts.Save(s.ID, snap, bookingModel.DraftEventConsultationChoice); err != nil {
		logger.Error("Failed to persist booking draft", err)
	}
	svc.notifier.SendDraftAsync(snap)

	s.CurrentStep = bookingModel.StepPayment
	return nil
}

// ScheduleConsultation handles step 8: a listed Wednesday and one of
// the two fixed slots. The stored values are the customer-facing
// labels, which also feed the notification payloads.
func (svc *Service) ScheduleConsultation(s *Session, req bookingTypes.ConsultationScheduleRequest, ref time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepConsultationTime, bookingModel.StepPayment); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	date := schedule.FindDate(ref, req.Date)
	if date == nil {
		return fmt.Errorf("please select one of the listed consultation dates")
	}
	slot := schedule.FindSlot(req.Time)
	if slot == nil {
		return fmt.Errorf("please select one of the listed consultation times")
	}

	s.Form.ConsultationDate = date.Label
	s.Form.ConsultationTime = slot.Label
	s.CurrentStep = bookingModel.StepPayment
	return nil
}

// InitiatePayment handles step 9: re-validates the contact essentials,
// persists the draft, fires the draft notification, and returns the
// hosted payment URL for the full-page handoff. The session moves to
// the synthetic processing step.
func (svc *Service) InitiatePayment(s *Session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepPayment, bookingModel.StepPaymentProcessing); err != nil {
		return "", err
	}
	// Blocking precondition: without a name and email the hosted page
	// cannot be matched back to the booking.
	if s.Form.Name == "" || s.Form.Email == "" {
		return "", fmt.Errorf("please make sure your name and email are filled in")
	}

	s.Submitting = true
	snap := svc.snapshot(s)
	if err := svc.drafts.Save(s.ID, snap, bookingModel.DraftEventPaymentInitiated); err != nil {
		logger.Error("Failed to persist booking draft", err)
	}
	svc.notifier.SendDraftAsync(snap)

	url := svc.links.PaymentLink(s.Form.ArtistID, s.Form.Email)
	s.CurrentStep = bookingModel.StepPaymentProcessing
	return url, nil
}

// EnterSuccess lands the session on the success step and dispatches the
// confirmation notification, guarded so that re-entering with the same
// email/name/artist sends nothing. Returns whether this entry sent it.
func (svc *Service) EnterSuccess(s *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.CurrentStep = bookingModel.StepSuccess
	s.Submitting = false

	// A fresh session can land here straight from the redirect URL;
	// with no contact info there is no booking to confirm.
	if s.Form.Email == "" || s.Form.Name == "" {
		return false
	}

	snap := svc.snapshot(s)
	snap.Status = bookingModel.DraftStatusCompleted
	sent, res := svc.notifier.SendConfirmationOnce(snap)
	if sent && !res.Success {
		logger.Error("Booking confirmation email failed", res.Err)
	}
	return sent
}

// FailPayment lands the session on the failure screen.
func (svc *Service) FailPayment(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrentStep = bookingModel.StepPaymentFailed
	s.Submitting = false
}

// RetryPayment returns from the failure screen to the payment step.
func (svc *Service) RetryPayment(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepPaymentFailed, bookingModel.StepPayment); err != nil {
		return err
	}
	s.CurrentStep = bookingModel.StepPayment
	return nil
}

// CancelPayment records a cancelled hosted checkout.
func (svc *Service) CancelPayment(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CurrentStep != bookingModel.StepPayment && s.CurrentStep != bookingModel.StepPaymentProcessing &&
		s.CurrentStep != bookingModel.StepPaymentCancelled {
		return fmt.Errorf("%w: at step %d", ErrWrongStep, s.CurrentStep)
	}
	s.CurrentStep = bookingModel.StepPaymentCancelled
	s.Submitting = false
	return nil
}

// ResumePayment returns from the cancelled screen to the payment step.
func (svc *Service) ResumePayment(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStep(s, bookingModel.StepPaymentCancelled, bookingModel.StepPayment); err != nil {
		return err
	}
	s.CurrentStep = bookingModel.StepPayment
	return nil
}

// Back navigates to the immediately preceding logical step. Payment
// goes back to scheduling when a consultation was requested, otherwise
// to the consultation choice. No back from steps 1, 10 and 11.
func (svc *Service) Back(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.CurrentStep.HasBack() {
		return fmt.Errorf("%w: no back-navigation from step %d", ErrWrongStep, s.CurrentStep)
	}

	switch s.CurrentStep {
	case bookingModel.StepPayment:
		if s.Form.NeedsConsultation != nil && *s.Form.NeedsConsultation {
			s.CurrentStep = bookingModel.StepConsultationTime
		} else {
			s.CurrentStep = bookingModel.StepConsultationChoice
		}
	case bookingModel.StepPaymentFailed, bookingModel.StepPaymentCancelled:
		s.CurrentStep = bookingModel.StepPayment
	default:
		s.CurrentStep--
	}
	return nil
}

// Reset unconditionally returns the session to step 1 with the empty
// form, from any prior state.
func (svc *Service) Reset(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.Notice = ""
}

// ReturnHome is the explicit exit from the success screen: the
// persisted draft is removed and the session starts over.
func (svc *Service) ReturnHome(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := svc.drafts.Delete(s.ID); err != nil {
		logger.Error("Failed to delete booking draft", err)
	}
	s.resetLocked()
	s.Notice = ""
}

// LoadDraft returns the persisted snapshot for the session, if any.
// The payment screen shows it informationally; it never overwrites the
// live session state.
func (svc *Service) LoadDraft(s *Session) (*bookingModel.BookingDraft, error) {
	return svc.drafts.Load(s.ID)
}

// View projects the session for the HTTP layer.
func (svc *Service) View(s *Session) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return View{
		SessionID:      s.ID,
		CurrentStep:    s.CurrentStep,
		FormData:       s.Form,
		SelectedArtist: s.SelectedArtist,
		DepositAmount:  payment.DepositAmount(s.Form.ArtistID),
		Notice:         s.Notice,
	}
}

// snapshot captures the session for persistence and notification. The
// caller holds the session lock.
func (svc *Service) snapshot(s *Session) bookingModel.Snapshot {
	return bookingModel.Snapshot{
		Form:               s.Form,
		Artist:             s.SelectedArtist,
		ConsultationChoice: s.Form.NeedsConsultation,
		Timestamp:          time.Now(),
		DepositAmount:      payment.DepositAmount(s.Form.ArtistID),
		Status:             bookingModel.DraftStatusPendingPayment,
	}
}
