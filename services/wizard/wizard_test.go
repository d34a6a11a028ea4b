package wizard

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	bookingModel "tattoo-booking/models/booking"
	"tattoo-booking/services/notification"
	"tattoo-booking/services/payment"
	bookingTypes "tattoo-booking/types/booking"
)

type fakeNotifier struct {
	mu            sync.Mutex
	draftSends    []bookingModel.Snapshot
	confirmations []bookingModel.Snapshot
	sentKeys      map[string]bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sentKeys: map[string]bool{}}
}

func (f *fakeNotifier) SendDraftAsync(snap bookingModel.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draftSends = append(f.draftSends, snap)
}

func (f *fakeNotifier) SendConfirmationOnce(snap bookingModel.Snapshot) (bool, notification.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := notification.DeriveKey(snap.Form.Email, snap.Form.Name, snap.ArtistID())
	if f.sentKeys[key] {
		return false, notification.Result{Success: true}
	}
	f.sentKeys[key] = true
	f.confirmations = append(f.confirmations, snap)
	return true, notification.Result{Success: true}
}

func (f *fakeNotifier) draftCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.draftSends)
}

type fakeDraftStore struct {
	mu      sync.Mutex
	saves   []string // event types in order
	drafts  map[string]bookingModel.Snapshot
	deletes int
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: map[string]bookingModel.Snapshot{}}
}

func (f *fakeDraftStore) Save(sessionID string, snap bookingModel.Snapshot, eventType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, eventType)
	f.drafts[sessionID] = snap
	return nil
}

func (f *fakeDraftStore) Load(sessionID string) (*bookingModel.BookingDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.drafts[sessionID]
	if !ok {
		return nil, nil
	}
	return &bookingModel.BookingDraft{
		SessionID:     sessionID,
		ArtistID:      snap.ArtistID(),
		DepositAmount: snap.DepositAmount,
		Status:        snap.Status,
		Timestamp:     snap.Timestamp,
	}, nil
}

func (f *fakeDraftStore) Delete(sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.drafts, sessionID)
	return nil
}

func newTestService(outcome Outcome) (*Service, *fakeNotifier, *fakeDraftStore) {
	notifier := newFakeNotifier()
	drafts := newFakeDraftStore()
	links := payment.NewResolverWith(true, "http://localhost:3000")
	svc := NewServiceWith(drafts, notifier, links, FixedOutcomeSource{Outcome: outcome}, time.Millisecond)
	return svc, notifier, drafts
}

func boolPtr(b bool) *bool { return &b }

// advanceToClosing walks a session through steps 1-5 with valid data.
func advanceToClosing(t *testing.T, svc *Service, s *Session, artistID string, help bool) {
	t.Helper()
	if err := svc.SelectArtist(s, bookingTypes.ArtistSelectRequest{ArtistID: artistID, NeedsHelpChoosing: help}); err != nil {
		t.Fatalf("SelectArtist: %v", err)
	}
	if err := svc.SubmitContact(s, bookingTypes.ContactInfoRequest{
		Name: "Jane Doe", Email: "jane@example.com", Phone: "0412345678",
	}); err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if err := svc.SubmitIdea(s, bookingTypes.TattooIdeaRequest{TattooIdea: "A small wave on the wrist"}); err != nil {
		t.Fatalf("SubmitIdea: %v", err)
	}
	if err := svc.SubmitPlacement(s, bookingTypes.PlacementRequest{
		Placement:          "Left wrist",
		PlacementCertainty: "I know exactly where I want this tattoo, how big and in what shape.",
		OpenToSuggestions:  "Yes that's perfect, I'm open to better options!",
	}); err != nil {
		t.Fatalf("SubmitPlacement: %v", err)
	}
	if err := svc.SubmitPreferences(s, bookingTypes.PreferencesRequest{
		ColorPreference: "I only like black and grey.",
		SkinTone:        "Light",
	}); err != nil {
		t.Fatalf("SubmitPreferences: %v", err)
	}
}

// advanceToPayment continues from step 6 to the payment step without a
// consultation.
func advanceToPayment(t *testing.T, svc *Service, s *Session) {
	t.Helper()
	if err := svc.SubmitClosing(s, bookingTypes.ClosingRequest{IsFirstTattoo: "I have many other tattoos, I'm covered"}); err != nil {
		t.Fatalf("SubmitClosing: %v", err)
	}
	if err := svc.ChooseConsultation(s, bookingTypes.ConsultationChoiceRequest{NeedsConsultation: boolPtr(false)}); err != nil {
		t.Fatalf("ChooseConsultation: %v", err)
	}
}

func TestHappyPathReachesPayment(t *testing.T) {
	svc, notifier, drafts := newTestService(OutcomeSuccess)
	s := NewSession()

	advanceToClosing(t, svc, s, "jing", false)
	advanceToPayment(t, svc, s)

	if s.CurrentStep != bookingModel.StepPayment {
		t.Fatalf("step = %d, want %d", s.CurrentStep, bookingModel.StepPayment)
	}
	if got := svc.View(s).DepositAmount; got != 300 {
		t.Errorf("deposit = %d, want 300", got)
	}
	if notifier.draftCount() != 1 {
		t.Errorf("draft sends = %d, want 1", notifier.draftCount())
	}
	if len(drafts.saves) != 1 || drafts.saves[0] != bookingModel.DraftEventConsultationChoice {
		t.Errorf("saves = %v, want one consultation_choice event", drafts.saves)
	}
}

func TestStepGateRejectsSkippingAhead(t *testing.T) {
	svc, _, _ := newTestService(OutcomeSuccess)
	s := NewSession()

	// Still at step 1: contact info must be rejected.
	err := svc.SubmitContact(s, bookingTypes.ContactInfoRequest{
		Name: "Jane", Email: "jane@example.com", Phone: "0412345678",
	})
	if err == nil {
		t.Fatal("expected wrong-step error")
	}
	if s.CurrentStep != bookingModel.StepArtistSelection {
		t.Errorf("step = %d, want unchanged 1", s.CurrentStep)
	}
}

func TestTransitionIdempotence(t *testing.T) {
	svc, _, _ := newTestService(OutcomeSuccess)
	s := NewSession()

	req := bookingTypes.ArtistSelectRequest{ArtistID: "rachel"}
	if err := svc.SelectArtist(s, req); err != nil {
		t.Fatalf("first dispatch: %v", err)
	}
	// Same action again from the target step: no error, no movement.
	if err := svc.SelectArtist(s, req); err != nil {
		t.Fatalf("second dispatch: %v", err)
	}
	if s.CurrentStep != bookingModel.StepContactInfo {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepContactInfo)
	}
}

func TestInvalidInputLeavesStateUntouched(t *testing.T) {
	svc, _, _ := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)

	before := s.Form
	err := svc.SubmitClosing(s, bookingTypes.ClosingRequest{IsFirstTattoo: "maybe"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if s.CurrentStep != bookingModel.StepClosingQuestions {
		t.Errorf("step = %d, want unchanged 6", s.CurrentStep)
	}
	if !reflect.DeepEqual(s.Form, before) {
		t.Error("form mutated by rejected submission")
	}
}

func TestHelpChoosingExitsAtClosing(t *testing.T) {
	svc, notifier, drafts := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "help", true)

	if err := svc.SubmitClosing(s, bookingTypes.ClosingRequest{IsFirstTattoo: "Yes it is, I never had tattoos before"}); err != nil {
		t.Fatalf("SubmitClosing: %v", err)
	}

	if s.CurrentStep != bookingModel.StepArtistSelection {
		t.Errorf("step = %d, want reset to 1", s.CurrentStep)
	}
	if s.Notice == "" {
		t.Error("expected an acknowledgement notice")
	}
	if notifier.draftCount() != 1 {
		t.Errorf("draft sends = %d, want 1", notifier.draftCount())
	}
	if len(drafts.saves) != 0 {
		t.Errorf("saves = %v, want none (no payment on this branch)", drafts.saves)
	}
	if !reflect.DeepEqual(s.Form, bookingModel.FormData{}) {
		t.Error("form not cleared on reset")
	}
}

func TestConsultationChoiceAlwaysLandsOnPayment(t *testing.T) {
	for _, needs := range []bool{true, false} {
		svc, _, _ := newTestService(OutcomeSuccess)
		s := NewSession()
		advanceToClosing(t, svc, s, "rachel", false)
		if err := svc.SubmitClosing(s, bookingTypes.ClosingRequest{IsFirstTattoo: "I have many other tattoos, I'm covered"}); err != nil {
			t.Fatalf("SubmitClosing: %v", err)
		}
		if err := svc.ChooseConsultation(s, bookingTypes.ConsultationChoiceRequest{NeedsConsultation: boolPtr(needs)}); err != nil {
			t.Fatalf("ChooseConsultation(%v): %v", needs, err)
		}
		if s.CurrentStep != bookingModel.StepPayment {
			t.Errorf("needs=%v: step = %d, want %d", needs, s.CurrentStep, bookingModel.StepPayment)
		}
	}
}

func TestBackFromPaymentFollowsConsultationChoice(t *testing.T) {
	tests := []struct {
		name  string
		needs bool
		want  bookingModel.Step
	}{
		{"with consultation", true, bookingModel.StepConsultationTime},
		{"without consultation", false, bookingModel.StepConsultationChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(OutcomeSuccess)
			s := NewSession()
			advanceToClosing(t, svc, s, "rachel", false)
			if err := svc.SubmitClosing(s, bookingTypes.ClosingRequest{IsFirstTattoo: "I have many other tattoos, I'm covered"}); err != nil {
				t.Fatalf("SubmitClosing: %v", err)
			}
			if err := svc.ChooseConsultation(s, bookingTypes.ConsultationChoiceRequest{NeedsConsultation: boolPtr(tt.needs)}); err != nil {
				t.Fatalf("ChooseConsultation: %v", err)
			}
			if err := svc.Back(s); err != nil {
				t.Fatalf("Back: %v", err)
			}
			if s.CurrentStep != tt.want {
				t.Errorf("step = %d, want %d", s.CurrentStep, tt.want)
			}
		})
	}
}

func TestScheduleConsultationAfterBack(t *testing.T) {
	svc, _, _ := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	if err := svc.SubmitClosing(s, bookingTypes.ClosingRequest{IsFirstTattoo: "I have many other tattoos, I'm covered"}); err != nil {
		t.Fatalf("SubmitClosing: %v", err)
	}
	if err := svc.ChooseConsultation(s, bookingTypes.ConsultationChoiceRequest{NeedsConsultation: boolPtr(true)}); err != nil {
		t.Fatalf("ChooseConsultation: %v", err)
	}
	if err := svc.Back(s); err != nil {
		t.Fatalf("Back: %v", err)
	}

	ref := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC) // a Monday
	err := svc.ScheduleConsultation(s, bookingTypes.ConsultationScheduleRequest{
		Date: "2026-09-02", Time: "20:00-20:30",
	}, ref)
	if err != nil {
		t.Fatalf("ScheduleConsultation: %v", err)
	}
	if s.CurrentStep != bookingModel.StepPayment {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepPayment)
	}
	if s.Form.ConsultationDate != "Wednesday, September 2, 2026" {
		t.Errorf("ConsultationDate = %q", s.Form.ConsultationDate)
	}
	if s.Form.ConsultationTime != "8:00 PM - 8:30 PM" {
		t.Errorf("ConsultationTime = %q", s.Form.ConsultationTime)
	}
}

func TestScheduleConsultationRejectsUnlistedDate(t *testing.T) {
	svc, _, _ := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	if err := svc.SubmitClosing(s, bookingTypes.ClosingRequest{IsFirstTattoo: "I have many other tattoos, I'm covered"}); err != nil {
		t.Fatalf("SubmitClosing: %v", err)
	}
	if err := svc.ChooseConsultation(s, bookingTypes.ConsultationChoiceRequest{NeedsConsultation: boolPtr(true)}); err != nil {
		t.Fatalf("ChooseConsultation: %v", err)
	}
	if err := svc.Back(s); err != nil {
		t.Fatalf("Back: %v", err)
	}

	ref := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	err := svc.ScheduleConsultation(s, bookingTypes.ConsultationScheduleRequest{
		Date: "2026-09-03", Time: "20:00-20:30", // a Thursday
	}, ref)
	if err == nil {
		t.Fatal("expected rejection of unlisted date")
	}
	if s.CurrentStep != bookingModel.StepConsultationTime {
		t.Errorf("step = %d, want unchanged 8", s.CurrentStep)
	}
}

func TestInitiatePaymentReturnsHostedURL(t *testing.T) {
	svc, notifier, drafts := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "jing", false)
	advanceToPayment(t, svc, s)

	url, err := svc.InitiatePayment(s)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if !strings.Contains(url, "prefilled_email=jane%40example.com") {
		t.Errorf("url = %q, want prefilled email", url)
	}
	if s.CurrentStep != bookingModel.StepPaymentProcessing {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepPaymentProcessing)
	}
	if len(drafts.saves) != 2 || drafts.saves[1] != bookingModel.DraftEventPaymentInitiated {
		t.Errorf("saves = %v, want payment_initiated last", drafts.saves)
	}
	if notifier.draftCount() != 2 {
		t.Errorf("draft sends = %d, want 2", notifier.draftCount())
	}
}

func TestInitiatePaymentRequiresContactEssentials(t *testing.T) {
	svc, _, _ := newTestService(OutcomeSuccess)
	s := NewSession()
	s.CurrentStep = bookingModel.StepPayment // empty form, no name/email

	if _, err := svc.InitiatePayment(s); err == nil {
		t.Fatal("expected blocking error for missing name/email")
	}
	if s.CurrentStep != bookingModel.StepPayment {
		t.Errorf("step = %d, want unchanged 9", s.CurrentStep)
	}
}

func TestProcessPaymentSuccessSendsConfirmationOnce(t *testing.T) {
	svc, notifier, _ := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	advanceToPayment(t, svc, s)
	if _, err := svc.InitiatePayment(s); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	outcome, sent, err := svc.ProcessPayment(context.Background(), s)
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if outcome != OutcomeSuccess || !sent {
		t.Fatalf("outcome = %v sent = %v, want success and sent", outcome, sent)
	}
	if s.CurrentStep != bookingModel.StepSuccess {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepSuccess)
	}

	// Re-entering the success screen does not send again.
	if again := svc.EnterSuccess(s); again {
		t.Error("second success entry sent a duplicate confirmation")
	}
	if len(notifier.confirmations) != 1 {
		t.Errorf("confirmations = %d, want 1", len(notifier.confirmations))
	}
}

func TestProcessPaymentFailureThenRetry(t *testing.T) {
	svc, notifier, _ := newTestService(OutcomeFailure)
	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	advanceToPayment(t, svc, s)
	if _, err := svc.InitiatePayment(s); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	outcome, sent, err := svc.ProcessPayment(context.Background(), s)
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if outcome != OutcomeFailure || sent {
		t.Fatalf("outcome = %v sent = %v, want failure and no send", outcome, sent)
	}
	if s.CurrentStep != bookingModel.StepPaymentFailed {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepPaymentFailed)
	}
	if len(notifier.confirmations) != 0 {
		t.Errorf("confirmations = %d, want 0", len(notifier.confirmations))
	}

	if err := svc.RetryPayment(s); err != nil {
		t.Fatalf("RetryPayment: %v", err)
	}
	if s.CurrentStep != bookingModel.StepPayment {
		t.Errorf("step = %d, want back at %d", s.CurrentStep, bookingModel.StepPayment)
	}
}

func TestProcessPaymentIgnoresOutcomeAfterCancel(t *testing.T) {
	notifier := newFakeNotifier()
	drafts := newFakeDraftStore()
	links := payment.NewResolverWith(true, "http://localhost:3000")
	svc := NewServiceWith(drafts, notifier, links, FixedOutcomeSource{Outcome: OutcomeSuccess}, 100*time.Millisecond)

	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	advanceToPayment(t, svc, s)
	if _, err := svc.InitiatePayment(s); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		_, _, err := svc.ProcessPayment(context.Background(), s)
		errCh <- err
	}()

	// Cancel the hosted checkout while the processing wait is pending.
	time.Sleep(20 * time.Millisecond)
	if err := svc.CancelPayment(s); err != nil {
		t.Fatalf("CancelPayment: %v", err)
	}

	if err := <-errCh; err == nil {
		t.Fatal("pending outcome applied after cancellation")
	}
	if s.CurrentStep != bookingModel.StepPaymentCancelled {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepPaymentCancelled)
	}
	if len(notifier.confirmations) != 0 {
		t.Errorf("confirmations = %d, want 0 for a cancelled payment", len(notifier.confirmations))
	}
}

func TestProcessPaymentIgnoresOutcomeAfterReset(t *testing.T) {
	notifier := newFakeNotifier()
	drafts := newFakeDraftStore()
	links := payment.NewResolverWith(true, "http://localhost:3000")
	svc := NewServiceWith(drafts, notifier, links, FixedOutcomeSource{Outcome: OutcomeSuccess}, 100*time.Millisecond)

	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	advanceToPayment(t, svc, s)
	if _, err := svc.InitiatePayment(s); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		_, _, err := svc.ProcessPayment(context.Background(), s)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	svc.Reset(s)

	if err := <-errCh; err == nil {
		t.Fatal("pending outcome applied after reset")
	}
	if s.CurrentStep != bookingModel.StepArtistSelection {
		t.Errorf("step = %d, want 1", s.CurrentStep)
	}
	if len(notifier.confirmations) != 0 {
		t.Errorf("confirmations = %d, want 0 after reset", len(notifier.confirmations))
	}
}

func TestEnterSuccessRequiresContactInfo(t *testing.T) {
	svc, notifier, _ := newTestService(OutcomeSuccess)
	s := NewSession()

	if sent := svc.EnterSuccess(s); sent {
		t.Error("empty form should not trigger a confirmation")
	}
	if s.CurrentStep != bookingModel.StepSuccess {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepSuccess)
	}
	if len(notifier.confirmations) != 0 {
		t.Errorf("confirmations = %d, want 0", len(notifier.confirmations))
	}
}

func TestProcessPaymentHonorsContextCancel(t *testing.T) {
	notifier := newFakeNotifier()
	drafts := newFakeDraftStore()
	links := payment.NewResolverWith(true, "http://localhost:3000")
	svc := NewServiceWith(drafts, notifier, links, FixedOutcomeSource{Outcome: OutcomeSuccess}, time.Minute)

	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	advanceToPayment(t, svc, s)
	if _, err := svc.InitiatePayment(s); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := svc.ProcessPayment(ctx, s)
	if err == nil {
		t.Fatal("expected context error")
	}
	if s.CurrentStep != bookingModel.StepPaymentProcessing {
		t.Errorf("step = %d, want still processing", s.CurrentStep)
	}
}

func TestCancelAndResumePayment(t *testing.T) {
	svc, _, _ := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	advanceToPayment(t, svc, s)
	if _, err := svc.InitiatePayment(s); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if err := svc.CancelPayment(s); err != nil {
		t.Fatalf("CancelPayment: %v", err)
	}
	if s.CurrentStep != bookingModel.StepPaymentCancelled {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepPaymentCancelled)
	}
	if err := svc.ResumePayment(s); err != nil {
		t.Fatalf("ResumePayment: %v", err)
	}
	if s.CurrentStep != bookingModel.StepPayment {
		t.Errorf("step = %d, want %d", s.CurrentStep, bookingModel.StepPayment)
	}
}

func TestBackIsUndefinedForEntryAndTerminalSteps(t *testing.T) {
	for _, step := range []bookingModel.Step{
		bookingModel.StepArtistSelection,
		bookingModel.StepSuccess,
		bookingModel.StepPaymentProcessing,
	} {
		svc, _, _ := newTestService(OutcomeSuccess)
		s := NewSession()
		s.CurrentStep = step
		if err := svc.Back(s); err == nil {
			t.Errorf("step %d: expected back-navigation error", step)
		}
	}
}

func TestResetFromAnyStep(t *testing.T) {
	for step := bookingModel.StepArtistSelection; step <= bookingModel.StepPaymentCancelled; step++ {
		svc, _, _ := newTestService(OutcomeSuccess)
		s := NewSession()
		s.CurrentStep = step
		s.Form.Name = "Jane"
		svc.Reset(s)
		if s.CurrentStep != bookingModel.StepArtistSelection {
			t.Errorf("from %d: step = %d, want 1", step, s.CurrentStep)
		}
		if !reflect.DeepEqual(s.Form, bookingModel.FormData{}) {
			t.Errorf("from %d: form not cleared", step)
		}
	}
}

func TestReturnHomeDeletesDraft(t *testing.T) {
	svc, _, drafts := newTestService(OutcomeSuccess)
	s := NewSession()
	advanceToClosing(t, svc, s, "rachel", false)
	advanceToPayment(t, svc, s)
	if _, err := svc.InitiatePayment(s); err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if _, _, err := svc.ProcessPayment(context.Background(), s); err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}

	svc.ReturnHome(s)
	if drafts.deletes != 1 {
		t.Errorf("deletes = %d, want 1", drafts.deletes)
	}
	if s.CurrentStep != bookingModel.StepArtistSelection {
		t.Errorf("step = %d, want 1", s.CurrentStep)
	}
}

func TestRandomOutcomeDistribution(t *testing.T) {
	src := NewRandomOutcomeSource()
	successes := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if src.Next() == OutcomeSuccess {
			successes++
		}
	}
	ratio := float64(successes) / n
	if ratio < 0.6 || ratio > 0.8 {
		t.Errorf("success ratio = %.3f, want around 0.7", ratio)
	}
}
