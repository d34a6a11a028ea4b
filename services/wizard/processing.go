package wizard

import (
	"context"
	"fmt"
	"time"

	"tattoo-booking/logger"
	bookingModel "tattoo-booking/models/booking"
)

// ProcessPayment runs the synthetic processing tail: after the
// configured delay it resolves an outcome and lands the session on the
// success or failure step. Cancelling the context leaves the session
// where it was (the processing step), from which CancelPayment or a
// fresh ProcessPayment call can follow. Returns the resolved outcome
// and whether the confirmation email was dispatched by this call.
func (svc *Service) ProcessPayment(ctx context.Context, s *Session) (Outcome, bool, error) {
	s.mu.Lock()
	if err := ensureStep(s, bookingModel.StepPaymentProcessing, bookingModel.StepPaymentProcessing); err != nil {
		s.mu.Unlock()
		return OutcomeFailure, false, err
	}
	s.mu.Unlock()

	timer := time.NewTimer(svc.processingDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return OutcomeFailure, false, ctx.Err()
	case <-timer.C:
	}

	outcome := svc.outcomes.Next()

	s.mu.Lock()
	// A cancel or reset may have moved the session while the timer ran;
	// the pending outcome no longer applies.
	if s.CurrentStep != bookingModel.StepPaymentProcessing {
		step := s.CurrentStep
		s.mu.Unlock()
		return outcome, false, fmt.Errorf("%w: at step %d", ErrWrongStep, step)
	}

	if outcome == OutcomeFailure {
		s.CurrentStep = bookingModel.StepPaymentFailed
		s.Submitting = false
		s.mu.Unlock()
		return OutcomeFailure, false, nil
	}

	s.CurrentStep = bookingModel.StepSuccess
	s.Submitting = false
	snap := svc.snapshot(s)
	s.mu.Unlock()

	snap.Status = bookingModel.DraftStatusCompleted
	sent, res := svc.notifier.SendConfirmationOnce(snap)
	if sent && !res.Success {
		logger.Error("Booking confirmation email failed", res.Err)
	}
	// The draft stays COMPLETED until the customer leaves the success
	// screen.
	if err := svc.drafts.Save(s.ID, snap, bookingModel.DraftEventCompleted); err != nil {
		logger.Error("Failed to mark booking draft completed", err)
	}
	return OutcomeSuccess, sent, nil
}
