package booking

// Step is a wizard screen index. The flow is linear 1-9 with a
// consultation branch, then the payment outcome states.
type Step int

const (
	StepArtistSelection    Step = 1
	StepContactInfo        Step = 2
	StepTattooIdea         Step = 3
	StepPlacement          Step = 4
	StepPreferences        Step = 5
	StepClosingQuestions   Step = 6
	StepConsultationChoice Step = 7
	StepConsultationTime   Step = 8
	StepPayment            Step = 9
	StepSuccess            Step = 10
	StepPaymentProcessing  Step = 11
	StepPaymentFailed      Step = 12
	StepPaymentCancelled   Step = 13
)

func (s Step) IsValid() bool {
	return s >= StepArtistSelection && s <= StepPaymentCancelled
}

// IsTerminal reports whether the step ends the wizard session. Success
// only offers a reset; the help-choosing branch resets from step 6.
func (s Step) IsTerminal() bool {
	return s == StepSuccess
}

// HasBack reports whether back-navigation is defined for the step.
// There is no back from the first screen, the terminal success screen,
// or the synthetic processing screen.
func (s Step) HasBack() bool {
	switch s {
	case StepArtistSelection, StepSuccess, StepPaymentProcessing:
		return false
	default:
		return s.IsValid()
	}
}

// DraftStatus tracks the lifecycle of a persisted draft snapshot.
type DraftStatus string

const (
	DraftStatusPendingPayment DraftStatus = "PENDING_PAYMENT"
	DraftStatusCompleted      DraftStatus = "COMPLETED"
)

func (ds DraftStatus) String() string {
	return string(ds)
}

func (ds DraftStatus) IsValid() bool {
	switch ds {
	case DraftStatusPendingPayment, DraftStatusCompleted:
		return true
	default:
		return false
	}
}
