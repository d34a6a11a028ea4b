package wizard

import (
	"math/rand"
	"time"
)

// Outcome is the simulated result of the hosted payment handoff. There
// is no real callback channel from the payment provider, so the
// processing screen resolves to one of these locally.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
)

// OutcomeSource produces payment outcomes. The production source is
// random; tests inject a deterministic one.
type OutcomeSource interface {
	Next() Outcome
}

// RandomOutcomeSource succeeds 70% of the time, mirroring the odds the
// simulated checkout has always used.
type RandomOutcomeSource struct {
	rnd *rand.Rand
}

func NewRandomOutcomeSource() *RandomOutcomeSource {
	return &RandomOutcomeSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *RandomOutcomeSource) Next() Outcome {
	if s.rnd.Float64() > 0.3 {
		return OutcomeSuccess
	}
	return OutcomeFailure
}

// FixedOutcomeSource always yields the same outcome.
type FixedOutcomeSource struct {
	Outcome Outcome
}

func (s FixedOutcomeSource) Next() Outcome {
	return s.Outcome
}
