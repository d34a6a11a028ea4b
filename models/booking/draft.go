package booking

import (
	"time"
)

// BookingDraft is the persisted snapshot of an in-progress booking,
// written whenever the customer passes the consultation-choice step or
// proceeds to payment so a payment-page redirect does not lose data.
// One row per wizard session, last writer wins.
type BookingDraft struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string `gorm:"type:varchar(64);not null;unique" json:"session_id"`

	FormJSON           string      `gorm:"type:jsonb;not null" json:"form_json"`
	ArtistID           string      `gorm:"type:varchar(64)" json:"artist_id"`
	ConsultationChoice *bool       `gorm:"" json:"consultation_choice,omitempty"`
	DepositAmount      int         `gorm:"not null" json:"deposit_amount"`
	Status             DraftStatus `gorm:"type:varchar(30);not null;default:PENDING_PAYMENT" json:"status"`
	Timestamp          time.Time   `gorm:"not null" json:"timestamp"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DraftEvent is an append-only snapshot of a BookingDraft taken at each
// persisting transition. Events are many per session.
type DraftEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// DO NOT make this unique here (events are many per session)
	SessionID string `gorm:"type:varchar(64);not null;index" json:"session_id"`

	FormJSON           string      `gorm:"type:jsonb;not null" json:"form_json"`
	ArtistID           string      `gorm:"type:varchar(64)" json:"artist_id"`
	ConsultationChoice *bool       `gorm:"" json:"consultation_choice,omitempty"`
	DepositAmount      int         `gorm:"not null" json:"deposit_amount"`
	Status             DraftStatus `gorm:"type:varchar(30);not null" json:"status"`
	Timestamp          time.Time   `gorm:"not null" json:"timestamp"`

	EventType string    `gorm:"type:varchar(50);not null;index" json:"event_type"` // consultation_choice, payment_initiated, completed, deleted
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NotificationMarker records that a confirmation email has been sent
// for a derived booking identity (email+name+artist id). The unique
// key makes the send-once guard an idempotent check-and-set that
// survives page reloads.
type NotificationMarker struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"key"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Draft event types.
const (
	DraftEventConsultationChoice = "consultation_choice"
	DraftEventPaymentInitiated   = "payment_initiated"
	DraftEventCompleted          = "completed"
	DraftEventDeleted            = "deleted"
)
