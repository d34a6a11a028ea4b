// Package draftstore persists booking draft snapshots: one upserted
// row per wizard session plus an append-only event trail of every
// persisting transition.
package draftstore

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingModel "tattoo-booking/models/booking"
)

// GormStore writes drafts and their event snapshots to Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Save upserts the session's draft row and appends an event snapshot of
// the same state, both in one transaction.
func (s *GormStore) Save(sessionID string, snap bookingModel.Snapshot, eventType string) error {
	formJSON, err := json.Marshal(snap.Form)
	if err != nil {
		return err
	}

	draft := bookingModel.BookingDraft{
		SessionID:          sessionID,
		FormJSON:           string(formJSON),
		ArtistID:           snap.ArtistID(),
		ConsultationChoice: snap.ConsultationChoice,
		DepositAmount:      snap.DepositAmount,
		Status:             snap.Status,
		Timestamp:          snap.Timestamp,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"form_json", "artist_id", "consultation_choice",
				"deposit_amount", "status", "timestamp", "updated_at",
			}),
		}).Create(&draft).Error; err != nil {
			return err
		}
		return snapshotDraftToEvent(tx, &draft, eventType)
	})
}

// Load returns the session's persisted draft, or nil when none exists.
func (s *GormStore) Load(sessionID string) (*bookingModel.BookingDraft, error) {
	var draft bookingModel.BookingDraft
	err := s.db.Where("session_id = ?", sessionID).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// Delete removes the session's draft row, recording a deleted event
// first so the trail keeps the final state.
func (s *GormStore) Delete(sessionID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var draft bookingModel.BookingDraft
		err := tx.Where("session_id = ?", sessionID).First(&draft).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := snapshotDraftToEvent(tx, &draft, bookingModel.DraftEventDeleted); err != nil {
			return err
		}
		return tx.Delete(&draft).Error
	})
}

// snapshotDraftToEvent writes a full copy of the draft row into the
// event trail with the given event type.
func snapshotDraftToEvent(tx *gorm.DB, d *bookingModel.BookingDraft, eventType string) error {
	ev := bookingModel.DraftEvent{
		SessionID:          d.SessionID,
		FormJSON:           d.FormJSON,
		ArtistID:           d.ArtistID,
		ConsultationChoice: d.ConsultationChoice,
		DepositAmount:      d.DepositAmount,
		Status:             d.Status,
		Timestamp:          d.Timestamp,
		EventType:          eventType,
	}
	return tx.Create(&ev).Error
}
