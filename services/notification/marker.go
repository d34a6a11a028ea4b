package notification

import (
	"strings"
	"sync"

	bookingModel "tattoo-booking/models/booking"

	"gorm.io/gorm"
)

// MarkerStore is the persisted "already sent" guard for confirmation
// emails. MarkSent is an idempotent check-and-set: it returns true only
// for the first call with a given key, on every later call (including
// after a reload) it returns false.
type MarkerStore interface {
	MarkSent(key string) (bool, error)
}

// DeriveKey builds the guard key from the booking identity.
func DeriveKey(email, name, artistID string) string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(email)),
		strings.ToLower(strings.TrimSpace(name)),
		strings.ToLower(strings.TrimSpace(artistID)),
	}
	return strings.Join(parts, "|")
}

// GormMarkerStore persists markers in the notification_markers table.
type GormMarkerStore struct {
	db *gorm.DB
}

func NewGormMarkerStore(db *gorm.DB) *GormMarkerStore {
	return &GormMarkerStore{db: db}
}

func (s *GormMarkerStore) MarkSent(key string) (bool, error) {
	marker := bookingModel.NotificationMarker{Key: key}
	res := s.db.Where("key = ?", key).FirstOrCreate(&marker)
	if res.Error != nil {
		return false, res.Error
	}
	// RowsAffected is 1 only when this call inserted the marker.
	return res.RowsAffected == 1, nil
}

// MemoryMarkerStore keeps markers in memory. Used in tests and as a
// degraded fallback when the database is unavailable.
type MemoryMarkerStore struct {
	mu   sync.Mutex
	sent map[string]bool
}

func NewMemoryMarkerStore() *MemoryMarkerStore {
	return &MemoryMarkerStore{sent: make(map[string]bool)}
}

func (s *MemoryMarkerStore) MarkSent(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sent[key] {
		return false, nil
	}
	s.sent[key] = true
	return true, nil
}
