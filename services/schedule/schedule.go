// Package schedule generates the consultation slots: two fixed evening
// windows on the next eight Wednesdays.
package schedule

import (
	"time"

	"github.com/jinzhu/now"
)

// DateOption pairs the machine value (ISO date) with the label shown to
// the customer and embedded in notification payloads.
type DateOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimeSlot is one of the two fixed consultation windows.
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimeSlots are the only bookable windows, every Wednesday evening.
var TimeSlots = []TimeSlot{
	{Value: "20:00-20:30", Label: "8:00 PM - 8:30 PM"},
	{Value: "20:45-21:15", Label: "8:45 PM - 9:15 PM"},
}

const upcomingWeeks = 8

// UpcomingWednesdays returns the next eight Wednesdays strictly after
// the reference day. A reference that falls on a Wednesday starts from
// the following week.
func UpcomingWednesdays(ref time.Time) []DateOption {
	day := now.With(ref).BeginningOfDay()

	daysUntil := (int(time.Wednesday) - int(day.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	next := day.AddDate(0, 0, daysUntil)

	dates := make([]DateOption, 0, upcomingWeeks)
	for i := 0; i < upcomingWeeks; i++ {
		d := next.AddDate(0, 0, i*7)
		dates = append(dates, DateOption{
			Value: d.Format("2006-01-02"),
			Label: d.Format("Monday, January 2, 2006"),
		})
	}
	return dates
}

// FindDate returns the option matching the ISO date value, or nil when
// the date is not one of the listed Wednesdays.
func FindDate(ref time.Time, value string) *DateOption {
	for _, d := range UpcomingWednesdays(ref) {
		if d.Value == value {
			return &d
		}
	}
	return nil
}

// FindSlot returns the slot matching the value, or nil when the value
// is not one of the fixed windows.
func FindSlot(value string) *TimeSlot {
	for i := range TimeSlots {
		if TimeSlots[i].Value == value {
			return &TimeSlots[i]
		}
	}
	return nil
}
