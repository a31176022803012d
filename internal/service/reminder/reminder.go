// Package reminder decides whether the end-of-day logging reminder should
// fire.
package reminder

import (
	"time"

	"go.uber.org/zap"

	"github.com/ProMBZ/Teacher-Project/internal/repository/memory"
)

const dateLayout = "2006-01-02"

// DefaultHour is the 24-hour threshold after which the reminder applies.
const DefaultHour = 18

// Message is the advisory text shown when the reminder is due.
const Message = "You haven't logged info for today! (After 6:00 PM)"

// Service evaluates the reminder condition. It is purely advisory: no state
// is kept and every call re-evaluates from scratch.
type Service struct {
	hour   int
	logger *zap.Logger
}

// NewService wires a reminder service. A non-positive hour falls back to
// DefaultHour.
func NewService(hour int, logger *zap.Logger) *Service {
	if hour <= 0 {
		hour = DefaultHour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{hour: hour, logger: logger}
}

// Due reports whether a reminder should be raised at now: the local hour
// has reached the threshold and the store holds no record dated today.
func (s *Service) Due(now time.Time, store memory.Repository) bool {
	if now.Hour() < s.hour {
		return false
	}
	return !store.HasDate(now.Format(dateLayout))
}
