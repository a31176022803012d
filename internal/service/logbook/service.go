// Package logbook orchestrates the daily-log conversation: field
// extraction, completion tracking, finalization and the acknowledgement
// call to the language model.
package logbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ProMBZ/Teacher-Project/internal/domain/models"
	"github.com/ProMBZ/Teacher-Project/internal/extract"
	"github.com/ProMBZ/Teacher-Project/internal/repository/memory"
	"github.com/ProMBZ/Teacher-Project/pkg/clients/gemini"
)

// ErrEmptyInput indicates the user submitted a blank turn.
var ErrEmptyInput = errors.New("empty input text")

const ackTimeout = 15 * time.Second

// SubmitResult reports the outcome of one conversational turn.
type SubmitResult struct {
	Complete bool
	Missing  []string
	Reply    string
	Record   *models.FinalizedRecord
}

// Service implements the submit/finalize flow over per-session state.
type Service struct {
	sessions *SessionManager
	ai       gemini.Client
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new logbook service instance.
func NewService(ai gemini.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sessions: NewSessionManager(),
		ai:       ai,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit processes one free-form turn against the session's ongoing record.
// Extraction never fails; fields that no rule matched simply stay unset and
// come back through the missing list. Once nothing is missing the record is
// finalized: snapshotted into the store, summarized to the model for an
// acknowledgement, and the ongoing record reset whether or not that call
// succeeded.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (SubmitResult, error) {
	if strings.TrimSpace(text) == "" {
		return SubmitResult{}, ErrEmptyInput
	}

	sess := s.sessions.GetOrCreate(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	extract.Apply(&sess.Ongoing, text, s.now())

	missing := extract.MissingFields(sess.Ongoing)
	if len(missing) > 0 {
		sess.Missing = missing
		s.logger.Info("record incomplete",
			zap.String("session_id", sessionID),
			zap.Strings("missing", missing))
		return SubmitResult{Missing: missing}, nil
	}

	record := sess.Ongoing.Snapshot()
	sess.Store.Append(record)

	reply := s.acknowledge(ctx, record)
	sess.ResetOngoing()

	s.logger.Info("record finalized",
		zap.String("session_id", sessionID),
		zap.String("date", record.Date),
		zap.Int("stored", sess.Store.Len()))

	return SubmitResult{Complete: true, Reply: reply, Record: &record}, nil
}

// acknowledge asks the model to confirm the stored record. It fails closed:
// any transport or provider error becomes part of the reply text instead of
// blocking finalization. Single attempt, no retries.
func (s *Service) acknowledge(ctx context.Context, record models.FinalizedRecord) string {
	prompt := fmt.Sprintf(
		"User gave teacher data:\n%s\nPlease reply acknowledging we've stored today's details.",
		summarize(record))

	ctxWithTimeout, cancel := context.WithTimeout(ctx, ackTimeout)
	defer cancel()

	reply, err := s.ai.GenerateReply(ctxWithTimeout, prompt)
	if err != nil {
		s.logger.Warn("acknowledgement call failed", zap.Error(err))
		return fmt.Sprintf("Error calling Gemini: %v", err)
	}
	return reply
}

func summarize(record models.FinalizedRecord) string {
	return fmt.Sprintf(
		"Date: %s, Arrival: %s, Departure: %s, Topics: %s, isFriday: %t, Muhammad: %s, Abubakar: %s, Hafsa: %s",
		record.Date, record.Arrival, record.Departure, record.Topics, record.IsFriday,
		markOrNone(record, "muhammad"), markOrNone(record, "abubakar"), markOrNone(record, "hafsa"))
}

func markOrNone(record models.FinalizedRecord, child string) string {
	if mark := record.Mark(child); mark != "" {
		return mark
	}
	return "none"
}

// Records returns the finalized records of a session in insertion order.
func (s *Service) Records(sessionID string) []models.FinalizedRecord {
	return s.sessions.GetOrCreate(sessionID).Store.List()
}

// StoreFor exposes a session's record store for read-side consumers
// (report rendering, reminders).
func (s *Service) StoreFor(sessionID string) memory.Repository {
	return s.sessions.GetOrCreate(sessionID).Store
}

// SessionIDs lists every active session.
func (s *Service) SessionIDs() []string {
	return s.sessions.IDs()
}
