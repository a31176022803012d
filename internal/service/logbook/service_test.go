package logbook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAI struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (s *stubAI) GenerateReply(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestService(ai *stubAI) *Service {
	svc := NewService(ai, nil)
	svc.now = func() time.Time {
		return time.Date(2025, time.February, 14, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestSubmitRejectsBlankInput(t *testing.T) {
	svc := newTestService(&stubAI{})

	_, err := svc.Submit(context.Background(), "", "   \n\t")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSubmitReportsMissingFields(t *testing.T) {
	svc := newTestService(&stubAI{})

	result, err := svc.Submit(context.Background(), "", "Teacher arrived at 09:00")
	require.NoError(t, err)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{"departure", "topics"}, result.Missing)
}

func TestSubmitFinalizesAcrossTurns(t *testing.T) {
	ai := &stubAI{reply: "Stored, thank you!"}
	svc := newTestService(ai)
	ctx := context.Background()

	result, err := svc.Submit(ctx, "", "Teacher arrived at 09:00, left at 13:00 for 2025-02-14")
	require.NoError(t, err)
	require.False(t, result.Complete)
	assert.Equal(t, []string{"topics"}, result.Missing)
	assert.Zero(t, svc.StoreFor("").Len())

	result, err = svc.Submit(ctx, "", "It's Friday. studied math. Muhammad 18, Abubakar 15, Hafsa 20")
	require.NoError(t, err)
	require.True(t, result.Complete)

	assert.Equal(t, "Stored, thank you!", result.Reply)
	assert.Equal(t, 1, ai.calls, "finalization must trigger exactly once")
	assert.Equal(t, 1, svc.StoreFor("").Len())

	record := result.Record
	require.NotNil(t, record)
	assert.Equal(t, "2025-02-14", record.Date)
	assert.Equal(t, "09:00", record.Arrival)
	assert.Equal(t, "13:00", record.Departure)
	assert.True(t, record.IsFriday)
	assert.Equal(t, "18", record.Mark("muhammad"))
	assert.Equal(t, "15", record.Mark("abubakar"))
	assert.Equal(t, "20", record.Mark("hafsa"))
}

func TestSubmitAcknowledgementPrompt(t *testing.T) {
	ai := &stubAI{reply: "ok"}
	svc := newTestService(ai)

	_, err := svc.Submit(context.Background(), "", "arrived at 09:00, left at 13:00, studied physics")
	require.NoError(t, err)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "User gave teacher data:")
	assert.Contains(t, ai.prompts[0], "Arrival: 09:00")
	assert.Contains(t, ai.prompts[0], "isFriday: false")
	assert.Contains(t, ai.prompts[0], "Muhammad: none")
}

func TestSubmitResetsAfterAcknowledgementFailure(t *testing.T) {
	ai := &stubAI{err: errors.New("boom")}
	svc := newTestService(ai)
	ctx := context.Background()

	result, err := svc.Submit(ctx, "", "arrived at 09:00, left at 13:00, studied physics")
	require.NoError(t, err)

	require.True(t, result.Complete, "client failure must not block finalization")
	assert.Equal(t, "Error calling Gemini: boom", result.Reply)
	assert.Equal(t, 1, svc.StoreFor("").Len())

	sess := svc.sessions.GetOrCreate("")
	assert.Empty(t, sess.Ongoing.Date)
	assert.Empty(t, sess.Ongoing.Arrival)
	assert.Empty(t, sess.Ongoing.Departure)
	assert.Empty(t, sess.Ongoing.Topics)
	assert.False(t, sess.Ongoing.IsFriday)
	assert.Empty(t, sess.Ongoing.Marks)
	assert.Nil(t, sess.Missing)
}

func TestSubmitSessionsAreIsolated(t *testing.T) {
	svc := newTestService(&stubAI{reply: "ok"})
	ctx := context.Background()

	_, err := svc.Submit(ctx, "alpha", "arrived at 09:00, left at 13:00, studied art")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.StoreFor("alpha").Len())
	assert.Zero(t, svc.StoreFor("beta").Len())
	assert.Equal(t, []string{"alpha", "beta"}, svc.SessionIDs())
}

func TestRecordsReturnsInsertionOrder(t *testing.T) {
	svc := newTestService(&stubAI{reply: "ok"})
	ctx := context.Background()

	_, err := svc.Submit(ctx, "", "arrived at 09:00, left at 13:00, studied art for 2025-02-13")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "", "arrived at 08:30, left at 12:00, studied music for 2025-02-14")
	require.NoError(t, err)

	records := svc.Records("")
	require.Len(t, records, 2)
	assert.Equal(t, "2025-02-13", records[0].Date)
	assert.Equal(t, "2025-02-14", records[1].Date)
}
