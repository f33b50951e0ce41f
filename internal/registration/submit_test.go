package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSubmit_LogsAcceptedForm(t *testing.T) {
	var buf bytes.Buffer
	s := NewSubmitter(0, debugLogger(&buf))
	fixed := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	r, err := s.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, r.ID)
	require.Equal(t, fixed, r.SubmittedAt)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "registration submitted", entry["msg"])
	require.Equal(t, "DEBUG", entry["level"])
	require.Equal(t, r.ID.String(), entry["id"])
	require.Equal(t, "jean.dupont@example.com", entry["email"])
	require.Equal(t, "conference", entry["event"])
}

func TestSubmit_InvalidFormSkipsDelayAndLog(t *testing.T) {
	var buf bytes.Buffer
	s := NewSubmitter(time.Hour, debugLogger(&buf))

	f := validForm()
	f.BirthDate = ""
	_, err := s.Submit(context.Background(), f)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, Errors{FieldBirthDate: MsgBirthDate}, verr.Errors)
	require.Zero(t, buf.Len())
}

func TestSubmit_WaitsForDelay(t *testing.T) {
	var slept time.Duration
	s := NewSubmitter(DefaultDelay, debugLogger(&bytes.Buffer{}))
	s.sleep = func(_ context.Context, d time.Duration) error {
		slept = d
		return nil
	}

	_, err := s.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, slept)
}

func TestSubmit_CancelledContextStopsWaiting(t *testing.T) {
	var buf bytes.Buffer
	s := NewSubmitter(time.Hour, debugLogger(&buf))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := s.Submit(ctx, validForm())
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
	require.Zero(t, buf.Len())
}

func TestSleep_RealTimer(t *testing.T) {
	start := time.Now()
	require.NoError(t, sleep(context.Background(), 20*time.Millisecond))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
