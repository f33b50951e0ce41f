package registration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is how long a submission pretends to talk to a backend.
const DefaultDelay = 1500 * time.Millisecond

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID          uuid.UUID
	SubmittedAt time.Time
}

// Submitter accepts registrations. There is no backend: an accepted form is
// held for Delay and then written to the debug log.
type Submitter struct {
	Delay  time.Duration
	Logger *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewSubmitter returns a Submitter that waits delay and logs to logger. A nil
// logger uses slog.Default().
func NewSubmitter(delay time.Duration, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{
		Delay:  delay,
		Logger: logger,
		now:    time.Now,
		sleep:  sleep,
	}
}

// Submit validates f, waits the configured delay and logs the submission.
// An invalid form returns a *ValidationError straight away. The wait ends
// early only when ctx is done, in which case nothing is logged.
func (s *Submitter) Submit(ctx context.Context, f Form) (Receipt, error) {
	if errs := Validate(f); errs != nil {
		return Receipt{}, &ValidationError{Errors: errs}
	}

	if err := s.sleep(ctx, s.Delay); err != nil {
		return Receipt{}, err
	}

	r := Receipt{
		ID:          uuid.New(),
		SubmittedAt: s.now(),
	}
	s.Logger.DebugContext(ctx, "registration submitted",
		"id", r.ID.String(),
		"first_name", f.FirstName,
		"last_name", f.LastName,
		"email", f.Email,
		"phone", f.Phone,
		"birth_date", f.BirthDate,
		"event", f.Event,
	)
	return r, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
