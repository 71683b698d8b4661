package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSubmitDelay mimics the round trip of a real mail relay.
const DefaultSubmitDelay = 1500 * time.Millisecond

type Receipt struct {
	ID         uuid.UUID `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Submitter accepts contact messages. Nothing is delivered or stored; each accepted message is
// only logged.
type Submitter struct {
	delay time.Duration
	log   *zap.Logger
	now   func() time.Time
}

func NewSubmitter(delay time.Duration, log *zap.Logger) *Submitter {
	return &Submitter{
		delay: delay,
		log:   log,
		now:   time.Now,
	}
}

// Submit validates the form, waits out the delivery delay and returns a receipt.
// It returns ctx.Err() if the context ends first.
func (s *Submitter) Submit(ctx context.Context, form Form) (Receipt, error) {
	if err := form.Validate(); err != nil {
		return Receipt{}, err
	}
	form = form.Trimmed()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		ID:         uuid.New(),
		ReceivedAt: s.now().UTC(),
	}
	s.log.Info("contact message received",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("email", form.Email),
		zap.String("subject", form.Subject),
		zap.Int("message_length", len(form.Message)),
	)
	return receipt, nil
}
