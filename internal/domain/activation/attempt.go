package activation

import (
	"time"

	"golden-key-funnel/internal/domain/funnel"

	"github.com/google/uuid"
)

// Attempt is one request to validate a key on behalf of a lead.
// Only the newest attempt of a session is live; older ones are discarded.
type Attempt struct {
	ID          uuid.UUID
	Key         Key
	Lead        Lead
	Tracking    funnel.Tracking
	SubmittedAt time.Time
}

func NewAttempt(key Key, lead Lead, tracking funnel.Tracking, now time.Time) Attempt {
	return Attempt{
		ID:          uuid.New(),
		Key:         key,
		Lead:        lead,
		Tracking:    tracking,
		SubmittedAt: now,
	}
}
