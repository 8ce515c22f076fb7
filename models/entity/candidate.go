package entitymodels

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"wired-people-backend/lib/apperrors"
	"wired-people-backend/models"
)

type CandidateNote struct {
	ID        string
	Author    string
	Text      string
	CreatedAt time.Time
}

// ProcessCandidate links a talent to a process. AppliedAt never changes
// after creation; LastActivityAt is touched by every mutation. Notes are
// append-only.
type ProcessCandidate struct {
	ID             string
	ProcessID      string
	CandidateID    string
	CandidateName  string
	CandidateEmail string
	Status         models.CandidateStatus
	AppliedAt      time.Time
	LastActivityAt time.Time
	Notes          []CandidateNote
	Score          *int
}

func (c *ProcessCandidate) SetStatus(status models.CandidateStatus) error {
	if !status.IsValid() {
		return apperrors.Validation("unknown candidate status")
	}
	c.Status = status
	c.touch()
	return nil
}

func (c *ProcessCandidate) AddNote(author, text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.Validation("note text is required")
	}
	c.Notes = append(c.Notes, CandidateNote{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	})
	c.touch()
	return nil
}

func (c *ProcessCandidate) SetScore(score int) error {
	if score < 0 || score > 100 {
		return apperrors.Validation("score must be between 0 and 100")
	}
	c.Score = &score
	c.touch()
	return nil
}

func (c *ProcessCandidate) touch() {
	c.LastActivityAt = time.Now()
}
