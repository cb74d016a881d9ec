package models

import (
	"crooly-service/internal/pkg/scoring"
	"time"
)

// Diagnostic is immutable after insert except for Narrative.
type Diagnostic struct {
	ID        string
	CompanyID string
	scoring.Scores
	Answers   scoring.AnswerSet
	Narrative *string
	CreatedAt time.Time
}

// AttachOutcome reports what a narrative write did to the store.
type AttachOutcome string

const (
	AttachOutcomeApplied AttachOutcome = "applied"
	// AttachOutcomeMissing means no diagnostic row matched the id.
	AttachOutcomeMissing AttachOutcome = "missing"
)
