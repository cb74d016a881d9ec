package responses

import (
	"crooly-service/internal/pkg/scoring"
	"time"
)

type Diagnostic struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	scoring.Scores
	Overall      float64           `json:"overall"`
	OverallLabel string            `json:"overall_label"`
	Dimensions   []DimensionResult `json:"dimensions"`
	Answers      scoring.AnswerSet `json:"answers"`
	Narrative    *string           `json:"narrative"`
	CreatedAt    time.Time         `json:"created_at"`
}

type DimensionResult struct {
	Key        scoring.DimensionKey `json:"key"`
	Label      string               `json:"label"`
	Score      float64              `json:"score"`
	ScoreLabel string               `json:"score_label"`
}

type Questionnaire struct {
	Scale struct {
		Min int `json:"min"`
		Max int `json:"max"`
	} `json:"scale"`
	Dimensions []scoring.Dimension `json:"dimensions"`
}

// Narrative and NarrativeError are written bare, without the ResponseDTO envelope.
type Narrative struct {
	Narrative string `json:"narrative"`
}

type NarrativeError struct {
	Error string `json:"error"`
}
