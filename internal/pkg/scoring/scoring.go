// Package scoring turns a diagnostic answer set into the four Crooly Traction
// Method dimension scores and the derived overall score.
//
// Every score is rounded to one decimal with round-half-up. The overall score
// is always the mean of the already rounded dimension scores, never of the raw
// answers.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrIncompleteAnswerSet = errors.New("answer set is incomplete")
	ErrAnswerOutOfRange    = errors.New("answer out of range")
	ErrUnknownQuestion     = errors.New("unknown question id")
)

// AnswerSet maps a question id to its 1-5 response.
type AnswerSet map[string]int

type Scores struct {
	Credibilidad       float64 `json:"credibilidad"`
	CapacidadComercial float64 `json:"capacidad_comercial"`
	Posicionamiento    float64 `json:"posicionamiento"`
	Operacion          float64 `json:"operacion"`
}

func (s Scores) Get(key DimensionKey) float64 {
	switch key {
	case DimensionCredibilidad:
		return s.Credibilidad
	case DimensionCapacidadComercial:
		return s.CapacidadComercial
	case DimensionPosicionamiento:
		return s.Posicionamiento
	case DimensionOperacion:
		return s.Operacion
	}
	return 0
}

func (s *Scores) set(key DimensionKey, value float64) {
	switch key {
	case DimensionCredibilidad:
		s.Credibilidad = value
	case DimensionCapacidadComercial:
		s.CapacidadComercial = value
	case DimensionPosicionamiento:
		s.Posicionamiento = value
	case DimensionOperacion:
		s.Operacion = value
	}
}

// ValidateAnswerSet accepts only a set holding exactly the 12 questionnaire ids,
// each answered within [MinAnswerValue, MaxAnswerValue].
func ValidateAnswerSet(answers AnswerSet) error {
	for _, dimension := range questionnaire {
		for _, question := range dimension.Questions {
			value, ok := answers[question.ID]
			if !ok {
				return fmt.Errorf("%w: missing answer for %s", ErrIncompleteAnswerSet, question.ID)
			}
			if value < MinAnswerValue || value > MaxAnswerValue {
				return fmt.Errorf("%w: %s=%d", ErrAnswerOutOfRange, question.ID, value)
			}
		}
	}

	var unknown []string
	for id := range answers {
		if !isKnownQuestion(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %v", ErrUnknownQuestion, unknown)
	}
	return nil
}

// ComputeDimensionScore averages the answers of questionIDs and rounds to one
// decimal. The order of questionIDs does not matter. Missing answers count as 0,
// callers are expected to run ValidateAnswerSet first.
func ComputeDimensionScore(questionIDs []string, answers AnswerSet) float64 {
	if len(questionIDs) == 0 {
		return 0
	}

	total := 0
	for _, id := range questionIDs {
		total += answers[id]
	}
	return RoundToOneDecimal(float64(total) / float64(len(questionIDs)))
}

func ComputeScores(answers AnswerSet) Scores {
	var scores Scores
	for _, dimension := range questionnaire {
		scores.set(dimension.Key, ComputeDimensionScore(dimension.QuestionIDs(), answers))
	}
	return scores
}

// ComputeOverallScore is a two-stage aggregation: the mean of the four rounded
// dimension scores, rounded again.
func ComputeOverallScore(scores Scores) float64 {
	sum := scores.Credibilidad + scores.CapacidadComercial + scores.Posicionamiento + scores.Operacion
	return RoundToOneDecimal(sum / 4)
}

func RoundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// ScoreLabel maps a 1.0-5.0 score to its maturity band.
func ScoreLabel(score float64) string {
	switch {
	case score <= 2.0:
		return "Bajo"
	case score <= 3.0:
		return "En desarrollo"
	case score <= 4.0:
		return "Intermedio"
	default:
		return "Avanzado"
	}
}
