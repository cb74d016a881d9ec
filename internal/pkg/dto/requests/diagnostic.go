package requests

import "crooly-service/internal/pkg/scoring"

type SubmitDiagnostic struct {
	CompanyID string            `json:"-"`
	Answers   scoring.AnswerSet `json:"answers" validate:"required"`
}

// GenerateNarrative keeps every field nullable so that absent and zero values
// can be told apart by the presence check.
type GenerateNarrative struct {
	DiagnosticID       string   `json:"diagnostic_id"`
	Credibilidad       *float64 `json:"credibilidad"`
	CapacidadComercial *float64 `json:"capacidad_comercial"`
	Posicionamiento    *float64 `json:"posicionamiento"`
	Operacion          *float64 `json:"operacion"`
}

func (r *GenerateNarrative) IsComplete() bool {
	return r.DiagnosticID != "" &&
		r.Credibilidad != nil &&
		r.CapacidadComercial != nil &&
		r.Posicionamiento != nil &&
		r.Operacion != nil
}

func (r *GenerateNarrative) Scores() scoring.Scores {
	return scoring.Scores{
		Credibilidad:       derefScore(r.Credibilidad),
		CapacidadComercial: derefScore(r.CapacidadComercial),
		Posicionamiento:    derefScore(r.Posicionamiento),
		Operacion:          derefScore(r.Operacion),
	}
}

func derefScore(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
