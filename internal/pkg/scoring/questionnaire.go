package scoring

type DimensionKey string

const (
	DimensionCredibilidad       DimensionKey = "credibilidad"
	DimensionCapacidadComercial DimensionKey = "capacidad_comercial"
	DimensionPosicionamiento    DimensionKey = "posicionamiento"
	DimensionOperacion          DimensionKey = "operacion"
)

const (
	MinAnswerValue = 1
	MaxAnswerValue = 5
)

type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Dimension struct {
	Key       DimensionKey `json:"key"`
	Label     string       `json:"label"`
	Questions []Question   `json:"questions"`
}

// QuestionIDs returns the ids scored by the dimension, in questionnaire order.
func (d Dimension) QuestionIDs() []string {
	ids := make([]string, 0, len(d.Questions))
	for _, question := range d.Questions {
		ids = append(ids, question.ID)
	}
	return ids
}

var questionnaire = []Dimension{
	{
		Key:   DimensionCredibilidad,
		Label: "Credibilidad documentada",
		Questions: []Question{
			{ID: "c1", Text: "¿Tienen casos de éxito documentados y disponibles para compartir con prospectos?"},
			{ID: "c2", Text: "¿Cuentan con testimonios o referencias verificables de clientes anteriores?"},
			{ID: "c3", Text: "¿Tienen un portafolio o historial de proyectos visible y actualizado?"},
		},
	},
	{
		Key:   DimensionCapacidadComercial,
		Label: "Capacidad comercial",
		Questions: []Question{
			{ID: "cc1", Text: "¿Tienen un proceso de ventas definido y documentado?"},
			{ID: "cc2", Text: "¿Pueden generar propuestas comerciales en menos de 48 horas?"},
			{ID: "cc3", Text: "¿Tienen métricas de seguimiento de oportunidades comerciales activas?"},
		},
	},
	{
		Key:   DimensionPosicionamiento,
		Label: "Posicionamiento",
		Questions: []Question{
			{ID: "p1", Text: "¿Tienen clara su propuesta de valor diferenciada respecto a la competencia?"},
			{ID: "p2", Text: "¿Su mercado objetivo está claramente definido y segmentado?"},
			{ID: "p3", Text: "¿Tienen presencia digital activa y consistente con su propuesta de valor?"},
		},
	},
	{
		Key:   DimensionOperacion,
		Label: "Operación y estructura",
		Questions: []Question{
			{ID: "o1", Text: "¿Tienen procesos operativos documentados que permitan replicabilidad?"},
			{ID: "o2", Text: "¿La estructura del equipo y sus roles están claramente definidos?"},
			{ID: "o3", Text: "¿La empresa puede operar y escalar sin depender de una persona clave?"},
		},
	},
}

// Questionnaire returns a copy of the fixed diagnostic questionnaire.
func Questionnaire() []Dimension {
	dimensions := make([]Dimension, len(questionnaire))
	for i, dimension := range questionnaire {
		questions := make([]Question, len(dimension.Questions))
		copy(questions, dimension.Questions)
		dimension.Questions = questions
		dimensions[i] = dimension
	}
	return dimensions
}

func TotalQuestions() int {
	total := 0
	for _, dimension := range questionnaire {
		total += len(dimension.Questions)
	}
	return total
}

func LookupDimension(key DimensionKey) (Dimension, bool) {
	for _, dimension := range questionnaire {
		if dimension.Key == key {
			return dimension, true
		}
	}
	return Dimension{}, false
}

func isKnownQuestion(id string) bool {
	for _, dimension := range questionnaire {
		for _, question := range dimension.Questions {
			if question.ID == id {
				return true
			}
		}
	}
	return false
}
