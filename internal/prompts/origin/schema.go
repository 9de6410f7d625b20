package origin

var nullable = []string{"string", "null"}

func nullableArray(items map[string]any) map[string]any {
	return map[string]any{
		"type":  []string{"array", "null"},
		"items": items,
	}
}

// ExtractionSchema validates the model's JSON output before it reaches the
// renderer. Nothing is required; null marks an absent field.
var ExtractionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"tipo_entidad":   map[string]any{"type": nullable},
		"nombre_entidad": map[string]any{"type": nullable},
		"diagnosticos": nullableArray(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"nombre":      map[string]any{"type": nullable},
				"lateralidad": map[string]any{"type": nullable},
				"origen":      map[string]any{"type": nullable},
			},
		}),
		"conceptos_medicos": nullableArray(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"especialidad":    map[string]any{"type": nullable},
				"concepto":        map[string]any{"type": nullable},
				"fecha":           map[string]any{"type": nullable},
				"nombre_historia": map[string]any{"type": nullable},
			},
		}),
		"pruebas_especificas": nullableArray(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tipo":            map[string]any{"type": nullable},
				"resultado":       map[string]any{"type": nullable},
				"fecha":           map[string]any{"type": nullable},
				"nombre_historia": map[string]any{"type": nullable},
			},
		}),
	},
}

// Diagnosis is one pathology with its determined origin.
type Diagnosis struct {
	Nombre      *string `json:"nombre"`
	Lateralidad *string `json:"lateralidad"`
	Origen      *string `json:"origen"`
}

// MedicalConcept is a specialist concept cited from a clinical record.
type MedicalConcept struct {
	Especialidad   *string `json:"especialidad"`
	Concepto       *string `json:"concepto"`
	Fecha          *string `json:"fecha"`
	NombreHistoria *string `json:"nombre_historia"`
}

// SpecificTest is a paraclinical test result cited from a clinical record.
type SpecificTest struct {
	Tipo           *string `json:"tipo"`
	Resultado      *string `json:"resultado"`
	Fecha          *string `json:"fecha"`
	NombreHistoria *string `json:"nombre_historia"`
}

// Result is the parsed origin determination. Optional fields are pointers:
// nil means absent, and the renderer short-circuits when the entity or the
// diagnoses could not be identified.
type Result struct {
	TipoEntidad        *string          `json:"tipo_entidad"`
	NombreEntidad      *string          `json:"nombre_entidad"`
	Diagnosticos       []Diagnosis      `json:"diagnosticos"`
	ConceptosMedicos   []MedicalConcept `json:"conceptos_medicos"`
	PruebasEspecificas []SpecificTest   `json:"pruebas_especificas"`
}
