package firstopp

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
				"diagnostico":            map[string]any{"type": nullable},
				"diagnostico_especifico": map[string]any{"type": nullable},
				"lateralidad":            map[string]any{"type": nullable},
				"origen":                 map[string]any{"type": nullable},
			},
		}),
		"deficiencias": nullableArray(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"nombre":     map[string]any{"type": nullable},
				"porcentaje": map[string]any{"type": nullable},
			},
		}),
		"deficiencia_total":    map[string]any{"type": nullable},
		"rol_laboral":          map[string]any{"type": nullable},
		"pcl_total":            map[string]any{"type": nullable},
		"origen":               map[string]any{"type": nullable},
		"fecha_estructuracion": map[string]any{"type": nullable},
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

// Diagnosis is one qualified diagnosis with its origin.
type Diagnosis struct {
	Diagnostico           *string `json:"diagnostico"`
	DiagnosticoEspecifico *string `json:"diagnostico_especifico"`
	Lateralidad           *string `json:"lateralidad"`
	Origen                *string `json:"origen"`
}

// Deficiency is one qualified deficiency with its percentage.
type Deficiency struct {
	Nombre     *string `json:"nombre"`
	Porcentaje *string `json:"porcentaje"`
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

// Result is the parsed first-opportunity qualification. Optional fields are
// pointers: nil means absent, and renderers must skip the clause.
type Result struct {
	TipoEntidad         *string          `json:"tipo_entidad"`
	NombreEntidad       *string          `json:"nombre_entidad"`
	Diagnosticos        []Diagnosis      `json:"diagnosticos"`
	Deficiencias        []Deficiency     `json:"deficiencias"`
	DeficienciaTotal    *string          `json:"deficiencia_total"`
	RolLaboral          *string          `json:"rol_laboral"`
	PCLTotal            *string          `json:"pcl_total"`
	Origen              *string          `json:"origen"`
	FechaEstructuracion *string          `json:"fecha_estructuracion"`
	ConceptosMedicos    []MedicalConcept `json:"conceptos_medicos"`
	PruebasEspecificas  []SpecificTest   `json:"pruebas_especificas"`
}
