package pcl

// nullable is shorthand for schema fields the model may leave as null.
var nullable = []string{"string", "null"}

// ExtractionSchema validates the model's JSON output before it reaches the
// renderer. Nothing is required: a field the model cannot locate arrives as
// null and is rendered as an empty clause downstream.
var ExtractionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"ubicacion":            map[string]any{"type": nullable},
		"numero_dictamen":      map[string]any{"type": nullable},
		"fecha_dictamen":       map[string]any{"type": nullable},
		"deficiencia_total":    map[string]any{"type": nullable},
		"rol_laboral":          map[string]any{"type": nullable},
		"pcl_total":            map[string]any{"type": nullable},
		"origen":               map[string]any{"type": nullable},
		"fecha_estructuracion": map[string]any{"type": nullable},
		"diagnosticos": map[string]any{
			"type":  []string{"array", "null"},
			"items": map[string]any{"type": nullable},
		},
		"deficiencias_calificadas": map[string]any{
			"type": []string{"array", "null"},
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"nombre":     map[string]any{"type": nullable},
					"porcentaje": map[string]any{"type": nullable},
					"fuente":     map[string]any{"type": nullable},
				},
			},
		},
		"analisis_conclusiones":  map[string]any{"type": nullable},
		"valoracion_calificador": map[string]any{"type": nullable},
		"otros_conceptos":        map[string]any{"type": nullable},
	},
}

// GradedDeficiency is one row of the PCL percentage breakdown.
type GradedDeficiency struct {
	Nombre     *string `json:"nombre"`
	Porcentaje *string `json:"porcentaje"`
	Fuente     *string `json:"fuente"`
}

// Result is the parsed PCL ruling. Optional fields are pointers: nil means
// the model marked the field absent, and renderers must skip the clause.
type Result struct {
	Ubicacion               *string            `json:"ubicacion"`
	NumeroDictamen          *string            `json:"numero_dictamen"`
	FechaDictamen           *string            `json:"fecha_dictamen"`
	Diagnosticos            []string           `json:"diagnosticos"`
	DeficienciaTotal        *string            `json:"deficiencia_total"`
	RolLaboral              *string            `json:"rol_laboral"`
	PCLTotal                *string            `json:"pcl_total"`
	Origen                  *string            `json:"origen"`
	FechaEstructuracion     *string            `json:"fecha_estructuracion"`
	DeficienciasCalificadas []GradedDeficiency `json:"deficiencias_calificadas"`
	AnalisisConclusiones    *string            `json:"analisis_conclusiones"`
	ValoracionCalificador   *string            `json:"valoracion_calificador"`
	OtrosConceptos          *string            `json:"otros_conceptos"`
}
