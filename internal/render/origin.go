package render

import (
	"fmt"
	"strings"

	"github.com/jmrestrepo/dictamen/internal/prompts/origin"
)

// OriginUnidentified is the fixed short-circuit message when the qualifying
// entity or the diagnoses could not be identified.
const OriginUnidentified = "No se pudo identificar con claridad la entidad calificadora o los diagnósticos del dictamen"

const originTemplate = `Calificación en primera oportunidad:

La %s %s calificó las patologías: %s.`

// Origin renders the origin-determination template.
func Origin(info *origin.Result) string {
	if str(info.TipoEntidad) == "" || str(info.NombreEntidad) == "" || len(info.Diagnosticos) == 0 {
		return OriginUnidentified
	}

	// Group diagnoses by origin, preserving first-seen origin order.
	originOrder := make([]string, 0, 2)
	grouped := make(map[string][]string)
	for _, d := range info.Diagnosticos {
		key := str(d.Origen)
		if _, seen := grouped[key]; !seen {
			originOrder = append(originOrder, key)
		}
		name := str(d.Nombre)
		if str(d.Lateralidad) != "" {
			name += " " + str(d.Lateralidad)
		}
		grouped[key] = append(grouped[key], name)
	}

	parts := make([]string, 0, len(originOrder))
	for _, key := range originOrder {
		parts = append(parts, fmt.Sprintf("%s como de origen %s",
			strings.Join(grouped[key], ", "), strings.ToLower(key)))
	}

	out := fmt.Sprintf(originTemplate,
		EntityTypeName(str(info.TipoEntidad)),
		str(info.NombreEntidad),
		strings.Join(parts, "; "),
	)

	out += medicalConceptsSection(originConceptItems(info.ConceptosMedicos))
	out += specificTestsSection(originTestItems(info.PruebasEspecificas))
	return out
}

func originConceptItems(concepts []origin.MedicalConcept) []string {
	items := make([]string, 0, len(concepts))
	for _, c := range concepts {
		item := "Concepto de " + lower(c.Especialidad)
		if str(c.Fecha) != "" {
			item += " del " + str(c.Fecha)
		}
		item += ": " + str(c.Concepto)
		if str(c.NombreHistoria) != "" {
			item += "\nNombre de la historia clínica: " + str(c.NombreHistoria)
		}
		items = append(items, item)
	}
	return items
}

func originTestItems(tests []origin.SpecificTest) []string {
	items := make([]string, 0, len(tests))
	for _, t := range tests {
		item := str(t.Tipo)
		if str(t.Fecha) != "" {
			item += " del " + str(t.Fecha)
		}
		item += ": " + str(t.Resultado)
		if str(t.NombreHistoria) != "" {
			item += "\nNombre de la historia clínica: " + str(t.NombreHistoria)
		}
		items = append(items, item)
	}
	return items
}
