package render

import (
	"fmt"
	"strings"

	"github.com/jmrestrepo/dictamen/internal/prompts/firstopp"
)

const firstOppTemplate = `Calificación en primera oportunidad:

La %s %s le calificó una Pérdida de Capacidad Laboral (PCL) de %s%%, de origen %s, con fecha de estructuración %s. La calificación de PCL emitida se desglosa así: Deficiencia: %s%%, Rol laboral/ocupacional y otras áreas ocupacionales: %s%%. Las deficiencias calificadas fueron: %s. Diagnósticos: %s.`

// FirstOpportunity renders the first-opportunity qualification template.
func FirstOpportunity(info *firstopp.Result) string {
	// Deficiencies as "name (pct%)", comma-joined.
	deficiencies := make([]string, 0, len(info.Deficiencias))
	for _, d := range info.Deficiencias {
		deficiencies = append(deficiencies, fmt.Sprintf("%s (%s%%)", lower(d.Nombre), str(d.Porcentaje)))
	}

	// Each diagnosis sentence: diagnosis + specific + laterality, lower-cased
	// except the leading capital, closed with its origin.
	diagnoses := make([]string, 0, len(info.Diagnosticos))
	for _, d := range info.Diagnosticos {
		sentence := capitalize(str(d.Diagnostico))
		if str(d.DiagnosticoEspecifico) != "" {
			sentence += " " + lower(d.DiagnosticoEspecifico)
		}
		if str(d.Lateralidad) != "" {
			sentence += " " + lower(d.Lateralidad)
		}
		sentence += " como de origen " + lower(d.Origen)
		diagnoses = append(diagnoses, sentence)
	}

	out := fmt.Sprintf(firstOppTemplate,
		EntityTypeName(str(info.TipoEntidad)),
		str(info.NombreEntidad),
		str(info.PCLTotal),
		lower(info.Origen),
		str(info.FechaEstructuracion),
		str(info.DeficienciaTotal),
		str(info.RolLaboral),
		strings.Join(deficiencies, ", "),
		strings.Join(diagnoses, ", "),
	)

	out += medicalConceptsSection(conceptItems(info.ConceptosMedicos))
	out += specificTestsSection(testItems(info.PruebasEspecificas))
	return out
}

// conceptItems formats medical concepts as
// "Concepto de {especialidad}[ del {fecha}]: {concepto}" with an optional
// clinical-record-name line.
func conceptItems(concepts []firstopp.MedicalConcept) []string {
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

// testItems formats specific tests as "{tipo}[ del {fecha}]: {resultado}"
// with an optional clinical-record-name line.
func testItems(tests []firstopp.SpecificTest) []string {
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

// medicalConceptsSection appends the optional "Conceptos médicos" section.
func medicalConceptsSection(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "\n\nConceptos médicos:\n" + strings.Join(items, "\n")
}

// specificTestsSection appends the optional "Pruebas específicas" section.
func specificTestsSection(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "\n\nPruebas específicas:\n" + strings.Join(items, "\n")
}
