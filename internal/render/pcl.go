package render

import (
	"fmt"
	"strings"

	"github.com/jmrestrepo/dictamen/internal/prompts/pcl"
)

// DeficiencyTableFallback is emitted verbatim when the graded-deficiency
// list is empty. It replaces the table, never an empty one.
const DeficiencyTableFallback = "No se pudo extraer con claridad la información completa de las deficiencias calificadas."

const pclTemplate = `Calificación Junta Regional de Calificación de Invalidez:

La Junta Regional de Calificación de Invalidez de %s mediante dictamen N° %s de fecha %s establece:

DIAGNÓSTICO(S):
%s

DEFICIENCIAS: %s%%
ROL LABORAL Y OTROS: %s%%
PCL TOTAL: %s%%

ORIGEN: %s

FECHA DE ESTRUCTURACIÓN: %s

La calificación de PCL emitida se desglosa así:

%s

La Junta Regional de Calificación de Invalidez de %s, fundamenta su dictamen, especialmente, en los siguientes términos:

"%s"`

// PCL renders the Junta Regional ruling template.
func PCL(info *pcl.Result) string {
	// Numbered diagnosis list, 1-based.
	diagnoses := make([]string, 0, len(info.Diagnosticos))
	for i, d := range info.Diagnosticos {
		diagnoses = append(diagnoses, fmt.Sprintf("%d. %s", i+1, d))
	}

	// The closing quoted block: analysis and conclusions, then the
	// qualifier's assessment and other technical concepts, blank-joined.
	assessments := strings.TrimSpace(str(info.ValoracionCalificador) + "\n\n" + str(info.OtrosConceptos))
	rationale := strings.TrimSpace(str(info.AnalisisConclusiones) + "\n\n" + assessments)

	return fmt.Sprintf(pclTemplate,
		str(info.Ubicacion),
		str(info.NumeroDictamen),
		str(info.FechaDictamen),
		strings.Join(diagnoses, "\n"),
		str(info.DeficienciaTotal),
		str(info.RolLaboral),
		str(info.PCLTotal),
		str(info.Origen),
		str(info.FechaEstructuracion),
		deficiencyTable(info.DeficienciasCalificadas),
		str(info.Ubicacion),
		rationale,
	)
}

// deficiencyTable renders the graded deficiencies as a markdown table, or
// the fixed fallback sentence when the list is empty.
func deficiencyTable(deficiencies []pcl.GradedDeficiency) string {
	if len(deficiencies) == 0 {
		return DeficiencyTableFallback
	}

	var sb strings.Builder
	sb.WriteString("| Deficiencia | Porcentaje | Capítulo, Numeral, Literal, Tabla |\n")
	sb.WriteString("|-------------|------------|----------------------------------|")
	for _, d := range deficiencies {
		sb.WriteString(fmt.Sprintf("\n| %s | %s | %s |", str(d.Nombre), str(d.Porcentaje), str(d.Fuente)))
	}
	return sb.String()
}
