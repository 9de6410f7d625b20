package render

import (
	"strings"
	"testing"

	"github.com/jmrestrepo/dictamen/internal/prompts/pcl"
)

func sp(s string) *string { return &s }

func TestPCL_FullRuling(t *testing.T) {
	info := &pcl.Result{
		Ubicacion:           sp("Antioquia"),
		NumeroDictamen:      sp("12345"),
		FechaDictamen:       sp("10 de enero de 2024"),
		Diagnosticos:        []string{"Hernia discal", "Lumbalgia"},
		DeficienciaTotal:    sp("20.5"),
		RolLaboral:          sp("7.5"),
		PCLTotal:            sp("28.0"),
		Origen:              sp("Enfermedad común"),
		FechaEstructuracion: sp("15 de marzo de 2023"),
		DeficienciasCalificadas: []pcl.GradedDeficiency{
			{Nombre: sp("Hernia discal"), Porcentaje: sp("20.5"), Fuente: sp("Capítulo 2, Numeral 3")},
		},
		AnalisisConclusiones: sp("Se analiza la historia clínica del paciente."),
	}

	want := `Calificación Junta Regional de Calificación de Invalidez:

La Junta Regional de Calificación de Invalidez de Antioquia mediante dictamen N° 12345 de fecha 10 de enero de 2024 establece:

DIAGNÓSTICO(S):
1. Hernia discal
2. Lumbalgia

DEFICIENCIAS: 20.5%
ROL LABORAL Y OTROS: 7.5%
PCL TOTAL: 28.0%

ORIGEN: Enfermedad común

FECHA DE ESTRUCTURACIÓN: 15 de marzo de 2023

La calificación de PCL emitida se desglosa así:

| Deficiencia | Porcentaje | Capítulo, Numeral, Literal, Tabla |
|-------------|------------|----------------------------------|
| Hernia discal | 20.5 | Capítulo 2, Numeral 3 |

La Junta Regional de Calificación de Invalidez de Antioquia, fundamenta su dictamen, especialmente, en los siguientes términos:

"Se analiza la historia clínica del paciente."`

	if got := PCL(info); got != want {
		t.Fatalf("PCL() mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestPCL_NoDeficienciesUsesFallback(t *testing.T) {
	got := PCL(&pcl.Result{Ubicacion: sp("Bolívar")})
	if !strings.Contains(got, DeficiencyTableFallback) {
		t.Fatalf("PCL() without graded deficiencies should contain the fallback sentence, got:\n%s", got)
	}
	if strings.Contains(got, "| Deficiencia |") {
		t.Fatalf("PCL() without graded deficiencies should not render a table, got:\n%s", got)
	}
}

func TestPCL_AbsentFieldsRenderEmpty(t *testing.T) {
	got := PCL(&pcl.Result{})
	if strings.Contains(got, "null") || strings.Contains(got, "<nil>") {
		t.Fatalf("absent fields must render as empty clauses, got:\n%s", got)
	}
	if !strings.Contains(got, "DEFICIENCIAS: %") {
		t.Fatalf("empty percentage clause should keep its %% sign, got:\n%s", got)
	}
}

func TestPCL_RationaleJoinsSections(t *testing.T) {
	info := &pcl.Result{
		AnalisisConclusiones:  sp("Análisis de la junta."),
		ValoracionCalificador: sp("Valoración del calificador."),
		OtrosConceptos:        sp("Otros conceptos técnicos."),
	}
	got := PCL(info)
	want := "\"Análisis de la junta.\n\nValoración del calificador.\n\nOtros conceptos técnicos.\""
	if !strings.Contains(got, want) {
		t.Fatalf("rationale block mismatch, want substring:\n%s\ngot:\n%s", want, got)
	}
}

func TestPCL_RationaleSkipsAbsentSections(t *testing.T) {
	got := PCL(&pcl.Result{AnalisisConclusiones: sp("Solo análisis.")})
	if !strings.Contains(got, "\"Solo análisis.\"") {
		t.Fatalf("rationale with a single section should carry no extra blank lines, got:\n%s", got)
	}
}
