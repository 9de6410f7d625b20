package render

import (
	"strings"
	"testing"

	"github.com/jmrestrepo/dictamen/internal/prompts/origin"
)

func TestOrigin_GroupsDiagnosesByOrigin(t *testing.T) {
	info := &origin.Result{
		TipoEntidad:   sp("EPS"),
		NombreEntidad: sp("Sura"),
		Diagnosticos: []origin.Diagnosis{
			{Nombre: sp("Hernia discal"), Origen: sp("Enfermedad laboral")},
			{Nombre: sp("Lumbalgia"), Origen: sp("Enfermedad laboral")},
			{Nombre: sp("Tendinitis"), Origen: sp("Enfermedad común")},
		},
	}

	want := `Calificación en primera oportunidad:

La Entidad Prestadora de Salud Sura calificó las patologías: Hernia discal, Lumbalgia como de origen enfermedad laboral; Tendinitis como de origen enfermedad común.`

	if got := Origin(info); got != want {
		t.Fatalf("Origin() = %q, want %q", got, want)
	}
}

func TestOrigin_GroupOrderFollowsFirstAppearance(t *testing.T) {
	info := &origin.Result{
		TipoEntidad:   sp("ARL"),
		NombreEntidad: sp("Positiva"),
		Diagnosticos: []origin.Diagnosis{
			{Nombre: sp("Tendinitis"), Origen: sp("Enfermedad común")},
			{Nombre: sp("Hernia discal"), Origen: sp("Enfermedad laboral")},
			{Nombre: sp("Lumbalgia"), Origen: sp("Enfermedad común")},
		},
	}

	got := Origin(info)
	want := "Tendinitis, Lumbalgia como de origen enfermedad común; Hernia discal como de origen enfermedad laboral."
	if !strings.Contains(got, want) {
		t.Fatalf("Origin() grouping order mismatch:\ngot:  %s\nwant substring: %s", got, want)
	}
	if !strings.Contains(got, "La Administradora de Riesgos Laborales Positiva") {
		t.Fatalf("Origin() entity clause mismatch: %s", got)
	}
}

func TestOrigin_LateralityAppendsToName(t *testing.T) {
	info := &origin.Result{
		TipoEntidad:   sp("AFP"),
		NombreEntidad: sp("Protección"),
		Diagnosticos: []origin.Diagnosis{
			{Nombre: sp("Síndrome de manguito rotador"), Lateralidad: sp("derecho"), Origen: sp("Enfermedad laboral")},
		},
	}

	got := Origin(info)
	if !strings.Contains(got, "Síndrome de manguito rotador derecho como de origen enfermedad laboral") {
		t.Fatalf("Origin() should append laterality to the diagnosis name, got: %s", got)
	}
	if !strings.Contains(got, "La Administradora de Fondos Pensionales Protección") {
		t.Fatalf("Origin() entity clause mismatch: %s", got)
	}
}

func TestOrigin_ShortCircuitsWhenUnidentified(t *testing.T) {
	cases := map[string]*origin.Result{
		"no entity type": {
			NombreEntidad: sp("Sura"),
			Diagnosticos:  []origin.Diagnosis{{Nombre: sp("Lumbalgia"), Origen: sp("Enfermedad común")}},
		},
		"no entity name": {
			TipoEntidad:  sp("EPS"),
			Diagnosticos: []origin.Diagnosis{{Nombre: sp("Lumbalgia"), Origen: sp("Enfermedad común")}},
		},
		"no diagnoses": {
			TipoEntidad:   sp("EPS"),
			NombreEntidad: sp("Sura"),
		},
	}

	for name, info := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Origin(info); got != OriginUnidentified {
				t.Fatalf("Origin() = %q, want the unidentified message", got)
			}
		})
	}
}

func TestOrigin_ConceptAndTestSections(t *testing.T) {
	info := &origin.Result{
		TipoEntidad:   sp("EPS"),
		NombreEntidad: sp("Sura"),
		Diagnosticos: []origin.Diagnosis{
			{Nombre: sp("Lumbalgia"), Origen: sp("Enfermedad común")},
		},
		ConceptosMedicos: []origin.MedicalConcept{
			{
				Especialidad:   sp("Ortopedia"),
				Concepto:       sp("Limitación funcional moderada"),
				Fecha:          sp("12 de mayo de 2023"),
				NombreHistoria: sp("HC-2023-0012"),
			},
		},
		PruebasEspecificas: []origin.SpecificTest{
			{Tipo: sp("Resonancia magnética"), Resultado: sp("Protrusión discal L4-L5"), Fecha: sp("3 de abril de 2023")},
		},
	}

	got := Origin(info)
	wantConcept := "Conceptos médicos:\nConcepto de ortopedia del 12 de mayo de 2023: Limitación funcional moderada\nNombre de la historia clínica: HC-2023-0012"
	if !strings.Contains(got, wantConcept) {
		t.Fatalf("Origin() concept section mismatch:\ngot:\n%s\nwant substring:\n%s", got, wantConcept)
	}
	wantTest := "Pruebas específicas:\nResonancia magnética del 3 de abril de 2023: Protrusión discal L4-L5"
	if !strings.Contains(got, wantTest) {
		t.Fatalf("Origin() test section mismatch:\ngot:\n%s\nwant substring:\n%s", got, wantTest)
	}
}
