package render

import "testing"

func TestAppeal_FixedInterpolation(t *testing.T) {
	got := Appeal("la Administradora de Riesgos Laborales Positiva", "el dictamen no valoró la historia clínica completa")

	want := `Motivación de la inconformidad: la Administradora de Riesgos Laborales Positiva manifiesta su inconformidad frente al dictamen con base en:

"el dictamen no valoró la historia clínica completa"`

	if got != want {
		t.Fatalf("Appeal() = %q, want %q", got, want)
	}
}

func TestAppeal_EmptyInputsStillRender(t *testing.T) {
	got := Appeal("", "")
	want := "Motivación de la inconformidad:  manifiesta su inconformidad frente al dictamen con base en:\n\n\"\""
	if got != want {
		t.Fatalf("Appeal() = %q, want %q", got, want)
	}
}
