// Package render builds the final narrative templates from extracted
// records. Renderers are pure functions: same record in, same string out.
// Absent fields (nil pointers, empty lists) render as empty clauses or
// skipped sections, never as a literal null token.
package render

import (
	"strings"
	"unicode"
)

// entityTypeNames maps the entity-type code to its long form.
var entityTypeNames = map[string]string{
	"EPS": "Entidad Prestadora de Salud",
	"ARL": "Administradora de Riesgos Laborales",
	"AFP": "Administradora de Fondos Pensionales",
}

// EntityTypeName returns the long form for an EPS/ARL/AFP code.
// Unknown codes fall back to "Entidad".
func EntityTypeName(code string) string {
	if name, ok := entityTypeNames[code]; ok {
		return name
	}
	return "Entidad"
}

// str dereferences an optional field, mapping absent to the empty string.
func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// lower dereferences an optional field and lower-cases it.
func lower(p *string) string {
	return strings.ToLower(str(p))
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
