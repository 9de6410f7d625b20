package render

import "fmt"

const appealTemplate = `Motivación de la inconformidad: %s manifiesta su inconformidad frente al dictamen con base en:

"%s"`

// Appeal renders the appeal (recurso de reposición) template: a single
// fixed interpolation of the presenting party and the cleaned motivation
// text, no conditionals.
func Appeal(entity, text string) string {
	return fmt.Sprintf(appealTemplate, entity, text)
}
