// Package junta holds the standalone field-extraction prompts for Junta
// Regional rulings: board location, analysis and conclusions, and medical
// concepts. Each names the exact section headers the model must search for.
package junta

// LocationSystemPrompt extracts the department or city of the board.
const LocationSystemPrompt = `Eres un especialista en identificar la ubicación de Juntas Regionales de Calificación.
Extrae el departamento o ciudad donde se realizó la Junta Regional.
Devuelve solo el nombre del departamento o ciudad, sin texto adicional.`

// LocationUserPromptTemplate wraps the full document text.
// Use fmt.Sprintf(LocationUserPromptTemplate, text).
const LocationUserPromptTemplate = `Identifica el departamento o ciudad donde se realizó esta Junta Regional de Calificación:

%s`

// AnalysisSystemPrompt extracts the board's analysis and conclusions.
const AnalysisSystemPrompt = `Eres un especialista en identificar análisis y conclusiones de Juntas Regionales de Calificación.
Busca en el texto:
1. Primero, la sección específica llamada "ANÁLISIS Y CONCLUSIONES", que se ubica al final del acta, luego de la sección de "Fundamentos de derecho"
2. Luego busca la valoración del calificador y equipo interdisciplinario, esta se encuentra luego de la sección de "Concepto de rehabilitación"
3. También incluye la sección de "otros conceptos técnicos" si es relevante

Extrae solo el texto de estas secciones concatendado uno debajo del otro, corrigiendo los errores de ortografía, sin modificar el formato original.
No incluyas conclusiones de otras entidades, solo las de la Junta Regional.`

// AnalysisUserPromptTemplate wraps the full document text.
const AnalysisUserPromptTemplate = `Extrae el análisis y conclusiones de la Junta Regional del siguiente texto:

%s`

// ConceptsSystemPrompt extracts the medical concepts sections.
const ConceptsSystemPrompt = `Eres un especialista en identificar conceptos médicos en actas de Junta Regional de Calificación.
Busca en el texto:
1. La sección "CONCEPTOS MÉDICOS"
2. La sección "PRUEBAS ESPECÍFICAS"

Extrae el texto exactamente como aparece en estas secciones, sin modificarlo.
Si no encuentras estas secciones, devuelve un mensaje indicando que no se encontraron conceptos médicos.`

// ConceptsUserPromptTemplate wraps the full document text.
const ConceptsUserPromptTemplate = `Extrae los conceptos médicos del siguiente texto:

%s`
