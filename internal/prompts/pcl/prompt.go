// Package pcl holds the prompt, schema and result types for extracting a
// Junta Regional PCL ruling (dictamen de Pérdida de Capacidad Laboral).
package pcl

// SystemPrompt describes the JSON object the model must return. The wording,
// field names and null-for-missing convention are part of the contract with
// the model.
const SystemPrompt = `Eres un especialista en extraer información de dictámenes de PCL de Juntas Regionales de Calificación.
Extrae la siguiente información en formato JSON:
{
    "ubicacion": "string",
    "numero_dictamen": "string",
    "fecha_dictamen": "string",
    "diagnosticos": ["string"],
    "deficiencia_total": "string",
    "rol_laboral": "string",
    "pcl_total": "string",
    "origen": "string",
    "fecha_estructuracion": "string",
    "deficiencias_calificadas": [
        {
            "nombre": "string",
            "porcentaje": "string",
            "fuente": "string (formato: Tabla X.Y)"
        }
    ],
    "analisis_conclusiones": "string",
    "valoracion_calificador": "string",
    "otros_conceptos": "string"
}
Para la fuente de las deficiencias calificadas, extrae específicamente:
- La tabla en formato "Tabla X.Y" (ejemplo: "Tabla 13.4")
Si algún campo no se encuentra, déjalo como null.`

// UserPromptTemplate wraps the full document text.
// Use fmt.Sprintf(UserPromptTemplate, text).
const UserPromptTemplate = `Extrae la información del dictamen PCL del siguiente texto:

%s`
