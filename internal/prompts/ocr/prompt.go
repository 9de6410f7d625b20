// Package ocr holds the page-transcription prompts.
//
// The wording is part of the contract with the vision model: the instruction
// demands a verbatim transcription with no corrections, so that the
// correction stage remains the only place spelling is touched.
package ocr

// SystemPrompt instructs the vision model to transcribe verbatim.
const SystemPrompt = `Eres un OCR especializado. Extrae el texto de la imagen y devuélvelo exactamente como aparece, sin hacer correcciones. Mantén el formato y la estructura del texto original.`

// UserPrompt accompanies the page image.
const UserPrompt = `Extrae el texto de esta imagen manteniendo el formato original.`
