package prompts

import (
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// ===== Medical Information Prompt =====

// MedicalPrompt builds the instruction text for a medical information query.
// The user's input is embedded verbatim.
func MedicalPrompt(userInput string) string {
	return fmt.Sprintf(`You are a non-diagnostic medical information assistant. Your goal is to provide general, educational information based on a user's health-related query.

**CRITICAL SAFETY WARNING:** You must include a prominent and specific legal disclaimer in the 'important_disclaimer' field. This information is NOT medical advice, diagnosis, or treatment and should not replace consultation with a qualified healthcare professional.

Based on the user's input: "%s". Generate a detailed, educational response strictly in a single JSON block following the provided schema.`, userInput)
}

// ===== Medical Information Schema =====

// Built once; the structured-output contract never changes across requests.
var medicalInfoSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"query": {
			Type:        jsonschema.String,
			Description: "The original user query.",
		},
		"potential_condition": {
			Type:        jsonschema.String,
			Description: "The general condition or topic related to the query.",
		},
		"summary": {
			Type:        jsonschema.String,
			Description: "A concise educational summary of the topic.",
		},
		"common_symptoms": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "A list of common symptoms associated with the condition.",
		},
		"recommended_actions": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "General advice for next steps, such as resting or consulting a doctor.",
		},
		"important_disclaimer": {
			Type:        jsonschema.String,
			Description: "A mandatory safety warning that this is AI-generated information, not professional medical advice.",
		},
	},
	Required:             []string{"query", "potential_condition", "summary", "important_disclaimer"},
	AdditionalProperties: false,
}

// MedicalInfoSchema returns the structured-output schema for medical
// information responses.
func MedicalInfoSchema() jsonschema.Definition {
	return medicalInfoSchema
}
