package models

// ===== Request Models =====

// MedicalInfoRequest represents an inbound medical information request
type MedicalInfoRequest struct {
	Prompt string `json:"prompt"`
}

// ===== Medical Information Models =====

// MedicalInfo is the structured medical information returned by the LLM.
// Field presence for the required fields is enforced by the output schema
// declared to the provider, not re-validated here.
type MedicalInfo struct {
	Query               string   `json:"query"`
	PotentialCondition  string   `json:"potential_condition"`
	Summary             string   `json:"summary"`
	CommonSymptoms      []string `json:"common_symptoms,omitempty"`
	RecommendedActions  []string `json:"recommended_actions,omitempty"`
	ImportantDisclaimer string   `json:"important_disclaimer"`
}

// ===== Response Models =====

// MedicalInfoResponse is the success envelope for the medical info endpoint
type MedicalInfoResponse struct {
	Success bool         `json:"success"`
	Data    *MedicalInfo `json:"data"`
}

// ErrorResponse is the error envelope for all failure responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// HomeResponse is the liveness message returned from the root route
type HomeResponse struct {
	Message string `json:"message"`
}
