package util

// Log message constants
const (
	LogStart   = "=== %s START ==="
	LogEnd     = "=== %s END ===\n"
	LogSection = "--- %s ---"
	LogError   = "ERROR: %v"
	LogWarning = "WARNING: %v"
)

// Service constants
const (
	// MedicalInfoSchemaName names the structured-output schema sent to the provider
	MedicalInfoSchemaName = "medical_info"

	// HomeMessage is the liveness message returned from the root route
	HomeMessage = "Medical Assistant Backend is running. Endpoint: /api/get-medical-info"

	// MissingPromptMessage is the validation error returned for an absent or empty prompt
	MissingPromptMessage = "Missing 'prompt' in request body."

	// UpstreamErrorFormat wraps upstream failure detail for the caller
	UpstreamErrorFormat = "Failed to get medical information. Detail: %v"
)
