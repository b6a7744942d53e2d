package gemini

const (
	// DefaultModel is the default Gemini model for event extraction.
	DefaultModel = "gemini-2.0-flash-lite"

	// vertexEndpointFormat expands to the regional Vertex AI publisher-model
	// base URL: location, project, location.
	vertexEndpointFormat = "https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models"
)
