package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries a per-field breakdown for rejected
// submissions. Keys are field descriptor ids.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      string `json:"user_id"`
	Username string `json:"username"`
}
