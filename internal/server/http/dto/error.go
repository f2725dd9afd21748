package dto

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse reports service health.
type StatusResponse struct {
	Status string `json:"status"`
}
