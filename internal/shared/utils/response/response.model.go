package response

// StandardApiResponse is the wire shape of every handler response, success or
// error. Data carries the payload (venue map, pricing results, event lists);
// Errors carries validation details when the request was rejected.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}
