// Package response defines the envelope every API handler writes. Venue-map
// and pricing payloads ride in Data; binding failures ride in Errors.
package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope with the given HTTP code. Status is
// "success" or "error" and mirrors the code class.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
