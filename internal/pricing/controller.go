package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/internal/shared/utils/response"
)

type Controller interface {
	GetEventPricing(c *gin.Context)
	SaveEventPricing(c *gin.Context)
	SynthesizeEventPricing(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetEventPricing(c *gin.Context) {
	eventID := c.Param("eventId")

	overrides, err := ctrl.service.GetEventPricing(c.Request.Context(), eventID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "invalid event ID" {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	result := EventPricingResponse{
		EventID:   eventID,
		Overrides: toOverrideResponses(overrides),
	}
	response.RespondJSON(c, "success", http.StatusOK, "Event pricing retrieved successfully", result, nil)
}

func (ctrl *controller) SaveEventPricing(c *gin.Context) {
	eventID := c.Param("eventId")

	var req SaveOverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	results, err := ctrl.service.SaveOverridesFromRequest(c.Request.Context(), eventID, req)
	if err != nil {
		// Partial batches still report per-section outcomes
		if len(results) > 0 {
			result := toSaveResponse(eventID, results)
			response.RespondJSON(c, "error", http.StatusMultiStatus, err.Error(), result, nil)
			return
		}

		statusCode := http.StatusInternalServerError
		switch err.Error() {
		case "invalid event ID":
			statusCode = http.StatusBadRequest
		case "event not found":
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	result := toSaveResponse(eventID, results)
	response.RespondJSON(c, "success", http.StatusOK, "Event pricing saved successfully", result, nil)
}

func (ctrl *controller) SynthesizeEventPricing(c *gin.Context) {
	eventID := c.Param("eventId")

	// Body is optional: without one the event's own price range is used
	var req SynthesizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
			return
		}
	}

	results, err := ctrl.service.SynthesizeForEvent(c.Request.Context(), eventID, req)
	if err != nil {
		if len(results) > 0 {
			result := toSaveResponse(eventID, results)
			response.RespondJSON(c, "error", http.StatusMultiStatus, err.Error(), result, nil)
			return
		}

		statusCode := http.StatusInternalServerError
		switch err.Error() {
		case "invalid event ID":
			statusCode = http.StatusBadRequest
		case "event not found":
			statusCode = http.StatusNotFound
		case "failed to load venue map":
			statusCode = http.StatusUnprocessableEntity
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	result := toSaveResponse(eventID, results)
	response.RespondJSON(c, "success", http.StatusOK, "Event pricing synthesized successfully", result, nil)
}
