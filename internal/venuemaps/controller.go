package venuemaps

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/internal/charts"
	"courtside/internal/shared/utils/response"
)

type Controller interface {
	GetEventVenueMap(c *gin.Context)
	GetVenueMap(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetEventVenueMap(c *gin.Context) {
	eventID := c.Param("eventId")

	venueMap, err := ctrl.service.GetVenueMapForEvent(c.Request.Context(), eventID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := err.Error()
		switch {
		case errors.Is(err, charts.ErrVenueMapUnavailable):
			message = "Failed to load venue map"
		case message == "invalid event ID":
			statusCode = http.StatusBadRequest
		case message == "event not found":
			statusCode = http.StatusNotFound
		case message == "event has no venue":
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, message, nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue map retrieved successfully", venueMap, nil)
}

func (ctrl *controller) GetVenueMap(c *gin.Context) {
	venueName := c.Param("venueName")

	venueMap, err := ctrl.service.GetVenueMap(c.Request.Context(), venueName)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := err.Error()
		switch {
		case errors.Is(err, charts.ErrVenueMapUnavailable):
			message = "Failed to load venue map"
		case message == "venue name is required":
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, message, nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue map retrieved successfully", venueMap, nil)
}
